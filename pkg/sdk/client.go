// Package sdk is an HTTP client for the agencydesk REST API.
package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

const apiPrefix = "/api/v1"

// Client calls the REST API on behalf of one signed-in account.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a client for the API served at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the bearer token in use.
func (c *Client) Token() string { return c.token }

// do sends a request and decodes a JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	resp, err := c.send(ctx, method, path, query, body, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// send performs the request and turns non-2xx answers into *APIError.
// The caller closes the body of a successful response.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}
	return resp, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, nil, body, contentType, out)
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string         `json:"accessToken"`
	Account     domain.Account `json:"account"`
}

// Register creates an account and keeps its token for later calls.
func (c *Client) Register(ctx context.Context, email, password, name string, kind domain.AccountKind) (*AuthResult, error) {
	var res AuthResult
	in := map[string]any{"email": email, "password": password, "name": name, "userType": kind}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", in, &res); err != nil {
		return nil, err
	}
	c.token = res.AccessToken
	return &res, nil
}

// Login signs in and keeps the token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var res AuthResult
	in := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", in, &res); err != nil {
		return nil, err
	}
	c.token = res.AccessToken
	return &res, nil
}

// Me returns the signed-in account.
func (c *Client) Me(ctx context.Context) (*domain.Account, error) {
	var res domain.Account
	if err := c.doJSON(ctx, http.MethodGet, "/me", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ---------------------------------------------------------------------------
// Clients
// ---------------------------------------------------------------------------

// ListClients fetches one page of clients. An empty cursor requests the
// first page.
func (c *Client) ListClients(ctx context.Context, criteria domain.SearchCriteria, cursor string) (*domain.Page, error) {
	q := url.Values{}
	for key, v := range map[string]string{
		"nome":      criteria.Name,
		"email":     criteria.Email,
		"telefone":  criteria.Phone,
		"empresa":   criteria.Company,
		"documento": criteria.Document,
		"cursor":    cursor,
	} {
		if v != "" {
			q.Set(key, v)
		}
	}

	var page domain.Page
	if err := c.do(ctx, http.MethodGet, "/clients", q, nil, "", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// BulkResult reports the outcome of a bulk update or delete.
type BulkResult struct {
	Requested int `json:"requested"`
	Succeeded int `json:"succeeded"`
	Failures  []struct {
		ID    uuid.UUID `json:"id"`
		Error string    `json:"error"`
	} `json:"failures,omitempty"`
}

func (r *BulkResult) err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d clients: %w", len(r.Failures), r.Requested, ErrPartialFailure)
}

// BulkUpdate applies patch to every client in ids. A 207 answer lists the
// clients that failed; it is returned together with ErrPartialFailure.
func (c *Client) BulkUpdate(ctx context.Context, ids []uuid.UUID, patch domain.ClientPatch) (*BulkResult, error) {
	var res BulkResult
	in := map[string]any{"ids": ids, "patch": patch}
	if err := c.doJSON(ctx, http.MethodPost, "/clients/bulk-update", in, &res); err != nil {
		return nil, err
	}
	return &res, res.err()
}

// BulkDelete deletes every client in ids. The caller must have obtained an
// explicit confirmation from the user before calling.
func (c *Client) BulkDelete(ctx context.Context, ids []uuid.UUID) (*BulkResult, error) {
	var res BulkResult
	in := map[string]any{"ids": ids, "confirmed": true}
	if err := c.doJSON(ctx, http.MethodPost, "/clients/bulk-delete", in, &res); err != nil {
		return nil, err
	}
	return &res, res.err()
}

// ImportResult contains the result of a CSV import.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Errors   []struct {
		Line   int    `json:"line"`
		Name   string `json:"nome,omitempty"`
		Reason string `json:"reason"`
	} `json:"errors,omitempty"`
}

// ImportCSV uploads a CSV file of clients.
func (c *Client) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	var res ImportResult
	if err := c.do(ctx, http.MethodPost, "/clients/import", nil, r, "text/csv", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ArchiveExport renders the clients in ids as CSV on the server, stores the
// file and returns its storage key.
func (c *Client) ArchiveExport(ctx context.Context, ids []uuid.UUID) (string, error) {
	raw, err := json.Marshal(map[string]any{"ids": ids})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	var res struct {
		Key string `json:"key"`
	}
	q := url.Values{"archive": {"true"}}
	if err := c.do(ctx, http.MethodPost, "/clients/export", q, bytes.NewReader(raw), "application/json", &res); err != nil {
		return "", err
	}
	return res.Key, nil
}

// DownloadExport writes an archived export to w.
func (c *Client) DownloadExport(ctx context.Context, key string, w io.Writer) error {
	resp, err := c.send(ctx, http.MethodGet, "/exports/"+strings.TrimLeft(key, "/"), nil, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("download export: %w", err)
	}
	return nil
}

// DeleteExport removes an archived export.
func (c *Client) DeleteExport(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodDelete, "/exports/"+strings.TrimLeft(key, "/"), nil, nil, "", nil)
}

// StatusSummary returns the number of clients per status.
func (c *Client) StatusSummary(ctx context.Context) ([]domain.StatusCount, error) {
	var res []domain.StatusCount
	if err := c.doJSON(ctx, http.MethodGet, "/clients/status-summary", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// RecentActivity returns the newest activity entries, at most limit.
func (c *Client) RecentActivity(ctx context.Context, limit int) ([]domain.Activity, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}

	var res []domain.Activity
	if err := c.do(ctx, http.MethodGet, "/activity", q, nil, "", &res); err != nil {
		return nil, err
	}
	return res, nil
}
