// Package directory is the client-side view of an agency's client list: it
// accumulates fetched pages, tracks the selection, runs bulk edits against
// a snapshot of it and exports the loaded records.
package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/csvexport"
	"github.com/heartmarshall/agencydesk-backend/internal/domain"
	"github.com/heartmarshall/agencydesk-backend/pkg/sdk"
)

// ErrNothingSelected is returned by bulk actions on an empty selection.
var ErrNothingSelected = errors.New("no clients selected")

type pageFetcher interface {
	ListClients(ctx context.Context, criteria domain.SearchCriteria, cursor string) (*domain.Page, error)
}

type bulkEditor interface {
	BulkUpdate(ctx context.Context, ids []uuid.UUID, patch domain.ClientPatch) (*sdk.BulkResult, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) (*sdk.BulkResult, error)
}

// API is the backend the controller talks to. *sdk.Client satisfies it.
type API interface {
	pageFetcher
	bulkEditor
}

// Controller holds the loaded client list for one search.
type Controller struct {
	api API

	mu         sync.Mutex
	criteria   domain.SearchCriteria
	clients    []domain.Client
	loaded     map[uuid.UUID]struct{}
	cursor     string
	started    bool
	loading    bool
	generation uint64
	err        error
	selection  *Selection
}

// NewController creates a controller with an empty list.
func NewController(api API) *Controller {
	return &Controller{
		api:       api,
		loaded:    make(map[uuid.UUID]struct{}),
		selection: NewSelection(),
	}
}

// Search starts a new search: the list, cursor and selection are reset and
// the first page is fetched. Responses of superseded searches are dropped.
func (c *Controller) Search(ctx context.Context, criteria domain.SearchCriteria) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.criteria = criteria.Normalize()
	c.clients = nil
	c.loaded = make(map[uuid.UUID]struct{})
	c.cursor = ""
	c.started = true
	c.loading = true
	c.err = nil
	c.selection.Clear()
	crit := c.criteria
	c.mu.Unlock()

	page, err := c.api.ListClients(ctx, crit, "")
	return c.apply(gen, page, err)
}

// LoadMore appends the next page of the current search. It is a no-op when
// no more pages exist or a fetch is already running.
func (c *Controller) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if !c.started || c.cursor == "" || c.loading {
		c.mu.Unlock()
		return nil
	}
	c.loading = true
	gen := c.generation
	crit, cursor := c.criteria, c.cursor
	c.mu.Unlock()

	page, err := c.api.ListClients(ctx, crit, cursor)
	return c.apply(gen, page, err)
}

// LoadAll keeps loading pages until the last one.
func (c *Controller) LoadAll(ctx context.Context) error {
	for c.HasMore() {
		if err := c.LoadMore(ctx); err != nil {
			return err
		}
	}
	return nil
}

// apply merges a fetched page unless a newer search has started since.
// A failed fetch keeps the records loaded so far.
func (c *Controller) apply(gen uint64, page *domain.Page, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return nil
	}
	c.loading = false

	if err != nil {
		c.err = err
		return fmt.Errorf("fetch clients: %w", err)
	}

	c.err = nil
	for _, cl := range page.Clients {
		if _, dup := c.loaded[cl.ID]; dup {
			continue
		}
		c.loaded[cl.ID] = struct{}{}
		c.clients = append(c.clients, cl)
	}
	c.cursor = page.NextCursor
	return nil
}

// Clients returns a copy of the loaded records in display order.
func (c *Controller) Clients() []domain.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Client(nil), c.clients...)
}

// HasMore reports whether another page can be loaded.
func (c *Controller) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started && c.cursor != ""
}

// Err returns the error of the latest fetch, if it failed.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Criteria returns the criteria of the current search.
func (c *Controller) Criteria() domain.SearchCriteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// Selection returns the selection bound to the loaded list.
func (c *Controller) Selection() *Selection {
	return c.selection
}

// Toggle flips the selection of one client.
func (c *Controller) Toggle(id uuid.UUID) bool {
	return c.selection.Toggle(id)
}

// RangeSelect selects every loaded client between the last selected one and
// id, both included.
func (c *Controller) RangeSelect(id uuid.UUID) {
	c.mu.Lock()
	order := make([]uuid.UUID, len(c.clients))
	for i, cl := range c.clients {
		order[i] = cl.ID
	}
	c.mu.Unlock()

	c.selection.RangeSelect(order, id)
}

// BulkUpdate applies patch to a snapshot of the selection. When any client
// was written the selection is cleared and the current search reloaded,
// even if others failed.
func (c *Controller) BulkUpdate(ctx context.Context, patch domain.ClientPatch) (*sdk.BulkResult, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	ids := c.selection.Snapshot()
	if len(ids) == 0 {
		return nil, ErrNothingSelected
	}

	res, err := c.api.BulkUpdate(ctx, ids, patch)
	if err != nil {
		if res != nil && res.Succeeded > 0 {
			return res, errors.Join(err, c.refresh(ctx))
		}
		return res, err
	}
	return res, c.refresh(ctx)
}

// BulkDelete deletes a snapshot of the selection. confirmed must reflect an
// explicit confirmation by the user.
func (c *Controller) BulkDelete(ctx context.Context, confirmed bool) (*sdk.BulkResult, error) {
	ids := c.selection.Snapshot()
	if len(ids) == 0 {
		return nil, ErrNothingSelected
	}
	if !confirmed {
		return nil, fmt.Errorf("delete %d clients: %w", len(ids), domain.ErrConfirmationRequired)
	}

	res, err := c.api.BulkDelete(ctx, ids)
	if err != nil {
		if res != nil && res.Succeeded > 0 {
			return res, errors.Join(err, c.refresh(ctx))
		}
		return res, err
	}
	return res, c.refresh(ctx)
}

func (c *Controller) refresh(ctx context.Context) error {
	return c.Search(ctx, c.Criteria())
}

// ExportCSV writes the loaded records to w in display order.
func (c *Controller) ExportCSV(w io.Writer) error {
	return csvexport.Write(w, c.Clients())
}
