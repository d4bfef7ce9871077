package rest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/csvexport"
	"github.com/heartmarshall/agencydesk-backend/internal/domain"
	"github.com/heartmarshall/agencydesk-backend/internal/service/directory"
)

// maxImportBytes caps the CSV body accepted by the import endpoint.
const maxImportBytes = 10 << 20

type directoryService interface {
	ListClients(ctx context.Context, identity domain.Identity, input directory.ListInput) (*domain.Page, error)
	GetClient(ctx context.Context, identity domain.Identity, id uuid.UUID) (domain.Client, error)
	CreateClient(ctx context.Context, identity domain.Identity, input directory.CreateClientInput) (domain.Client, error)
	UpdateClient(ctx context.Context, identity domain.Identity, input directory.UpdateClientInput) (domain.Client, error)
	AddNote(ctx context.Context, identity domain.Identity, input directory.AddNoteInput) (domain.Client, error)
	DeleteClient(ctx context.Context, identity domain.Identity, id uuid.UUID) error
	BulkUpdate(ctx context.Context, identity domain.Identity, input directory.BulkUpdateInput) (*directory.BulkResult, error)
	BulkDelete(ctx context.Context, identity domain.Identity, input directory.BulkDeleteInput) (*directory.BulkResult, error)
	ImportClients(ctx context.Context, identity domain.Identity, r io.Reader) (*directory.ImportResult, error)
	ExportClients(ctx context.Context, identity domain.Identity, input directory.ExportInput) (*directory.ExportResult, error)
	DownloadExport(ctx context.Context, identity domain.Identity, key string) (io.ReadCloser, error)
	DeleteExport(ctx context.Context, identity domain.Identity, key string) error
	StatusSummary(ctx context.Context, identity domain.Identity) ([]domain.StatusCount, error)
}

// ClientHandler serves the client directory endpoints.
type ClientHandler struct {
	svc directoryService
	log *slog.Logger
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(svc directoryService, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{svc: svc, log: logger.With("handler", "clients")}
}

// List handles GET /clients?nome&email&telefone&empresa&documento&cursor.
func (h *ClientHandler) List(c *gin.Context) {
	in := directory.ListInput{
		Criteria: domain.SearchCriteria{
			Name:     c.Query("nome"),
			Email:    c.Query("email"),
			Phone:    c.Query("telefone"),
			Company:  c.Query("empresa"),
			Document: c.Query("documento"),
		},
		Cursor: c.Query("cursor"),
	}
	page, err := h.svc.ListClients(c.Request.Context(), identityOf(c), in)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Get handles GET /clients/:id.
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	client, err := h.svc.GetClient(c.Request.Context(), identityOf(c), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// Create handles POST /clients.
func (h *ClientHandler) Create(c *gin.Context) {
	var in directory.CreateClientInput
	if err := bindJSON(c, &in); err != nil {
		writeError(c, h.log, err)
		return
	}
	client, err := h.svc.CreateClient(c.Request.Context(), identityOf(c), in)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// Update handles PATCH /clients/:id.
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	var in directory.UpdateClientInput
	if err := bindJSON(c, &in); err != nil {
		writeError(c, h.log, err)
		return
	}
	in.ID = id
	client, err := h.svc.UpdateClient(c.Request.Context(), identityOf(c), in)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// AddNote handles POST /clients/:id/notes.
func (h *ClientHandler) AddNote(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	var in directory.AddNoteInput
	if err := bindJSON(c, &in); err != nil {
		writeError(c, h.log, err)
		return
	}
	in.ID = id
	client, err := h.svc.AddNote(c.Request.Context(), identityOf(c), in)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /clients/:id.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if err := h.svc.DeleteClient(c.Request.Context(), identityOf(c), id); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkUpdate handles POST /clients/bulk-update.
func (h *ClientHandler) BulkUpdate(c *gin.Context) {
	var in directory.BulkUpdateInput
	if err := bindJSON(c, &in); err != nil {
		writeError(c, h.log, err)
		return
	}
	res, err := h.svc.BulkUpdate(c.Request.Context(), identityOf(c), in)
	h.writeBulk(c, res, err)
}

// BulkDelete handles POST /clients/bulk-delete. The body must carry
// "confirmed": true.
func (h *ClientHandler) BulkDelete(c *gin.Context) {
	var in directory.BulkDeleteInput
	if err := bindJSON(c, &in); err != nil {
		writeError(c, h.log, err)
		return
	}
	res, err := h.svc.BulkDelete(c.Request.Context(), identityOf(c), in)
	h.writeBulk(c, res, err)
}

// writeBulk answers 207 when the operation ran but some clients failed, so
// the caller gets the per-client reasons instead of a single banner.
func (h *ClientHandler) writeBulk(c *gin.Context, res *directory.BulkResult, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, res)
	case res != nil:
		h.log.WarnContext(c.Request.Context(), "bulk operation incomplete",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		c.JSON(http.StatusMultiStatus, res)
	default:
		writeError(c, h.log, err)
	}
}

// Import handles POST /clients/import with a text/csv body.
func (h *ClientHandler) Import(c *gin.Context) {
	if ct := c.ContentType(); ct != "text/csv" && ct != "application/octet-stream" {
		writeError(c, h.log, domain.NewValidationError("content-type", "expected text/csv"))
		return
	}
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)
	res, err := h.svc.ImportClients(c.Request.Context(), identityOf(c), body)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Export handles POST /clients/export. The CSV is returned as an attachment
// by default, inline with ?inline=true, or stored with ?archive=true in
// which case only its key is returned.
func (h *ClientHandler) Export(c *gin.Context) {
	var in directory.ExportInput
	if err := bindJSON(c, &in); err != nil {
		writeError(c, h.log, err)
		return
	}
	in.Archive = c.Query("archive") == "true"

	res, err := h.svc.ExportClients(c.Request.Context(), identityOf(c), in)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	if in.Archive {
		c.JSON(http.StatusCreated, res)
		return
	}
	disposition := "attachment"
	if c.Query("inline") == "true" {
		disposition = "inline"
	}
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, res.Filename))
	c.Data(http.StatusOK, res.ContentType, res.Data)
}

// Download handles GET /exports/*key.
func (h *ClientHandler) Download(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	rc, err := h.svc.DownloadExport(c.Request.Context(), identityOf(c), key)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	defer rc.Close()

	name := key[strings.LastIndex(key, "/")+1:]
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.DataFromReader(http.StatusOK, -1, csvexport.ContentType, rc, nil)
}

// DeleteExport handles DELETE /exports/*key.
func (h *ClientHandler) DeleteExport(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if err := h.svc.DeleteExport(c.Request.Context(), identityOf(c), key); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// StatusSummary handles GET /clients/status-summary.
func (h *ClientHandler) StatusSummary(c *gin.Context) {
	counts, err := h.svc.StatusSummary(c.Request.Context(), identityOf(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
