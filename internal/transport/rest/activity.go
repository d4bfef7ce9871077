package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

type activityService interface {
	Recent(ctx context.Context, identity domain.Identity, limit int) ([]domain.Activity, error)
}

// ActivityHandler serves the recent activity feed.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

// Recent handles GET /activity?limit=.
func (h *ActivityHandler) Recent(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(c, h.log, domain.NewValidationError("limit", "must be a number"))
			return
		}
		limit = n
	}

	items, err := h.svc.Recent(c.Request.Context(), identityOf(c), limit)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if items == nil {
		items = []domain.Activity{}
	}
	c.JSON(http.StatusOK, items)
}
