package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
	"github.com/heartmarshall/agencydesk-backend/internal/service/auth"
)

type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Logout(ctx context.Context, identity domain.Identity)
}

type profileService interface {
	Profile(ctx context.Context, identity domain.Identity) (domain.Account, error)
}

// AuthHandler serves sign-up, sign-in, sign-out and the profile endpoint.
type AuthHandler struct {
	svc     authService
	profile profileService
	log     *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, profile profileService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, profile: profile, log: logger.With("handler", "auth")}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var in auth.RegisterInput
	if err := bindJSON(c, &in); err != nil {
		writeError(c, h.log, err)
		return
	}
	res, err := h.svc.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var in auth.LoginInput
	if err := bindJSON(c, &in); err != nil {
		writeError(c, h.log, err)
		return
	}
	res, err := h.svc.Login(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Logout handles POST /auth/logout. Tokens are stateless; the client drops
// its copy and is sent back to the sign-in page.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.svc.Logout(c.Request.Context(), identityOf(c))
	c.Status(http.StatusNoContent)
}

// Me handles GET /me.
func (h *AuthHandler) Me(c *gin.Context) {
	account, err := h.profile.Profile(c.Request.Context(), identityOf(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, account)
}
