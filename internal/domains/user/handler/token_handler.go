package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brashfox-backend/internal/domains/user"
	"brashfox-backend/internal/shared/response"
	"brashfox-backend/pkg/jwt"
	"brashfox-backend/pkg/logger"
)

// TokenHandler implements bearer-token issuance, refresh and verification.
type TokenHandler struct {
	service    user.Service
	repo       user.Repository
	jwtManager *jwt.Manager
}

func NewTokenHandler(service user.Service, repo user.Repository, jwtManager *jwt.Manager) *TokenHandler {
	return &TokenHandler{service: service, repo: repo, jwtManager: jwtManager}
}

// Obtain handles POST /token/ — exchanges credentials for a token pair.
func (h *TokenHandler) Obtain(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.service.Authenticate(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	pair, err := h.issuePair(u)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// Refresh handles POST /token/refresh/ — trades a refresh token for a new
// pair.
func (h *TokenHandler) Refresh(c *gin.Context) {
	var req user.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	claims, err := h.jwtManager.ValidateRefreshToken(req.Refresh)
	if err != nil {
		response.Unauthorized(c, "invalid refresh token")
		return
	}

	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		response.Unauthorized(c, "invalid refresh token")
		return
	}

	// Re-read the user so revoked accounts and stale staff flags do not
	// survive a refresh.
	u, err := h.repo.FindByID(c.Request.Context(), userID)
	if err != nil {
		response.Unauthorized(c, "invalid refresh token")
		return
	}

	pair, err := h.issuePair(u)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// Verify handles POST /token/verify/ — 200 for a valid token of either type.
func (h *TokenHandler) Verify(c *gin.Context) {
	var req user.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := h.jwtManager.ValidateToken(req.Token); err != nil {
		response.Unauthorized(c, "token is invalid or expired")
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

func (h *TokenHandler) issuePair(u *user.User) (*user.TokenResponse, error) {
	access, err := h.jwtManager.GenerateAccessToken(strconv.FormatInt(u.ID, 10), u.Username, u.IsStaff)
	if err != nil {
		return nil, err
	}
	refresh, err := h.jwtManager.GenerateRefreshToken(strconv.FormatInt(u.ID, 10))
	if err != nil {
		return nil, err
	}
	return &user.TokenResponse{Access: access, Refresh: refresh}, nil
}

func (h *TokenHandler) handleError(c *gin.Context, err error) {
	if response.MapCommonError(c, err) {
		return
	}

	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	default:
		logger.Error("token handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
