package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"towline/utils"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceTokenTTL = 24 * time.Hour

// tokenVerifier is the slice of *auth.Client the auth handler needs.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthHandler exchanges Firebase ID tokens for service JWTs. Clients sign in
// against Firebase directly; the service only ever sees the resulting ID
// token.
type AuthHandler struct {
	Verifier tokenVerifier
}

// TokenRequest is the body of POST /api/auth/token.
type TokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
	Role    string `json:"role" binding:"required,oneof=client provider worker"`
}

// TokenHandler handles POST /api/auth/token.
func (h *AuthHandler) TokenHandler(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid token request", err.Error())
		return
	}

	decoded, err := h.Verifier.VerifyIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		utils.GetLogger().Warn("rejected ID token", zap.Error(err))
		utils.JSONError(c, http.StatusUnauthorized, "invalid ID token", "")
		return
	}

	token, err := utils.GenerateToken(decoded.UID, req.Role, serviceTokenTTL)
	if err != nil {
		utils.GetLogger().Error("failed to sign service token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "could not issue token", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(serviceTokenTTL.Seconds()),
	})
}

// MeHandler handles GET /api/auth/me: echoes the authenticated subject.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	id, err := utils.ExtractIDFromToken(tokenString)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "role": c.GetString("role")})
}
