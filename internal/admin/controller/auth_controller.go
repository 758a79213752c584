package controller

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"karsamrit/internal/admin/session"
	"karsamrit/internal/dto"
	apperrors "karsamrit/internal/errors"
)

// TokenHeader carries the admin bearer token on every guarded request.
const TokenHeader = "X-Admin-Token"

type SessionManager interface {
	Login(username, password string) (session.Session, error)
	Validate(token string) (session.Session, error)
	Logout(token string)
	Describe(token string) (session.Session, bool)
	MaxSessions() int
}

type AuthController struct {
	sessions SessionManager
	logger   *zap.Logger
}

func NewAuthController(sessions SessionManager, logger *zap.Logger) *AuthController {
	return &AuthController{
		sessions: sessions,
		logger:   logger,
	}
}

// Login handles POST /api/admin/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	s, err := c.sessions.Login(req.Username, req.Password)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeError(w, http.StatusBadRequest, ve.Message)
			return
		}
		if ae, ok := apperrors.IsAuthError(err); ok {
			c.logger.Warn("rejected admin login", zap.String("username", req.Username))
			c.writeError(w, http.StatusUnauthorized, ae.Message)
			return
		}
		if ce, ok := apperrors.IsCapacityError(err); ok {
			c.logger.Warn("admin session cap reached")
			c.writeError(w, http.StatusTooManyRequests, ce.Message)
			return
		}
		c.logger.Error("login failed", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.logger.Info("admin logged in", zap.String("username", s.Username))

	c.writeJSON(w, http.StatusOK, dto.LoginResponse{
		Success:     true,
		Token:       s.Token,
		MaxSessions: c.sessions.MaxSessions(),
	})
}

// Logout handles POST /api/admin/logout. The token may arrive in the
// header or the body; the call always reports success.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(TokenHeader)
	if token == "" {
		var req dto.LogoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			token = req.Token
		}
	}

	c.sessions.Logout(token)

	c.writeJSON(w, http.StatusOK, dto.LogoutResponse{Success: true})
}

// SessionInfo handles GET /api/admin/session.
func (c *AuthController) SessionInfo(w http.ResponseWriter, r *http.Request) {
	s, active := c.sessions.Describe(r.Header.Get(TokenHeader))
	if !active {
		c.writeJSON(w, http.StatusUnauthorized, dto.SessionResponse{Active: false})
		return
	}

	createdAt := s.CreatedAt
	c.writeJSON(w, http.StatusOK, dto.SessionResponse{
		Active:      true,
		Username:    s.Username,
		CreatedAt:   &createdAt,
		MaxSessions: c.sessions.MaxSessions(),
	})
}

func (c *AuthController) writeError(w http.ResponseWriter, status int, message string) {
	c.writeJSON(w, status, dto.ErrorResponse{Error: message})
}

func (c *AuthController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
