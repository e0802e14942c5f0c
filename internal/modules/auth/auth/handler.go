package auth

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sjcet-apps/billboard-core/internal/middleware"
	"github.com/sjcet-apps/billboard-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/auth")

	a.POST("/login", h.login)
	a.POST("/register", h.register)
	a.GET("/me", authMW, h.me)
	a.GET("/sessions", authMW, h.sessions)
	a.POST("/sign-out", authMW, h.signOut)
	a.POST("/revoke-session", authMW, h.revokeSession)
	a.POST("/revoke-other-sessions", authMW, h.revokeOtherSessions)
}

// POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.svc.Login(dto.Username, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, errUserNotFound) || errors.Is(err, errWrongPassword) {
			response.ForbiddenMsg(c, "incorrect username or password")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, loginResponse{Token: token, User: user})
}

// POST /auth/register
func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.Register(&dto)
	if err != nil {
		if errors.Is(err, errOwnerAlreadyRegistered) {
			response.BadRequest(c, "an account already exists, ask an administrator")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, user)
}

// GET /auth/me
func (h *Handler) me(c *gin.Context) {
	user, err := h.svc.Me(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if user == nil {
		response.Unauthorized(c)
		return
	}
	response.OK(c, user)
}

// GET /auth/sessions
func (h *Handler) sessions(c *gin.Context) {
	sessions, err := h.svc.Sessions(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}

	current := middleware.CurrentSessionID(c)
	out := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, sessionResponse{
			ID:        s.ID,
			IP:        s.IP,
			UA:        s.UA,
			Current:   s.ID == current,
			Created:   s.CreatedAt,
			ExpiresAt: s.ExpiresAt,
			RevokedAt: s.RevokedAt,
		})
	}
	response.OK(c, out)
}

// POST /auth/sign-out
func (h *Handler) signOut(c *gin.Context) {
	sid := middleware.CurrentSessionID(c)
	if sid != "" {
		if err := h.svc.RevokeSession(middleware.CurrentUserID(c), sid); err != nil {
			response.InternalError(c, err)
			return
		}
	}
	response.OK(c, gin.H{"success": true})
}

// POST /auth/revoke-session
func (h *Handler) revokeSession(c *gin.Context) {
	var dto struct {
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.RevokeSession(middleware.CurrentUserID(c), dto.SessionID); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"success": true})
}

// POST /auth/revoke-other-sessions
func (h *Handler) revokeOtherSessions(c *gin.Context) {
	uid := middleware.CurrentUserID(c)
	if err := h.svc.RevokeOtherSessions(uid, middleware.CurrentSessionID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"success": true})
}
