package users

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sjcet-apps/billboard-core/internal/middleware"
	"github.com/sjcet-apps/billboard-core/internal/models"
	"github.com/sjcet-apps/billboard-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts account management. Everything here is superadmin
// only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/users", authMW, requireSuperAdmin())
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func requireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if middleware.CurrentRole(c) != models.RoleSuperAdmin {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GET /users
func (h *Handler) list(c *gin.Context) {
	users, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, users)
}

// GET /users/:id
func (h *Handler) get(c *gin.Context) {
	u, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, u)
}

// POST /users
func (h *Handler) create(c *gin.Context) {
	var dto CreateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Create(&dto)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, u)
}

// PATCH /users/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, u)
}

// DELETE /users/:id
func (h *Handler) remove(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		h.writeError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errUserNotFound):
		response.NotFound(c)
	case errors.Is(err, errUnknownRole), errors.Is(err, errCannotDeleteSelf):
		response.BadRequest(c, err.Error())
	case errors.Is(err, errUsernameTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, errLastSuperAdmin):
		response.Conflict(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
