package blocks

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sjcet-apps/billboard-core/internal/middleware"
	"github.com/sjcet-apps/billboard-core/internal/modules/gateway/gateway"
	"github.com/sjcet-apps/billboard-core/internal/pkg/redis"
	"github.com/sjcet-apps/billboard-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
	hub *gateway.Hub
	rc  *redis.Client
}

func NewHandler(svc *Service, hub *gateway.Hub, rc *redis.Client) *Handler {
	return &Handler{svc: svc, hub: hub, rc: rc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, editorMW gin.HandlerFunc) {
	g := rg.Group("/blocks")

	g.GET("", h.list)
	g.GET("/:id", h.get)

	a := g.Group("", editorMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.PATCH("/:id", h.update)
	a.DELETE("/:id", h.delete)
	a.POST("/reorder", h.reorder)
	a.POST("/repair", h.repair)
}

// GET /blocks
func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// GET /blocks/:id
func (h *Handler) get(c *gin.Context) {
	b, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if b == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, b)
}

// POST /blocks
func (h *Handler) create(c *gin.Context) {
	var dto CreateBlockDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	b, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, errUnknownType) {
			response.BadRequest(c, err.Error())
			return
		}
		if isValidationErr(err) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	h.notifyChanged()
	response.Created(c, b)
}

// PUT /blocks/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateBlockDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	b, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, errTypeImmutable) || isValidationErr(err) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if b == nil {
		response.NotFound(c)
		return
	}
	h.notifyChanged()
	response.OK(c, b)
}

// DELETE /blocks/:id
func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c)
		return
	}
	h.notifyChanged()
	response.NoContent(c)
}

// POST /blocks/reorder
func (h *Handler) reorder(c *gin.Context) {
	var dto ReorderDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	items, err := h.svc.Reorder(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.notifyChanged()
	response.OK(c, items)
}

// POST /blocks/repair
func (h *Handler) repair(c *gin.Context) {
	n, err := h.svc.Repair()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if n > 0 {
		h.notifyChanged()
	}
	response.OK(c, gin.H{"repaired": n})
}

func isValidationErr(err error) bool {
	return errors.Is(err, errWidthRange) ||
		errors.Is(err, errHeightRange) ||
		errors.Is(err, errInvalidTheme)
}

// notifyChanged broadcasts the full ordered block list so connected
// displays can repaint without a follow-up fetch.
func (h *Handler) notifyChanged() {
	if h.hub != nil {
		payload := gin.H{"source": "editor"}
		if items, err := h.svc.List(); err == nil {
			payload["blocks"] = items
		}
		h.hub.BroadcastAll(gateway.EventBlockUpdated, payload)
	}
	if h.rc != nil {
		go func() {
			_, _ = middleware.PurgeHTTPCache(context.Background(), h.rc.Raw())
		}()
	}
}
