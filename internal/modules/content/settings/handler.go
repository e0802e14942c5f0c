package settings

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/sjcet-apps/billboard-core/internal/modules/gateway/gateway"
	"github.com/sjcet-apps/billboard-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
	hub *gateway.Hub
}

func NewHandler(svc *Service, hub *gateway.Hub) *Handler {
	return &Handler{svc: svc, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, editorMW gin.HandlerFunc) {
	g := rg.Group("/settings")

	g.GET("", h.get)

	a := g.Group("", editorMW)
	a.PATCH("", h.patch)
	a.PUT("", h.patch)
}

// GET /settings
func (h *Handler) get(c *gin.Context) {
	cfg, err := h.svc.Get()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, cfg)
}

// PATCH /settings — merge write, absent fields preserved
func (h *Handler) patch(c *gin.Context) {
	var partial map[string]json.RawMessage
	if err := c.ShouldBindJSON(&partial); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.svc.Patch(partial)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if h.hub != nil {
		h.hub.BroadcastAll(gateway.EventSettingsUpdated, updated)
	}
	response.OK(c, updated)
}
