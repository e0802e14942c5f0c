package roster

import (
	"github.com/gin-gonic/gin"
	"github.com/sjcet-apps/billboard-core/internal/modules/gateway/gateway"
	"github.com/sjcet-apps/billboard-core/internal/pkg/response"
)

// PositionDTO upserts one staff strength row.
type PositionDTO struct {
	Position string `json:"position" binding:"required"`
	Count    int    `json:"count"`
	Order    *int   `json:"order"`
}

// FacultyDTO creates or merge-updates one faculty entry.
type FacultyDTO struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	PhotoURL    string `json:"photoUrl"`
	Order       *int   `json:"order"`
}

type Handler struct {
	svc *Service
	hub *gateway.Hub
}

func NewHandler(svc *Service, hub *gateway.Hub) *Handler {
	return &Handler{svc: svc, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, editorMW gin.HandlerFunc) {
	g := rg.Group("/roster")

	g.GET("/positions", h.listPositions)
	g.GET("/faculty", h.listFaculty)

	a := g.Group("", editorMW)
	a.POST("/positions", h.upsertPosition)
	a.DELETE("/positions/:id", h.deletePosition)
	a.POST("/faculty", h.createFaculty)
	a.PUT("/faculty/:id", h.updateFaculty)
	a.DELETE("/faculty/:id", h.deleteFaculty)
}

// GET /roster/positions
func (h *Handler) listPositions(c *gin.Context) {
	items, err := h.svc.Positions()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// GET /roster/faculty
func (h *Handler) listFaculty(c *gin.Context) {
	items, err := h.svc.Faculty()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// POST /roster/positions — upsert by position label
func (h *Handler) upsertPosition(c *gin.Context) {
	var dto PositionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.UpsertPosition(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.notify()
	response.OK(c, p)
}

// DELETE /roster/positions/:id
func (h *Handler) deletePosition(c *gin.Context) {
	deleted, err := h.svc.DeletePosition(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c)
		return
	}
	h.notify()
	response.NoContent(c)
}

// POST /roster/faculty
func (h *Handler) createFaculty(c *gin.Context) {
	var dto FacultyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Name == "" {
		response.BadRequest(c, "name is required")
		return
	}
	f, err := h.svc.CreateFaculty(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.notify()
	response.Created(c, f)
}

// PUT /roster/faculty/:id
func (h *Handler) updateFaculty(c *gin.Context) {
	var dto FacultyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	f, err := h.svc.UpdateFaculty(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if f == nil {
		response.NotFound(c)
		return
	}
	h.notify()
	response.OK(c, f)
}

// DELETE /roster/faculty/:id
func (h *Handler) deleteFaculty(c *gin.Context) {
	deleted, err := h.svc.DeleteFaculty(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c)
		return
	}
	h.notify()
	response.NoContent(c)
}

func (h *Handler) notify() {
	if h.hub != nil {
		h.hub.BroadcastAll(gateway.EventRosterUpdated, nil)
	}
}
