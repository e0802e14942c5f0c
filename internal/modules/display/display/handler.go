package display

import (
	"github.com/gin-gonic/gin"
	"github.com/sjcet-apps/billboard-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the display surface. Public: walls poll the frame
// on boot and then follow gateway pushes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/display")
	g.GET("/frame", h.frame)
}

// GET /display/frame
func (h *Handler) frame(c *gin.Context) {
	frame, err := h.svc.Frame(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, frame)
}
