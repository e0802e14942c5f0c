package feeds

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

// RegisterRoutes mounts the feed proxies. All are public: display walls
// are unauthenticated clients.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/feeds")
	g.GET("/weather", h.weather)
	g.GET("/news", h.news)
	g.GET("/market", h.market)
	g.GET("/fonts", h.fonts)
}

// GET /feeds/weather
func (h *Handler) weather(c *gin.Context) {
	response.OK(c, h.svc.Weather(c.Request.Context()))
}

// GET /feeds/news
func (h *Handler) news(c *gin.Context) {
	response.OK(c, h.svc.News(c.Request.Context()))
}

// GET /feeds/market
func (h *Handler) market(c *gin.Context) {
	response.OK(c, h.svc.Market(c.Request.Context()))
}

// GET /feeds/fonts
func (h *Handler) fonts(c *gin.Context) {
	response.OK(c, h.svc.Fonts(c.Request.Context()))
}
