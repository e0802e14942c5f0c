package images

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sjcet-apps/billboard-core/internal/middleware"
	"github.com/sjcet-apps/billboard-core/internal/models"
	"github.com/sjcet-apps/billboard-core/internal/modules/content/settings"
	"github.com/sjcet-apps/billboard-core/internal/modules/gateway/gateway"
	"github.com/sjcet-apps/billboard-core/internal/pkg/pagination"
	"github.com/sjcet-apps/billboard-core/internal/pkg/response"
	"gorm.io/gorm"
)

// uploads larger than this are rejected before touching object storage
const maxUploadBytes = 10 << 20

type Handler struct {
	svc         *Service
	settingsSvc *settings.Service
	hub         *gateway.Hub
	db          *gorm.DB
}

func NewHandler(svc *Service, settingsSvc *settings.Service, hub *gateway.Hub, db *gorm.DB) *Handler {
	return &Handler{svc: svc, settingsSvc: settingsSvc, hub: hub, db: db}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, editorMW gin.HandlerFunc) {
	g := rg.Group("/images")

	g.GET("", h.list)
	g.GET("/all", h.listAll)

	a := g.Group("", editorMW)
	a.POST("", h.add)
	a.DELETE("/:id", h.delete)
	a.POST("/background", h.uploadBackground)
}

// GET /images?page=&size=
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	items, pag, err := h.svc.List(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}

// GET /images/all — full collection for carousel snapshots
func (h *Handler) listAll(c *gin.Context) {
	items, err := h.svc.ListAll()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// POST /images — multipart upload into the shared collection
func (h *Handler) add(c *gin.Context) {
	data, contentType, ok := readUpload(c)
	if !ok {
		return
	}

	uid := middleware.CurrentUserID(c)
	addedBy := h.displayNameOf(uid)

	img, err := h.svc.Add(c.Request.Context(), data, contentType, addedBy, uid)
	if err != nil {
		if errors.Is(err, errStorageNotConfigured) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	h.notify()
	response.Created(c, img)
}

// DELETE /images/:id
func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
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

// POST /images/background — upload and point the settings singleton at it
func (h *Handler) uploadBackground(c *gin.Context) {
	data, contentType, ok := readUpload(c)
	if !ok {
		return
	}

	url, err := h.svc.UploadBackground(c.Request.Context(), data, contentType)
	if err != nil {
		if errors.Is(err, errStorageNotConfigured) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}

	updated, err := h.settingsSvc.SetBackgroundImage(url)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if h.hub != nil {
		h.hub.BroadcastAll(gateway.EventSettingsUpdated, updated)
	}
	response.OK(c, gin.H{"backgroundImageUrl": url})
}

func (h *Handler) notify() {
	if h.hub != nil {
		h.hub.BroadcastAll(gateway.EventImagesUpdated, nil)
	}
}

func (h *Handler) displayNameOf(uid string) string {
	if uid == "" || h.db == nil {
		return ""
	}
	var u models.UserModel
	if err := h.db.Select("name", "username").First(&u, "id = ?", uid).Error; err != nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

func readUpload(c *gin.Context) ([]byte, string, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		file, err = c.FormFile("image")
	}
	if err != nil {
		response.BadRequest(c, "missing file field")
		return nil, "", false
	}
	if file.Size > maxUploadBytes {
		response.UnprocessableEntity(c, "file too large")
		return nil, "", false
	}

	f, err := file.Open()
	if err != nil {
		response.InternalError(c, err)
		return nil, "", false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		response.InternalError(c, err)
		return nil, "", false
	}
	if len(data) > maxUploadBytes {
		response.UnprocessableEntity(c, "file too large")
		return nil, "", false
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return data, contentType, true
}
