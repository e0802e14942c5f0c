package images

import (
	"context"
	"errors"
	"time"

	"github.com/sjcet-apps/billboard-core/internal/models"
	"github.com/sjcet-apps/billboard-core/internal/pkg/pagination"
	"github.com/sjcet-apps/billboard-core/internal/pkg/response"
	"gorm.io/gorm"
)

var errStorageNotConfigured = errors.New("object storage is not configured")

type Service struct {
	db       *gorm.DB
	uploader *Uploader
}

func NewService(db *gorm.DB, uploader *Uploader) *Service {
	return &Service{db: db, uploader: uploader}
}

// List returns the shared image collection, newest first.
func (s *Service) List(q pagination.Query) ([]models.ImageModel, response.Pagination, error) {
	tx := s.db.Model(&models.ImageModel{}).Order("uploaded_at DESC")
	var items []models.ImageModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

// ListAll returns every image in upload order, for carousel snapshots.
func (s *Service) ListAll() ([]models.ImageModel, error) {
	var items []models.ImageModel
	err := s.db.Order("uploaded_at ASC").Find(&items).Error
	return items, err
}

// Add uploads an asset and records it in the shared collection.
func (s *Service) Add(ctx context.Context, data []byte, contentType, addedBy, addedByUID string) (*models.ImageModel, error) {
	if s.uploader == nil || !s.uploader.Configured() {
		return nil, errStorageNotConfigured
	}

	now := time.Now()
	key := CarouselKey(addedByUID, now)
	url, err := s.uploader.Put(ctx, key, data, contentType)
	if err != nil {
		return nil, err
	}

	img := models.ImageModel{
		ImageURL:   url,
		ObjectKey:  key,
		AddedBy:    addedBy,
		AddedByUID: addedByUID,
		UploadedAt: now,
	}
	if err := s.db.Create(&img).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

// Delete removes the DB record and the stored object.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	var img models.ImageModel
	if err := s.db.First(&img, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.db.Delete(&img).Error; err != nil {
		return false, err
	}
	if s.uploader != nil && s.uploader.Configured() && img.ObjectKey != "" {
		_ = s.uploader.Delete(ctx, img.ObjectKey)
	}
	return true, nil
}

// UploadBackground stores a display background and returns its URL. The
// settings singleton is patched by the caller.
func (s *Service) UploadBackground(ctx context.Context, data []byte, contentType string) (string, error) {
	if s.uploader == nil || !s.uploader.Configured() {
		return "", errStorageNotConfigured
	}
	return s.uploader.Put(ctx, BackgroundKey(time.Now()), data, contentType)
}
