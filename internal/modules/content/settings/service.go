package settings

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/sjcet-apps/billboard-core/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service manages the persisted display settings singleton, with an
// in-memory cache in front of the options table.
type Service struct {
	db     *gorm.DB
	mu     sync.RWMutex
	cached *DisplaySettings
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Get returns the current settings, loading from DB if not cached.
func (s *Service) Get() (*DisplaySettings, error) {
	s.mu.RLock()
	if s.cached != nil {
		defer s.mu.RUnlock()
		return s.cached, nil
	}
	s.mu.RUnlock()

	return s.load()
}

func (s *Service) load() (*DisplaySettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var opt models.OptionModel
	err := s.db.Where("name = ?", settingsKey).First(&opt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := Defaults()
		s.cached = &defaults
		_ = s.persist(&defaults)
		return s.cached, nil
	}
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := json.Unmarshal([]byte(opt.Value), &cfg); err != nil {
		return nil, err
	}
	s.cached = &cfg
	return s.cached, nil
}

// Patch merge-writes the partial update into the singleton: fields absent
// from the payload keep their stored values. Fields are never deleted, only
// set (possibly to empty). The stored JSON document is the merge base, so
// keys the Go struct does not know about survive the round trip.
func (s *Service) Patch(partial map[string]json.RawMessage) (*DisplaySettings, error) {
	stored, err := s.loadRaw()
	if err != nil {
		return nil, err
	}

	mergedJSON, err := MergeDocument(stored, partial)
	if err != nil {
		return nil, err
	}

	updated := Defaults()
	if err := json.Unmarshal(mergedJSON, &updated); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = &updated
	s.mu.Unlock()

	return &updated, s.persistRaw(mergedJSON)
}

// MergeDocument overlays partial onto a stored settings document. Unknown
// keys pass through untouched.
func MergeDocument(stored []byte, partial map[string]json.RawMessage) ([]byte, error) {
	merged := map[string]interface{}{}
	if len(stored) > 0 {
		if err := json.Unmarshal(stored, &merged); err != nil {
			return nil, err
		}
	}

	for k, v := range partial {
		var incoming interface{}
		if err := json.Unmarshal(v, &incoming); err != nil {
			return nil, err
		}
		if existing, ok := merged[k]; ok {
			merged[k] = mergeJSON(existing, incoming)
			continue
		}
		merged[k] = incoming
	}

	return json.Marshal(merged)
}

// loadRaw returns the stored settings document, seeding defaults when the
// row does not exist yet.
func (s *Service) loadRaw() ([]byte, error) {
	var opt models.OptionModel
	err := s.db.Where("name = ?", settingsKey).First(&opt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := Defaults()
		return json.Marshal(defaults)
	}
	if err != nil {
		return nil, err
	}
	return []byte(opt.Value), nil
}

// SetBackgroundImage stores the uploaded background URL.
func (s *Service) SetBackgroundImage(url string) (*DisplaySettings, error) {
	raw, err := json.Marshal(url)
	if err != nil {
		return nil, err
	}
	return s.Patch(map[string]json.RawMessage{"backgroundImageUrl": raw})
}

func (s *Service) persist(cfg *DisplaySettings) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.persistRaw(data)
}

func (s *Service) persistRaw(data []byte) error {
	opt := models.OptionModel{Name: settingsKey, Value: string(data)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&opt).Error
}

// Invalidate clears the cache, forcing a DB reload on next Get.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
}
