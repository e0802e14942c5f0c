package display

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sjcet-apps/billboard-core/internal/modules/content/blocks"
	"github.com/sjcet-apps/billboard-core/internal/modules/content/images"
	"github.com/sjcet-apps/billboard-core/internal/modules/content/roster"
	"github.com/sjcet-apps/billboard-core/internal/modules/content/settings"
	"github.com/sjcet-apps/billboard-core/internal/modules/feeds/feeds"
	"github.com/sjcet-apps/billboard-core/internal/modules/gateway/gateway"
	"github.com/sjcet-apps/billboard-core/internal/pkg/rotation"
)

const carouselFadeMS = 600

// Frame is one full snapshot of the wall: every block rendered, plus the
// global look-and-feel. Display clients draw it directly.
type Frame struct {
	Blocks      []BlockView               `json:"blocks"`
	Settings    *settings.DisplaySettings `json:"settings"`
	GeneratedAt time.Time                 `json:"generatedAt"`
}

// Service composes frames and keeps one rotation timer alive per cycling
// block. Rotation steps are pushed to display clients over the gateway.
type Service struct {
	blocks   *blocks.Service
	settings *settings.Service
	roster   *roster.Service
	images   *images.Service
	feeds    *feeds.Service
	hub      *gateway.Hub
	logger   *zap.Logger

	baseCtx context.Context
	cancel  context.CancelFunc

	mu       sync.Mutex
	rotators map[string]*blockRotator
}

type blockRotator struct {
	rotator  *rotation.Rotator
	cancel   context.CancelFunc
	interval time.Duration
}

func NewService(
	blockSvc *blocks.Service,
	settingsSvc *settings.Service,
	rosterSvc *roster.Service,
	imageSvc *images.Service,
	feedSvc *feeds.Service,
	hub *gateway.Hub,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		blocks:   blockSvc,
		settings: settingsSvc,
		roster:   rosterSvc,
		images:   imageSvc,
		feeds:    feedSvc,
		hub:      hub,
		logger:   logger,
		baseCtx:  ctx,
		cancel:   cancel,
		rotators: make(map[string]*blockRotator),
	}
}

// Close stops every running rotation timer.
func (s *Service) Close() {
	s.cancel()
	s.mu.Lock()
	s.rotators = make(map[string]*blockRotator)
	s.mu.Unlock()
}

// Frame renders the current wall. Feed failures degrade the affected
// blocks; they never fail the frame.
func (s *Service) Frame(ctx context.Context) (*Frame, error) {
	items, err := s.blocks.List()
	if err != nil {
		return nil, err
	}
	cfg, err := s.settings.Get()
	if err != nil {
		return nil, err
	}

	aux := s.collectAux(ctx)
	views := make([]BlockView, 0, len(items))
	for i := range items {
		views = append(views, Render(&items[i], aux))
	}
	s.syncRotators(views)

	return &Frame{
		Blocks:      views,
		Settings:    cfg,
		GeneratedAt: time.Now(),
	}, nil
}

// Publish renders a frame and pushes it to every connected display.
func (s *Service) Publish(ctx context.Context) error {
	frame, err := s.Frame(ctx)
	if err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.BroadcastDisplay(gateway.EventDisplayFrame, frame)
	}
	return nil
}

func (s *Service) collectAux(ctx context.Context) *AuxData {
	aux := &AuxData{}

	if s.roster != nil {
		positions, err := s.roster.Positions()
		if err != nil {
			s.logger.Warn("frame: roster load failed", zap.Error(err))
		} else {
			aux.Positions = positions
		}
	}
	if s.images != nil {
		imgs, err := s.images.ListAll()
		if err != nil {
			s.logger.Warn("frame: images load failed", zap.Error(err))
		} else {
			aux.Images = imgs
		}
	}
	if s.feeds != nil {
		aux.Weather = s.feeds.Weather(ctx)
		aux.News = s.feeds.News(ctx)
		aux.Market = s.feeds.Market(ctx)
	}
	return aux
}

// rotationPlan reports whether a rendered block cycles, and on what clock.
func rotationPlan(v *BlockView) (count int, interval, transition time.Duration, ok bool) {
	switch {
	case v.List != nil && v.List.Paginated:
		return len(v.List.Pages),
			time.Duration(v.List.FlipMS) * time.Millisecond,
			time.Duration(v.List.TransitionMS) * time.Millisecond,
			true
	case v.Carousel != nil && len(v.Carousel.Images) > 1:
		return len(v.Carousel.Images),
			time.Duration(v.Carousel.TransitionMS) * time.Millisecond,
			carouselFadeMS * time.Millisecond,
			true
	case v.News != nil:
		count := v.News.IndexCap
		if v.News.Market != nil {
			count++
		}
		if v.News.Weather != nil {
			count++
		}
		if count < 2 {
			return 0, 0, 0, false
		}
		return count,
			time.Duration(v.News.RotateMS) * time.Millisecond,
			time.Duration(v.News.FadeMS) * time.Millisecond,
			true
	}
	return 0, 0, 0, false
}

// syncRotators reconciles running timers against the rendered frame:
// new cycling blocks get a rotator, changed ones are resized or restarted,
// removed ones are stopped.
func (s *Service) syncRotators(views []BlockView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(views))
	for i := range views {
		v := &views[i]
		count, interval, transition, ok := rotationPlan(v)
		if !ok {
			continue
		}
		seen[v.ID] = true

		if existing, found := s.rotators[v.ID]; found {
			if existing.interval == interval {
				existing.rotator.SetCount(count)
				continue
			}
			existing.cancel()
			delete(s.rotators, v.ID)
		}

		blockID := v.ID
		rot := rotation.New(interval, transition, count, func(step rotation.Step) {
			s.emitRotate(blockID, step)
		})
		ctx, cancel := context.WithCancel(s.baseCtx)
		s.rotators[blockID] = &blockRotator{rotator: rot, cancel: cancel, interval: interval}
		go rot.Run(ctx)
	}

	for id, br := range s.rotators {
		if !seen[id] {
			br.cancel()
			delete(s.rotators, id)
		}
	}
}

func (s *Service) emitRotate(blockID string, step rotation.Step) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastDisplay(gateway.EventDisplayRotate, map[string]interface{}{
		"blockId": blockID,
		"from":    step.From,
		"to":      step.To,
		"state":   step.State,
	})
}

// ActiveRotators reports how many blocks currently have a live timer.
func (s *Service) ActiveRotators() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rotators)
}
