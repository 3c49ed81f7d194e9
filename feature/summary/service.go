package summary

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Service regenerates and serves the summary image.
type Service struct {
	renderer *Renderer
	store    Store
	logger   *zap.Logger
}

// NewService creates a new summary service.
func NewService(store Store, logger *zap.Logger) (*Service, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	return &Service{renderer: renderer, store: store, logger: logger}, nil
}

// Generate renders s and replaces the stored image.
// Failures are returned as *GenerationError.
func (s *Service) Generate(ctx context.Context, sum Summary) error {
	start := time.Now()

	data, err := s.renderer.Render(sum)
	if err != nil {
		return &GenerationError{Stage: "render", Err: err}
	}
	if err := s.store.Put(ctx, data); err != nil {
		return &GenerationError{Stage: "store", Err: err}
	}

	s.logger.Info("Summary image regenerated",
		zap.Int64("total_countries", sum.TotalCount),
		zap.Int("ranked", len(sum.Top)),
		zap.Int("bytes", len(data)),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// Image returns the stored image bytes or ErrNotFound.
func (s *Service) Image(ctx context.Context) ([]byte, error) {
	return s.store.Get(ctx)
}
