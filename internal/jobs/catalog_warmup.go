package jobs

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"hospsupply/internal/services"
)

// Scheduler runs the background jobs: today only the periodic catalog cache
// warmup.
type Scheduler struct {
	scheduler gocron.Scheduler
	catalog   services.CatalogService
	logger    *zap.Logger
}

func NewScheduler(catalog services.CatalogService, logger *zap.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &Scheduler{scheduler: s, catalog: catalog, logger: logger}, nil
}

// Start registers the jobs and begins running them. The warmup also fires
// immediately so the cache is hot right after boot.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(5*time.Minute),
		gocron.NewTask(s.warmCatalog),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}
	s.scheduler.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Scheduler) warmCatalog() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.catalog.WarmCache(ctx); err != nil {
		s.logger.Warn("catalog cache warmup failed", zap.Error(err))
	}
}
