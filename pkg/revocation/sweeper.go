package revocation

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Pruner is implemented by stores that need expired entries removed
// explicitly.
type Pruner interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// Sweeper periodically prunes expired revocations.
type Sweeper struct {
	store    Pruner
	interval time.Duration
	log      zerolog.Logger

	mu       sync.Mutex
	started  bool
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func NewSweeper(store Pruner, interval time.Duration, log zerolog.Logger) *Sweeper {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Sweeper{
		store:    store,
		interval: interval,
		log:      log.With().Str("component", "RevocationSweeper").Logger(),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the sweep loop. It returns immediately.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	s.log.Info().Dur("interval", s.interval).Msg("Starting revocation sweeper")
	go s.run(ctx)
}

// Stop halts the loop and waits for it to exit.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})

	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if started {
		<-s.done
	}
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	// Run immediately on start
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-ctx.Done():
			s.log.Info().Msg("Sweeper stopped")
			return
		case <-s.stopChan:
			s.log.Info().Msg("Sweeper stopped")
			return
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	n, err := s.store.DeleteExpired(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Error pruning expired revocations")
		return
	}
	if n > 0 {
		s.log.Debug().Int64("deleted", n).Msg("Pruned expired revocations")
	}
}
