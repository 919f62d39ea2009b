package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/graph"
	"tableflip.dev/mood/pkg/logging"
	"tableflip.dev/mood/pkg/store"
)

// session is the loaded journal behind one command run.
type session struct {
	App   *app.Service
	close func() error
}

func (s *session) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// newSession opens the configured store. Tests replace it.
var newSession = openSession

func openSession(ctx context.Context) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Sink, err)
	}
	if err := st.Load(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}
	log.Debug("store loaded", zap.String("sink", cfg.Sink), zap.Int("months", len(st.Months())))

	return &session{
		App: &app.Service{
			Store:   st,
			Log:     log,
			Palette: graph.Palette{Positive: cfg.GraphPositive, Negative: cfg.GraphNegative},
		},
		close: func() error {
			_ = log.Sync()
			return st.Close()
		},
	}, nil
}

// withSession runs fn against a freshly opened journal.
func withSession(ctx context.Context, fn func(*app.Service) error) error {
	s, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	return fn(s.App)
}
