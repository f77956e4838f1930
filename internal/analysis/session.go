package analysis

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// Analyzer runs one analysis. *Service implements it.
type Analyzer interface {
	Analyze(ctx context.Context, raw string) (Report, error)
}

// Session runs analyses in the background for an interactive front end.
// A new submission cancels the previous one and only starts once it has
// stopped, so at most one fetch is in flight. Only the latest submission
// may update the display state.
type Session struct {
	parent   context.Context
	analyzer Analyzer
	onChange func(DisplayState)
	logger   *zap.Logger

	mu     sync.Mutex
	state  DisplayState
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
	closed bool
}

// NewSession creates a Session. onChange is called, in submission order,
// every time the display state changes; it may be nil.
func NewSession(ctx context.Context, analyzer Analyzer, onChange func(DisplayState), logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		parent:   ctx,
		analyzer: analyzer,
		onChange: onChange,
		logger:   logger,
	}
}

// Submit starts an analysis of raw and returns immediately.
func (s *Session) Submit(raw string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	prevCancel, prevDone := s.cancel, s.done

	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(s.parent)
	done := make(chan struct{})
	s.cancel, s.done = cancel, done
	s.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		if prevCancel != nil {
			prevCancel()
			<-prevDone
		}
		s.run(ctx, gen, raw)
	}()
}

func (s *Session) run(ctx context.Context, gen uint64, raw string) {
	if ctx.Err() != nil {
		return
	}

	report, err := s.analyzer.Analyze(ctx, raw)

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		s.logger.Debug("discard superseded analysis", zap.Uint64("generation", gen))
		return
	}
	if err != nil && errors.Is(err, context.Canceled) && ctx.Err() != nil {
		s.mu.Unlock()
		return
	}

	var next DisplayState
	if err != nil {
		next = s.state.Next(nil, err)
	} else {
		next = s.state.Next(&report, nil)
	}
	s.state = next
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(next)
	}
}

// State returns the current display state.
func (s *Session) State() DisplayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Wait blocks until the latest submission has finished.
func (s *Session) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Close cancels any in-flight analysis and waits for it to stop.
// Later submissions are ignored.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}
