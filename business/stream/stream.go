package stream

import (
	"context"
	"fmt"
	"sync"
	"time"

	"africahub/pkg/logger"
)

// Stream lifecycle states.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// CycleFunc runs one periodic recommendation pass. updateNumber starts at 1
// for the first tick.
type CycleFunc func(ctx context.Context, updateNumber int) error

// Stream owns the periodic re-publication loop for one user. Ticks execute
// strictly sequentially: the loop reads the ticker channel in a single
// goroutine, so a slow cycle can never overlap the next one.
type Stream struct {
	userID     string
	interval   time.Duration
	maxAge     time.Duration
	maxUpdates int
	run        CycleFunc
	now        func() time.Time

	mu        sync.Mutex
	closeOnce sync.Once
	state     State
	started   time.Time
	updates   int
	cancel    context.CancelFunc
	done      chan struct{}
	onStop    func()
}

func New(userID string, interval, maxAge time.Duration, maxUpdates int, run CycleFunc) *Stream {
	return &Stream{
		userID:     userID,
		interval:   interval,
		maxAge:     maxAge,
		maxUpdates: maxUpdates,
		run:        run,
		now:        time.Now,
		done:       make(chan struct{}),
	}
}

// Start moves the stream from Idle to Running and launches the tick loop.
// The loop detaches from the caller's context: it is bounded by the tick
// count and the absolute age instead, and by Cancel.
func (s *Stream) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return fmt.Errorf("stream for user %s is %s, not idle", s.userID, s.state)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.state = StateRunning
	s.started = s.now()

	go s.loop(ctx)

	return nil
}

// Cancel stops a running stream and waits for the loop to exit. Safe to
// call from any state and more than once.
func (s *Stream) Cancel() {
	s.mu.Lock()
	if s.state == StateIdle {
		// never started, nothing to wait for
		s.state = StateStopped
		onStop := s.onStop
		s.mu.Unlock()
		if onStop != nil {
			onStop()
		}
		s.closeOnce.Do(func() { close(s.done) })
		return
	}
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	<-s.done
}

func (s *Stream) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Updates returns how many periodic ticks have executed.
func (s *Stream) Updates() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updates
}

// Done is closed once the stream reaches Stopped.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

func (s *Stream) loop(ctx context.Context) {
	defer s.stop()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.now().Sub(s.started) >= s.maxAge {
				logger.Info("stream reached max age", "user_id", s.userID)
				return
			}

			s.mu.Lock()
			s.updates++
			n := s.updates
			s.mu.Unlock()

			StreamTicksTotal.Inc()
			if err := s.runTick(ctx, n); err != nil {
				// a failed tick is skipped, the loop keeps going
				StreamTickFailuresTotal.Inc()
				logger.Error("stream tick failed", "user_id", s.userID, "update_number", n, "error", err)
			}

			if n >= s.maxUpdates {
				logger.Info("stream reached max updates", "user_id", s.userID, "updates", n)
				return
			}
		}
	}
}

// runTick converts a panicking cycle into an error so one bad tick cannot
// kill the loop.
func (s *Stream) runTick(ctx context.Context, updateNumber int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tick panic: %v", r)
		}
	}()

	return s.run(ctx, updateNumber)
}

func (s *Stream) stop() {
	s.mu.Lock()
	s.state = StateStopped
	if s.cancel != nil {
		s.cancel()
	}
	onStop := s.onStop
	s.mu.Unlock()

	if onStop != nil {
		onStop()
	}
	s.closeOnce.Do(func() { close(s.done) })
}
