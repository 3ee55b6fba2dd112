package stream

import (
	"errors"
	"sync"

	"africahub/pkg/logger"
)

// ErrAlreadyStreaming is returned when a user already has a live stream.
var ErrAlreadyStreaming = errors.New("user already has an active stream")

// Registry tracks at most one live stream per user so concurrent requests
// for the same user cannot spawn duplicate timers publishing to the same
// channel. It is also the shutdown hook: StopAll terminates every stream
// when the process exits.
type Registry struct {
	mu      sync.Mutex
	streams map[string]*Stream
}

func NewRegistry() *Registry {
	return &Registry{
		streams: make(map[string]*Stream),
	}
}

// Register starts the stream and records it under its user id. A second
// registration for the same user fails with ErrAlreadyStreaming while the
// first stream is still live.
func (r *Registry) Register(userID string, s *Stream) error {
	r.mu.Lock()

	if existing, ok := r.streams[userID]; ok && existing.State() != StateStopped {
		r.mu.Unlock()
		return ErrAlreadyStreaming
	}

	r.streams[userID] = s
	s.onStop = func() {
		r.remove(userID, s)
	}
	r.mu.Unlock()

	ActiveStreams.Inc()

	if err := s.Start(); err != nil {
		r.remove(userID, s)
		return err
	}

	return nil
}

// Cancel stops the user's stream if one is live. Reports whether a stream
// was found.
func (r *Registry) Cancel(userID string) bool {
	r.mu.Lock()
	s, ok := r.streams[userID]
	r.mu.Unlock()

	if !ok {
		return false
	}

	s.Cancel()

	return true
}

// Active returns the number of live streams.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.streams)
}

// StopAll cancels every live stream and waits for their loops to exit.
func (r *Registry) StopAll() {
	r.mu.Lock()
	streams := make([]*Stream, 0, len(r.streams))
	for _, s := range r.streams {
		streams = append(streams, s)
	}
	r.mu.Unlock()

	for _, s := range streams {
		s.Cancel()
	}

	logger.Info("all recommendation streams stopped", "count", len(streams))
}

func (r *Registry) remove(userID string, s *Stream) {
	r.mu.Lock()
	if current, ok := r.streams[userID]; ok && current == s {
		delete(r.streams, userID)
		ActiveStreams.Dec()
	}
	r.mu.Unlock()
}
