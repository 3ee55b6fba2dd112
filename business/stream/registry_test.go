package stream

import (
	"context"
	"testing"
	"time"
)

func noopCycle(ctx context.Context, updateNumber int) error {
	return nil
}

func TestRegistryRejectsDuplicateUser(t *testing.T) {
	r := NewRegistry()

	first := New("u1", time.Hour, time.Hour, 10, noopCycle)
	if err := r.Register("u1", first); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	defer r.StopAll()

	second := New("u1", time.Hour, time.Hour, 10, noopCycle)
	if err := r.Register("u1", second); err != ErrAlreadyStreaming {
		t.Errorf("second Register error = %v, want ErrAlreadyStreaming", err)
	}
}

func TestRegistryAllowsDistinctUsers(t *testing.T) {
	r := NewRegistry()
	defer r.StopAll()

	for _, userID := range []string{"u1", "u2", "u3"} {
		if err := r.Register(userID, New(userID, time.Hour, time.Hour, 10, noopCycle)); err != nil {
			t.Fatalf("Register(%s) failed: %v", userID, err)
		}
	}

	if got := r.Active(); got != 3 {
		t.Errorf("Active() = %d, want 3", got)
	}
}

func TestRegistryCancel(t *testing.T) {
	r := NewRegistry()

	s := New("u1", time.Hour, time.Hour, 10, noopCycle)
	if err := r.Register("u1", s); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if !r.Cancel("u1") {
		t.Error("Cancel found no stream for u1")
	}
	if s.State() != StateStopped {
		t.Errorf("State() = %v, want stopped", s.State())
	}
	if r.Cancel("u1") {
		t.Error("second Cancel still found a stream")
	}
	if got := r.Active(); got != 0 {
		t.Errorf("Active() = %d, want 0 after cancel", got)
	}
}

func TestRegistryReRegisterAfterStop(t *testing.T) {
	r := NewRegistry()
	defer r.StopAll()

	first := New("u1", time.Hour, time.Hour, 10, noopCycle)
	if err := r.Register("u1", first); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	r.Cancel("u1")

	second := New("u1", time.Hour, time.Hour, 10, noopCycle)
	if err := r.Register("u1", second); err != nil {
		t.Errorf("re-Register after stop failed: %v", err)
	}
}

func TestRegistryNaturalStopFreesSlot(t *testing.T) {
	r := NewRegistry()

	s := New("u1", time.Millisecond, time.Hour, 2, noopCycle)
	if err := r.Register("u1", s); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	select {
	case <-s.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not stop on its own")
	}

	if got := r.Active(); got != 0 {
		t.Errorf("Active() = %d, want 0 once the stream ran out", got)
	}

	if err := r.Register("u1", New("u1", time.Hour, time.Hour, 10, noopCycle)); err != nil {
		t.Errorf("Register after natural stop failed: %v", err)
	}
	r.StopAll()
}

func TestRegistryStopAll(t *testing.T) {
	r := NewRegistry()

	streams := make([]*Stream, 0, 3)
	for _, userID := range []string{"u1", "u2", "u3"} {
		s := New(userID, time.Hour, time.Hour, 10, noopCycle)
		if err := r.Register(userID, s); err != nil {
			t.Fatalf("Register(%s) failed: %v", userID, err)
		}
		streams = append(streams, s)
	}

	r.StopAll()

	for _, s := range streams {
		if s.State() != StateStopped {
			t.Errorf("stream %s state = %v, want stopped", s.userID, s.State())
		}
	}
	if got := r.Active(); got != 0 {
		t.Errorf("Active() = %d, want 0 after StopAll", got)
	}
}
