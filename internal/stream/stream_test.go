package stream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sysglance/sysglance/internal/collector"
	"github.com/sysglance/sysglance/internal/models"
)

// emptySource has no files and no commands, so every probe reports absence.
type emptySource struct{}

func (emptySource) ReadText(string) (string, bool) { return "", false }

func (emptySource) Run(context.Context, string, ...string) (string, bool) { return "", false }

func TestStreamerFirstSnapshotImmediate(t *testing.T) {
	s := New(collector.New(emptySource{}, nil), time.Hour, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan models.MetricsSnapshot, 1)
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, func(snap models.MetricsSnapshot) error {
			got <- snap
			return nil
		})
	}()

	select {
	case snap := <-got:
		if snap.Time.IsZero() {
			t.Error("snapshot timestamp is zero")
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered before the first tick")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run() = %v, want nil after cancel", err)
	}
}

func TestStreamerDeliversOnEachTick(t *testing.T) {
	s := New(collector.New(emptySource{}, nil), 5*time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan models.MetricsSnapshot, 16)
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, func(snap models.MetricsSnapshot) error {
			got <- snap
			return nil
		})
	}()

	for i := 0; i < 3; i++ {
		select {
		case <-got:
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for snapshot %d", i+1)
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run() = %v, want nil after cancel", err)
	}
}

func TestStreamerStopsWhenSendFails(t *testing.T) {
	errDetached := errors.New("subscriber gone")
	s := New(collector.New(emptySource{}, nil), time.Millisecond, nil)

	calls := 0
	err := s.Run(context.Background(), func(models.MetricsSnapshot) error {
		calls++
		if calls == 3 {
			return errDetached
		}
		return nil
	})

	if !errors.Is(err, errDetached) {
		t.Fatalf("Run() = %v, want %v", err, errDetached)
	}
	if calls != 3 {
		t.Errorf("send called %d times, want 3", calls)
	}
}

func TestStreamerNoDeliveryAfterCancel(t *testing.T) {
	s := New(collector.New(emptySource{}, nil), time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())

	got := make(chan models.MetricsSnapshot, 64)
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, func(snap models.MetricsSnapshot) error {
			got <- snap
			return nil
		})
	}()

	<-got
	cancel()
	<-done

	delivered := len(got)
	time.Sleep(20 * time.Millisecond)
	if len(got) != delivered {
		t.Errorf("snapshots kept arriving after Run returned: %d -> %d", delivered, len(got))
	}
}
