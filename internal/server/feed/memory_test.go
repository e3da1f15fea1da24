package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBroker_PublishReachesSubscribers(t *testing.T) {
	b := NewMemoryBroker()
	ctx := context.Background()

	ch1, cancel1, err := b.Subscribe(ctx)
	require.NoError(t, err)
	defer cancel1()
	ch2, cancel2, err := b.Subscribe(ctx)
	require.NoError(t, err)
	defer cancel2()

	ev := Event{Op: OpInsert, ID: "abc", RegistrationNumber: "MPC261234567"}
	require.NoError(t, b.Publish(ctx, ev))

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case got := <-ch:
			assert.Equal(t, OpInsert, got.Op)
			assert.Equal(t, "abc", got.ID)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestMemoryBroker_CancelStopsDelivery(t *testing.T) {
	b := NewMemoryBroker()
	ctx := context.Background()

	ch, cancel, err := b.Subscribe(ctx)
	require.NoError(t, err)
	cancel()

	// Channel is closed after cancel; publish must not panic.
	require.NoError(t, b.Publish(ctx, Event{Op: OpDelete, ID: "x"}))

	_, open := <-ch
	assert.False(t, open, "channel should be closed after cancel")
}

func TestMemoryBroker_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewMemoryBroker()
	ctx := context.Background()

	_, cancel, err := b.Subscribe(ctx)
	require.NoError(t, err)
	defer cancel()

	// More events than the buffer; Publish must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			_ = b.Publish(ctx, Event{Op: OpUpdate, ID: "y"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}
