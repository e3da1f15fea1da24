package feed

import (
	"context"
	"sync"
)

// MemoryBroker is an in-process Broker used by tests and by local runs
// without Redis. Slow subscribers drop events instead of blocking the
// publisher; a dropped notification only costs one redundant refresh.
type MemoryBroker struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{subs: make(map[chan Event]struct{})}
}

func (b *MemoryBroker) Publish(ctx context.Context, ev Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	return nil
}

func (b *MemoryBroker) Subscribe(ctx context.Context) (<-chan Event, func(), error) {
	ch := make(chan Event, 16)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			// Close may already have torn the subscription down.
			if _, ok := b.subs[ch]; ok {
				delete(b.subs, ch)
				close(ch)
			}
		})
	}
	return ch, cancel, nil
}

// Close cancels every active subscription.
func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
	return nil
}
