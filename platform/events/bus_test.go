package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"softhouse_backend/platform/logger"
)

type testEvent struct {
	BaseEvent
	Value string
}

func (e testEvent) EventName() string { return "test.event" }

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	var mu sync.Mutex
	var got []string
	done := make(chan struct{}, 2)

	handler := HandlerFunc(func(_ context.Context, event Event) error {
		mu.Lock()
		got = append(got, event.(testEvent).Value)
		mu.Unlock()
		done <- struct{}{}
		return nil
	})

	bus.Subscribe("test.event", handler)
	bus.Subscribe("test.event", handler)

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), Value: "hello"})

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("handler did not run")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 || got[0] != "hello" || got[1] != "hello" {
		t.Errorf("handlers received %v", got)
	}
}

func TestPublishUnknownEventIsNoop(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))
	// Must not panic or block.
	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent()})
}
