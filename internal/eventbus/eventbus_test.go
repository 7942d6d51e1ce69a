package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncBusDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.(Closer).Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventScanCompleted, func(e DomainEvent) { got <- e })

	b.Publish(ScanCompletedEvent{PagesFound: 3})

	select {
	case e := <-got:
		require.IsType(t, ScanCompletedEvent{}, e)
		assert.Equal(t, 3, e.(ScanCompletedEvent).PagesFound)
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestAsyncBusSurvivesPanickingHandler(t *testing.T) {
	b := New()
	defer b.(Closer).Close()

	got := make(chan struct{}, 2)
	b.Subscribe(EventScanStarted, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventScanStarted, func(DomainEvent) { got <- struct{}{} })

	b.Publish(ScanStartedEvent{})
	b.Publish(ScanStartedEvent{})

	for i := 0; i < 2; i++ {
		select {
		case <-got:
		case <-time.After(2 * time.Second):
			t.Fatal("bus stopped delivering after a handler panic")
		}
	}
}

func TestSyncBusOrderAndUnsubscribe(t *testing.T) {
	b := NewSync()
	var seen []int

	unsubscribe := b.Subscribe(EventPagerChanged, func(e DomainEvent) {
		seen = append(seen, e.(PagerChangedEvent).Index)
	})
	b.Subscribe(EventPageSelected, func(DomainEvent) {
		t.Fatal("handler for another type called")
	})

	b.Publish(PagerChangedEvent{Index: 1})
	b.Publish(PagerChangedEvent{Index: 2})
	unsubscribe()
	unsubscribe()
	b.Publish(PagerChangedEvent{Index: 3})

	assert.Equal(t, []int{1, 2}, seen)
}

func TestUnsubscribeRemovesOnlyItsHandler(t *testing.T) {
	b := NewSync()
	var a, c int

	unsubA := b.Subscribe(EventPagerChanged, func(DomainEvent) { a++ })
	b.Subscribe(EventPagerChanged, func(DomainEvent) { c++ })

	unsubA()
	b.Publish(PagerChangedEvent{})

	assert.Equal(t, 0, a)
	assert.Equal(t, 1, c)
}

func TestCloseIsIdempotent(t *testing.T) {
	b := New().(Closer)
	b.Close()
	assert.NotPanics(t, b.Close)
}
