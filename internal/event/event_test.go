package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct{ got []Event }

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

// batch is a value listener whose type cannot be compared with ==.
type batch struct{ seen []EventType }

func (b batch) OnEvent(Event) {}

func TestDispatchOrderAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(WaveStarted, ListenerFunc(func(Event) { order = append(order, "first") }))
	rec := &recorder{}
	d.Subscribe(WaveStarted, rec)
	d.Subscribe(WaveStarted, ListenerFunc(func(Event) { order = append(order, "third") }))

	d.Dispatch(Event{Type: WaveStarted, Data: 1})
	assert.Equal(t, []string{"first", "third"}, order)
	assert.Len(t, rec.got, 1)
	assert.Equal(t, 1, rec.got[0].Data)

	d.Unsubscribe(WaveStarted, rec)
	d.Dispatch(Event{Type: WaveStarted, Data: 2})
	assert.Len(t, rec.got, 1)
	assert.Len(t, order, 4)

	d.Dispatch(Event{Type: BossDefeated})
}

func TestUnsubscribeSkipsValueListeners(t *testing.T) {
	d := NewDispatcher()
	rec := &recorder{}
	d.Subscribe(WaveStarted, batch{})
	d.Subscribe(WaveStarted, rec)
	d.Subscribe(WaveStarted, ListenerFunc(func(Event) {}))

	assert.NotPanics(t, func() {
		d.Unsubscribe(WaveStarted, batch{})
		d.Unsubscribe(WaveStarted, ListenerFunc(func(Event) {}))
		d.Unsubscribe(WaveStarted, rec)
	})
	assert.Len(t, d.listeners[WaveStarted], 2)

	d.Dispatch(Event{Type: WaveStarted})
	assert.Empty(t, rec.got)
}
