package event

import "testing"

const testEvent EventType = "TestEvent"

func TestDispatch_ReachesAllSubscribers(t *testing.T) {
	d := NewDispatcher()
	got := 0
	d.Subscribe(testEvent, ListenerFunc(func(e Event) { got++ }))
	d.Subscribe(testEvent, ListenerFunc(func(e Event) { got++ }))

	d.Dispatch(Event{Type: testEvent})
	if got != 2 {
		t.Errorf("delivered to %d listeners, want 2", got)
	}
}

func TestDispatch_CarriesPayload(t *testing.T) {
	d := NewDispatcher()
	var data interface{}
	d.Subscribe(EnemyDestroyed, ListenerFunc(func(e Event) { data = e.Data }))

	d.Dispatch(Event{Type: EnemyDestroyed, Data: EnemyDestroyedData{ID: 7, ScoreValue: 100}})
	payload, ok := data.(EnemyDestroyedData)
	if !ok {
		t.Fatalf("payload type = %T, want EnemyDestroyedData", data)
	}
	if payload.ID != 7 || payload.ScoreValue != 100 {
		t.Errorf("payload = %+v", payload)
	}
}

func TestDispatch_PanickingListenerIsIsolated(t *testing.T) {
	d := NewDispatcher()
	survived := false
	d.Subscribe(testEvent, ListenerFunc(func(e Event) { panic("bad listener") }))
	d.Subscribe(testEvent, ListenerFunc(func(e Event) { survived = true }))

	d.Dispatch(Event{Type: testEvent}) // must not panic out
	if !survived {
		t.Error("listener after the panicking one was not notified")
	}
}

type countingListener struct{ calls int }

func (c *countingListener) OnEvent(Event) { c.calls++ }

func TestUnsubscribe_StopsDelivery(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(testEvent, l)

	d.Dispatch(Event{Type: testEvent})
	d.Unsubscribe(testEvent, l)
	d.Dispatch(Event{Type: testEvent})

	if l.calls != 1 {
		t.Errorf("calls = %d, want 1", l.calls)
	}
}

func TestDispatch_NoSubscribersIsNoOp(t *testing.T) {
	d := NewDispatcher()
	d.Dispatch(Event{Type: "Unknown"}) // must not panic
}
