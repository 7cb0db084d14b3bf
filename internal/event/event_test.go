// internal/event/event_test.go
package event

import "testing"

type countingListener struct {
	got []Event
}

func (l *countingListener) OnEvent(e Event) {
	l.got = append(l.got, e)
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(TargetHit, a)
	d.Subscribe(TargetHit, b)

	d.Dispatch(Event{Type: TargetHit, Data: 42})

	if len(a.got) != 1 || len(b.got) != 1 {
		t.Fatalf("listener counts = %d, %d; want 1, 1", len(a.got), len(b.got))
	}
	if a.got[0].Data != 42 {
		t.Errorf("payload = %v, want 42", a.got[0].Data)
	}
}

func TestDispatchIgnoresOtherTypes(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(TargetHit, l)

	d.Dispatch(Event{Type: TargetExpired})

	if len(l.got) != 0 {
		t.Errorf("listener received %d events, want 0", len(l.got))
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(ShotFired, l)
	d.Dispatch(Event{Type: ShotFired})

	d.Unsubscribe(ShotFired, l)
	d.Dispatch(Event{Type: ShotFired})

	if len(l.got) != 1 {
		t.Errorf("listener received %d events, want 1", len(l.got))
	}
}

func TestDispatchWithoutSubscribers(t *testing.T) {
	d := NewDispatcher()
	// Не должно паниковать
	d.Dispatch(Event{Type: ModeChanged})
}
