// internal/event/event.go
package event

// EventType — тип игрового события
type EventType string

// Event несёт тип и произвольные данные: для событий мишеней это их
// EntityID, для промаха — результат выстрела.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher рассылает события подписчикам синхронно, в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe добавляет подписчика на события данного типа.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe убирает подписчика; отписка незнакомого слушателя — no-op.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	subs := d.listeners[eventType]
	for i, l := range subs {
		if l == listener {
			d.listeners[eventType] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch доставляет событие всем подписчикам его типа.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
