package booking

import (
	"sync"

	"roomdesk/internal/domain"
)

// Observer is notified after a booking mutation lands. Observers must not
// block; slow consumers drop events on their own side.
type Observer interface {
	BookingCreated(b *domain.Booking)
	BookingUpdated(b *domain.Booking)
	BookingCancelled(b *domain.Booking)
}

// ObserverList is a concurrency-safe fan-out of booking events.
type ObserverList struct {
	mu        sync.RWMutex
	observers []Observer
}

func NewObserverList() *ObserverList {
	return &ObserverList{}
}

func (l *ObserverList) Add(o Observer) {
	if o == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, o)
}

func (l *ObserverList) NotifyCreated(b *domain.Booking) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.observers {
		o.BookingCreated(b)
	}
}

func (l *ObserverList) NotifyUpdated(b *domain.Booking) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.observers {
		o.BookingUpdated(b)
	}
}

func (l *ObserverList) NotifyCancelled(b *domain.Booking) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.observers {
		o.BookingCancelled(b)
	}
}

// LogObserver writes booking events to the injected logger.
type LogObserver struct {
	loggerf func(format string, args ...interface{})
}

func NewLogObserver(loggerf func(format string, args ...interface{})) *LogObserver {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &LogObserver{loggerf: loggerf}
}

func (o *LogObserver) BookingCreated(b *domain.Booking) {
	o.loggerf("level=info msg=booking created booking_id=%s room=%s date=%s", b.ID, b.RoomNumber, b.Date)
}

func (o *LogObserver) BookingUpdated(b *domain.Booking) {
	o.loggerf("level=info msg=booking updated booking_id=%s room=%s date=%s", b.ID, b.RoomNumber, b.Date)
}

func (o *LogObserver) BookingCancelled(b *domain.Booking) {
	o.loggerf("level=info msg=booking cancelled booking_id=%s room=%s date=%s", b.ID, b.RoomNumber, b.Date)
}
