package booking

import (
	"context"
	"sync"

	"roomdesk/internal/pkg/timeutil"
)

// Controller is the façade the front end drives booking mutations through.
// It builds a command per call, executes it and keeps the executed commands
// so the most recent mutation can be undone once.
type Controller struct {
	deps Deps

	mu      sync.Mutex
	history []Command
}

func NewController(
	bookings BookingRepository,
	rooms RoomService,
	payments PaymentService,
	clock timeutil.Clock,
	loggerf func(format string, args ...interface{}),
) *Controller {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Controller{
		deps: Deps{
			Bookings:  bookings,
			Rooms:     rooms,
			Payments:  payments,
			Clock:     clock,
			Observers: NewObserverList(),
			Loggerf:   loggerf,
		},
	}
}

// AddObserver registers a listener for created/updated/cancelled events.
func (c *Controller) AddObserver(o Observer) {
	c.deps.Observers.Add(o)
}

// Observers exposes the fan-out so other façades can share it.
func (c *Controller) Observers() *ObserverList {
	return c.deps.Observers
}

func (c *Controller) CancelBooking(ctx context.Context, bookingID string) bool {
	return c.dispatch(ctx, NewCancelBookingCommand(c.deps, bookingID))
}

func (c *Controller) EditBooking(ctx context.Context, bookingID string, params EditParams) bool {
	return c.dispatch(ctx, NewEditBookingCommand(c.deps, bookingID, params))
}

func (c *Controller) ExtendBooking(ctx context.Context, bookingID string, hours int) bool {
	return c.dispatch(ctx, NewExtendBookingCommand(c.deps, bookingID, hours))
}

func (c *Controller) dispatch(ctx context.Context, cmd Command) bool {
	if !cmd.Execute(ctx) {
		return false
	}
	c.mu.Lock()
	c.history = append(c.history, cmd)
	c.mu.Unlock()
	return true
}

// UndoLast reverses the most recent successful command. Each command undoes
// at most once; there is no redo.
func (c *Controller) UndoLast(ctx context.Context) bool {
	c.mu.Lock()
	n := len(c.history)
	if n == 0 {
		c.mu.Unlock()
		return false
	}
	cmd := c.history[n-1]
	c.history = c.history[:n-1]
	c.mu.Unlock()
	return cmd.Undo(ctx)
}
