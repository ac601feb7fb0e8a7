package calendar

import (
	"context"

	"seatwise/models"
)

// dayActor exclusively owns one CalendarDay. All reads and writes go
// through its request channel and execute one at a time in the run loop,
// so pacing sums, quota sums and holdback totals never race within a day.
type dayActor struct {
	day      models.CalendarDay
	requests chan func(*models.CalendarDay)
	done     chan struct{}
}

func newDayActor(day models.CalendarDay) *dayActor {
	a := &dayActor{
		day:      day,
		requests: make(chan func(*models.CalendarDay), 16),
		done:     make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *dayActor) run() {
	for fn := range a.requests {
		fn(&a.day)
	}
	close(a.done)
}

// do submits fn to the actor and waits for it to finish. fn must not
// retain the *CalendarDay beyond its own execution.
func (a *dayActor) do(ctx context.Context, fn func(*models.CalendarDay)) error {
	executed := make(chan struct{})
	wrapped := func(d *models.CalendarDay) {
		fn(d)
		close(executed)
	}
	select {
	case a.requests <- wrapped:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-executed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// stop closes the request channel and waits for the run loop to drain.
func (a *dayActor) stop() {
	close(a.requests)
	<-a.done
}
