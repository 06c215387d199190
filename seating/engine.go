package seating

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"beet-booking-cli/model"
)

// Engine owns the seat map and selection for one (movie, time, ticketCount)
// session. All operations are synchronous and meant to be driven from a
// single event loop; the engine never blocks.
type Engine struct {
	cfg         Config
	movie       model.Movie
	showtime    string
	ticketCount int
	seats       []model.Seat
	selected    map[string]bool
}

// NewEngine wires an engine around an already generated seat map. The seats
// slice is copied; callers keep no live reference into engine state.
func NewEngine(cfg Config, movie model.Movie, showtime string, ticketCount int, seats []model.Seat) (*Engine, error) {
	if len(seats) == 0 {
		return nil, errors.New("engine requires a non-empty seat map")
	}
	if ticketCount < cfg.MinTickets || ticketCount > cfg.MaxTickets {
		return nil, fmt.Errorf("ticket count %d outside allowed range %d..%d", ticketCount, cfg.MinTickets, cfg.MaxTickets)
	}
	owned := make([]model.Seat, len(seats))
	copy(owned, seats)
	return &Engine{
		cfg:         cfg,
		movie:       movie,
		showtime:    showtime,
		ticketCount: ticketCount,
		seats:       owned,
		selected:    map[string]bool{},
	}, nil
}

// Seats returns a snapshot copy of the current seat map.
func (e *Engine) Seats() []model.Seat {
	seats := make([]model.Seat, len(e.seats))
	copy(seats, e.seats)
	return seats
}

// SelectedSeats returns the current selection sorted by row then number.
func (e *Engine) SelectedSeats() []model.Seat {
	seats := make([]model.Seat, 0, len(e.selected))
	for _, seat := range e.seats {
		if e.selected[seat.Id] {
			seats = append(seats, seat)
		}
	}
	sort.Slice(seats, func(i, j int) bool {
		if seats[i].Row != seats[j].Row {
			return seats[i].Row < seats[j].Row
		}
		return seats[i].Number < seats[j].Number
	})
	return seats
}

func (e *Engine) SelectionCount() int {
	return len(e.selected)
}

func (e *Engine) TicketCount() int {
	return e.ticketCount
}

func (e *Engine) Movie() model.Movie {
	return e.movie
}

func (e *Engine) Showtime() string {
	return e.showtime
}

// SelectionComplete reports whether the selection has reached the requested
// ticket count. Checkout must be gated on this; the engine itself allows a
// short selection when the row runs out of seats.
func (e *Engine) SelectionComplete() bool {
	return len(e.selected) == e.ticketCount
}

// TotalPrice is recomputed on every read, never cached.
func (e *Engine) TotalPrice() float64 {
	return float64(len(e.selected)) * e.cfg.StandardPrice
}

// ToggleSeat applies one tap. Tapping an occupied seat is a silent no-op.
// Tapping any currently selected seat clears the whole selection, not just
// that seat. Tapping an unselected seat clears the selection and allocates
// up to ticketCount seats together starting from it.
// The returned error is non-nil only for a seat id that does not exist in
// this map, which is a caller bug.
func (e *Engine) ToggleSeat(id string) error {
	idx := e.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("unknown seat id %q", id)
	}
	seat := e.seats[idx]
	if seat.Status == model.SeatOccupied {
		return nil
	}
	if e.selected[seat.Id] {
		e.ClearSelection()
		return nil
	}
	e.selectTogether(seat)
	return nil
}

// selectTogether picks up to ticketCount seats in the tapped seat's row:
// candidates are the row's non-occupied seats in ascending number order, the
// walk goes rightward from the tapped seat first, then falls back leftward.
// An occupied seat is simply not a candidate; it does not stop the walk.
// When the row cannot satisfy the quota the selection stays short.
func (e *Engine) selectTogether(seat model.Seat) {
	e.ClearSelection()

	candidates := make([]model.Seat, 0, e.cfg.SeatsPerRow)
	for _, s := range e.seats {
		if s.Row == seat.Row && s.Status != model.SeatOccupied {
			candidates = append(candidates, s)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Number < candidates[j].Number
	})

	start := -1
	for i, s := range candidates {
		if s.Number == seat.Number {
			start = i
			break
		}
	}
	if start < 0 {
		// Tapped seat missing from its own row's candidates; leave state untouched.
		return
	}

	count := 0
	for i := start; i < len(candidates) && count < e.ticketCount; i++ {
		e.markSelected(candidates[i].Id)
		count++
	}
	for i := start - 1; i >= 0 && count < e.ticketCount; i-- {
		if e.selected[candidates[i].Id] {
			continue
		}
		e.markSelected(candidates[i].Id)
		count++
	}
}

// ClearSelection deselects every selected seat and marks it available again.
func (e *Engine) ClearSelection() {
	for i := range e.seats {
		if e.selected[e.seats[i].Id] {
			e.seats[i].Status = model.SeatAvailable
		}
	}
	e.selected = map[string]bool{}
}

// CreateBooking snapshots the current selection into an immutable Booking.
// The selection is taken as-is; a short selection produces a short booking.
func (e *Engine) CreateBooking() model.Booking {
	return model.Booking{
		Id:         uuid.NewString(),
		Movie:      e.movie,
		Seats:      e.SelectedSeats(),
		Date:       time.Now(),
		Time:       e.showtime,
		CinemaHall: e.cfg.Hall,
		TotalPrice: e.TotalPrice(),
	}
}

func (e *Engine) markSelected(id string) {
	if idx := e.indexOf(id); idx >= 0 {
		e.seats[idx].Status = model.SeatSelected
		e.selected[id] = true
	}
}

func (e *Engine) indexOf(id string) int {
	for i, s := range e.seats {
		if s.Id == id {
			return i
		}
	}
	return -1
}
