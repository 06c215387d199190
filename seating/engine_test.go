package seating

import (
	"math/rand"
	"testing"

	"beet-booking-cli/model"
)

func testMovie() model.Movie {
	return model.Movie{Id: "movie-1", Title: "Dune: Part Two"}
}

func emptyHallSeats(t *testing.T, cfg Config) []model.Seat {
	t.Helper()
	cfg.OccupancyProbability = 0
	seats, err := GenerateSeatMap(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return seats
}

func markOccupied(t *testing.T, seats []model.Seat, ids ...string) {
	t.Helper()
	for _, id := range ids {
		found := false
		for i := range seats {
			if seats[i].Id == id {
				seats[i].Status = model.SeatOccupied
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("seat %q not in map", id)
		}
	}
}

func newTestEngine(t *testing.T, cfg Config, ticketCount int, seats []model.Seat) *Engine {
	t.Helper()
	engine, err := NewEngine(cfg, testMovie(), "3:30 PM", ticketCount, seats)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return engine
}

func selectedIds(engine *Engine) map[string]bool {
	ids := map[string]bool{}
	for _, seat := range engine.SelectedSeats() {
		ids[seat.Id] = true
	}
	return ids
}

func TestNewEngine_ValidatesTicketCount(t *testing.T) {
	cfg := DefaultConfig()
	seats := emptyHallSeats(t, cfg)

	if _, err := NewEngine(cfg, testMovie(), "3:30 PM", 0, seats); err == nil {
		t.Fatal("expected error for ticket count below minimum")
	}
	if _, err := NewEngine(cfg, testMovie(), "3:30 PM", 11, seats); err == nil {
		t.Fatal("expected error for ticket count above maximum")
	}
	if _, err := NewEngine(cfg, testMovie(), "3:30 PM", 1, nil); err == nil {
		t.Fatal("expected error for empty seat map")
	}
}

func TestToggleSeat_OccupiedIsSilentNoop(t *testing.T) {
	cfg := DefaultConfig()
	seats := emptyHallSeats(t, cfg)
	markOccupied(t, seats, "A3")
	engine := newTestEngine(t, cfg, 2, seats)

	if err := engine.ToggleSeat("A3"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if engine.SelectionCount() != 0 {
		t.Fatalf("expected no selection, got %d", engine.SelectionCount())
	}
	for _, seat := range engine.Seats() {
		if seat.Id == "A3" && seat.Status != model.SeatOccupied {
			t.Fatalf("expected A3 to stay occupied, got %s", seat.Status)
		}
	}
}

func TestToggleSeat_UnknownIdErrors(t *testing.T) {
	cfg := DefaultConfig()
	engine := newTestEngine(t, cfg, 1, emptyHallSeats(t, cfg))

	if err := engine.ToggleSeat("Z99"); err == nil {
		t.Fatal("expected error for unknown seat id")
	}
	if engine.SelectionCount() != 0 {
		t.Fatalf("expected no selection, got %d", engine.SelectionCount())
	}
}

func TestToggleSeat_RightwardPreference(t *testing.T) {
	cfg := DefaultConfig()
	engine := newTestEngine(t, cfg, 2, emptyHallSeats(t, cfg))

	if err := engine.ToggleSeat("A2"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	ids := selectedIds(engine)
	if len(ids) != 2 || !ids["A2"] || !ids["A3"] {
		t.Fatalf("expected selection {A2 A3}, got %v", ids)
	}
}

func TestToggleSeat_LeftwardFallbackSkipsOccupiedCandidate(t *testing.T) {
	cfg := DefaultConfig()
	seats := emptyHallSeats(t, cfg)
	// Row A candidates become [A1 A2 A4 A5 A6 A7 A8]; tapping A7 with three
	// tickets walks right to A8 then falls back left to A6.
	markOccupied(t, seats, "A3")
	engine := newTestEngine(t, cfg, 3, seats)

	if err := engine.ToggleSeat("A7"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	ids := selectedIds(engine)
	if len(ids) != 3 || !ids["A6"] || !ids["A7"] || !ids["A8"] {
		t.Fatalf("expected selection {A6 A7 A8}, got %v", ids)
	}
}

func TestToggleSeat_WalkCrossesOccupiedGap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = []string{"A"}
	cfg.SeatsPerRow = 4
	seats := emptyHallSeats(t, cfg)
	// Candidates are [A1 A2 A4]: the rightward walk from A2 reaches A4
	// because A3 simply is not a candidate, then A1 fills the quota.
	markOccupied(t, seats, "A3")
	engine := newTestEngine(t, cfg, 3, seats)

	if err := engine.ToggleSeat("A2"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	ids := selectedIds(engine)
	if len(ids) != 3 || !ids["A1"] || !ids["A2"] || !ids["A4"] {
		t.Fatalf("expected selection {A1 A2 A4}, got %v", ids)
	}
}

func TestToggleSeat_TappedSeatAlwaysIncluded(t *testing.T) {
	cfg := DefaultConfig()
	engine := newTestEngine(t, cfg, 5, emptyHallSeats(t, cfg))

	for _, id := range []string{"B1", "B4", "B8"} {
		if err := engine.ToggleSeat(id); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !selectedIds(engine)[id] {
			t.Fatalf("expected tapped seat %s in selection %v", id, selectedIds(engine))
		}
		if engine.SelectionCount() != 5 {
			t.Fatalf("expected 5 selected, got %d", engine.SelectionCount())
		}
	}
}

func TestToggleSeat_SelectedSeatClearsWholeGroup(t *testing.T) {
	cfg := DefaultConfig()
	engine := newTestEngine(t, cfg, 3, emptyHallSeats(t, cfg))

	if err := engine.ToggleSeat("C2"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if engine.SelectionCount() != 3 {
		t.Fatalf("expected 3 selected, got %d", engine.SelectionCount())
	}

	// Tapping any member of the group clears everything, not just that seat.
	if err := engine.ToggleSeat("C4"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if engine.SelectionCount() != 0 {
		t.Fatalf("expected empty selection, got %d", engine.SelectionCount())
	}
	for _, seat := range engine.Seats() {
		if seat.Status == model.SeatSelected {
			t.Fatalf("expected no selected seats left, found %s", seat.Id)
		}
	}
}

func TestToggleSeat_RetapMovesSelection(t *testing.T) {
	cfg := DefaultConfig()
	engine := newTestEngine(t, cfg, 2, emptyHallSeats(t, cfg))

	if err := engine.ToggleSeat("A1"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := engine.ToggleSeat("D5"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	ids := selectedIds(engine)
	if len(ids) != 2 || !ids["D5"] || !ids["D6"] {
		t.Fatalf("expected selection {D5 D6}, got %v", ids)
	}
}

func TestToggleSeat_UnderfilledRowAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = []string{"A"}
	cfg.SeatsPerRow = 3
	seats := emptyHallSeats(t, cfg)
	markOccupied(t, seats, "A1")
	engine := newTestEngine(t, cfg, 5, seats)

	if err := engine.ToggleSeat("A2"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if engine.SelectionCount() != 2 {
		t.Fatalf("expected 2 selected, got %d", engine.SelectionCount())
	}
	if engine.SelectionComplete() {
		t.Fatal("expected selection to be incomplete")
	}
}

func TestTotalPrice_TracksSelection(t *testing.T) {
	cfg := DefaultConfig()
	engine := newTestEngine(t, cfg, 3, emptyHallSeats(t, cfg))

	if got := engine.TotalPrice(); got != 0 {
		t.Fatalf("expected 0 total, got %v", got)
	}
	if err := engine.ToggleSeat("E4"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := engine.TotalPrice(); got != 45.0 {
		t.Fatalf("expected 45.0 total, got %v", got)
	}
	engine.ClearSelection()
	if got := engine.TotalPrice(); got != 0 {
		t.Fatalf("expected 0 total after clear, got %v", got)
	}
}

func TestCreateBooking_SnapshotIsolation(t *testing.T) {
	cfg := DefaultConfig()
	engine := newTestEngine(t, cfg, 2, emptyHallSeats(t, cfg))

	if err := engine.ToggleSeat("F3"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	booking := engine.CreateBooking()

	engine.ClearSelection()
	if err := engine.ToggleSeat("A1"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if len(booking.Seats) != 2 {
		t.Fatalf("expected 2 seats in booking, got %d", len(booking.Seats))
	}
	for _, seat := range booking.Seats {
		if seat.Status != model.SeatSelected {
			t.Fatalf("expected booking seat %s to stay selected, got %s", seat.Id, seat.Status)
		}
	}
	if booking.Seats[0].Id != "F3" || booking.Seats[1].Id != "F4" {
		t.Fatalf("unexpected booking seats: %v", booking.SeatNames())
	}
}

func TestCreateBooking_FieldsAndUniqueIds(t *testing.T) {
	cfg := DefaultConfig()
	engine := newTestEngine(t, cfg, 2, emptyHallSeats(t, cfg))
	if err := engine.ToggleSeat("A1"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	first := engine.CreateBooking()
	second := engine.CreateBooking()
	if first.Id == "" || first.Id == second.Id {
		t.Fatalf("expected fresh unique booking ids, got %q and %q", first.Id, second.Id)
	}
	if first.Movie.Id != "movie-1" || first.Time != "3:30 PM" || first.CinemaHall != "Hall 1" {
		t.Fatalf("unexpected booking fields: %+v", first)
	}
	if first.TotalPrice != 30.0 {
		t.Fatalf("expected 30.0 total, got %v", first.TotalPrice)
	}
}

func TestBookingFlow_EndToEnd(t *testing.T) {
	cfg := DefaultConfig()
	engine := newTestEngine(t, cfg, 3, emptyHallSeats(t, cfg))

	if err := engine.ToggleSeat("D5"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	ids := selectedIds(engine)
	if len(ids) != 3 || !ids["D5"] || !ids["D6"] || !ids["D7"] {
		t.Fatalf("expected selection {D5 D6 D7}, got %v", ids)
	}

	booking := engine.CreateBooking()
	if len(booking.Seats) != 3 {
		t.Fatalf("expected 3 seats, got %d", len(booking.Seats))
	}
	if booking.TotalPrice != 45.0 {
		t.Fatalf("expected 45.0 total, got %v", booking.TotalPrice)
	}
}
