package seating

import (
	"errors"
	"math/rand"
	"time"

	"beet-booking-cli/model"
)

// GenerateSeatMap builds the full seat grid for one showing: every
// (row, number) pair in cfg.Rows x [1..cfg.SeatsPerRow], each seat
// independently pre-marked occupied with cfg.OccupancyProbability.
// If rng is nil a time-seeded source is used.
func GenerateSeatMap(cfg Config, rng *rand.Rand) ([]model.Seat, error) {
	if len(cfg.Rows) == 0 {
		return nil, errors.New("seat map requires at least one row")
	}
	if cfg.SeatsPerRow < 1 {
		return nil, errors.New("seat map requires at least one seat per row")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	seats := make([]model.Seat, 0, len(cfg.Rows)*cfg.SeatsPerRow)
	for _, row := range cfg.Rows {
		for number := 1; number <= cfg.SeatsPerRow; number++ {
			status := model.SeatAvailable
			if rng.Float64() < cfg.OccupancyProbability {
				status = model.SeatOccupied
			}
			seats = append(seats, model.Seat{
				Id:     model.SeatId(row, number),
				Row:    row,
				Number: number,
				Status: status,
			})
		}
	}
	return seats, nil
}
