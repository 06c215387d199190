package model

import "fmt"

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatOccupied  SeatStatus = "occupied"
	SeatSelected  SeatStatus = "selected"
)

type Seat struct {
	Id     string     `json:"id"`
	Row    string     `json:"row"`
	Number int        `json:"number"`
	Status SeatStatus `json:"status"`
}

// SeatId derives a seat id from its row label and number, e.g. "C4".
func SeatId(row string, number int) string {
	return fmt.Sprintf("%s%d", row, number)
}

func (s Seat) DisplayName() string {
	return SeatId(s.Row, s.Number)
}
