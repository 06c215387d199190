package model

import "time"

// Booking is an immutable confirmed-seats record. The Seats slice is a
// snapshot taken at creation time, never a view into a live seat map.
type Booking struct {
	Id         string    `json:"id"`
	Movie      Movie     `json:"movie"`
	Seats      []Seat    `json:"seats"`
	Date       time.Time `json:"date"`
	Time       string    `json:"time"`
	CinemaHall string    `json:"cinemaHall"`
	TotalPrice float64   `json:"totalPrice"`
}

func (b Booking) SeatNames() []string {
	names := make([]string, 0, len(b.Seats))
	for _, seat := range b.Seats {
		names = append(names, seat.DisplayName())
	}
	return names
}
