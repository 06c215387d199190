package service

import (
	"time"

	"beet-booking-cli/model"
)

// ShowtimeService supplies the showtime tables for movies. Times are display
// strings in "h:mm AM/PM" form.
type ShowtimeService struct {
	defaults     []string
	alternatives []string
}

func NewShowtimeService() *ShowtimeService {
	return &ShowtimeService{
		defaults:     []string{"10:30 AM", "12:45 PM", "3:30 PM", "6:15 PM", "9:00 PM"},
		alternatives: []string{"10:45 AM", "02:45 PM", "08:00 PM", "10:30 PM"},
	}
}

// Showtimes returns the showtimes for a movie on a date. The table is fixed
// regardless of movie and date; a known simplification of the demo data, not
// something to second-guess here.
func (s *ShowtimeService) Showtimes(movie model.Movie, date time.Time) []string {
	times := make([]string, len(s.defaults))
	copy(times, s.defaults)
	return times
}

// AlternativeShowtimes returns the table used by the date-selection screen.
func (s *ShowtimeService) AlternativeShowtimes() []string {
	times := make([]string, len(s.alternatives))
	copy(times, s.alternatives)
	return times
}

// DefaultShowtime returns the middle entry of the default table, or "" when
// the table is empty.
func (s *ShowtimeService) DefaultShowtime() string {
	if len(s.defaults) == 0 {
		return ""
	}
	return s.defaults[len(s.defaults)/2]
}

// AvailableDates returns the next count days starting from today's midnight.
func AvailableDates(now time.Time, count int) []time.Time {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dates := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}
