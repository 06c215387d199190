package seating

const (
	defaultSeatsPerRow   = 8
	defaultStandardPrice = 15.0
	defaultMinTickets    = 1
	defaultMaxTickets    = 10
	defaultHall          = "Hall 1"

	// 1 in 8 per seat, tuned for demo seat maps.
	defaultOccupancyProbability = 0.125
)

// Config carries the knobs for one seat-allocation session: the hall shape,
// pricing and ticket-count bounds.
type Config struct {
	Rows                 []string
	SeatsPerRow          int
	StandardPrice        float64
	MinTickets           int
	MaxTickets           int
	OccupancyProbability float64
	Hall                 string
}

func DefaultConfig() Config {
	return Config{
		Rows:                 []string{"A", "B", "C", "D", "E", "F", "G", "H"},
		SeatsPerRow:          defaultSeatsPerRow,
		StandardPrice:        defaultStandardPrice,
		MinTickets:           defaultMinTickets,
		MaxTickets:           defaultMaxTickets,
		OccupancyProbability: defaultOccupancyProbability,
		Hall:                 defaultHall,
	}
}
