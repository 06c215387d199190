package service

import "beet-booking-cli/model"

// NowShowing returns the demo movie catalog. In a real deployment this would
// come from a content API; the demo ships a fixed bill.
func NowShowing() []model.Movie {
	return []model.Movie{
		{
			Id:          "the-bad-guys",
			Title:       "the BAD GUYS",
			Genre:       "Animation",
			Duration:    "96 min",
			Rating:      7.7,
			PosterImage: "poster-placeholder",
			Synopsis:    "After a lifetime of legendary heists, notorious criminals Mr. Wolf, Mr. Snake, Mr. Piranha, Mr. Shark, and Ms. Tarantula are finally caught.",
			Year:        2025,
			Tagline:     "BACK IN BADNESS",
			ImdbRating:  7.7,
		},
		{
			Id:          "dune-part-two",
			Title:       "Dune: Part Two",
			Genre:       "Sci-Fi / Adventure",
			Duration:    "2h 46m",
			Rating:      4.8,
			PosterImage: "poster-placeholder",
			Synopsis:    "Paul Atreides unites with Chani and the Fremen while on a warpath of revenge against the conspirators who destroyed his family.",
			IsIMAX:      true,
		},
		{
			Id:          "inside-out-2",
			Title:       "Inside Out 2",
			Genre:       "Animation / Family",
			Duration:    "96 min",
			Rating:      7.6,
			PosterImage: "poster-placeholder",
			Synopsis:    "Joy, Sadness, Anger, Fear and Disgust make room for new emotions as Riley's headquarters undergoes a sudden demolition.",
			Year:        2024,
			ImdbRating:  7.6,
		},
		{
			Id:          "furiosa",
			Title:       "Furiosa: A Mad Max Saga",
			Genre:       "Action / Adventure",
			Duration:    "2h 28m",
			Rating:      7.5,
			PosterImage: "poster-placeholder",
			Synopsis:    "Snatched from the Green Place of Many Mothers, young Furiosa falls into the hands of a great biker horde led by the warlord Dementus.",
			IsIMAX:      true,
			Year:        2024,
			ImdbRating:  7.5,
		},
	}
}
