package model

type Movie struct {
	Id          string  `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Duration    string  `json:"duration"`
	Rating      float64 `json:"rating"`
	PosterImage string  `json:"posterImage"`
	Synopsis    string  `json:"synopsis"`
	IsIMAX      bool    `json:"isImax"`
	Year        int     `json:"year,omitempty"`
	Tagline     string  `json:"tagline,omitempty"`
	ImdbRating  float64 `json:"imdbRating,omitempty"`
}
