package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"beet-booking-cli/model"
)

const (
	maxTickets      = 20
	maxRecentMovies = 8
)

type ticketHistory struct {
	Tickets []model.Booking `json:"tickets"`
}

type RecentMovie struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type movieHistory struct {
	Movies []RecentMovie `json:"movies"`
}

// LoadTickets returns saved ticket stubs, newest first.
func LoadTickets() ([]model.Booking, error) {
	path, err := configPath("tickets.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var history ticketHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.New("invalid ticket history format")
	}
	return history.Tickets, nil
}

// SaveTicket prepends a confirmed booking to the ticket history, keeping the
// newest maxTickets entries.
func SaveTicket(booking model.Booking) error {
	history, _ := LoadTickets()
	next := []model.Booking{booking}

	for _, existing := range history {
		if existing.Id == booking.Id && existing.Id != "" {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxTickets {
			break
		}
	}

	return saveTickets(next)
}

func LoadRecentMovies() ([]RecentMovie, error) {
	path, err := configPath("movies.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var history movieHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.New("invalid movie history format")
	}
	return history.Movies, nil
}

func RememberMovie(movie model.Movie) error {
	history, _ := LoadRecentMovies()
	next := []RecentMovie{{ID: movie.Id, Title: movie.Title}}

	for _, existing := range history {
		if existing.ID == movie.Id && existing.ID != "" {
			continue
		}
		if existing.Title != "" && strings.EqualFold(existing.Title, movie.Title) {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentMovies {
			break
		}
	}

	return saveRecentMovies(next)
}

func saveTickets(tickets []model.Booking) error {
	path, err := configPath("tickets.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	history := ticketHistory{Tickets: tickets}
	payload, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func saveRecentMovies(movies []RecentMovie) error {
	path, err := configPath("movies.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	history := movieHistory{Movies: movies}
	payload, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "beet-booking-cli", name), nil
}
