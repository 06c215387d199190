package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"beet-booking-cli/model"
	"beet-booking-cli/seating"
)

type seatCell struct {
	token  string
	status model.SeatStatus
	label  string
}

// renderSeatGrid draws the hall as rows of two-character seat tokens with the
// row label on both sides, the cursor highlighted, and the screen bar below
// the front rows.
func renderSeatGrid(cfg seating.Config, seats []model.Seat, cursorRow int, cursorCol int, showSeatNumbers bool) string {
	rows := len(cfg.Rows)
	cols := cfg.SeatsPerRow
	if rows == 0 || cols == 0 || len(seats) == 0 {
		return "No seat map data."
	}

	rowIndex := make(map[string]int, rows)
	for i, label := range cfg.Rows {
		rowIndex[label] = i
	}

	grid := make([][]seatCell, rows)
	for i := range grid {
		grid[i] = make([]seatCell, cols)
	}

	available := 0
	occupied := 0
	selected := 0
	for _, seat := range seats {
		r, ok := rowIndex[seat.Row]
		c := seat.Number - 1
		if !ok || c < 0 || c >= cols {
			continue
		}
		cell := seatCell{status: seat.Status, label: fmt.Sprintf("%d", seat.Number)}
		switch seat.Status {
		case model.SeatAvailable:
			cell.token = "[]"
			available++
		case model.SeatOccupied:
			cell.token = "XX"
			occupied++
		case model.SeatSelected:
			cell.token = "OO"
			selected++
		default:
			cell.token = "  "
		}
		grid[r][c] = cell
	}

	cellWidth := 2
	if showSeatNumbers {
		for r := range grid {
			for c := range grid[r] {
				if l := len(grid[r][c].label); l > cellWidth {
					cellWidth = l
				}
			}
		}
	}

	styleAvailable := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleOccupied := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleSelected := lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	styleCursor := lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")).Bold(true)

	rowWidth := 2
	for _, label := range cfg.Rows {
		if len(label) > rowWidth {
			rowWidth = len(label)
		}
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		label := cfg.Rows[r]
		b.WriteString(fmt.Sprintf("%*s ", rowWidth, label))
		for c := 0; c < cols; c++ {
			cell := grid[r][c]
			text := cell.token
			if showSeatNumbers && cell.label != "" {
				text = cell.label
			}
			rendered := padCell(text, cellWidth)
			switch {
			case r == cursorRow && c == cursorCol:
				rendered = styleCursor.Render(rendered)
			case cell.status == model.SeatAvailable:
				rendered = styleAvailable.Render(rendered)
			case cell.status == model.SeatOccupied:
				rendered = styleOccupied.Render(rendered)
			case cell.status == model.SeatSelected:
				rendered = styleSelected.Render(rendered)
			}
			b.WriteString(rendered)
			if c < cols-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" %*s\n", rowWidth, label))
	}

	gridWidth := cols*(cellWidth+1) - 1
	screenStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	screenBorderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Background(lipgloss.Color("236"))

	bar := screenBarBlock(gridWidth, "SCREEN")
	indent := strings.Repeat(" ", rowWidth+1)

	b.WriteString("\n")
	b.WriteString(indent + screenBorderStyle.Render(bar.top) + "\n")
	b.WriteString(indent + screenStyle.Render(bar.mid) + "\n")
	b.WriteString(indent + screenBorderStyle.Render(bar.bot) + "\n")
	b.WriteString(indent + hint("Front / Screen") + "\n\n")

	legend := "Legend: [] available • OO selected • XX occupied"
	if showSeatNumbers {
		legend = "Legend: color shows status • numbers are seat positions"
	}
	counts := fmt.Sprintf("Available: %d • Selected: %d • Occupied: %d", available, selected, occupied)
	return b.String() + hint(legend) + "\n" + hint(counts)
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}
