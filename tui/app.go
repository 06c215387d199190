package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/skip2/go-qrcode"

	"beet-booking-cli/model"
	"beet-booking-cli/seating"
	"beet-booking-cli/service"
	"beet-booking-cli/store"
)

type appState int

const (
	stateSelectMovie appState = iota
	stateSelectDate
	stateSelectTime
	stateSelectTickets
	stateSelectSeats
	stateCheckout
	stateProcessing
	stateSuccess
	stateTicketHistory
	stateError
)

type appModel struct {
	showtimes *service.ShowtimeService
	payments  *service.PaymentService
	cfg       seating.Config

	state     appState
	lastState appState
	err       error

	width  int
	height int

	movieList   list.Model
	dateList    list.Model
	timeList    list.Model
	methodList  list.Model
	historyList list.Model

	spinner spinner.Model

	movie       model.Movie
	date        time.Time
	showtime    string
	ticketCount int

	alternativeTimes bool

	engine          *seating.Engine
	cursorRow       int
	cursorCol       int
	showSeatNumbers bool

	booking    model.Booking
	hasBooking bool
}

type errMsg struct {
	err error
}

type paymentMsg struct {
	err error
}

func New() tea.Model {
	cfg := seating.DefaultConfig()
	m := appModel{
		showtimes:   service.NewShowtimeService(),
		payments:    service.NewPaymentService(nil),
		cfg:         cfg,
		state:       stateSelectMovie,
		date:        truncateDate(time.Now()),
		ticketCount: cfg.MinTickets,
	}

	m.movieList = newList("Now Showing")
	m.dateList = newList("Select Date")
	m.timeList = newList("Select Showtime")
	m.methodList = newList("Payment Method")
	m.historyList = newList("Your Tickets")

	m.movieList.SetItems(buildMovieItems(service.NowShowing()))
	m.methodList.SetItems(buildMethodItems())
	m.showSeatNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.handleFilterInput(msg) {
			return m, nil
		}
		var handled bool
		m, cmd, handled := m.handleKey(msg)
		if handled {
			return m, cmd
		}
		// fallthrough to component update

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.state == stateProcessing {
			return m, cmd
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		m.lastState = m.state
		m.state = stateError
		return m, nil

	case paymentMsg:
		if msg.err != nil {
			m.err = msg.err
			m.lastState = stateCheckout
			m.state = stateError
			return m, nil
		}
		_ = store.SaveTicket(m.booking)
		m.state = stateSuccess
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateSelectMovie:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateSelectDate:
		m.dateList, cmd = m.dateList.Update(msg)
	case stateSelectTime:
		m.timeList, cmd = m.timeList.Update(msg)
	case stateCheckout:
		m.methodList, cmd = m.methodList.Update(msg)
	case stateTicketHistory:
		m.historyList, cmd = m.historyList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateSelectMovie:
		return header + "\n\n" + m.movieList.View()
	case stateSelectDate:
		return header + "\n\n" + m.dateList.View()
	case stateSelectTime:
		return header + "\n\n" + m.timeList.View()
	case stateSelectTickets:
		return header + "\n\n" + m.ticketCountView()
	case stateSelectSeats:
		return header + "\n\n" + m.seatSelectionView()
	case stateCheckout:
		return header + "\n\n" + m.checkoutView()
	case stateProcessing:
		return header + "\n\n" + fmt.Sprintf("%s Processing payment\n\n%s", m.spinner.View(), hint("Contacting payment provider..."))
	case stateSuccess:
		return header + "\n\n" + m.successView()
	case stateTicketHistory:
		return header + "\n\n" + m.historyList.View()
	case stateError:
		return header + "\n\n" + m.errorView()
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Beet Booking")
	sub := []string{}
	if m.movie.Title != "" && m.state != stateSelectMovie {
		sub = append(sub, fmt.Sprintf("Movie: %s", m.movie.Title))
	}
	if !m.date.IsZero() && m.state >= stateSelectTime && m.state <= stateSuccess {
		sub = append(sub, fmt.Sprintf("Date: %s", m.date.Format(time.DateOnly)))
	}
	if m.showtime != "" && m.state >= stateSelectTickets && m.state <= stateSuccess {
		sub = append(sub, fmt.Sprintf("Time: %s", m.showtime))
	}
	if m.state >= stateSelectSeats && m.state <= stateSuccess && m.engine != nil {
		sub = append(sub, fmt.Sprintf("Tickets: %d", m.engine.TicketCount()))
		sub = append(sub, fmt.Sprintf("Total: %s", formatPrice(m.engine.TotalPrice())))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • esc back • type to filter"
	switch m.state {
	case stateSelectMovie:
		hints = "ctrl+c quit • enter select movie • type to filter • ctrl+t your tickets"
	case stateSelectTime:
		hints = "ctrl+c quit • esc back • enter select time • tab late showtimes"
		if m.alternativeTimes {
			hints = "ctrl+c quit • esc back • enter select time • tab regular showtimes"
		}
	case stateSelectTickets:
		hints = "ctrl+c quit • esc back • ←/→ adjust count • enter continue"
	case stateSelectSeats:
		hints = "ctrl+c quit • esc back • arrows move • enter pick seats • n numbers • c checkout"
	case stateCheckout:
		hints = "ctrl+c quit • esc back • enter pay"
	case stateProcessing:
		hints = "ctrl+c quit"
	case stateSuccess:
		hints = "enter book another movie • ctrl+c quit"
	case stateError:
		hints = "enter retry • esc back • ctrl+c quit"
	}

	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Filter: %s", filter))
		}
	}
	return title + meta + filterLine + "\n" + hint(hints)
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		next := m.goBack()
		return next, nil, true
	case "ctrl+t":
		if m.state == stateSelectMovie {
			return m.openTicketHistory()
		}
	case "tab":
		if m.state == stateSelectTime {
			m.alternativeTimes = !m.alternativeTimes
			m.rebuildTimeList()
			return m, nil, true
		}
	}

	if m.state == stateSelectTickets {
		if next, handled := m.handleTicketCountKey(msg); handled {
			return next, nil, true
		}
	}
	if m.state == stateSelectSeats {
		if next, cmd, handled := m.handleSeatKey(msg); handled {
			return next, cmd, true
		}
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateSelectMovie:
			item, ok := m.movieList.SelectedItem().(movieItem)
			if !ok {
				return m, nil, true
			}
			m.movie = item.movie
			_ = store.RememberMovie(m.movie)
			m.dateList.SetItems(buildDateItems(truncateDate(time.Now()), 7))
			m.state = stateSelectDate
			return m, nil, true
		case stateSelectDate:
			item, ok := m.dateList.SelectedItem().(dateItem)
			if !ok {
				return m, nil, true
			}
			m.date = item.date
			// Changing the date resets any previously picked time.
			m.showtime = ""
			m.alternativeTimes = false
			m.rebuildTimeList()
			m.state = stateSelectTime
			return m, nil, true
		case stateSelectTime:
			item, ok := m.timeList.SelectedItem().(timeItem)
			if !ok {
				return m, nil, true
			}
			m.showtime = item.value
			m.ticketCount = clampTickets(m.ticketCount, m.cfg)
			m.state = stateSelectTickets
			return m, nil, true
		case stateSelectTickets:
			return m.startSeatSelection()
		case stateCheckout:
			item, ok := m.methodList.SelectedItem().(methodItem)
			if !ok {
				return m, nil, true
			}
			m.state = stateProcessing
			return m, tea.Batch(m.processPaymentCmd(m.booking, item.method), m.spinner.Tick), true
		case stateSuccess:
			next := m.resetToMovies()
			return next, nil, true
		case stateError:
			if m.hasBooking && m.lastState == stateCheckout {
				item, ok := m.methodList.SelectedItem().(methodItem)
				if !ok {
					return m, nil, true
				}
				m.state = stateProcessing
				return m, tea.Batch(m.processPaymentCmd(m.booking, item.method), m.spinner.Tick), true
			}
			m.state = m.lastState
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m appModel) handleTicketCountKey(msg tea.KeyMsg) (appModel, bool) {
	switch msg.String() {
	case "left", "h", "-":
		if m.ticketCount > m.cfg.MinTickets {
			m.ticketCount--
		}
		return m, true
	case "right", "l", "+":
		if m.ticketCount < m.cfg.MaxTickets {
			m.ticketCount++
		}
		return m, true
	}
	return m, false
}

func (m appModel) handleSeatKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	rows := len(m.cfg.Rows)
	cols := m.cfg.SeatsPerRow
	switch msg.String() {
	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
		return m, nil, true
	case "down", "j":
		if m.cursorRow < rows-1 {
			m.cursorRow++
		}
		return m, nil, true
	case "left", "h":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
		return m, nil, true
	case "right", "l":
		if m.cursorCol < cols-1 {
			m.cursorCol++
		}
		return m, nil, true
	case "n":
		m.showSeatNumbers = !m.showSeatNumbers
		return m, nil, true
	case "enter", " ":
		if m.engine == nil {
			return m, nil, true
		}
		id := model.SeatId(m.cfg.Rows[m.cursorRow], m.cursorCol+1)
		if err := m.engine.ToggleSeat(id); err != nil {
			return m, errCmd(err), true
		}
		return m, nil, true
	case "c":
		if m.engine == nil || !m.engine.SelectionComplete() {
			return m, nil, true
		}
		m.booking = m.engine.CreateBooking()
		m.hasBooking = true
		m.state = stateCheckout
		return m, nil, true
	}
	return m, nil, false
}

func (m appModel) startSeatSelection() (appModel, tea.Cmd, bool) {
	seats, err := seating.GenerateSeatMap(m.cfg, nil)
	if err != nil {
		return m, errCmd(err), true
	}
	engine, err := seating.NewEngine(m.cfg, m.movie, m.showtime, m.ticketCount, seats)
	if err != nil {
		return m, errCmd(err), true
	}
	m.engine = engine
	m.cursorRow = len(m.cfg.Rows) / 2
	m.cursorCol = m.cfg.SeatsPerRow / 2
	m.hasBooking = false
	m.state = stateSelectSeats
	return m, nil, true
}

func (m appModel) openTicketHistory() (appModel, tea.Cmd, bool) {
	tickets, err := store.LoadTickets()
	if err != nil {
		return m, errCmd(err), true
	}
	m.historyList.SetItems(buildTicketItems(tickets))
	m.state = stateTicketHistory
	return m, nil, true
}

func (m appModel) goBack() appModel {
	switch m.state {
	case stateSelectDate:
		m.state = stateSelectMovie
	case stateSelectTime:
		m.state = stateSelectDate
	case stateSelectTickets:
		m.state = stateSelectTime
	case stateSelectSeats:
		// A new engine is built on re-entry; the old session is discarded.
		m.engine = nil
		m.state = stateSelectTickets
	case stateCheckout:
		m.state = stateSelectSeats
	case stateSuccess:
		return m.resetToMovies()
	case stateTicketHistory:
		m.state = stateSelectMovie
	case stateError:
		m.state = m.lastState
	}
	return m
}

func (m appModel) resetToMovies() appModel {
	m.movie = model.Movie{}
	m.showtime = ""
	m.date = truncateDate(time.Now())
	m.ticketCount = m.cfg.MinTickets
	m.engine = nil
	m.hasBooking = false
	m.alternativeTimes = false
	m.movieList.SetItems(buildMovieItems(service.NowShowing()))
	m.state = stateSelectMovie
	return m
}

func (m *appModel) rebuildTimeList() {
	var times []string
	if m.alternativeTimes {
		times = m.showtimes.AlternativeShowtimes()
	} else {
		times = m.showtimes.Showtimes(m.movie, m.date)
	}
	def := ""
	if !m.alternativeTimes {
		def = m.showtimes.DefaultShowtime()
	}
	items := make([]list.Item, 0, len(times))
	defIndex := 0
	for i, value := range times {
		items = append(items, timeItem{value: value, def: value == def})
		if value == def {
			defIndex = i
		}
	}
	m.timeList.SetItems(items)
	m.timeList.Select(defIndex)
}

func (m appModel) ticketCountView() string {
	countStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("63")).
		Padding(0, 3)

	left := "◀"
	right := "▶"
	if m.ticketCount <= m.cfg.MinTickets {
		left = hint(left)
	}
	if m.ticketCount >= m.cfg.MaxTickets {
		right = hint(right)
	}

	row := lipgloss.JoinHorizontal(
		lipgloss.Center,
		left,
		"  ",
		countStyle.Render(fmt.Sprintf("%d", m.ticketCount)),
		"  ",
		right,
	)

	total := float64(m.ticketCount) * m.cfg.StandardPrice
	lines := []string{
		"How many tickets?",
		"",
		row,
		"",
		hint(fmt.Sprintf("%s per seat • %s total", formatPrice(m.cfg.StandardPrice), formatPrice(total))),
	}
	return strings.Join(lines, "\n")
}

func (m appModel) seatSelectionView() string {
	if m.engine == nil {
		return "No seat map data."
	}
	grid := renderSeatGrid(m.cfg, m.engine.Seats(), m.cursorRow, m.cursorCol, m.showSeatNumbers)

	status := fmt.Sprintf("Selected %d of %d", m.engine.SelectionCount(), m.engine.TicketCount())
	if m.engine.SelectionComplete() {
		status += " • press c to checkout"
	} else if m.engine.SelectionCount() > 0 {
		status += " • not enough free seats here, try another spot"
	}
	if names := seatNames(m.engine.SelectedSeats()); len(names) > 0 {
		status += " • " + strings.Join(names, " ")
	}
	return grid + "\n\n" + hint(status)
}

func (m appModel) checkoutView() string {
	panelStyle := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63"))

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(m.booking.Movie.Title),
		fmt.Sprintf("%s • %s • %s", m.date.Format(time.DateOnly), m.booking.Time, m.booking.CinemaHall),
		fmt.Sprintf("Seats: %s", strings.Join(m.booking.SeatNames(), " ")),
		fmt.Sprintf("Total: %s", formatPrice(m.booking.TotalPrice)),
	}
	summary := panelStyle.Render(strings.Join(lines, "\n"))

	return summary + "\n\n" + m.methodList.View()
}

func (m appModel) successView() string {
	panelStyle := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("2"))

	titleChip := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("2")).
		Padding(0, 2)

	lines := []string{
		titleChip.Render("Booking Confirmed"),
		"",
		lipgloss.NewStyle().Bold(true).Render(m.booking.Movie.Title),
		fmt.Sprintf("%s • %s • %s", m.booking.Date.Format(time.DateOnly), m.booking.Time, m.booking.CinemaHall),
		fmt.Sprintf("Seats: %s", strings.Join(m.booking.SeatNames(), " ")),
		fmt.Sprintf("Total: %s", formatPrice(m.booking.TotalPrice)),
		"",
		hint(fmt.Sprintf("Ref: %s", m.booking.Id)),
	}
	card := panelStyle.Render(strings.Join(lines, "\n"))

	if qr := ticketQR(m.booking.Id); qr != "" {
		return card + "\n" + qr + hint("Show this code at the entrance.")
	}
	return card
}

func (m appModel) errorView() string {
	message := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error())
	if m.hasBooking && m.lastState == stateCheckout {
		advice := "Your booking is still valid. Press enter to retry, or esc to pick another payment method."
		if service.IsPaymentDeclined(m.err) {
			advice = "Your booking is still valid. Try again or switch the payment method."
		}
		return message + "\n\n" + hint(advice)
	}
	return message + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
}

func (m appModel) processPaymentCmd(booking model.Booking, method model.PaymentMethod) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		err := m.payments.ProcessPayment(ctx, booking, method)
		return paymentMsg{err: err}
	}
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateSelectMovie:
		return &m.movieList
	case stateSelectDate:
		return &m.dateList
	case stateSelectTime:
		return &m.timeList
	case stateCheckout:
		return &m.methodList
	case stateTicketHistory:
		return &m.historyList
	default:
		return nil
	}
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.dateList.SetSize(m.width, h)
	m.timeList.SetSize(m.width, h)
	m.methodList.SetSize(m.width, h)
	m.historyList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func clampTickets(count int, cfg seating.Config) int {
	if count < cfg.MinTickets {
		return cfg.MinTickets
	}
	if count > cfg.MaxTickets {
		return cfg.MaxTickets
	}
	return count
}

func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

func seatNames(seats []model.Seat) []string {
	names := make([]string, 0, len(seats))
	for _, seat := range seats {
		names = append(names, seat.DisplayName())
	}
	return names
}

func ticketQR(content string) string {
	if content == "" {
		return ""
	}
	qr, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return ""
	}
	return qr.ToSmallString(false)
}

type movieItem struct {
	movie  model.Movie
	recent bool
}

func (i movieItem) Title() string {
	if i.movie.IsIMAX {
		return i.movie.Title + " • IMAX"
	}
	return i.movie.Title
}

func (i movieItem) Description() string {
	parts := []string{}
	if i.recent {
		parts = append(parts, "Recent")
	}
	if i.movie.Genre != "" {
		parts = append(parts, i.movie.Genre)
	}
	if i.movie.Duration != "" {
		parts = append(parts, i.movie.Duration)
	}
	if i.movie.ImdbRating > 0 {
		parts = append(parts, fmt.Sprintf("IMDb %.1f", i.movie.ImdbRating))
	}
	return strings.Join(parts, " • ")
}

func (i movieItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{i.movie.Title, i.movie.Genre, i.movie.Tagline}, " "))
}

func buildMovieItems(movies []model.Movie) []list.Item {
	recents, _ := store.LoadRecentMovies()
	recentIds := map[string]bool{}
	for _, recent := range recents {
		if recent.ID != "" {
			recentIds[recent.ID] = true
		}
	}

	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{movie: movie, recent: recentIds[movie.Id]})
	}
	return items
}

type dateItem struct {
	date time.Time
}

func (d dateItem) Title() string {
	if isSameDay(d.date, time.Now()) {
		return fmt.Sprintf("%s • %s (Today)", d.date.Format("Mon"), d.date.Format("02/01"))
	}
	return fmt.Sprintf("%s • %s", d.date.Format("Mon"), d.date.Format("02/01"))
}

func (d dateItem) Description() string {
	return d.date.Format(time.DateOnly)
}

func (d dateItem) FilterValue() string {
	return d.Title()
}

func buildDateItems(base time.Time, count int) []list.Item {
	items := make([]list.Item, 0, count)
	for _, date := range service.AvailableDates(base, count) {
		items = append(items, dateItem{date: date})
	}
	return items
}

func isSameDay(a time.Time, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

type timeItem struct {
	value string
	def   bool
}

func (t timeItem) Title() string {
	return t.value
}

func (t timeItem) Description() string {
	if t.def {
		return "Most popular"
	}
	return ""
}

func (t timeItem) FilterValue() string {
	return strings.ToLower(t.value)
}

type methodItem struct {
	method model.PaymentMethod
}

func (i methodItem) Title() string {
	return string(i.method)
}

func (i methodItem) Description() string {
	switch i.method {
	case model.PaymentWallet:
		return "Pay with your device wallet"
	case model.PaymentCreditCard:
		return "Visa, Mastercard, Amex"
	case model.PaymentPayPal:
		return "Redirect-free PayPal checkout"
	default:
		return ""
	}
}

func (i methodItem) FilterValue() string {
	return strings.ToLower(string(i.method))
}

func buildMethodItems() []list.Item {
	methods := model.PaymentMethods()
	items := make([]list.Item, 0, len(methods))
	for _, method := range methods {
		items = append(items, methodItem{method: method})
	}
	return items
}

type ticketItem struct {
	booking model.Booking
}

func (t ticketItem) Title() string {
	return fmt.Sprintf("%s • %s", t.booking.Movie.Title, t.booking.Time)
}

func (t ticketItem) Description() string {
	parts := []string{
		t.booking.Date.Format(time.DateOnly),
		strings.Join(t.booking.SeatNames(), " "),
		formatPrice(t.booking.TotalPrice),
	}
	return strings.Join(parts, " • ")
}

func (t ticketItem) FilterValue() string {
	return strings.ToLower(strings.Join(append([]string{t.booking.Movie.Title}, t.booking.SeatNames()...), " "))
}

func buildTicketItems(tickets []model.Booking) []list.Item {
	items := make([]list.Item, 0, len(tickets))
	for _, booking := range tickets {
		items = append(items, ticketItem{booking: booking})
	}
	return items
}
