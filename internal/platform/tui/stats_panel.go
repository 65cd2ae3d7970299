package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-dash/internal/core"
	"github.com/vovakirdan/lane-dash/internal/storage"
)

const recentRunsShown = 10

// statsPanel shows the player's cumulative statistics and recent runs.
type statsPanel struct {
	stats storage.PlayerStats
	runs  []storage.Run
	table table.Model
	err   error
}

// loadStatsPanel reads the panel data. A nil store yields empty stats.
func loadStatsPanel(store *storage.Store, nickname string, height int) statsPanel {
	p := statsPanel{stats: storage.PlayerStats{Nickname: nickname, MaxLevel: 1}}
	if store != nil {
		if p.stats, p.err = store.PlayerStats(nickname); p.err == nil {
			p.runs, p.err = store.RecentRuns(nickname, recentRunsShown)
		}
	}
	p.table = newRunsTable(p.runs, height)
	return p
}

func newRunsTable(runs []storage.Run, height int) table.Model {
	columns := []table.Column{
		{Title: "Outcome", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Coins", Width: 6},
		{Title: "Time", Width: 9},
		{Title: "Date", Width: 12},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		outcome := r.Outcome
		if r.NewRecord {
			outcome += "*"
		}
		rows[i] = table.Row{
			outcome,
			strconv.Itoa(r.Level),
			strconv.Itoa(r.TotalCoins),
			core.FormatTime(r.Duration),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(min(len(rows), height-16), 1)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (p statsPanel) update(msg tea.Msg) (statsPanel, tea.Cmd) {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

// statLines returns the label/value pairs shown above the run table.
func (p statsPanel) statLines() [][2]string {
	s := p.stats
	return [][2]string{
		{"Nickname", s.Nickname},
		{"Best time", s.BestTimeString()},
		{"Games", strconv.Itoa(s.TotalGames)},
		{"Wins", strconv.Itoa(s.Wins)},
		{"Win rate", s.WinRateString()},
		{"Coins", strconv.Itoa(s.TotalCoins)},
		{"Max level", strconv.Itoa(s.MaxLevel)},
	}
}

func (p statsPanel) view(r *lipgloss.Renderer, width, height int) string {
	title := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Render("PLAYER STATS")
	labelStyle := r.NewStyle().Foreground(lipgloss.Color("245")).Width(11)
	valueStyle := r.NewStyle().Bold(true)
	dim := r.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	for _, kv := range p.statLines() {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(kv[0]), valueStyle.Render(kv[1]))
	}

	parts := []string{title, "", strings.TrimRight(b.String(), "\n"), ""}
	switch {
	case p.err != nil:
		parts = append(parts, r.NewStyle().Foreground(lipgloss.Color("9")).Render("stats unavailable: "+p.err.Error()))
	case len(p.runs) == 0:
		parts = append(parts, dim.Italic(true).Render("No runs recorded yet."))
	default:
		parts = append(parts, p.table.View())
	}
	parts = append(parts, "", dim.Render("tab/esc: close • ↑/↓: scroll"))

	box := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	return r.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
