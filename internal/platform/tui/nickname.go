package tui

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MaxNicknameLength is the longest accepted nickname, in runes.
const MaxNicknameLength = 16

var (
	ErrNicknameEmpty    = errors.New("nickname cannot be empty")
	ErrNicknameTooLong  = errors.New("nickname is too long")
	ErrNicknameNotPrint = errors.New("nickname contains non-printable characters")
)

// ValidateNickname trims s and checks it can name a player profile.
func ValidateNickname(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrNicknameEmpty
	}
	if utf8.RuneCountInString(s) > MaxNicknameLength {
		return "", ErrNicknameTooLong
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return "", ErrNicknameNotPrint
		}
	}
	return s, nil
}

// nicknamePrompt asks for a nickname before the first run.
type nicknamePrompt struct {
	input textinput.Model
	err   error
}

func newNicknamePrompt(suggested string) nicknamePrompt {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = MaxNicknameLength
	ti.Width = MaxNicknameLength + 1
	ti.Prompt = "> "
	ti.SetValue(suggested)
	ti.CursorEnd()
	ti.Focus()
	return nicknamePrompt{input: ti}
}

// submit validates the current value. On failure the input is cleared and
// the error shown as the placeholder.
func (p *nicknamePrompt) submit() (string, bool) {
	name, err := ValidateNickname(p.input.Value())
	if err != nil {
		p.err = err
		p.input.SetValue("")
		p.input.Placeholder = err.Error()
		return "", false
	}
	p.err = nil
	return name, true
}

func (p nicknamePrompt) update(msg tea.Msg) (nicknamePrompt, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p nicknamePrompt) view(r *lipgloss.Renderer, width, height int) string {
	title := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Render("LANE DASH")
	label := r.NewStyle().
		Foreground(lipgloss.Color("245")).
		Render("Enter your nickname")

	lines := []string{title, "", label, p.input.View()}
	if p.err != nil {
		lines = append(lines, r.NewStyle().Foreground(lipgloss.Color("9")).Render(p.err.Error()))
	}
	lines = append(lines, "", r.NewStyle().Foreground(lipgloss.Color("241")).Render("enter: play • ctrl+c: quit"))

	box := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))

	return r.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
