// Package study is the interactive slot logger: pick a shift, pick a slot,
// type the minutes. Excess past the slot target lands in the time bank.
package study

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	slotbankdto "timecli/internal/modules/slotbank/dto"
	"timecli/internal/modules/slotbank/domain"
)

type slotPort interface {
	LogSlot(ctx context.Context, date, slot string, minutes int) (slotbankdto.LogSlotOutput, error)
	DayGrid(ctx context.Context, date string) (slotbankdto.DayGridOutput, error)
}

type step int

const (
	stepShift step = iota
	stepSlot
	stepMinutes
	stepDone
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	fullStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	resultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	selectedStyle = lipgloss.NewStyle().Bold(true)
)

type model struct {
	port   slotPort
	target int

	step   step
	cursor int
	shift  domain.Shift
	slots  []domain.Slot
	slot   domain.Slot
	grid   map[string]int
	input  string
	result string
	errMsg string
}

type gridLoadedMsg struct {
	grid map[string]int
	err  error
}

type loggedMsg struct {
	out slotbankdto.LogSlotOutput
	err error
}

func newModel(port slotPort, target int) model {
	return model{port: port, target: target}
}

func (m model) Init() tea.Cmd {
	return m.loadGrid
}

func (m model) loadGrid() tea.Msg {
	out, err := m.port.DayGrid(context.Background(), "today")
	if err != nil {
		return gridLoadedMsg{err: err}
	}
	grid := make(map[string]int, len(out.Slots))
	for _, slot := range out.Slots {
		grid[slot.Key] = slot.Minutes
	}
	return gridLoadedMsg{grid: grid}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case gridLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, tea.Quit
		}
		m.grid = msg.grid
		return m, nil
	case loggedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.step = stepMinutes
			return m, nil
		}
		m.result = fmt.Sprintf("Logged %d min into %s", msg.out.LoggedMinutes, m.slot.Display)
		if msg.out.BankedMinutes > 0 {
			m.result += fmt.Sprintf(" (%d min banked)", msg.out.BankedMinutes)
		}
		m.step = stepDone
		return m, m.loadGrid
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.step != stepMinutes || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case "esc":
		return m.back(), nil
	}

	switch m.step {
	case stepShift:
		return m.updateShift(msg)
	case stepSlot:
		return m.updateSlot(msg)
	case stepMinutes:
		return m.updateMinutes(msg)
	case stepDone:
		if msg.String() == "enter" {
			m.step = stepShift
			m.cursor = 0
			m.result = ""
			return m, nil
		}
	}
	return m, nil
}

func (m model) back() model {
	m.errMsg = ""
	switch m.step {
	case stepSlot:
		m.step = stepShift
		m.cursor = 0
	case stepMinutes:
		m.step = stepSlot
		m.input = ""
	case stepDone:
		m.step = stepShift
		m.cursor = 0
	}
	return m
}

func (m model) updateShift(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	shifts := domain.Shifts()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(shifts)-1 {
			m.cursor++
		}
	case "enter":
		m.shift = shifts[m.cursor]
		m.slots = domain.SlotsInShift(m.shift)
		m.step = stepSlot
		m.cursor = 0
	}
	return m, nil
}

func (m model) updateSlot(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.slots)-1 {
			m.cursor++
		}
	case "enter":
		m.slot = m.slots[m.cursor]
		m.step = stepMinutes
		m.input = ""
		m.errMsg = ""
	}
	return m, nil
}

func (m model) updateMinutes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		minutes, err := strconv.Atoi(strings.TrimSpace(m.input))
		if err != nil || minutes < 0 {
			m.errMsg = "enter a whole number of minutes"
			return m, nil
		}
		m.errMsg = ""
		slot := m.slot
		port := m.port
		return m, func() tea.Msg {
			out, err := port.LogSlot(context.Background(), "today", slot.Key, minutes)
			return loggedMsg{out: out, err: err}
		}
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' {
				m.input += string(r)
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Study log") + "\n\n")

	switch m.step {
	case stepShift:
		b.WriteString("Pick a shift:\n")
		for i, shift := range domain.Shifts() {
			b.WriteString(m.renderLine(i, shift.Name, m.shiftSummary(shift)) + "\n")
		}
		b.WriteString(dimStyle.Render("\n up/down to move, enter to select, q to quit"))
	case stepSlot:
		b.WriteString(fmt.Sprintf("Slots in %s:\n", m.shift.Name))
		for i, slot := range m.slots {
			b.WriteString(m.renderLine(i, slot.Display, m.slotSummary(slot)) + "\n")
		}
		b.WriteString(dimStyle.Render("\n enter to select, esc to go back"))
	case stepMinutes:
		b.WriteString(fmt.Sprintf("Minutes for %s (target %d): %s_\n", m.slot.Display, m.target, m.input))
		if m.errMsg != "" {
			b.WriteString(errStyle.Render(m.errMsg) + "\n")
		}
		b.WriteString(dimStyle.Render("\n enter to log, esc to go back"))
	case stepDone:
		b.WriteString(resultStyle.Render(m.result) + "\n")
		b.WriteString(dimStyle.Render("\n enter to log another slot, q to quit"))
	}
	return b.String() + "\n"
}

func (m model) renderLine(index int, label, note string) string {
	cursor := "  "
	if index == m.cursor {
		cursor = cursorStyle.Render("> ")
		label = selectedStyle.Render(label)
	}
	if note != "" {
		note = " " + dimStyle.Render(note)
	}
	return cursor + label + note
}

func (m model) shiftSummary(shift domain.Shift) string {
	total := 0
	for _, slot := range domain.SlotsInShift(shift) {
		total += m.grid[slot.Key]
	}
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("(%d min)", total)
}

func (m model) slotSummary(slot domain.Slot) string {
	minutes := m.grid[slot.Key]
	note := fmt.Sprintf("(%d/%d min)", minutes, m.target)
	if minutes >= m.target {
		return fullStyle.Render(note)
	}
	return note
}

// Run drives the picker until the user quits.
func Run(port slotPort, targetMinutes int) error {
	_, err := tea.NewProgram(newModel(port, targetMinutes)).Run()
	return err
}
