package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/phanxgames/deckui"
)

// TableColumn is the title of the trailing column that holds untethered cards.
// Dropping into it releases a card with no target deck.
const TableColumn = "table"

const defaultLogSize = 8

// eventLog keeps the most recent change events, oldest first. It is shared
// by pointer so that Bubble Tea's model copies see the same history.
type eventLog struct {
	lines []string
	max   int
}

func (l *eventLog) append(line string) {
	l.lines = append(l.lines, line)
	if len(l.lines) > l.max {
		l.lines = l.lines[len(l.lines)-l.max:]
	}
}

// Model is a Bubble Tea model that lets a keyboard play a deckui table. Each
// deck is a column; a trailing column holds untethered cards.
type Model struct {
	ctrl *deckui.Controller
	keys KeyMap
	help help.Model

	col      int    // selected column
	held     string // card being carried, "" when empty-handed
	heldFrom string // deck the held card was lifted from

	removed map[string]int // OnRemove count per deck
	log     *eventLog
	status  string
	width   int
}

// NewModel wraps ctrl. Every registered deck gets an OnRemove hook counting
// departures, chained in front of any hook it already has.
func NewModel(ctrl *deckui.Controller) Model {
	m := Model{
		ctrl:    ctrl,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		removed: make(map[string]int),
		log:     &eventLog{max: defaultLogSize},
	}
	for _, deck := range ctrl.Decks().All() {
		id := deck.ID
		prev := deck.Props.OnRemove
		deck.Props.OnRemove = func(c *deckui.Card) {
			m.removed[id]++
			if prev != nil {
				prev(c)
			}
		}
	}
	ctrl.OnChange(func(ev deckui.ChangeEvent) {
		m.log.append(formatEvent(ev))
	})
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(msg, m.keys.Right):
		if m.col < m.columns()-1 {
			m.col++
		}
	case key.Matches(msg, m.keys.Grab):
		if m.held == "" {
			m = m.pickUp()
		} else {
			m = m.drop(m.columnDeck(m.col))
		}
	case key.Matches(msg, m.keys.Cancel):
		if m.held != "" {
			m = m.drop(m.heldFrom)
		}
	case key.Matches(msg, m.keys.Spawn):
		deckID := m.columnDeck(m.col)
		card := m.ctrl.SpawnCard(deckID, deckui.CardProps{})
		m.status = fmt.Sprintf("spawned %s", card.ID)
	case key.Matches(msg, m.keys.Sandbox):
		m.ctrl.SetSandboxMode(!m.ctrl.SandboxMode())
		if m.ctrl.SandboxMode() {
			m.status = "sandbox on"
		} else {
			m.status = "sandbox off"
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// pickUp lifts the top card of the selected column.
func (m Model) pickUp() Model {
	id := m.topOf(m.col)
	if id == "" {
		m.status = "nothing to pick up"
		return m
	}
	if m.ctrl.SandboxMode() {
		m.status = "sandbox: moves disabled"
		return m
	}
	m.ctrl.MoveCard(id)
	m.held = id
	m.heldFrom = m.ctrl.Cards().Get(id).DeckID
	m.status = fmt.Sprintf("holding %s", id)
	return m
}

// drop releases the held card into deckID, or untethered when deckID is "".
func (m Model) drop(deckID string) Model {
	if m.ctrl.SandboxMode() {
		m.status = "sandbox: moves disabled"
		return m
	}
	m.ctrl.DropCard(m.held, deckID)
	m.status = fmt.Sprintf("dropped %s on %s", m.held, columnName(deckID))
	m.held, m.heldFrom = "", ""
	return m
}

// Held returns the id of the card being carried, or "".
func (m Model) Held() string {
	return m.held
}

// Removed returns how many cards have left deckID since the model was built.
func (m Model) Removed(deckID string) int {
	return m.removed[deckID]
}

func (m Model) columns() int {
	return m.ctrl.Decks().Len() + 1
}

// columnDeck returns the deck id shown in column i, or "" for the table
// column.
func (m Model) columnDeck(i int) string {
	decks := m.ctrl.Decks().All()
	if i < len(decks) {
		return decks[i].ID
	}
	return ""
}

// topOf returns the top card of column i: the deck's top member, or the
// highest floating untethered card in the table column.
func (m Model) topOf(i int) string {
	if deckID := m.columnDeck(i); deckID != "" {
		return m.ctrl.Decks().Get(deckID).Top()
	}
	var top *deckui.Card
	for _, card := range m.looseCards() {
		if top == nil || zOf(card) >= zOf(top) {
			top = card
		}
	}
	if top == nil {
		return ""
	}
	return top.ID
}

func (m Model) looseCards() []*deckui.Card {
	var out []*deckui.Card
	for _, card := range m.ctrl.Cards().All() {
		if card.DeckID == "" {
			out = append(out, card)
		}
	}
	return out
}

func zOf(c *deckui.Card) int {
	if c.Position == nil {
		return 0
	}
	return c.Position.ZIndex
}

// View implements tea.Model.
func (m Model) View() string {
	dropTarget := ""
	if m.held != "" {
		dropTarget = m.columnDeck(m.col)
	}

	var cols []string
	for i, deck := range m.ctrl.Decks().All() {
		var b strings.Builder
		title := deck.Props.Name
		if title == "" {
			title = deck.ID
		}
		b.WriteString(TitleStyle.Render(fmt.Sprintf("%s -%d", title, m.removed[deck.ID])))
		b.WriteString("\n")
		if deck.Len() == 0 {
			b.WriteString(EmptyStyle.Render("(empty)"))
			b.WriteString("\n")
		}
		for _, id := range deck.Cards {
			b.WriteString(m.renderCard(m.ctrl.Cards().Get(id)))
			b.WriteString("\n")
		}
		if m.ctrl.ShowPlaceholder(deck.ID, dropTarget) {
			b.WriteString(PlaceholderStyle.Render("[    ]"))
		}
		cols = append(cols, m.columnStyle(i).Render(strings.TrimRight(b.String(), "\n")))
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(TableColumn))
	for _, card := range m.looseCards() {
		b.WriteString("\n")
		b.WriteString(m.renderCard(card))
	}
	cols = append(cols, m.columnStyle(m.columns()-1).Render(b.String()))

	var out strings.Builder
	out.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	out.WriteString("\n")
	for _, line := range m.log.lines {
		out.WriteString(LogStyle.Render(line))
		out.WriteString("\n")
	}
	out.WriteString(m.statusView())
	out.WriteString("\n")
	out.WriteString(m.help.View(m.keys))
	return out.String()
}

func (m Model) columnStyle(i int) lipgloss.Style {
	if i == m.col {
		return SelectedColumnStyle
	}
	return ColumnStyle
}

func (m Model) renderCard(card *deckui.Card) string {
	if card == nil {
		return ""
	}
	label := card.Label()
	if card.Position != nil {
		return LiftedCardStyle.Render(fmt.Sprintf("^ %s z%d", label, card.Position.ZIndex))
	}
	return CardStyle.Render("  " + label)
}

func (m Model) statusView() string {
	parts := []string{fmt.Sprintf("next id %d", m.ctrl.NextID())}
	if m.held != "" {
		parts = append(parts, "holding "+m.held)
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	s := StatusBarStyle.Render(strings.Join(parts, " | "))
	if m.ctrl.SandboxMode() {
		s += " " + SandboxStyle.Render("SANDBOX")
	}
	return s
}

func formatEvent(ev deckui.ChangeEvent) string {
	switch ev.Type {
	case deckui.ChangeMoved:
		return fmt.Sprintf("moved %s z=%d", ev.CardID, ev.ZIndex)
	case deckui.ChangeDropped:
		return fmt.Sprintf("dropped %s %s -> %s", ev.CardID, columnName(ev.FromDeck), columnName(ev.ToDeck))
	case deckui.ChangeSpawned:
		return fmt.Sprintf("spawned %s in %s", ev.CardID, columnName(ev.ToDeck))
	default:
		return fmt.Sprintf("%s %s", ev.Type, ev.CardID)
	}
}

func columnName(deckID string) string {
	if deckID == "" {
		return TableColumn
	}
	return deckID
}
