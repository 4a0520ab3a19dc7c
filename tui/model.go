package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/meghashyamc/advocates/client"
	"github.com/meghashyamc/advocates/models"
	"github.com/meghashyamc/advocates/render"
)

// headerHeight is the number of lines drawn above the results.
const headerHeight = 6

type stateMsg client.State

type sessionClosedMsg struct{}

// Model is the bubbletea model of the interactive advocate search.
type Model struct {
	session *client.Session
	styles  render.Styles

	input    textinput.Model
	table    table.Model
	viewport viewport.Model

	state  client.State
	width  int
	height int
}

func New(session *client.Session) Model {
	input := textinput.New()
	input.Placeholder = "Search advocates..."
	input.Prompt = "Search: "
	input.CharLimit = 100
	input.Width = 40
	input.Focus()

	columns := make([]table.Column, 0, len(render.TableHeaders))
	for i, header := range render.TableHeaders {
		width := 14
		if i == 4 {
			width = 40
		}
		columns = append(columns, table.Column{Title: header, Width: width})
	}

	return Model{
		session:  session,
		styles:   render.DefaultStyles(),
		input:    input,
		table:    table.New(table.WithColumns(columns), table.WithFocused(true), table.WithHeight(15)),
		viewport: viewport.New(80, 20),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForState(m.session.Updates()))
}

// waitForState blocks until the session publishes the next state.
func waitForState(updates <-chan client.State) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-updates
		if !ok {
			return sessionClosedMsg{}
		}
		return stateMsg(state)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := max(msg.Height-headerHeight, 3)
		m.viewport.Width = msg.Width
		m.viewport.Height = bodyHeight
		m.table.SetHeight(bodyHeight)
		m.refreshBody()
		return m, nil

	case stateMsg:
		m.state = client.State(msg)
		m.refreshBody()
		return m, waitForState(m.session.Updates())

	case sessionClosedMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.session.Dispatch(client.ToggleView{})
			return m, nil
		case "ctrl+r":
			m.input.SetValue("")
			m.session.Dispatch(client.Reset{})
			return m, nil
		case "ctrl+d":
			m.cycleFacet(client.FacetDegree)
			return m, nil
		case "ctrl+e":
			m.cycleFacet(client.FacetExperience)
			return m, nil
		case "ctrl+t":
			m.cycleFacet(client.FacetCity)
			return m, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			if m.state.View == client.ViewTable {
				m.table, cmd = m.table.Update(msg)
			} else {
				m.viewport, cmd = m.viewport.Update(msg)
			}
			return m, cmd
		}
	}

	previous := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != previous {
		m.session.Dispatch(client.SearchChanged{Term: m.input.Value()})
	}

	return m, cmd
}

func (m *Model) cycleFacet(facet client.Facet) {
	next := nextValue(facetValues(m.state, facet), m.state.Facets.Get(facet))
	m.session.Dispatch(client.FacetChanged{Facet: facet, Value: next})
}

func (m *Model) refreshBody() {
	rows := make([]table.Row, 0, len(m.state.Displayed))
	for _, advocate := range m.state.Displayed {
		rows = append(rows, table.Row(render.TableRow(advocate)))
	}
	m.table.SetRows(rows)

	m.viewport.SetContent(m.styles.Cards(m.state.Displayed, render.CardsPerRow(m.width)))
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.facetsLine())
	b.WriteString("\n\n")

	switch {
	case m.state.Err != "":
		b.WriteString(m.styles.ErrorView(m.state.Err))
	case m.state.Loading && len(m.state.Records) == 0:
		b.WriteString(m.styles.SummaryLine.Render("Loading..."))
	default:
		summary := m.styles.Summary(len(m.state.Displayed), m.state.Total, strings.TrimSpace(m.state.DebouncedTerm))
		if m.state.Loading {
			summary += m.styles.SummaryLine.Render(" (updating)")
		}
		b.WriteString(summary)
		b.WriteString("\n")
		if m.state.View == client.ViewTable {
			b.WriteString(m.table.View())
		} else {
			b.WriteString(m.viewport.View())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("tab: cards/table · ctrl+d degree · ctrl+e experience · ctrl+t city · ctrl+r reset · esc quit"))

	return b.String()
}

func (m Model) facetsLine() string {
	label := func(facet client.Facet, title string) string {
		value := m.state.Facets.Get(facet)
		if value == "" {
			value = "Any"
		}
		return m.styles.Label.Render(title+": ") + value
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		label(client.FacetDegree, "Degree"), "   ",
		label(client.FacetExperience, "Experience"), "   ",
		label(client.FacetCity, "City"), "   ",
		m.styles.Label.Render(fmt.Sprintf("View: %s", m.state.View)),
	)
}

// facetValues lists the values a facet cycles through. Server facet options are preferred,
// otherwise the values are taken from the unfiltered records.
func facetValues(state client.State, facet client.Facet) []string {
	if state.Options != nil {
		var counts []models.FacetCount
		switch facet {
		case client.FacetDegree:
			counts = state.Options.Degrees
		case client.FacetCity:
			counts = state.Options.Cities
		case client.FacetExperience:
			counts = state.Options.Experience
		}
		if len(counts) > 0 {
			values := make([]string, 0, len(counts))
			for _, count := range counts {
				values = append(values, count.Value)
			}
			return values
		}
	}

	if facet == client.FacetExperience {
		return models.DefaultBrackets
	}

	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, advocate := range state.AllRecordsForFacets {
		value := advocate.Degree
		if facet == client.FacetCity {
			value = advocate.City
		}
		if !seen[value] {
			seen[value] = true
			values = append(values, value)
		}
	}
	return values
}

// nextValue steps through values and wraps back to no selection after the last one.
func nextValue(values []string, current string) string {
	if current == "" {
		if len(values) == 0 {
			return ""
		}
		return values[0]
	}

	for i, value := range values {
		if value == current && i+1 < len(values) {
			return values[i+1]
		}
	}
	return ""
}
