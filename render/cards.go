package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/meghashyamc/advocates/models"
)

var (
	colorSenior = lipgloss.Color("#2E7D32")
	colorMid    = lipgloss.Color("#1565C0")
	colorJunior = lipgloss.Color("#EF6C00")
	colorMuted  = lipgloss.Color("#6B7280")
	colorError  = lipgloss.Color("#E53935")
)

// Styles groups the lipgloss styles used for cards and status lines.
type Styles struct {
	CardBox     lipgloss.Style
	Name        lipgloss.Style
	Label       lipgloss.Style
	Specialty   lipgloss.Style
	SummaryLine lipgloss.Style
	Error       lipgloss.Style
	Tier        map[models.ExperienceTier]lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		CardBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1).
			Width(44),
		Name:        lipgloss.NewStyle().Bold(true),
		Label:       lipgloss.NewStyle().Foreground(colorMuted),
		Specialty:   lipgloss.NewStyle().Foreground(colorMid),
		SummaryLine: lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		Error:       lipgloss.NewStyle().Foreground(colorError).Bold(true),
		Tier: map[models.ExperienceTier]lipgloss.Style{
			models.ExperienceTierSenior: lipgloss.NewStyle().Foreground(colorSenior).Bold(true),
			models.ExperienceTierMid:    lipgloss.NewStyle().Foreground(colorMid).Bold(true),
			models.ExperienceTierJunior: lipgloss.NewStyle().Foreground(colorJunior).Bold(true),
		},
	}
}

// Card renders one advocate as a bordered card.
func (s Styles) Card(advocate models.Advocate) string {
	years := strconv.Itoa(advocate.YearsOfExperience) + " years"
	if advocate.YearsOfExperience == 1 {
		years = "1 year"
	}

	lines := []string{
		s.Name.Render("Dr. " + advocate.FullName()),
		s.Label.Render(advocate.Degree) + " · " + s.Tier[advocate.Tier()].Render(years),
		s.Label.Render("City: ") + advocate.City,
		s.Label.Render("Phone: ") + models.FormatPhone(advocate.PhoneNumber),
		s.Label.Render("Specialties:"),
	}
	for _, specialty := range advocate.Specialties {
		lines = append(lines, s.Specialty.Render("• "+specialty))
	}

	return s.CardBox.Render(strings.Join(lines, "\n"))
}

// Cards lays the advocates out in rows of perRow cards.
func (s Styles) Cards(advocates []models.Advocate, perRow int) string {
	if perRow < 1 {
		perRow = 1
	}

	rows := make([]string, 0, len(advocates)/perRow+1)
	for start := 0; start < len(advocates); start += perRow {
		end := min(start+perRow, len(advocates))
		cards := make([]string, 0, end-start)
		for _, advocate := range advocates[start:end] {
			cards = append(cards, s.Card(advocate))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Summary is the status line above the results.
func (s Styles) Summary(displayed int, total int, search string) string {
	noun := "advocates"
	if displayed == 1 {
		noun = "advocate"
	}

	summary := fmt.Sprintf("%d %s", displayed, noun)
	if displayed != total {
		summary = fmt.Sprintf("%d of %d %s", displayed, total, "advocates")
	}
	if search != "" {
		summary += fmt.Sprintf(" matching %q", search)
	}

	return s.SummaryLine.Render(summary)
}

func (s Styles) ErrorView(message string) string {
	return s.Error.Render("Error: " + message)
}

// CardsPerRow fits as many cards as the terminal width allows.
func CardsPerRow(width int) int {
	cardWidth := lipgloss.Width(DefaultStyles().CardBox.Render(""))
	if cardWidth == 0 || width < cardWidth {
		return 1
	}
	return width / cardWidth
}
