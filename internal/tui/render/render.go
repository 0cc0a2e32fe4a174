// Package render draws the contact list, help panel and footer.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/rolodex/internal/colors"
	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/cristianoliveira/rolodex/internal/errors"
)

const (
	indexWidth           = 4
	pinWidth             = 2
	nameWidth            = 24
	phoneWidth           = 14
	emailWidth           = 30
	spacesBetweenColumns = 10
	minTagsWidth         = 10
	pinnedSymbol         = "★"
	emptyListText        = "No contacts found"
)

// RowState defines the inputs needed to render a contact row.
type RowState struct {
	Index    int
	Person   domain.Person
	Width    int
	Selected bool
}

// FooterState defines the inputs needed to render the footer.
type FooterState struct {
	Hint   string
	Prompt string
	Width  int
}

// Header renders the table header.
func Header(width int) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))

	header := fmt.Sprintf("%-*s %-*s %-*s  %-*s  %-*s  %s",
		indexWidth, "#",
		pinWidth, "",
		nameWidth, "NAME",
		phoneWidth, "PHONE",
		emailWidth, "EMAIL",
		"TAGS",
	)
	return headerStyle.Render(truncate(header, width))
}

// Row renders a single contact row.
func Row(state RowState) string {
	rowStyle := lipgloss.NewStyle()
	if state.Selected {
		rowStyle = rowStyle.Background(lipgloss.Color(ansiColorNumber(colors.Blue))).Foreground(lipgloss.Color("0"))
	}

	p := state.Person
	pin := ""
	if p.Pinned {
		pin = pinnedSymbol
	}

	row := fmt.Sprintf("%-*s %-*s %-*s  %-*s  %-*s  %s",
		indexWidth, fmt.Sprintf("%d.", state.Index),
		pinWidth, pin,
		nameWidth, truncate(string(p.Name), nameWidth),
		phoneWidth, truncate(string(p.Phone), phoneWidth),
		emailWidth, truncate(string(p.Email), emailWidth),
		truncate(Tags(p.Tags), tagsWidth(state.Width)),
	)
	return rowStyle.Render(row)
}

// List renders every person, or a placeholder when there is none.
func List(persons []domain.Person, cursor, width int) string {
	if len(persons) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(emptyListText)
	}
	rows := make([]string, 0, len(persons))
	for i, p := range persons {
		rows = append(rows, Row(RowState{Index: i + 1, Person: p, Width: width, Selected: i == cursor}))
	}
	return strings.Join(rows, "\n")
}

// Tags renders tags as "[a] [b]".
func Tags(tags []domain.Tag) string {
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, "["+string(t)+"]")
	}
	return strings.Join(parts, " ")
}

// HelpPanel renders the command reference in a bordered box.
func HelpPanel(text string, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ansiColorNumber(colors.Cyan))).
		Padding(0, 1)
	if width > 4 {
		style = style.Width(width - 2)
	}
	title := lipgloss.NewStyle().Bold(true).Render("Commands (Esc to close)")
	return style.Render(title + "\n\n" + text)
}

// Status renders the latest feedback line, coloured by its type.
func Status(msg errors.Message, width int) string {
	if msg.Text == "" {
		return ""
	}
	color := colors.Green
	switch msg.Type {
	case errors.MessageTypeError:
		color = colors.Red
	case errors.MessageTypeWarning:
		color = colors.Yellow
	case errors.MessageTypeInfo:
		color = colors.Blue
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(color)))
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(msg.Text)
}

// Footer renders the key help line.
func Footer(state FooterState) string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var help []string
	if state.Prompt != "" {
		help = append(help, "y: confirm", "n: cancel")
	} else {
		help = append(help, "↑/↓: move")
		if state.Hint != "" {
			help = append(help, "Tab: "+state.Hint)
		}
		help = append(help, "Enter: run", "Esc: clear", "Ctrl+C: quit")
	}
	return helpStyle.Render(truncate(strings.Join(help, "  |  "), state.Width))
}

func tagsWidth(width int) int {
	fixed := indexWidth + pinWidth + nameWidth + phoneWidth + emailWidth + spacesBetweenColumns
	if width-fixed < minTagsWidth {
		return minTagsWidth
	}
	return width - fixed
}

func truncate(value string, width int) string {
	if width <= 0 || utf8.RuneCountInString(value) <= width {
		return value
	}
	if width <= 3 {
		return string([]rune(value)[:width])
	}
	return string([]rune(value)[:width-3]) + "..."
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
