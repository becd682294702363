package tui

import (
	"fmt"
	"strconv"
	"strings"

	"palcfg/internal/config"

	"github.com/charmbracelet/lipgloss"
)

type uiStyles struct {
	titleStyle   lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	cursorStyle  lipgloss.Style
	changedStyle lipgloss.Style
	statusStyle  lipgloss.Style
	warnStyle    lipgloss.Style
}

func defaultStyles() uiStyles {
	return uiStyles{
		titleStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1),
		headerStyle:  lipgloss.NewStyle().Bold(true).Underline(true),
		mutedStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		cursorStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		changedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		statusStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
		warnStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
	}
}

const scaleCells = 20

func (model Model) View() string {
	styles := defaultStyles()

	labelWidth := 0
	for _, f := range model.fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.label))
	}

	var b strings.Builder
	b.WriteString(styles.titleStyle.Render(model.labels.Title))
	b.WriteString("\n")
	b.WriteString(styles.mutedStyle.Render(model.path))
	b.WriteString("\n")

	index := 0
	for _, s := range model.sections {
		b.WriteString("\n")
		if s.title != "" {
			b.WriteString(styles.headerStyle.Render(s.title))
			b.WriteString("\n")
		}
		for _, f := range s.fields {
			b.WriteString(model.renderRow(f, index == model.cursor, labelWidth, styles))
			b.WriteString("\n")
			index++
		}
	}

	b.WriteString("\n")
	if model.status != "" {
		if model.failed {
			b.WriteString(styles.warnStyle.Render(model.status))
		} else {
			b.WriteString(styles.statusStyle.Render(model.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(model.help.View(model.keys))
	return b.String()
}

func (model Model) renderRow(f field, selected bool, labelWidth int, styles uiStyles) string {
	marker := "  "
	if selected {
		marker = styles.cursorStyle.Render("> ")
	}
	label := f.label + strings.Repeat(" ", labelWidth-lipgloss.Width(f.label))

	e, err := model.store.Entry(f.name)
	if err != nil {
		return marker + label + "  " + styles.warnStyle.Render(err.Error())
	}

	var value string
	switch {
	case selected && model.editing:
		value = "[" + model.input.View() + "]"
	case f.widget == widgetCheck:
		value = "[ ]"
		if e.Value() == "1" {
			value = "[x]"
		}
	case f.widget == widgetCombo:
		value = "< " + comboText(e, f.names) + " >"
	case f.widget == widgetScale:
		value = scaleBar(e)
	default:
		value = e.Value()
		if value == "" {
			value = styles.mutedStyle.Render("(empty)")
		}
	}

	if e.IsChanged() {
		value += styles.changedStyle.Render(" *")
	}
	return marker + label + "  " + value
}

func comboText(e *config.Entry, names []string) string {
	if names != nil {
		if i, err := e.ValueAsIndex(); err == nil && i < len(names) {
			return names[i]
		}
	}
	return e.Value()
}

func scaleBar(e *config.Entry) string {
	r, ok := e.Domain().(config.Range)
	if !ok || r.Span() == 0 {
		return e.Value()
	}
	n, err := strconv.ParseInt(e.Value(), 10, 64)
	if err != nil {
		return e.Value()
	}
	filled := int(uint64(n-r.Min) * scaleCells / r.Span())
	return fmt.Sprintf("%s%s %s", strings.Repeat("█", filled), strings.Repeat("░", scaleCells-filled), e.Value())
}
