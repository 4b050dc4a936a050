package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/certcheck/internal/state"
)

const (
	labelWidth      = 20
	timestampLayout = "2006-01-02 15:04:05"
)

// renderMain renders the header, form, result and footer.
func (m Model) renderMain() string {
	sections := []string{m.renderHeader(), m.renderForm()}
	if result := m.renderResult(); result != "" {
		sections = append(sections, result)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Top, body),
		footer,
	)
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	title := styles.Title.Render("Certificate Validation System")
	subtitle := styles.Subtitle.Render("Verify your training certificate authenticity")
	return lipgloss.NewStyle().
		Width(m.contentWidth()).
		Padding(1, 0).
		Render(title + "\n" + subtitle)
}

func (m Model) renderForm() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Validate Certificate"))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Certificate Number "))
	b.WriteString(styles.Danger.Render("*"))
	b.WriteString("\n")

	if m.inputEnabled() {
		b.WriteString(m.input.View())
	} else {
		// Show the current value without a cursor.
		value := m.input.Value()
		if value == "" {
			value = m.input.Placeholder
		}
		b.WriteString(styles.FaintText.Render(m.input.Prompt + value))
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Enter the certificate number exactly as printed"))
	b.WriteString("\n\n")
	b.WriteString(m.renderActions(styles))

	if banner := m.renderDatasetBanner(styles); banner != "" {
		b.WriteString("\n\n")
		b.WriteString(banner)
	}

	panel := styles.Panel
	if m.inputEnabled() {
		panel = styles.FocusPanel
	}
	return panel.Width(m.contentWidth()).Render(b.String())
}

func (m Model) renderActions(styles Styles) string {
	if m.form.pending() {
		return m.spinner.View() + " " + styles.AccentText.Render(msgValidating)
	}

	submit := styles.Key.Render("enter") + " " + styles.Text.Render("Validate Certificate")
	if !m.snapshot.Ready() {
		submit = styles.FaintText.Render("enter Validate Certificate")
	}
	reset := styles.Key.Render("esc") + " " + styles.Text.Render("Clear")
	return submit + "    " + reset
}

// renderDatasetBanner explains why the form is unavailable.
func (m Model) renderDatasetBanner(styles Styles) string {
	switch m.snapshot.Status {
	case state.StatusPending, state.StatusLoading:
		return m.spinner.View() + " " + styles.MutedText.Render("Loading certificate database...")
	case state.StatusFailed:
		lines := []string{styles.Danger.Render(msgLoadFailed)}
		if cause := loadCause(m.snapshot.LastError); cause != "" {
			lines = append(lines, styles.MutedText.Render(truncate(cause, m.contentWidth()-6)))
		}
		lines = append(lines, styles.Key.Render("ctrl+r")+" "+styles.MutedText.Render("retry"))
		return strings.Join(lines, "\n")
	}
	return ""
}

func (m Model) renderResult() string {
	styles := m.theme.Styles()

	if m.form.err != nil {
		content := styles.Danger.Render("✗ " + errorMessage(m.form.err))
		return styles.ErrorPanel.Width(m.contentWidth()).Render(content)
	}
	if !m.form.valid() {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Success.Render("✓ " + msgValidated))
	b.WriteString("  ")
	b.WriteString(styles.ValidBadge.Render("VALID"))
	b.WriteString("\n\n")

	for _, field := range m.form.record.Fields() {
		b.WriteString(styles.Label.Render(field.Label))
		b.WriteString(styles.Value.Render(field.Value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(msgValidatedNote))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Validated on: " + m.form.validatedAt.Format(timestampLayout)))

	panel := styles.Panel.BorderForeground(lipgloss.Color(m.theme.Success))
	return panel.Width(m.contentWidth()).Render(b.String())
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	status := "Database Status: " + databaseStatus(m.snapshot)
	var hints []string
	for _, binding := range m.keys.ShortHelp() {
		help := binding.Help()
		hints = append(hints, help.Key+" "+strings.ToLower(help.Desc))
	}
	right := strings.Join(hints, " • ")

	gap := m.width - lipgloss.Width(status) - lipgloss.Width(right) - 2
	line := status
	if gap > 0 {
		line = status + strings.Repeat(" ", gap) + right
	}
	return styles.Footer.Width(m.width).Render(line)
}

// databaseStatus describes the dataset for the footer.
func databaseStatus(snap state.Snapshot) string {
	switch snap.Status {
	case state.StatusReady:
		return fmt.Sprintf("Loaded (%d records)", snap.Records())
	case state.StatusFailed:
		return "Failed"
	default:
		return "Loading..."
	}
}

// contentWidth is the width of the centered column.
func (m Model) contentWidth() int {
	return clamp(m.width-4, 40, 76)
}
