package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/secret-cult/internal/cardart"
	"github.com/appengine-ltd/secret-cult/internal/game"
	"github.com/appengine-ltd/secret-cult/internal/parser"
)

// --- Styles (gold on black) ---
var (
	gold       = lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(cardart.Gold)))
	brightGold = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE08A")).Bold(true)
	dimGold    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6A581C"))
	border     = lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(cardart.Gold)))
	panel      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(hexColor(cardart.Gold))).
			Padding(0, 1)
)

const rule = "----------------------------------------"

func cardStyle(t game.CardType) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(cardart.Border(t))))
}

func (m model) View() string {
	s := m.game.Current()
	switch s.Mode() {
	case game.ModeMenu:
		return m.viewMenu()
	case game.ModeEnded:
		return m.viewEnding(s.View())
	default:
		return m.viewPlaying(s.View())
	}
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString(brightGold.Render("ТАЙНЫЙ КУЛЬТ") + "\n")
	b.WriteString(dimGold.Render(fmt.Sprintf("v%s  (%s)  %s", m.cfg.Version, m.cfg.Commit, m.cfg.BuildDate)) + "\n")
	b.WriteString(border.Render(rule) + "\n\n")
	b.WriteString(gold.Render("Нажмите SPACE чтобы начать") + "\n\n")
	b.WriteString(dimGold.Render("Выбирайте действия стрелками или вводите их текстом") + "\n")
	b.WriteString(dimGold.Render("Соберите Древнее знание и последователя для создания культа") + "\n")
	b.WriteString("\n" + border.Render(rule) + "\n")
	b.WriteString(dimGold.Render("Space начать, q выход") + "\n")
	if m.status != "" {
		b.WriteString("\n" + gold.Render(m.status) + "\n")
	}
	return b.String()
}

func (m model) viewPlaying(v game.View) string {
	var b strings.Builder
	b.WriteString(brightGold.Render("ТАЙНЫЙ КУЛЬТ") + "\n")
	b.WriteString(gold.Render(resourceLine(v.Resources)) + "\n")
	b.WriteString(border.Render(rule) + "\n")

	table := panel.Render(strings.Join(cardLines(v.Cards), "\n"))
	if m.dealt != "" {
		table = lipgloss.JoinHorizontal(lipgloss.Top, table, "  ", renderEmblemANSI(m.dealt, 12))
	}
	b.WriteString(table + "\n")

	b.WriteString(gold.Render("Действия") + "\n")
	for i, a := range v.AvailableActions() {
		cursor := "  "
		line := fmt.Sprintf("%d. %s", i+1, a)
		if i == m.cursor {
			cursor = "> "
			line = brightGold.Render(line)
		} else {
			line = gold.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n" + gold.Render("Журнал событий:") + "\n")
	for _, entry := range v.RecentLog(journalRows) {
		b.WriteString("  " + dimGold.Render(entry) + "\n")
	}

	b.WriteString(border.Render(rule) + "\n")
	b.WriteString(gold.Render("> "+m.input) + brightGold.Render("_") + "\n")
	b.WriteString(dimGold.Render("↑/↓ выбор, Enter выполнить, номер или текст команды, Ctrl+C выход") + "\n")
	if m.status != "" {
		b.WriteString("\n" + gold.Render(m.status) + "\n")
	}
	return b.String()
}

func (m model) viewEnding(v game.View) string {
	var b strings.Builder
	if v.Ending != nil {
		b.WriteString(brightGold.Render(v.Ending.Title) + "\n\n")
		b.WriteString(gold.Width(60).Render(v.Ending.Description) + "\n\n")
	} else {
		b.WriteString(brightGold.Render("КОНЕЦ ИГРЫ") + "\n\n")
	}
	b.WriteString(gold.Render("Нажмите R для новой игры") + "\n")
	b.WriteString(gold.Render("Нажмите ESC для выхода в меню") + "\n")
	if m.status != "" {
		b.WriteString("\n" + gold.Render(m.status) + "\n")
	}
	return b.String()
}

func resourceLine(r game.Resources) string {
	return fmt.Sprintf("Здоровье: %d | Рассудок: %d | Деньги: %d", r.Health, r.Reason, r.Funds)
}

func cardLines(cards []game.CardView) []string {
	lines := make([]string, 0, len(cards))
	for _, c := range cards {
		head := c.Type.Emoji() + " " + c.Title
		if c.Value != nil {
			head += " [" + strconv.Itoa(*c.Value) + "]"
		}
		lines = append(lines, cardStyle(c.Type).Render(head)+"  "+dimGold.Render(c.Description))
	}
	return lines
}

// menuNumber reports whether raw is a bare menu number.
func menuNumber(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

func clarifyLine(q *parser.ClarifyQuestion) string {
	if len(q.Options) == 0 {
		return q.Prompt
	}
	opts := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		label := o.HandlerKey
		if label == "" {
			label = o.Verb
		}
		opts = append(opts, label)
	}
	return q.Prompt + " " + strings.Join(opts, " или ") + "?"
}

func helpLine(actions []game.Action) string {
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, string(a))
	}
	return "Доступно: " + strings.Join(names, ", ")
}
