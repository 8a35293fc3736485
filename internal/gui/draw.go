package gui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/appengine-ltd/secret-cult/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const gameTitle = "ТАЙНЫЙ КУЛЬТ"

func (ui *gameUI) drawMenu() {
	w := ui.width
	drawCentered(gameTitle, w, 100, typeScale.Title, AppTheme.Text)
	drawCentered(fmt.Sprintf("v%s (%s) %s", ui.cfg.Version, ui.cfg.Commit, ui.cfg.BuildDate), w, 150, typeScale.Small, AppTheme.TextDisabled)
	drawCentered("Нажмите SPACE чтобы начать", w, 300, typeScale.Body, AppTheme.Text)
	drawCentered("Тащите карты. Используйте кнопки справа", w, 400, typeScale.Small, AppTheme.Text)
	drawCentered("Соберите Древнее знание и последователя для создания культа", w, 450, typeScale.Small, AppTheme.Text)
	drawCentered("C: терминальная версия   Q: выход", w, ui.height-40, typeScale.Small, AppTheme.TextDisabled)
	if ui.status != "" {
		drawCentered(ui.status, w, ui.height-70, typeScale.Small, AppTheme.Text)
	}
}

func (ui *gameUI) drawPlaying() {
	view := ui.game.Current().View()
	w, h := ui.width, ui.height
	tableRight := w - panelWidth - 20

	drawCentered(gameTitle, w-panelWidth, 10, typeScale.Title, AppTheme.Text)
	DrawDivider(20, 45, float32(tableRight), 45)
	res := view.Resources
	drawText(fmt.Sprintf("Здоровье: %d | Рассудок: %d | Деньги: %d", res.Health, res.Reason, res.Funds), 20, 55, typeScale.Body, AppTheme.Text)

	ui.drawActionPanel(view)
	ui.drawCards(view)
	drawJournal(logRect(w, h), view.RecentLog(journalLines))
}

func (ui *gameUI) drawActionPanel(view game.View) {
	w, h := ui.width, ui.height
	DrawPanel(rl.NewRectangle(float32(w-panelWidth), 0, panelWidth, float32(h)), AppTheme.Panel)
	drawText("Действия", w-panelWidth+20, 40, typeScale.Body, AppTheme.Text)

	mouse := rl.GetMousePosition()
	for _, b := range actionButtons(w, view) {
		if !b.Visible {
			continue
		}
		state := buttonNormal
		if rl.CheckCollisionPointRec(mouse, b.Rect) {
			state = buttonHovered
		}
		DrawButton(b.Rect, state, string(b.Action))
	}

	in := inputRect(w, h)
	rl.DrawRectangleRec(in, AppTheme.Background)
	rl.DrawRectangleLinesEx(in, 1, AppTheme.Text)
	text := ui.input
	if text == "" {
		drawText("команда...", int32(in.X)+6, int32(in.Y)+7, typeScale.Small, AppTheme.TextDisabled)
	} else {
		drawText(text+"_", int32(in.X)+6, int32(in.Y)+7, typeScale.Small, AppTheme.Text)
	}
	if ui.status != "" {
		lines := wrapText(ui.status, typeScale.Small, panelWidth-20)
		y := int32(in.Y) - int32(len(lines))*textLineHeight(typeScale.Small) - 6
		for i, line := range lines {
			drawText(line, int32(in.X), y+int32(i)*textLineHeight(typeScale.Small), typeScale.Small, AppTheme.Text)
		}
	}
}

func (ui *gameUI) drawCards(view game.View) {
	byID := make(map[game.CardID]game.CardView, len(view.Cards))
	for _, c := range view.Cards {
		byID[c.ID] = c
	}
	mouse := rl.GetMousePosition()
	hovered, _ := ui.table.hit(mouse)
	for _, placed := range ui.table.cards {
		card, ok := byID[placed.ID]
		if !ok {
			continue
		}
		ui.drawCard(card, placed.Pos, placed.ID == hovered)
	}
}

// drawCard renders one card, slightly enlarged while hovered.
func (ui *gameUI) drawCard(card game.CardView, pos rl.Vector2, hovered bool) {
	rect := cardRect(pos)
	if hovered {
		const scale = 1.05
		grow := rl.Vector2{X: rect.Width * (scale - 1), Y: rect.Height * (scale - 1)}
		rect = rl.NewRectangle(rect.X-grow.X/2, rect.Y-grow.Y/2, rect.Width+grow.X, rect.Height+grow.Y)
	}

	rl.DrawRectangleRounded(rl.NewRectangle(rect.X+2, rect.Y+2, rect.Width, rect.Height), 0.03, 4, AppTheme.Shadow)
	rl.DrawRectangleRounded(rect, 0.03, 4, AppTheme.Panel)
	borderWidth := float32(2)
	if card.Type == game.CardCult {
		borderWidth = 3
	}
	rl.DrawRectangleRoundedLinesEx(rect, 0.03, 4, borderWidth, cardBorder(card.Type))

	x, y := int32(rect.X)+5, int32(rect.Y)+5
	if tex, ok := ui.emblems[card.Type]; ok && tex.ID != 0 {
		rl.DrawTextureEx(tex, rl.Vector2{X: rect.X + rect.Width - emblemSize - 4, Y: rect.Y + 4}, 0, 1, rl.White)
	}
	for i, line := range firstN(wrapText(card.Title, typeScale.Small, int32(rect.Width)-emblemSize-14), 2) {
		drawText(line, x, y+int32(i)*15, typeScale.Small, AppTheme.Text)
	}
	DrawDivider(rect.X+5, rect.Y+35, rect.X+rect.Width-5, rect.Y+35)
	for i, line := range firstN(wrapText(card.Description, typeScale.Small, int32(rect.Width)-10), 3) {
		drawText(line, x, int32(rect.Y)+40+int32(i)*15, typeScale.Small, AppTheme.Text)
	}
	if card.Value != nil {
		drawText(strconv.Itoa(*card.Value), int32(rect.X+rect.Width)-25, int32(rect.Y+rect.Height)-25, typeScale.Body, AppTheme.Text)
	}
}

func drawJournal(rect rl.Rectangle, entries []string) {
	DrawPanel(rect, AppTheme.Panel)
	drawText("Журнал событий:", int32(rect.X)+10, int32(rect.Y)+10, typeScale.Body, AppTheme.Text)
	for i, entry := range entries {
		drawText(entry, int32(rect.X)+10, int32(rect.Y)+35+int32(i)*13, 13, AppTheme.Text)
	}
}

func (ui *gameUI) drawEnding() {
	w := ui.width
	if e, ok := ui.game.Current().Ending(); ok {
		drawCentered(e.Title, w, 100, typeScale.Title, AppTheme.Text)
		for i, line := range wrapText(e.Description, typeScale.Body, w-100) {
			drawText(line, 50, 180+int32(i)*30, typeScale.Body, AppTheme.Text)
		}
	} else {
		drawCentered("КОНЕЦ ИГРЫ", w, 200, typeScale.Title, AppTheme.Text)
	}
	drawCentered("Нажмите R для новой игры", w, 450, typeScale.Body, AppTheme.Text)
	drawCentered("Нажмите ESC для выхода в меню", w, 500, typeScale.Body, AppTheme.Text)
}

func drawCentered(text string, width, y, size int32, clr rl.Color) {
	drawText(text, (width-measureText(text, size))/2, y, size, clr)
}

// wrapText breaks text on spaces so each line measures at most maxWidth. A
// single word wider than maxWidth gets a line of its own.
func wrapText(text string, size int32, maxWidth int32) []string {
	return wrapWords(text, maxWidth, func(s string) int32 { return measureText(s, size) })
}

func wrapWords(text string, maxWidth int32, measure func(string) int32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	lines := make([]string, 0, 4)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

func firstN(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
