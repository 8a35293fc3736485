package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/secret-cult/internal/game"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	m, err := newModel(AppConfig{Version: "test", Seed: 7})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func press(t *testing.T, m model, msgs ...tea.KeyMsg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		got, ok := next.(model)
		if !ok {
			t.Fatalf("expected model, got %T", next)
		}
		m = got
	}
	return m
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	space = tea.KeyMsg{Type: tea.KeySpace}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
)

func TestSpaceStartsGameFromMenu(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.View(), "Нажмите SPACE чтобы начать") {
		t.Fatalf("expected menu prompt, got:\n%s", m.View())
	}

	m = press(t, m, space)
	if mode := m.game.Current().Mode(); mode != game.ModePlaying {
		t.Fatalf("expected playing mode, got %s", mode)
	}
	view := m.View()
	for _, want := range []string{"Здоровье: 10 | Рассудок: 10 | Деньги: 5", "Журнал событий:", "Старая книга", "1. Работать"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in play view:\n%s", want, view)
		}
	}
}

func TestEnterRunsHighlightedAction(t *testing.T) {
	m := press(t, newTestModel(t), space, enter)

	res := m.game.Current().View().Resources
	if res.Funds != 7 || res.Health != 9 {
		t.Fatalf("expected work to apply, got %+v", res)
	}
}

func TestCursorWrapsAroundActions(t *testing.T) {
	m := press(t, newTestModel(t), space, up)
	n := len(m.game.Current().View().AvailableActions())
	if m.cursor != n-1 {
		t.Fatalf("expected cursor to wrap to %d, got %d", n-1, m.cursor)
	}
	m = press(t, m, down)
	if m.cursor != 0 {
		t.Fatalf("expected cursor back at 0, got %d", m.cursor)
	}
}

func TestTypedCommandDispatchesAction(t *testing.T) {
	m := press(t, newTestModel(t), space, typed("отдых"), enter)

	v := m.game.Current().View()
	if v.Resources.Funds != 4 {
		t.Fatalf("expected rest to spend a coin, got %+v", v.Resources)
	}
	if v.Latest != "Вы отдыхаете и восстанавливаете силы." {
		t.Fatalf("unexpected latest log %q", v.Latest)
	}
	if m.input != "" {
		t.Fatalf("expected input cleared, got %q", m.input)
	}
}

func TestTypedEnglishAliasAndNumber(t *testing.T) {
	m := press(t, newTestModel(t), space, typed("explore"), enter)
	if funds := m.game.Current().View().Resources.Funds; funds != 4 {
		t.Fatalf("expected explore to spend a coin, got %d", funds)
	}

	m = press(t, m, typed("1"), enter)
	if funds := m.game.Current().View().Resources.Funds; funds != 6 {
		t.Fatalf("expected menu item 1 (work) to earn 2, got %d", funds)
	}
}

func TestGatedActionIsNotDispatched(t *testing.T) {
	m := press(t, newTestModel(t), space, typed("ритуал"), enter)
	if !strings.Contains(m.status, "недоступно") {
		t.Fatalf("expected unavailable status, got %q", m.status)
	}
	if got := m.game.Current().View().Latest; got == "Сначала создайте культ!" {
		t.Fatal("ritual should not be dispatched while its button is hidden")
	}
}

func TestUnknownTextShowsClarification(t *testing.T) {
	m := press(t, newTestModel(t), space, typed("xyzzy"), enter)
	if m.status == "" {
		t.Fatal("expected clarification status")
	}
	if m.game.Current().View().Latest != "Вы начинаете свой путь в тайных знаниях..." {
		t.Fatal("gibberish must not dispatch an action")
	}
}

func TestBackspaceAndSpaceEditInput(t *testing.T) {
	m := press(t, newTestModel(t), space, space, typed("abc"))
	if m.input != "abc" {
		t.Fatalf("leading space should be ignored, got %q", m.input)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, space, typed("д"))
	if m.input != "ab д" {
		t.Fatalf("unexpected input %q", m.input)
	}
	m = press(t, m, esc)
	if m.input != "" {
		t.Fatalf("esc should clear input, got %q", m.input)
	}
}

func playUntilEnded(t *testing.T, m model) model {
	t.Helper()
	// Dreaming drains reason one point at a time until madness.
	for i := 0; i < 20 && m.game.Current().Mode() == game.ModePlaying; i++ {
		m = press(t, m, typed("сны"), enter)
	}
	if m.game.Current().Mode() != game.ModeEnded {
		t.Fatalf("expected game to end, mode=%s", m.game.Current().Mode())
	}
	return m
}

func TestEndingScreenAndRestart(t *testing.T) {
	m := playUntilEnded(t, press(t, newTestModel(t), space))
	if !strings.Contains(m.View(), "Нажмите R для новой игры") {
		t.Fatalf("expected ending prompt, got:\n%s", m.View())
	}
	before := m.game.Current()

	m = press(t, m, typed("r"))
	if m.game.Current() == before {
		t.Fatal("expected restart to install a fresh session")
	}
	if mode := m.game.Current().Mode(); mode != game.ModeMenu {
		t.Fatalf("expected menu after restart, got %s", mode)
	}
}

func TestEscFromEndingReturnsToMenu(t *testing.T) {
	m := playUntilEnded(t, press(t, newTestModel(t), space))
	m = press(t, m, esc)
	if mode := m.game.Current().Mode(); mode != game.ModeMenu {
		t.Fatalf("expected menu, got %s", mode)
	}
	if res := m.game.Current().View().Resources; res.Reason != 10 {
		t.Fatalf("expected fresh session, got %+v", res)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestRenderEmblemANSI(t *testing.T) {
	out := renderEmblemANSI(game.CardLore, 12)
	if rows := strings.Count(out, "\n") + 1; rows != 6 {
		t.Fatalf("expected 6 rows for a 12px emblem, got %d", rows)
	}
	if !strings.Contains(out, "▀") {
		t.Fatal("expected half-block glyphs")
	}
}
