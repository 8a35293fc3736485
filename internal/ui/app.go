package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/secret-cult/internal/game"
	"github.com/appengine-ltd/secret-cult/internal/parser"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Seed      int64
	Logger    *slog.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	m, err := newModel(a.cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

const journalRows = 4

type model struct {
	cfg    AppConfig
	log    *slog.Logger
	game   *game.Game
	parser *parser.Parser

	cursor int
	input  string
	status string
	// dealt is the type of the newest card, shown as an emblem.
	dealt game.CardType
}

func newModel(cfg AppConfig) (model, error) {
	g, err := game.NewGame(game.SessionConfig{Seed: cfg.Seed})
	if err != nil {
		return model{}, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.Info("session created", "seed", g.Current().Seed())
	return model{
		cfg:    cfg,
		log:    logger,
		game:   g,
		parser: parser.New(),
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.game.Current().Mode() {
	case game.ModeMenu:
		return m.updateMenu(key)
	case game.ModeEnded:
		return m.updateEnding(key)
	default:
		return m.updatePlaying(key)
	}
}

func (m model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case " ", "enter":
		return m.begin()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateEnding(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "r", "R", "к", "К":
		return m.restart()
	case "esc":
		if err := m.game.ReturnToMenu(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.log.Info("returned to menu", "seed", m.game.Current().Seed())
		m.reset()
		return m, nil
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updatePlaying(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	actions := m.game.Current().View().AvailableActions()
	switch key.Type {
	case tea.KeyUp:
		m.cursor = (m.cursor + len(actions) - 1) % len(actions)
		return m, nil
	case tea.KeyDown:
		m.cursor = (m.cursor + 1) % len(actions)
		return m, nil
	case tea.KeyEsc:
		m.input = ""
		return m, nil
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		if m.input != "" {
			m.input += " "
		}
		return m, nil
	case tea.KeyRunes:
		m.input += string(key.Runes)
		return m, nil
	case tea.KeyEnter:
		if m.input == "" {
			return m.perform(actions[min(m.cursor, len(actions)-1)])
		}
		return m.submit()
	}
	return m, nil
}

// submit routes the typed line. A bare number picks the numbered action in
// the current menu.
func (m model) submit() (tea.Model, tea.Cmd) {
	raw := m.input
	m.input = ""
	actions := m.game.Current().View().AvailableActions()
	if n, ok := menuNumber(raw); ok {
		if n < 1 || n > len(actions) {
			m.status = "Нет такого действия."
			return m, nil
		}
		return m.perform(actions[n-1])
	}

	intent := m.parser.Parse(raw)
	m.log.Debug("parsed input", "raw", raw, "kind", intent.Kind, "verb", intent.Verb, "confidence", intent.Confidence)
	if intent.Clarify != nil {
		m.status = clarifyLine(intent.Clarify)
		return m, nil
	}
	switch intent.Kind {
	case parser.Help:
		m.status = helpLine(actions)
		return m, nil
	case parser.Control:
		switch intent.Verb {
		case parser.ControlQuit:
			return m, tea.Quit
		case parser.ControlRestart:
			return m.restart()
		default:
			m.status = "Сейчас это недоступно."
			return m, nil
		}
	}

	a, ok := intent.Action()
	if !ok {
		m.status = "Непонятная команда."
		return m, nil
	}
	if !m.game.Current().View().Available(a) {
		m.status = "Действие «" + string(a) + "» пока недоступно."
		return m, nil
	}
	return m.perform(a)
}

func (m model) perform(a game.Action) (tea.Model, tea.Cmd) {
	out, err := m.game.Perform(a)
	if err != nil {
		m.log.Warn("action rejected", "action", string(a), "err", err)
		m.status = err.Error()
		return m, nil
	}
	m.status = ""
	if len(out.Cards) > 0 {
		if card, ok := m.game.Current().View().Card(out.Cards[len(out.Cards)-1]); ok {
			m.dealt = card.Type
		}
	}
	m.log.Info("action resolved", "action", string(a), "applied", out.Applied, "bonus", out.Bonus, "cards", len(out.Cards))
	if out.Ending != nil {
		m.log.Info("ending reached", "ending", string(out.Ending.Kind), "ritual", out.Ritual)
	}
	actions := m.game.Current().View().AvailableActions()
	m.cursor = min(m.cursor, len(actions)-1)
	return m, nil
}

func (m model) begin() (tea.Model, tea.Cmd) {
	if err := m.game.BeginPlaying(); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.log.Info("session started", "seed", m.game.Current().Seed())
	m.reset()
	return m, nil
}

func (m model) restart() (tea.Model, tea.Cmd) {
	if err := m.game.Restart(); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.log.Info("session restarted", "seed", m.game.Current().Seed())
	m.reset()
	return m, nil
}

func (m *model) reset() {
	m.cursor = 0
	m.input = ""
	m.status = ""
	m.dealt = ""
}
