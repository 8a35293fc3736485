package gui

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/appengine-ltd/secret-cult/internal/cardart"
	"github.com/appengine-ltd/secret-cult/internal/game"
	"github.com/appengine-ltd/secret-cult/internal/parser"
	classicui "github.com/appengine-ltd/secret-cult/internal/ui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Seed      int64
	Width     int
	Height    int
	AssetsDir string
	Logger    *slog.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

const (
	emblemSize   = 28
	maxInputLen  = 40
	journalLines = 4
)

type gameUI struct {
	cfg AppConfig
	log *slog.Logger

	width         int32
	height        int32
	quit          bool
	launchClassic bool

	game    *game.Game
	parser  *parser.Parser
	table   *cardTable
	actions *actionQueue

	input   string
	status  string
	emblems map[game.CardType]rl.Texture2D
}

func (a *App) Run() error {
	ui, err := newGameUI(a.cfg)
	if err != nil {
		return err
	}
	return ui.Run()
}

func newGameUI(cfg AppConfig) (*gameUI, error) {
	g, err := game.NewGame(game.SessionConfig{Seed: cfg.Seed})
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	width, height := int32(cfg.Width), int32(cfg.Height)
	if width <= 0 || height <= 0 {
		width, height = 800, 600
	}
	seed := uint64(g.Current().Seed())
	placement := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	ui := &gameUI{
		cfg:     cfg,
		log:     logger,
		width:   width,
		height:  height,
		game:    g,
		parser:  parser.New(),
		table:   newCardTable(width, height, placement.IntN),
		actions: newActionQueue(16),
		emblems: map[game.CardType]rl.Texture2D{},
	}
	ui.table.sync(g.Current().View().Cards)
	logger.Info("session created", "seed", g.Current().Seed())
	return ui, nil
}

func (ui *gameUI) mode() game.Mode {
	return ui.game.Current().Mode()
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "Тайный Культ")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography(ui.cfg.AssetsDir)
	ui.loadEmblems()

	for !ui.quit && !rl.WindowShouldClose() {
		ui.update()
		if ui.launchClassic {
			break
		}

		rl.BeginDrawing()
		rl.ClearBackground(AppTheme.Background)
		ui.draw()
		rl.EndDrawing()
	}

	ui.unloadEmblems()
	shutdownTypography()
	rl.CloseWindow()
	if ui.launchClassic {
		app := classicui.NewApp(classicui.AppConfig{
			Version:   ui.cfg.Version,
			Commit:    ui.cfg.Commit,
			BuildDate: ui.cfg.BuildDate,
			Seed:      ui.cfg.Seed,
			Logger:    ui.log,
		})
		return app.Run()
	}
	return nil
}

func (ui *gameUI) loadEmblems() {
	for _, t := range game.AllCardTypes() {
		img := rl.NewImageFromImage(cardart.Emblem(t, emblemSize))
		tex := rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		rl.SetTextureFilter(tex, rl.FilterBilinear)
		ui.emblems[t] = tex
	}
}

func (ui *gameUI) unloadEmblems() {
	for t, tex := range ui.emblems {
		rl.UnloadTexture(tex)
		delete(ui.emblems, t)
	}
}

func (ui *gameUI) update() {
	if ModifiedPressedKey(rl.KeyQ) {
		ui.quit = true
		return
	}
	switch ui.mode() {
	case game.ModeMenu:
		ui.updateMenu()
	case game.ModePlaying:
		ui.updatePlaying()
	case game.ModeEnded:
		ui.updateEnding()
	}
}

func (ui *gameUI) draw() {
	switch ui.mode() {
	case game.ModeMenu:
		ui.drawMenu()
	case game.ModePlaying:
		ui.drawPlaying()
	case game.ModeEnded:
		ui.drawEnding()
	}
}

func (ui *gameUI) updateMenu() {
	if rl.IsKeyPressed(rl.KeySpace) {
		if err := ui.game.BeginPlaying(); err != nil {
			ui.status = err.Error()
			return
		}
		ui.log.Info("session started", "seed", ui.game.Current().Seed())
		return
	}
	if rl.IsKeyPressed(rl.KeyC) {
		ui.launchClassic = true
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		ui.quit = true
	}
}

func (ui *gameUI) updateEnding() {
	if rl.IsKeyPressed(rl.KeyR) {
		ui.restart()
		return
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		if err := ui.game.ReturnToMenu(); err != nil {
			ui.status = err.Error()
			return
		}
		ui.log.Info("returned to menu", "seed", ui.game.Current().Seed())
		ui.resetTable()
	}
}

func (ui *gameUI) updatePlaying() {
	mouse := rl.GetMousePosition()
	view := ui.game.Current().View()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if a, ok := buttonAt(actionButtons(ui.width, view), mouse); ok {
			ui.actions.EnqueueAction(a)
		} else {
			ui.table.beginDrag(mouse)
		}
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		ui.table.dragTo(mouse)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		ui.table.endDrag()
	}

	captureTextInput(&ui.input, maxInputLen)
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		ui.submitInput()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.input = ""
	}

	for {
		a, ok := ui.actions.Dequeue()
		if !ok {
			break
		}
		ui.perform(a)
		if ui.mode() != game.ModePlaying {
			// Anything queued behind an ending is stale.
			ui.actions.Drain()
			break
		}
	}
}

func (ui *gameUI) submitInput() {
	raw := strings.TrimSpace(ui.input)
	ui.input = ""
	if raw == "" {
		return
	}
	intent := ui.parser.Parse(raw)
	ui.log.Debug("parsed input", "raw", raw, "kind", intent.Kind, "verb", intent.Verb, "confidence", intent.Confidence)
	if intent.Clarify != nil {
		ui.status = intent.Clarify.Prompt
		return
	}
	switch intent.Kind {
	case parser.Help:
		ui.status = "Кнопки справа или команды: работать, изучать, сны, отдых..."
		return
	case parser.Control:
		switch intent.Verb {
		case parser.ControlQuit:
			ui.quit = true
		case parser.ControlRestart:
			ui.restart()
		default:
			ui.status = "Сейчас это недоступно."
		}
		return
	}
	a, ok := intent.Action()
	if !ok {
		ui.status = "Непонятная команда."
		return
	}
	if !ui.game.Current().View().Available(a) {
		ui.status = fmt.Sprintf("Действие «%s» пока недоступно.", a)
		return
	}
	ui.actions.EnqueueAction(a)
}

func (ui *gameUI) perform(a game.Action) {
	out, err := ui.game.Perform(a)
	if err != nil {
		ui.log.Warn("action rejected", "action", string(a), "err", err)
		ui.status = err.Error()
		return
	}
	ui.status = ""
	ui.table.sync(ui.game.Current().View().Cards)
	ui.log.Info("action resolved", "action", string(a), "applied", out.Applied, "bonus", out.Bonus, "cards", len(out.Cards))
	if out.Ending != nil {
		ui.log.Info("ending reached", "ending", string(out.Ending.Kind), "ritual", out.Ritual)
	}
}

func (ui *gameUI) restart() {
	if err := ui.game.Restart(); err != nil {
		ui.status = err.Error()
		return
	}
	ui.log.Info("session restarted", "seed", ui.game.Current().Seed())
	ui.resetTable()
}

func (ui *gameUI) resetTable() {
	ui.input = ""
	ui.status = ""
	ui.table.reset()
	ui.table.sync(ui.game.Current().View().Cards)
}

func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && len([]rune(*target)) < maxLen {
			*target += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		if r := []rune(*target); len(r) > 0 {
			*target = string(r[:len(r)-1])
		}
	}
}
