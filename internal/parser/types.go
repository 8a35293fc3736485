package parser

import "github.com/appengine-ltd/secret-cult/internal/game"

type IntentKind int

const (
	// Command is one of the game's actions.
	Command IntentKind = iota
	// Control drives the session lifecycle: start, restart, menu, quit.
	Control
	Help
	Unknown
)

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	HandlerKey string
	Confidence float64
	Clarify    *ClarifyQuestion
}

// Action returns the game action a Command intent selects.
func (i Intent) Action() (game.Action, bool) {
	if i.Kind != Command || i.Clarify != nil {
		return "", false
	}
	a, err := game.ParseAction(i.HandlerKey)
	if err != nil {
		return "", false
	}
	return a, true
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

type CommandDef struct {
	Canonical  string
	Aliases    []string
	Kind       IntentKind
	HandlerKey string
}

const (
	ControlStart   = "start"
	ControlRestart = "restart"
	ControlMenu    = "menu"
	ControlQuit    = "quit"
)
