package game

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

type Mode string

const (
	ModeMenu    Mode = "menu"
	ModePlaying Mode = "playing"
	ModeEnded   Mode = "ended"
)

var (
	ErrNotPlaying        = errors.New("session is not in play")
	ErrInvalidTransition = errors.New("invalid mode transition")
)

// Session is one playthrough. Every component starts at its defaults when the
// session is built and is never reset in place; start over with a new Session.
type Session struct {
	seed int64
	odds Odds
	rng  Roller

	ledger  Ledger
	cards   Collection
	journal Journal

	cultCreated bool
	avail       Availability

	mode   Mode
	ending EndingKind
}

func NewSession(config SessionConfig) (*Session, error) {
	resolved := config
	if resolved.Odds == (Odds{}) {
		resolved.Odds = DefaultOdds
	}
	if err := resolved.Validate(); err != nil {
		return nil, err
	}
	if resolved.Seed == 0 {
		resolved.Seed = time.Now().UnixNano()
	}

	s := &Session{
		seed:    resolved.Seed,
		odds:    resolved.Odds,
		rng:     resolved.Roller,
		ledger:  newLedger(),
		cards:   newCollection(),
		journal: newJournal(),
		mode:    ModeMenu,
	}
	if s.rng == nil {
		s.rng = seededRNG(resolved.Seed)
	}
	for _, t := range seedCards() {
		s.cards.add(t)
	}
	s.evaluateGate()
	return s, nil
}

func (s *Session) Seed() int64 { return s.seed }

func (s *Session) Mode() Mode { return s.mode }

// Ending returns the ending the session stopped on, if any.
func (s *Session) Ending() (Ending, bool) {
	if s.mode != ModeEnded {
		return Ending{}, false
	}
	return EndingFor(s.ending)
}

func (s *Session) BeginPlaying() error {
	if s.mode != ModeMenu {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.mode, ModePlaying)
	}
	s.mode = ModePlaying
	return nil
}

// PerformLabel dispatches the action named by a button label.
func (s *Session) PerformLabel(label string) (Outcome, error) {
	a, err := ParseAction(label)
	if err != nil {
		return Outcome{}, err
	}
	return s.Perform(a)
}

// Perform resolves one action. Precondition failures are reported through the
// outcome message, not as errors.
func (s *Session) Perform(a Action) (Outcome, error) {
	if !a.Valid() {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownAction, string(a))
	}
	if s.mode != ModePlaying {
		return Outcome{}, fmt.Errorf("%w: mode is %s", ErrNotPlaying, s.mode)
	}

	out, kind := s.resolve(a)
	if kind != "" {
		out.Ending = s.end(kind)
		return out, nil
	}

	s.journal.Append(out.Message)
	s.evaluateGate()
	if kind, ok := firstMatch(AutomaticRules, s.board()); ok {
		out.Ending = s.end(kind)
	}
	return out, nil
}

func (s *Session) end(kind EndingKind) *Ending {
	s.mode = ModeEnded
	s.ending = kind
	e, _ := EndingFor(kind)
	return &e
}

// View is everything a front end needs to draw the session.
type View struct {
	Mode         Mode
	Ending       *Ending
	Resources    Resources
	Cards        []CardView
	Log          []string
	Latest       string
	Availability Availability
	Cult         CultFlags
}

func (s *Session) View() View {
	res := s.ledger.Snapshot()
	v := View{
		Mode:         s.mode,
		Resources:    res,
		Cards:        s.cards.views(res),
		Log:          s.journal.Entries(),
		Latest:       s.journal.Latest(),
		Availability: s.avail,
		Cult:         s.cultFlags(),
	}
	if e, ok := s.Ending(); ok {
		v.Ending = &e
	}
	return v
}

// Available reports whether the action's button is offered. Ungated actions
// are always offered; failing their preconditions only logs a message.
func (v View) Available(a Action) bool {
	switch a {
	case ActionFoundCult:
		return v.Availability.FoundCult
	case ActionRitual:
		return v.Availability.Ritual
	default:
		return a.Valid()
	}
}

// AvailableActions lists the offered actions in button order.
func (v View) AvailableActions() []Action {
	out := make([]Action, 0, len(AllActions()))
	for _, a := range AllActions() {
		if v.Available(a) {
			out = append(out, a)
		}
	}
	return out
}

func (v View) Card(id CardID) (CardView, bool) {
	for _, c := range v.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return CardView{}, false
}

// RecentLog returns up to n of the newest journal entries, oldest first.
func (v View) RecentLog(n int) []string {
	if n <= 0 {
		return nil
	}
	start := max(len(v.Log)-n, 0)
	return v.Log[start:]
}

// Game owns the active session and replaces it in one step on restart, so a
// reader never observes a half-reset session.
type Game struct {
	config     SessionConfig
	generation atomic.Int64
	current    atomic.Pointer[Session]
}

func NewGame(config SessionConfig) (*Game, error) {
	g := &Game{config: config}
	if err := g.Restart(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Current() *Session {
	return g.current.Load()
}

// Restart installs a fresh session in menu mode. A fixed seed advances by one
// per restart so consecutive sessions differ but stay reproducible.
func (g *Game) Restart() error {
	cfg := g.config
	gen := g.generation.Add(1) - 1
	if cfg.Seed != 0 {
		cfg.Seed += gen
	}
	s, err := NewSession(cfg)
	if err != nil {
		return err
	}
	g.current.Store(s)
	return nil
}

func (g *Game) BeginPlaying() error {
	return g.Current().BeginPlaying()
}

// ReturnToMenu leaves an ended session. Endings are terminal, so the menu
// always fronts a fresh session.
func (g *Game) ReturnToMenu() error {
	if mode := g.Current().Mode(); mode != ModeEnded {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, mode, ModeMenu)
	}
	return g.Restart()
}

func (g *Game) Perform(a Action) (Outcome, error) {
	return g.Current().Perform(a)
}
