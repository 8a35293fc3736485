package game

type EndingKind string

const (
	EndingAscension  EndingKind = "ASCENSION"
	EndingMadness    EndingKind = "MADNESS"
	EndingCultLeader EndingKind = "CULT_LEADER"
	EndingForgotten  EndingKind = "FORGOTTEN"
)

type Ending struct {
	Kind        EndingKind
	Title       string
	Description string
}

var endings = map[EndingKind]Ending{
	EndingAscension: {
		Kind:        EndingAscension,
		Title:       "ВОЗНЕСЕНИЕ",
		Description: "Вы собрали все компоненты и провели Великий Ритуал. Древние силы признали вас достойным и вознесли за пределы материального мира.",
	},
	EndingMadness: {
		Kind:        EndingMadness,
		Title:       "БЕЗУМИЕ",
		Description: "Вы заглянули слишком глубоко в бездну. Ваш разум не выдержал столкновения с невыразимыми истинами.",
	},
	EndingCultLeader: {
		Kind:        EndingCultLeader,
		Title:       "ЛИДЕР КУЛЬТА",
		Description: "Вы основали процветающий культ. Члены поклоняются вам как пророку. Ваше влияние растет с каждым днем.",
	},
	EndingForgotten: {
		Kind:        EndingForgotten,
		Title:       "ЗАБЫТЫЙ",
		Description: "Ваши поиски привели в забытые уголки мира, но вы так и не нашли того, что искали. Постепенно о вас забыли.",
	},
}

func EndingFor(kind EndingKind) (Ending, bool) {
	e, ok := endings[kind]
	return e, ok
}

// AllEndings lists the endings in ritual priority order.
func AllEndings() []Ending {
	return []Ending{
		endings[EndingAscension],
		endings[EndingMadness],
		endings[EndingCultLeader],
		endings[EndingForgotten],
	}
}

// EndingRule pairs a trigger with the ending it selects. Rule lists are
// evaluated top to bottom and the first match wins.
type EndingRule struct {
	Name    string
	Kind    EndingKind
	Matches func(Board) bool
}

// Board is the card and resource tally ending rules are evaluated against.
type Board struct {
	Resources Resources
	Lore      int
	Followers int
	Aspects   int
	Locations int
	HasCult   bool
}

func (s *Session) board() Board {
	return Board{
		Resources: s.ledger.Snapshot(),
		Lore:      s.cards.CountByType(CardLore),
		Followers: s.cards.CountByType(CardFollower),
		Aspects:   s.cards.CountByType(CardAspect),
		Locations: s.cards.CountByType(CardLocation),
		HasCult:   s.cards.Exists(isType(CardCult)),
	}
}

// RitualRules are consulted when a ritual is performed by a founded cult.
var RitualRules = []EndingRule{
	{Name: "ascension", Kind: EndingAscension, Matches: func(b Board) bool { return b.Lore >= 3 && b.Followers >= 2 }},
	{Name: "madness", Kind: EndingMadness, Matches: func(b Board) bool { return b.Aspects >= 5 }},
	{Name: "cult leader", Kind: EndingCultLeader, Matches: func(b Board) bool { return b.Followers >= 5 }},
	{Name: "forgotten", Kind: EndingForgotten, Matches: func(b Board) bool { return b.Locations >= 3 }},
}

// AutomaticRules are consulted after every dispatched action that did not
// already end the session through a ritual.
var AutomaticRules = []EndingRule{
	{Name: "reason depleted", Kind: EndingMadness, Matches: func(b Board) bool { return b.Resources.Reason <= 0 }},
	{Name: "health depleted", Kind: EndingForgotten, Matches: func(b Board) bool { return b.Resources.Health <= 0 }},
	{Name: "visions overflow", Kind: EndingMadness, Matches: func(b Board) bool { return b.Aspects >= 7 }},
}

func firstMatch(rules []EndingRule, b Board) (EndingKind, bool) {
	for _, r := range rules {
		if r.Matches(b) {
			return r.Kind, true
		}
	}
	return "", false
}

// ritualEnding requires a cult card on the table before any rule applies.
func ritualEnding(b Board) (EndingKind, bool) {
	if !b.HasCult {
		return "", false
	}
	return firstMatch(RitualRules, b)
}
