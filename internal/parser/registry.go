package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/secret-cult/internal/game"
)

type commandPhrase struct {
	canonical string
	alias     string
	tokens    []string
}

type Registry struct {
	commands map[string]CommandDef
	phrases  []commandPhrase
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]CommandDef),
	}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	if c.HandlerKey == "" {
		c.HandlerKey = c.Canonical
	}
	r.commands[c.Canonical] = c

	r.phrases = append(r.phrases, commandPhrase{
		canonical: c.Canonical,
		alias:     c.Canonical,
		tokens:    tokenise(c.Canonical),
	})
	for _, a := range c.Aliases {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, commandPhrase{
			canonical: c.Canonical,
			alias:     n,
			tokens:    tokenise(n),
		})
	}
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	canonical = normaliseInput(canonical)
	cmd, ok := r.commands[canonical]
	return cmd, ok
}

// exactPhrase returns the command whose canonical name or alias equals the
// normalised phrase.
func (r *Registry) exactPhrase(phrase string) (CommandDef, bool) {
	for _, p := range r.phrases {
		if p.alias == phrase {
			return r.command(p.canonical)
		}
	}
	return CommandDef{}, false
}

type commandCandidate struct {
	Canonical string
	Alias     string
	Consumed  int
	Score     float64
	Source    string
}

func (r *Registry) matchCommand(tokens []string) (commandCandidate, []commandCandidate) {
	if len(tokens) == 0 {
		return commandCandidate{}, nil
	}
	in := strings.Join(tokens, " ")
	cands := make([]commandCandidate, 0, len(r.phrases))
	for _, phrase := range r.phrases {
		if len(phrase.tokens) == 0 {
			continue
		}
		consumed := min(len(tokens), len(phrase.tokens))
		prefix := strings.Join(tokens[:consumed], " ")

		if consumed == len(phrase.tokens) && prefix == phrase.alias {
			score := 1.0
			source := "exact"
			if phrase.alias != phrase.canonical {
				score = 0.97
				source = "alias"
			}
			cands = append(cands, commandCandidate{
				Canonical: phrase.canonical,
				Alias:     phrase.alias,
				Consumed:  consumed,
				Score:     score,
				Source:    source,
			})
			continue
		}

		if len(phrase.tokens) == 1 && strings.HasPrefix(phrase.alias, tokens[0]) && runeLen(tokens[0]) >= 3 {
			cands = append(cands, commandCandidate{
				Canonical: phrase.canonical,
				Alias:     phrase.alias,
				Consumed:  1,
				Score:     0.9,
				Source:    "prefix",
			})
			continue
		}

		// Fuzzy: only when there was no exact/prefix hit for this phrase.
		cut := consumed
		compare := prefix
		if len(phrase.tokens) > 1 && len(tokens) >= len(phrase.tokens) {
			cut = len(phrase.tokens)
			compare = strings.Join(tokens[:cut], " ")
		}
		if cut == 0 || compare == "" {
			continue
		}
		if runeLen(compare) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(compare, phrase.alias)
		limit := levenshteinLimit(runeLen(phrase.alias))
		if dist > limit {
			continue
		}
		score := 0.72 - (0.08 * float64(dist))
		if strings.Contains(in, phrase.alias) {
			score += 0.04
		}
		if phrase.alias != phrase.canonical {
			score += 0.03
		}
		cands = append(cands, commandCandidate{
			Canonical: phrase.canonical,
			Alias:     phrase.alias,
			Consumed:  cut,
			Score:     score,
			Source:    "lev",
		})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			if cands[i].Consumed == cands[j].Consumed {
				return cands[i].Canonical < cands[j].Canonical
			}
			return cands[i].Consumed > cands[j].Consumed
		}
		return cands[i].Score > cands[j].Score
	})

	if len(cands) == 0 {
		return commandCandidate{}, nil
	}
	best := cands[0]
	alts := make([]commandCandidate, 0, 4)
	seen := map[string]bool{best.Canonical: true}
	for _, c := range cands[1:] {
		if seen[c.Canonical] {
			continue
		}
		seen[c.Canonical] = true
		alts = append(alts, c)
		if len(alts) >= 4 {
			break
		}
	}
	return best, alts
}

// levenshteinLimit takes a length in runes.
func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "work", Aliases: []string{"работать", "работа", "трудиться", "job", "1"}, Kind: Command, HandlerKey: string(game.ActionWork)},
		{Canonical: "study", Aliases: []string{"изучать", "изучить", "учиться", "читать", "read", "2"}, Kind: Command, HandlerKey: string(game.ActionStudy)},
		{Canonical: "dream", Aliases: []string{"сны", "сон", "спать", "видеть сны", "sleep", "3"}, Kind: Command, HandlerKey: string(game.ActionDream)},
		{Canonical: "converse", Aliases: []string{"беседовать", "беседа", "говорить", "talk", "chat", "4"}, Kind: Command, HandlerKey: string(game.ActionConverse)},
		{Canonical: "explore", Aliases: []string{"исследовать", "искать", "wander", "scout", "5"}, Kind: Command, HandlerKey: string(game.ActionExplore)},
		{Canonical: "rest", Aliases: []string{"отдых", "отдыхать", "отдохнуть", "relax", "6"}, Kind: Command, HandlerKey: string(game.ActionRest)},
		{Canonical: "ritual", Aliases: []string{"ритуал", "обряд", "провести ритуал", "7"}, Kind: Command, HandlerKey: string(game.ActionRitual)},
		{Canonical: "found cult", Aliases: []string{"создать культ", "основать культ", "культ", "cult", "8"}, Kind: Command, HandlerKey: string(game.ActionFoundCult)},

		{Canonical: "help", Aliases: []string{"h", "помощь", "справка", "commands"}, Kind: Help, HandlerKey: "help"},
		{Canonical: ControlStart, Aliases: []string{"начать", "play", "begin", "new game"}, Kind: Control},
		{Canonical: ControlRestart, Aliases: []string{"заново", "рестарт", "r"}, Kind: Control},
		{Canonical: ControlMenu, Aliases: []string{"меню", "back", "esc"}, Kind: Control},
		{Canonical: ControlQuit, Aliases: []string{"выход", "выйти", "exit", "q"}, Kind: Control},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
