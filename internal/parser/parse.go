package parser

import (
	"strings"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Parse(raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
		Confidence: 0,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Введите действие или help."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		if inferred := p.inferFreeTextIntent(raw, intent.Normalised); inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Не понимаю. Попробуйте: работать, изучать, сны, беседовать, исследовать, отдых, ритуал, создать культ.",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Вы имели в виду:",
			Options: []Intent{
				p.intentFor(raw, cmdMatch.Canonical, cmdMatch.Score),
				p.intentFor(raw, alternates[0].Canonical, alternates[0].Score),
			},
		}
		return intent
	}

	resolved := p.intentFor(raw, cmdMatch.Canonical, cmdMatch.Score)
	resolved.Normalised = intent.Normalised
	// Trailing words lower confidence; the menu takes no arguments.
	if extra := len(tokens) - cmdMatch.Consumed; extra > 0 {
		resolved.Confidence = clampScore(resolved.Confidence - 0.04*float64(extra))
	}
	if resolved.Confidence < 0.52 {
		resolved.Clarify = &ClarifyQuestion{Prompt: "Не уверен, что вы имели в виду. Уточните действие."}
	}
	return resolved
}

func (p *Parser) intentFor(raw, canonical string, score float64) Intent {
	def, _ := p.registry.command(canonical)
	return Intent{
		Raw:        raw,
		Normalised: def.Canonical,
		Kind:       def.Kind,
		Verb:       def.Canonical,
		HandlerKey: def.HandlerKey,
		Confidence: clampScore(score),
	}
}

// inferFreeTextIntent looks for a known phrase anywhere in a sentence, so
// "я хочу отдохнуть" still maps to rest.
func (p *Parser) inferFreeTextIntent(raw, normalised string) *Intent {
	tokens := tokenise(normalised)
	for size := 2; size >= 1; size-- {
		for i := 0; i+size <= len(tokens); i++ {
			phrase := strings.Join(tokens[i:i+size], " ")
			if runeLen(phrase) < 3 {
				continue
			}
			def, ok := p.registry.exactPhrase(phrase)
			if !ok {
				continue
			}
			intent := p.intentFor(raw, def.Canonical, 0.8)
			intent.Normalised = normalised
			return &intent
		}
	}
	return nil
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
