package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/appengine-ltd/secret-cult/internal/cardart"
	"github.com/appengine-ltd/secret-cult/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files, err := generateDocs()
	if err != nil {
		fatal(err)
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateDocs() ([]docFile, error) {
	seed, err := generateSeedCardsDoc()
	if err != nil {
		return nil, err
	}
	return []docFile{
		generateActionsDoc(game.DefaultOdds),
		generateEndingsDoc(),
		seed,
		generateCardTypesDoc(),
	}, nil
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Reference\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateActionsDoc(odds game.Odds) docFile {
	items := game.ActionCatalog()

	var b strings.Builder
	b.WriteString("# Actions\n\n")
	b.WriteString("Source: `internal/game/action.go` (`ActionCatalog`) and `internal/game/config.go` (`DefaultOdds`).\n\n")
	b.WriteString("A bonus fires when the draw is strictly greater than the threshold.\n\n")
	b.WriteString("| Label | Typed alias | Gated | Precondition | Effect | Bonus | Threshold | Chance |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, a := range items {
		threshold, chance := "-", "-"
		if t, ok := odds.Threshold(a.Action); ok {
			threshold = formatFloat(t)
			chance = fmt.Sprintf("%.0f%%", odds.Chance(a.Action)*100)
		}
		b.WriteString("| ")
		b.WriteString(escape(string(a.Action)))
		b.WriteString(" | ")
		b.WriteString(escape(a.English))
		b.WriteString(" | ")
		b.WriteString(yesNo(a.Action.Gated()))
		b.WriteString(" | ")
		b.WriteString(escape(a.Precondition))
		b.WriteString(" | ")
		b.WriteString(escape(a.Cost))
		b.WriteString(" | ")
		b.WriteString(escape(a.Bonus))
		b.WriteString(" | ")
		b.WriteString(threshold)
		b.WriteString(" | ")
		b.WriteString(chance)
		b.WriteString(" |\n")
	}

	return docFile{Name: "actions.md", Title: "Actions", Content: b.String()}
}

func generateEndingsDoc() docFile {
	var b strings.Builder
	b.WriteString("# Endings\n\n")
	b.WriteString("Source: `internal/game/ending.go`.\n\n")
	b.WriteString("| Kind | Title | Description |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, e := range game.AllEndings() {
		b.WriteString(fmt.Sprintf("| %s | %s | %s |\n", escape(string(e.Kind)), escape(e.Title), escape(e.Description)))
	}

	writeRules := func(title, note string, rules []game.EndingRule) {
		b.WriteString("\n## " + title + "\n\n")
		b.WriteString(note + "\n\n")
		for i, r := range rules {
			b.WriteString(fmt.Sprintf("%d. %s: %s\n", i+1, escape(r.Name), r.Kind))
		}
	}
	writeRules("Ritual", "Checked in order when a founded cult performs a ritual; the first match wins.", game.RitualRules)
	writeRules("Automatic", "Checked in order after every other action.", game.AutomaticRules)

	return docFile{Name: "endings.md", Title: "Endings", Content: b.String()}
}

func generateSeedCardsDoc() (docFile, error) {
	s, err := game.NewSession(game.SessionConfig{Seed: 1})
	if err != nil {
		return docFile{}, fmt.Errorf("build session: %w", err)
	}
	view := s.View()

	var b strings.Builder
	b.WriteString("# Starting Table\n\n")
	b.WriteString(fmt.Sprintf("Every session starts with health %d, reason %d, funds %d and these cards.\n\n", view.Resources.Health, view.Resources.Reason, view.Resources.Funds))
	b.WriteString("| ID | Type | Title | Description | Value |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, c := range view.Cards {
		value := ""
		if c.Value != nil {
			value = strconv.Itoa(*c.Value)
		}
		b.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s |\n", c.ID, c.Type, escape(c.Title), escape(c.Description), value))
	}
	b.WriteString(fmt.Sprintf("\nJournal greeting: %s\n", escape(view.Latest)))

	return docFile{Name: "starting-table.md", Title: "Starting Table", Content: b.String()}, nil
}

func generateCardTypesDoc() docFile {
	var b strings.Builder
	b.WriteString("# Card Types\n\n")
	b.WriteString("Emblems are written by `go run ./cmd/cardart`.\n\n")
	b.WriteString("| Type | Emoji | Border | Emblem |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, t := range game.AllCardTypes() {
		c := cardart.Border(t)
		b.WriteString(fmt.Sprintf("| %s | %s | #%02X%02X%02X | `assets/cards/%s` |\n", t, t.Emoji(), c.R, c.G, c.B, cardart.FileName(t)))
	}
	return docFile{Name: "card-types.md", Title: "Card Types", Content: b.String()}
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
