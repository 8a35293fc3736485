package game

import "testing"

func TestRitualPriorityOrder(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  EndingKind
		ok    bool
	}{
		{name: "everything at once", board: Board{HasCult: true, Lore: 3, Followers: 5, Aspects: 5, Locations: 3}, want: EndingAscension, ok: true},
		{name: "madness beats leader", board: Board{HasCult: true, Lore: 2, Followers: 5, Aspects: 5, Locations: 3}, want: EndingMadness, ok: true},
		{name: "leader beats forgotten", board: Board{HasCult: true, Lore: 1, Followers: 5, Aspects: 4, Locations: 3}, want: EndingCultLeader, ok: true},
		{name: "forgotten", board: Board{HasCult: true, Lore: 1, Followers: 1, Locations: 3}, want: EndingForgotten, ok: true},
		{name: "lore without followers", board: Board{HasCult: true, Lore: 6, Followers: 1}, ok: false},
		{name: "no cult card", board: Board{Lore: 3, Followers: 5, Aspects: 5, Locations: 3}, ok: false},
	}
	for _, tc := range tests {
		got, ok := ritualEnding(tc.board)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("%s: got (%q, %v) want (%q, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAutomaticRulesFirstMatchWins(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  EndingKind
		ok    bool
	}{
		{name: "both depleted", board: Board{Resources: Resources{}, Aspects: 9}, want: EndingMadness, ok: true},
		{name: "health only", board: Board{Resources: Resources{Reason: 3}, Aspects: 9}, want: EndingForgotten, ok: true},
		{name: "visions", board: Board{Resources: Resources{Health: 1, Reason: 1}, Aspects: 7}, want: EndingMadness, ok: true},
		{name: "healthy", board: Board{Resources: Resources{Health: 1, Reason: 1}, Aspects: 6}, ok: false},
	}
	for _, tc := range tests {
		got, ok := firstMatch(AutomaticRules, tc.board)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("%s: got (%q, %v) want (%q, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestEveryEndingHasText(t *testing.T) {
	for _, e := range AllEndings() {
		if e.Title == "" || e.Description == "" {
			t.Fatalf("ending %s missing text", e.Kind)
		}
		got, ok := EndingFor(e.Kind)
		if !ok || got != e {
			t.Fatalf("EndingFor(%s) mismatch", e.Kind)
		}
	}
	if _, ok := EndingFor("TRANSCENDENCE"); ok {
		t.Fatalf("unexpected ending for unknown kind")
	}
}
