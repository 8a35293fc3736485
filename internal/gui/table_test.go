package gui

import (
	"testing"

	"github.com/appengine-ltd/secret-cult/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func newTestTable(t *testing.T) (*cardTable, *game.Session) {
	t.Helper()
	s, err := game.NewSession(game.SessionConfig{Seed: 11})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	table := newCardTable(800, 600, func(n int) int { return n - 1 })
	table.sync(s.View().Cards)
	return table, s
}

func TestSyncPlacesSeedCardsAtFixedSpots(t *testing.T) {
	table, s := newTestTable(t)
	cards := s.View().Cards
	if len(table.cards) != len(cards) {
		t.Fatalf("expected %d placed cards, got %d", len(cards), len(table.cards))
	}
	for i, c := range cards {
		pos, ok := table.position(c.ID)
		if !ok {
			t.Fatalf("card %d not placed", c.ID)
		}
		if pos != seedPositions[i] {
			t.Fatalf("card %d at %+v, want %+v", c.ID, pos, seedPositions[i])
		}
	}

	table.sync(cards)
	if len(table.cards) != len(cards) {
		t.Fatal("sync must not place a card twice")
	}
}

func TestSpawnPositionStaysInTableArea(t *testing.T) {
	for _, pick := range []func(int) int{
		func(int) int { return 0 },
		func(n int) int { return n - 1 },
	} {
		table := newCardTable(800, 600, pick)
		pos := table.spawnPosition()
		if pos.X < 20 || pos.X > 800-panelWidth-cardWidth-20 {
			t.Fatalf("x=%v outside table", pos.X)
		}
		if pos.Y < 80 || pos.Y > 600-cardHeight-120 {
			t.Fatalf("y=%v outside table", pos.Y)
		}
	}
}

func TestBeginDragRaisesTopmostCard(t *testing.T) {
	table, _ := newTestTable(t)
	// Cards 1 and 2 overlap once card 2 is pushed left.
	table.cards[1].Pos = rl.Vector2{X: 60, Y: 100}

	if !table.beginDrag(rl.Vector2{X: 100, Y: 150}) {
		t.Fatal("expected a card under the cursor")
	}
	if table.dragging != 2 {
		t.Fatalf("expected topmost card 2 to be picked, got %d", table.dragging)
	}
	if top := table.cards[len(table.cards)-1].ID; top != 2 {
		t.Fatalf("expected picked card raised to top, top is %d", top)
	}
}

func TestDragToClampsToTableArea(t *testing.T) {
	table, _ := newTestTable(t)
	if !table.beginDrag(rl.Vector2{X: 30, Y: 110}) {
		t.Fatal("expected to pick card 1")
	}

	table.dragTo(rl.Vector2{X: -500, Y: -500})
	pos, _ := table.position(1)
	if pos.X != 10 || pos.Y != 70 {
		t.Fatalf("expected clamp to (10,70), got %+v", pos)
	}

	table.dragTo(rl.Vector2{X: 5000, Y: 5000})
	pos, _ = table.position(1)
	wantX := float32(800 - panelWidth - cardWidth - 10)
	wantY := float32(600 - cardHeight - 110)
	if pos.X != wantX || pos.Y != wantY {
		t.Fatalf("expected clamp to (%v,%v), got %+v", wantX, wantY, pos)
	}

	table.endDrag()
	table.dragTo(rl.Vector2{X: 100, Y: 100})
	if after, _ := table.position(1); after != pos {
		t.Fatal("card moved after drag ended")
	}
}

func TestHitMissesEmptyTable(t *testing.T) {
	table, _ := newTestTable(t)
	if _, ok := table.hit(rl.Vector2{X: 500, Y: 500}); ok {
		t.Fatal("expected no card at an empty spot")
	}
}

func TestResetClearsPlacements(t *testing.T) {
	table, _ := newTestTable(t)
	table.beginDrag(rl.Vector2{X: 30, Y: 110})
	table.reset()
	if len(table.cards) != 0 || table.dragging != 0 {
		t.Fatalf("expected empty table, got %d cards dragging=%d", len(table.cards), table.dragging)
	}
}

func TestActionButtonsFollowAvailability(t *testing.T) {
	s, err := game.NewSession(game.SessionConfig{Seed: 3})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	buttons := actionButtons(800, s.View())
	if len(buttons) != len(game.AllActions()) {
		t.Fatalf("expected %d buttons, got %d", len(game.AllActions()), len(buttons))
	}
	for i, b := range buttons {
		if b.Rect.X != 800-panelWidth+10 || b.Rect.Y != float32(80+40*i) {
			t.Fatalf("button %s at %+v", b.Action, b.Rect)
		}
		gated := b.Action == game.ActionRitual || b.Action == game.ActionFoundCult
		if b.Visible == gated {
			t.Fatalf("button %s visible=%v at session start", b.Action, b.Visible)
		}
	}

	ritual := buttons[6].Rect
	if _, ok := buttonAt(buttons, rl.Vector2{X: ritual.X + 5, Y: ritual.Y + 5}); ok {
		t.Fatal("hidden ritual button must not be clickable")
	}
	work := buttons[0].Rect
	if a, ok := buttonAt(buttons, rl.Vector2{X: work.X + 5, Y: work.Y + 5}); !ok || a != game.ActionWork {
		t.Fatalf("expected work button hit, got %q %v", a, ok)
	}
}

func TestWrapWords(t *testing.T) {
	measure := func(s string) int32 { return int32(len([]rune(s))) }
	got := wrapWords("Вы заглянули слишком глубоко в бездну", 14, measure)
	want := []string{"Вы заглянули", "слишком", "глубоко в", "бездну"}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if lines := wrapWords("   ", 10, measure); len(lines) != 1 || lines[0] != "" {
		t.Fatalf("expected one empty line, got %q", lines)
	}
}

func TestActionQueueOrderAndDrain(t *testing.T) {
	q := newActionQueue(2)
	q.EnqueueAction(game.ActionWork)
	q.EnqueueAction(game.ActionRest)
	q.EnqueueAction(game.ActionDream) // dropped, queue full

	if a, ok := q.Dequeue(); !ok || a != game.ActionWork {
		t.Fatalf("expected work first, got %q", a)
	}
	if n := q.Drain(); n != 1 {
		t.Fatalf("expected 1 drained, got %d", n)
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatal("expected empty queue")
	}

	var nilQueue *actionQueue
	nilQueue.EnqueueAction(game.ActionWork)
	if _, ok := nilQueue.Dequeue(); ok {
		t.Fatal("nil queue should be empty")
	}
}
