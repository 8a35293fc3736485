package gui

import (
	"github.com/appengine-ltd/secret-cult/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cardWidth  = 120
	cardHeight = 160
	panelWidth = 180
)

// seedPositions are the fixed spots of the cards every session starts with,
// in the order they are dealt.
var seedPositions = []rl.Vector2{
	{X: 20, Y: 100},
	{X: 160, Y: 100},
	{X: 300, Y: 100},
	{X: 20, Y: 280},
	{X: 160, Y: 280},
}

type placedCard struct {
	ID  game.CardID
	Pos rl.Vector2
}

// cardTable is presentation state only: where each card lies and which one
// is on top. The engine never sees positions.
type cardTable struct {
	width  int32
	height int32
	intn   func(n int) int

	cards []placedCard // draw order, last is topmost

	dragging   game.CardID
	dragOffset rl.Vector2
}

func newCardTable(width, height int32, intn func(n int) int) *cardTable {
	return &cardTable{width: width, height: height, intn: intn}
}

func (t *cardTable) resize(width, height int32) {
	t.width = width
	t.height = height
}

func (t *cardTable) reset() {
	t.cards = nil
	t.dragging = 0
}

// sync places cards the table has not seen yet.
func (t *cardTable) sync(cards []game.CardView) {
	for _, c := range cards {
		if t.index(c.ID) >= 0 {
			continue
		}
		var pos rl.Vector2
		if n := len(t.cards); n < len(seedPositions) && int(c.ID) == n+1 {
			pos = seedPositions[n]
		} else {
			pos = t.spawnPosition()
		}
		t.cards = append(t.cards, placedCard{ID: c.ID, Pos: pos})
	}
}

// spawnPosition picks a random spot inside the table area.
func (t *cardTable) spawnPosition() rl.Vector2 {
	minX, maxX := int32(20), t.width-panelWidth-cardWidth-20
	minY, maxY := int32(80), t.height-cardHeight-120
	return rl.Vector2{
		X: float32(minX + t.roll(maxX-minX+1)),
		Y: float32(minY + t.roll(maxY-minY+1)),
	}
}

func (t *cardTable) roll(n int32) int32 {
	if n <= 1 || t.intn == nil {
		return 0
	}
	return int32(t.intn(int(n)))
}

// dragBounds is the area a dragged card's top-left corner may occupy.
func (t *cardTable) dragBounds() rl.Rectangle {
	minX, minY := float32(10), float32(70)
	maxX := float32(t.width - panelWidth - cardWidth - 10)
	maxY := float32(t.height - cardHeight - 110)
	return rl.NewRectangle(minX, minY, max(maxX-minX, 0), max(maxY-minY, 0))
}

func (t *cardTable) index(id game.CardID) int {
	for i, c := range t.cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (t *cardTable) position(id game.CardID) (rl.Vector2, bool) {
	i := t.index(id)
	if i < 0 {
		return rl.Vector2{}, false
	}
	return t.cards[i].Pos, true
}

func cardRect(pos rl.Vector2) rl.Rectangle {
	return rl.NewRectangle(pos.X, pos.Y, cardWidth, cardHeight)
}

// hit returns the topmost card under point.
func (t *cardTable) hit(point rl.Vector2) (game.CardID, bool) {
	for i := len(t.cards) - 1; i >= 0; i-- {
		if rl.CheckCollisionPointRec(point, cardRect(t.cards[i].Pos)) {
			return t.cards[i].ID, true
		}
	}
	return 0, false
}

// beginDrag picks up the topmost card under point and raises it.
func (t *cardTable) beginDrag(point rl.Vector2) bool {
	id, ok := t.hit(point)
	if !ok {
		return false
	}
	i := t.index(id)
	picked := t.cards[i]
	t.cards = append(t.cards[:i], t.cards[i+1:]...)
	t.cards = append(t.cards, picked)
	t.dragging = id
	t.dragOffset = rl.Vector2{X: point.X - picked.Pos.X, Y: point.Y - picked.Pos.Y}
	return true
}

func (t *cardTable) dragTo(point rl.Vector2) {
	if t.dragging == 0 {
		return
	}
	i := t.index(t.dragging)
	if i < 0 {
		t.dragging = 0
		return
	}
	b := t.dragBounds()
	t.cards[i].Pos = rl.Vector2{
		X: clampFloat32(point.X-t.dragOffset.X, b.X, b.X+b.Width),
		Y: clampFloat32(point.Y-t.dragOffset.Y, b.Y, b.Y+b.Height),
	}
}

func (t *cardTable) endDrag() {
	t.dragging = 0
}

func clampFloat32(v, lo, hi float32) float32 {
	return min(hi, max(lo, v))
}
