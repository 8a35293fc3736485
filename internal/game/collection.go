package game

// Collection owns every card acquired in a session. Cards are only ever
// appended; IDs are assigned in insertion order starting at 1.
type Collection struct {
	cards  []Card
	nextID CardID
}

func newCollection() Collection {
	return Collection{nextID: 1}
}

// AddCard appends a plain card and returns its ID.
func (c *Collection) AddCard(title, description string, cardType CardType) CardID {
	return c.add(cardTemplate{Title: title, Description: description, Type: cardType})
}

func (c *Collection) add(t cardTemplate) CardID {
	if c.nextID == 0 {
		c.nextID = 1
	}
	id := c.nextID
	c.nextID++
	c.cards = append(c.cards, Card{
		ID:          id,
		Title:       t.Title,
		Description: t.Description,
		Type:        t.Type,
		Mark:        t.Mark,
	})
	return id
}

func (c *Collection) Len() int {
	return len(c.cards)
}

func (c *Collection) CountByType(cardType CardType) int {
	n := 0
	for _, card := range c.cards {
		if card.Type == cardType {
			n++
		}
	}
	return n
}

func (c *Collection) Exists(pred func(Card) bool) bool {
	for _, card := range c.cards {
		if pred(card) {
			return true
		}
	}
	return false
}

// RenameWhere rewrites title and description of every matching card and
// reports how many changed.
func (c *Collection) RenameWhere(pred func(Card) bool, title, description string) int {
	n := 0
	for i := range c.cards {
		if !pred(c.cards[i]) {
			continue
		}
		c.cards[i].Title = title
		c.cards[i].Description = description
		n++
	}
	return n
}

// Card returns a copy of the card with the given ID.
func (c *Collection) Card(id CardID) (Card, bool) {
	for _, card := range c.cards {
		if card.ID == id {
			return card, true
		}
	}
	return Card{}, false
}

func (c *Collection) views(res Resources) []CardView {
	out := make([]CardView, 0, len(c.cards))
	for _, card := range c.cards {
		out = append(out, card.view(res))
	}
	return out
}

func isType(t CardType) func(Card) bool {
	return func(c Card) bool { return c.Type == t }
}

func isAncientKnowledge(c Card) bool {
	return c.Type == CardLore && c.Mark == MarkAncientKnowledge
}

func isProspect(c Card) bool {
	return c.Type == CardFollower && c.Mark == MarkProspect
}
