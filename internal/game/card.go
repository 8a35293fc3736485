package game

type CardType string

const (
	CardAspect   CardType = "aspect"
	CardFollower CardType = "follower"
	CardLocation CardType = "location"
	CardLore     CardType = "lore"
	CardResource CardType = "resource"
	CardCult     CardType = "cult"
)

// AllCardTypes lists the card types in the order the table renders them.
func AllCardTypes() []CardType {
	return []CardType{CardResource, CardLore, CardFollower, CardAspect, CardLocation, CardCult}
}

func (t CardType) Valid() bool {
	switch t {
	case CardAspect, CardFollower, CardLocation, CardLore, CardResource, CardCult:
		return true
	default:
		return false
	}
}

func (t CardType) Emoji() string {
	switch t {
	case CardAspect:
		return "🔮"
	case CardFollower:
		return "👤"
	case CardLocation:
		return "🏛️"
	case CardLore:
		return "📖"
	case CardResource:
		return "💰"
	case CardCult:
		return "☪️"
	default:
		return "❓"
	}
}

// CardMark tags cards whose identity matters to the rules, so no rule has to
// match on title text.
type CardMark int

const (
	MarkNone CardMark = iota
	// MarkMirrorHealth, MarkMirrorReason and MarkMirrorFunds point a resource
	// card at the ledger counter it displays.
	MarkMirrorHealth
	MarkMirrorReason
	MarkMirrorFunds
	// MarkAncientKnowledge is foundational lore; one is required to found a cult.
	MarkAncientKnowledge
	// MarkProspect is a pre-cult follower that becomes a full follower when
	// the cult is founded.
	MarkProspect
)

func (m CardMark) mirrors() (Resource, bool) {
	switch m {
	case MarkMirrorHealth:
		return Health, true
	case MarkMirrorReason:
		return Reason, true
	case MarkMirrorFunds:
		return Funds, true
	default:
		return 0, false
	}
}

type CardID int

// Card is the engine's record of an acquired item. Type and Mark never change
// after creation; Title and Description are rewritten when prospects convert.
type Card struct {
	ID          CardID
	Title       string
	Description string
	Type        CardType
	Mark        CardMark
}

// CardView is the read-only projection handed to front ends. Value is set only
// for mirror cards and is computed from the ledger at projection time.
type CardView struct {
	ID          CardID
	Title       string
	Description string
	Type        CardType
	Value       *int
}

func (c Card) view(res Resources) CardView {
	v := CardView{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Type:        c.Type,
	}
	if r, ok := c.Mark.mirrors(); ok {
		n := res.Get(r)
		v.Value = &n
	}
	return v
}

// cardTemplate is a card the rules know how to create.
type cardTemplate struct {
	Title       string
	Description string
	Type        CardType
	Mark        CardMark
}

var (
	cardHealth      = cardTemplate{Title: "Здоровье", Description: "Ваша жизненная сила", Type: CardResource, Mark: MarkMirrorHealth}
	cardReason      = cardTemplate{Title: "Рассудок", Description: "Ваша ментальная стабильность", Type: CardResource, Mark: MarkMirrorReason}
	cardFunds       = cardTemplate{Title: "Деньги", Description: "Средства к существованию", Type: CardResource, Mark: MarkMirrorFunds}
	cardOldBook     = cardTemplate{Title: "Старая книга", Description: "Тайные знания ждут изучения", Type: CardLore}
	cardStranger    = cardTemplate{Title: "Таинственный незнакомец", Description: "Проявил интерес к оккультному", Type: CardFollower}
	cardInterested  = cardTemplate{Title: "Заинтересованный", Description: "Проявил интерес к вашим идеям", Type: CardFollower, Mark: MarkProspect}
	cardSympathizer = cardTemplate{Title: "Сочувствующий", Description: "Интересуется оккультизмом", Type: CardFollower, Mark: MarkProspect}
	cardFollower    = cardTemplate{Title: "Последователь", Description: "Член вашего культа", Type: CardFollower}
	cardNovice      = cardTemplate{Title: "Новичок", Description: "Новый член культа", Type: CardFollower}
	cardKnowledge   = cardTemplate{Title: "Древнее знание", Description: "Запретные знания предков", Type: CardLore, Mark: MarkAncientKnowledge}
	cardVision      = cardTemplate{Title: "Видение", Description: "Образ из снов", Type: CardAspect}
	cardTemple      = cardTemplate{Title: "Заброшенный храм", Description: "Место, полное тайн", Type: CardLocation}
	cardArtifact    = cardTemplate{Title: "Древний артефакт", Description: "Предмет невероятной силы", Type: CardLore}
	cardCult        = cardTemplate{Title: "Тайный культ", Description: "Ваша организация", Type: CardCult}
)

// seedCards are dealt at the start of every session, in table order.
func seedCards() []cardTemplate {
	return []cardTemplate{cardHealth, cardReason, cardFunds, cardOldBook, cardStranger}
}
