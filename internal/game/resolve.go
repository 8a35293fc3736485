package game

const (
	msgWork            = "Вы работаете и зарабатываете деньги. Здоровье ухудшается."
	msgWorkFollower    = " Вы находите нового последователя."
	msgWorkInterest    = " Кто-то проявил интерес."
	msgWorkExhausted   = "Вы слишком истощены для работы."
	msgStudy           = "Вы изучаете древние тексты. Рассудок страдает."
	msgStudyKnowledge  = " Вы находите древнее знание."
	msgStudyNoLore     = "У вас нет материалов для изучения."
	msgStudyFragile    = "Ваш рассудок слишком хрупок."
	msgDream           = "Вы погружаетесь в странные сны. Рассудок страдает."
	msgDreamVision     = " Вы получаете видение."
	msgDreamTooClose   = "Вы слишком близки к безумию, чтобы спать."
	msgConverse        = "Вы ищете единомышленников."
	msgConverseNovice  = " Вы находите нового члена культа."
	msgConverseSympath = " Вы находите сочувствующего."
	msgConverseNobody  = " Никто не проявил интереса."
	msgExplore         = "Вы исследуете окрестности."
	msgExploreTemple   = " Вы находите заброшенный храм."
	msgExploreNoFunds  = "У вас недостаточно денег."
	msgRest            = "Вы отдыхаете и восстанавливаете силы."
	msgRestNoFunds     = "У вас недостаточно денег для отдыха."
	msgRitualNoCult    = "Сначала создайте культ!"
	msgRitual          = "Вы проводите таинственный ритуал."
	msgRitualSuccess   = " Ритуал увенчался успехом!"
	msgRitualNothing   = " Ритуал не принес результатов."
	msgRitualDrained   = "Недостаточно здоровья или рассудка."
	msgCultFounded     = "Вы создали Тайный культ! Теперь можете проводить ритуалы."
	msgCultNotReady    = "Нужно Древнее знание и хотя бы один сочувствующий."
)

// Outcome describes one dispatched action.
type Outcome struct {
	Action Action
	// Message is the journal line the action produced. It is empty when a
	// ritual ended the session.
	Message string
	// Applied is false when a precondition failed and nothing changed.
	Applied bool
	// Bonus reports whether the action's bonus roll fired.
	Bonus bool
	// Cards lists cards the action added, in order.
	Cards []CardID
	// Ending is set when this action ended the session.
	Ending *Ending
	// Ritual is true when the ending came from the ritual check.
	Ritual bool
}

func (s *Session) bonus(a Action) bool {
	t, ok := s.odds.Threshold(a)
	if !ok {
		return false
	}
	return rollExceeds(s.rng, t)
}

func (s *Session) deal(out *Outcome, t cardTemplate) {
	out.Cards = append(out.Cards, s.cards.add(t))
}

// resolve applies one action to the ledger and collection. A ritual that
// meets an ending rule returns with ending set and nothing else applied.
func (s *Session) resolve(a Action) (out Outcome, ending EndingKind) {
	out.Action = a
	res := s.ledger.Snapshot()

	switch a {
	case ActionWork:
		if res.Health <= 2 {
			out.Message = msgWorkExhausted
			return out, ""
		}
		s.ledger.Adjust(Funds, 2)
		s.ledger.Adjust(Health, -1)
		out.Applied = true
		out.Message = msgWork
		if s.bonus(a) {
			out.Bonus = true
			if s.cultCreated {
				s.deal(&out, cardFollower)
				out.Message += msgWorkFollower
			} else {
				s.deal(&out, cardInterested)
				out.Message += msgWorkInterest
			}
		}

	case ActionStudy:
		if res.Reason <= 1 {
			out.Message = msgStudyFragile
			return out, ""
		}
		if !s.cards.Exists(isType(CardLore)) {
			out.Message = msgStudyNoLore
			return out, ""
		}
		s.ledger.Adjust(Reason, -1)
		out.Applied = true
		out.Message = msgStudy
		if s.bonus(a) {
			out.Bonus = true
			s.deal(&out, cardKnowledge)
			out.Message += msgStudyKnowledge
		}

	case ActionDream:
		if res.Reason <= 0 {
			out.Message = msgDreamTooClose
			return out, ""
		}
		s.ledger.Adjust(Reason, -1)
		out.Applied = true
		out.Message = msgDream
		if s.bonus(a) {
			out.Bonus = true
			s.deal(&out, cardVision)
			out.Message += msgDreamVision
		}

	case ActionConverse:
		out.Applied = true
		out.Message = msgConverse
		if !s.bonus(a) {
			out.Message += msgConverseNobody
			return out, ""
		}
		out.Bonus = true
		if s.cultCreated {
			s.deal(&out, cardNovice)
			out.Message += msgConverseNovice
		} else {
			s.deal(&out, cardSympathizer)
			out.Message += msgConverseSympath
		}

	case ActionExplore:
		if res.Funds <= 0 {
			out.Message = msgExploreNoFunds
			return out, ""
		}
		s.ledger.Adjust(Funds, -1)
		out.Applied = true
		out.Message = msgExplore
		if s.bonus(a) {
			out.Bonus = true
			s.deal(&out, cardTemple)
			out.Message += msgExploreTemple
		}

	case ActionRest:
		if res.Funds <= 0 {
			out.Message = msgRestNoFunds
			return out, ""
		}
		s.ledger.Adjust(Funds, -1)
		s.ledger.Adjust(Health, 2)
		s.ledger.Adjust(Reason, 1)
		out.Applied = true
		out.Message = msgRest

	case ActionRitual:
		if !s.cultCreated {
			out.Message = msgRitualNoCult
			return out, ""
		}
		if kind, ok := ritualEnding(s.board()); ok {
			out.Applied = true
			out.Ritual = true
			return out, kind
		}
		if res.Health <= 1 || res.Reason <= 1 {
			out.Message = msgRitualDrained
			return out, ""
		}
		s.ledger.Adjust(Health, -1)
		s.ledger.Adjust(Reason, -1)
		out.Applied = true
		out.Message = msgRitual
		if s.bonus(a) {
			out.Bonus = true
			s.deal(&out, cardArtifact)
			out.Message += msgRitualSuccess
		} else {
			out.Message += msgRitualNothing
		}

	case ActionFoundCult:
		if !s.CanFoundCult() {
			out.Message = msgCultNotReady
			return out, ""
		}
		out.Cards = append(out.Cards, s.foundCult())
		out.Applied = true
		out.Message = msgCultFounded
	}

	return out, ""
}
