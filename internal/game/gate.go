package game

// CultFlags are derived from the collection every time the gate runs; only
// Created is state of its own.
type CultFlags struct {
	Created             bool
	HasAncientKnowledge bool
	HasFirstFollower    bool
}

// Availability says which gated actions are currently offered.
type Availability struct {
	FoundCult bool
	Ritual    bool
}

// CanFoundCult is true while foundational lore and a follower are on the
// table and no cult exists yet.
func (s *Session) CanFoundCult() bool {
	f := s.cultFlags()
	return f.HasAncientKnowledge && f.HasFirstFollower && !f.Created
}

func (s *Session) cultFlags() CultFlags {
	return CultFlags{
		Created:             s.cultCreated,
		HasAncientKnowledge: s.cards.Exists(isAncientKnowledge),
		HasFirstFollower:    s.cards.Exists(isType(CardFollower)),
	}
}

// evaluateGate refreshes the gated-action switches.
func (s *Session) evaluateGate() {
	s.avail = Availability{
		FoundCult: s.CanFoundCult(),
		Ritual:    s.cultCreated,
	}
}

// foundCult turns the gate's condition into a cult: a cult card joins the
// table and every prospect becomes a full follower.
func (s *Session) foundCult() CardID {
	id := s.cards.add(cardCult)
	s.cultCreated = true
	s.cards.RenameWhere(isProspect, cardFollower.Title, cardFollower.Description)
	return id
}
