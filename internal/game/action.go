package game

import (
	"errors"
	"fmt"
	"strings"
)

// Action is one of the fixed menu entries. Its value is the label shown on
// the action button.
type Action string

const (
	ActionWork      Action = "Работать"
	ActionStudy     Action = "Изучать"
	ActionDream     Action = "Сны"
	ActionConverse  Action = "Беседовать"
	ActionExplore   Action = "Исследовать"
	ActionRest      Action = "Отдых"
	ActionRitual    Action = "Ритуал"
	ActionFoundCult Action = "Создать культ"
)

var ErrUnknownAction = errors.New("unknown action")

// AllActions lists the actions in button order.
func AllActions() []Action {
	return []Action{
		ActionWork,
		ActionStudy,
		ActionDream,
		ActionConverse,
		ActionExplore,
		ActionRest,
		ActionRitual,
		ActionFoundCult,
	}
}

func (a Action) Valid() bool {
	switch a {
	case ActionWork, ActionStudy, ActionDream, ActionConverse, ActionExplore, ActionRest, ActionRitual, ActionFoundCult:
		return true
	default:
		return false
	}
}

// Gated reports whether the action is only offered once the cult gate allows it.
func (a Action) Gated() bool {
	return a == ActionRitual || a == ActionFoundCult
}

// ParseAction maps a button label to its action.
func ParseAction(label string) (Action, error) {
	a := Action(strings.TrimSpace(label))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, label)
	}
	return a, nil
}

// ActionInfo documents one action for help screens and generated docs.
type ActionInfo struct {
	Action       Action
	English      string
	Precondition string
	Cost         string
	Bonus        string
}

// ActionCatalog describes every action in button order.
func ActionCatalog() []ActionInfo {
	return []ActionInfo{
		{Action: ActionWork, English: "work", Precondition: "health > 2", Cost: "health -1, funds +2", Bonus: "follower card"},
		{Action: ActionStudy, English: "study", Precondition: "reason > 1 and a lore card", Cost: "reason -1", Bonus: "Ancient knowledge lore card"},
		{Action: ActionDream, English: "dream", Precondition: "reason > 0", Cost: "reason -1", Bonus: "aspect card"},
		{Action: ActionConverse, English: "converse", Precondition: "none", Cost: "none", Bonus: "follower card"},
		{Action: ActionExplore, English: "explore", Precondition: "funds > 0", Cost: "funds -1", Bonus: "location card"},
		{Action: ActionRest, English: "rest", Precondition: "funds > 0", Cost: "funds -1, health +2, reason +1", Bonus: "none"},
		{Action: ActionRitual, English: "ritual", Precondition: "cult founded; health > 1 and reason > 1 for the cost", Cost: "health -1, reason -1", Bonus: "Ancient artifact lore card"},
		{Action: ActionFoundCult, English: "found cult", Precondition: "Ancient knowledge, a follower, no cult yet", Cost: "none", Bonus: "cult card"},
	}
}
