package game

import (
	"fmt"
)

// Odds holds the bonus thresholds per action. A bonus fires when a uniform
// draw in [0,1) is strictly greater than the threshold.
type Odds struct {
	Work     float64
	Study    float64
	Dream    float64
	Converse float64
	Explore  float64
	Ritual   float64
}

var DefaultOdds = Odds{
	Work:     0.8,
	Study:    0.7,
	Dream:    0.7,
	Converse: 0.5,
	Explore:  0.6,
	Ritual:   0.8,
}

// Threshold returns the configured threshold and whether the action rolls at all.
func (o Odds) Threshold(a Action) (float64, bool) {
	switch a {
	case ActionWork:
		return o.Work, true
	case ActionStudy:
		return o.Study, true
	case ActionDream:
		return o.Dream, true
	case ActionConverse:
		return o.Converse, true
	case ActionExplore:
		return o.Explore, true
	case ActionRitual:
		return o.Ritual, true
	default:
		return 0, false
	}
}

// Chance is the probability that the action's bonus fires.
func (o Odds) Chance(a Action) float64 {
	t, ok := o.Threshold(a)
	if !ok {
		return 0
	}
	return 1 - t
}

func (o Odds) Validate() error {
	for _, a := range AllActions() {
		t, ok := o.Threshold(a)
		if !ok {
			continue
		}
		if t < 0 || t > 1 {
			return fmt.Errorf("threshold for %s must be between 0 and 1, got %v", a, t)
		}
	}
	return nil
}

type SessionConfig struct {
	// Seed drives every bonus roll. Zero picks a time-based seed.
	Seed int64
	// Odds defaults to DefaultOdds when left zero.
	Odds Odds
	// Roller overrides the seeded source, mainly for tests.
	Roller Roller
}

func (c SessionConfig) Validate() error {
	if err := c.Odds.Validate(); err != nil {
		return fmt.Errorf("invalid odds: %w", err)
	}
	return nil
}
