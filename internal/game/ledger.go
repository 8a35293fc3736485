package game

import "fmt"

type Resource int

const (
	Health Resource = iota
	Reason
	Funds
)

func (r Resource) String() string {
	switch r {
	case Health:
		return "health"
	case Reason:
		return "reason"
	case Funds:
		return "funds"
	default:
		return fmt.Sprintf("resource(%d)", int(r))
	}
}

const (
	resourceFloor = 0
	// resourceCap bounds health and reason. Funds have no upper bound.
	resourceCap = 10

	startHealth = 10
	startReason = 10
	startFunds  = 5
)

// Resources is a snapshot of the three counters.
type Resources struct {
	Health int
	Reason int
	Funds  int
}

func (r Resources) Get(res Resource) int {
	switch res {
	case Health:
		return r.Health
	case Reason:
		return r.Reason
	case Funds:
		return r.Funds
	default:
		return 0
	}
}

// Ledger holds the player's counters. Adjust never fails: results outside a
// counter's range are clamped.
type Ledger struct {
	res Resources
}

func newLedger() Ledger {
	return Ledger{res: Resources{Health: startHealth, Reason: startReason, Funds: startFunds}}
}

func (l *Ledger) Adjust(res Resource, delta int) int {
	switch res {
	case Health:
		l.res.Health = clamp(l.res.Health+delta, resourceFloor, resourceCap)
		return l.res.Health
	case Reason:
		l.res.Reason = clamp(l.res.Reason+delta, resourceFloor, resourceCap)
		return l.res.Reason
	case Funds:
		l.res.Funds = max(l.res.Funds+delta, resourceFloor)
		return l.res.Funds
	default:
		return 0
	}
}

func (l *Ledger) Snapshot() Resources {
	return l.res
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
