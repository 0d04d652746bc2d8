package matching

import (
	"github.com/iho/bankmatch/internal/domain"
)

// Point values for the multi-signal scorer. Confidence is points divided by
// maxPoints, so date+name scores 0.8, date alone 0.4, name alone 0.4, and
// date with an absent contact 0.6.
const (
	pointsDateMatch        = 2
	pointsNameMatch        = 2
	pointsNullContactBonus = 1
	maxPoints              = pointsDateMatch + pointsNameMatch + pointsNullContactBonus
)

// DefaultMinConfidence is the acceptance threshold for multi-signal
// matches: fewer than two points never qualifies.
const DefaultMinConfidence = 0.4

// matchCandidate is the transient per-pairing score. It never leaves the
// matcher.
type matchCandidate struct {
	score        float64
	disqualified bool
}

// scorePair evaluates one transaction/attachment pairing. Pairings that
// fail the direction or amount gate, or whose counterparty names are both
// present but contradict each other, come back disqualified. Both matching
// directions score a pairing through this one function, which is what makes
// FindAttachment and FindTransaction agree with each other.
func (e *Engine) scorePair(tx domain.Transaction, att domain.Attachment) matchCandidate {
	if !directionCompatible(tx, att.Kind) {
		return matchCandidate{disqualified: true}
	}
	if !amountsCompatible(tx.Amount, att.Amount, e.cfg.AmountTolerance) {
		return matchCandidate{disqualified: true}
	}

	contact := NormalizeName(tx.Contact)
	counterparty := Counterparty(att, e.cfg.CompanyName)
	nameMatch := NamesMatch(contact, counterparty)

	// A contradicted identity outweighs any corroborating signal.
	if contact != "" && counterparty != "" && !nameMatch {
		return matchCandidate{disqualified: true}
	}

	dateMatch := dateWithin(tx.Date, att.Dates(), e.cfg.DateToleranceDays)

	points := 0
	if dateMatch {
		points += pointsDateMatch
	}
	if nameMatch {
		points += pointsNameMatch
	}
	// Absence of contradicting evidence counts as mild corroboration, but
	// only next to a strong date signal.
	if (contact == "" || counterparty == "") && dateMatch {
		points += pointsNullContactBonus
	}

	return matchCandidate{score: float64(points) / float64(maxPoints)}
}
