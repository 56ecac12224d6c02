package core

// MatchType is the discipline a line's cards follow.
type MatchType uint8

const (
	// Either means the line has at most one concrete card, so both
	// disciplines are still open.
	Either MatchType = iota
	// Same means every card shares at least one property.
	Same
	// Different means no two cards share any property.
	Different
)

func (m MatchType) String() string {
	switch m {
	case Same:
		return "SAME"
	case Different:
		return "DIFFERENT"
	default:
		return "EITHER"
	}
}

// DeduceMatchType infers the discipline of a run of cards. It returns false
// when the run is too long or its concrete cards follow neither discipline.
func DeduceMatchType(cards []Card) (MatchType, bool) {
	if len(cards) > MaxLineLength {
		return 0, false
	}
	var (
		concrete  int
		common    PropertySet
		all       PropertySet
		allUnique = true
	)
	for _, c := range cards {
		if c.IsWildcard() {
			continue
		}
		props := c.MatchProperties()
		concrete++
		if concrete == 1 {
			common = props
			all = props
			continue
		}
		common = c.Match(common)
		if allUnique && !(all&props).IsEmpty() {
			allUnique = false
		}
		all |= props
	}
	switch {
	case concrete <= 1:
		return Either, true
	case !common.IsEmpty():
		return Same, true
	case allUnique:
		return Different, true
	default:
		return 0, false
	}
}

// CandidatesForNextCard returns the concrete cards that could stand in for an
// open (or wildcard) slot of a line with the given cards.
func (m MatchType) CandidatesForNextCard(cards []Card, rules Rules) CardSet {
	switch m {
	case Same:
		return sameCandidates(cards, rules)
	case Different:
		return differentCandidates(cards, rules)
	default:
		return rules.Universe()
	}
}

// sameCandidates unions, for each property shared by all concrete cards,
// every card carrying that property.
func sameCandidates(cards []Card, rules Rules) CardSet {
	common, seen := PropertySet(0), false
	for _, c := range cards {
		if c.IsWildcard() {
			continue
		}
		if !seen {
			common, seen = c.MatchProperties(), true
			continue
		}
		common = c.Match(common)
	}
	all := rules.Properties()
	out := make(CardSet)
	for _, p := range common.Singletons() {
		out.Union(rules.CardsFrom(all&^sameKind(p) | p))
	}
	return out
}

// differentCandidates returns every card sharing no property with the
// concrete cards of the line.
func differentCandidates(cards []Card, rules Rules) CardSet {
	props := rules.Properties()
	for _, c := range cards {
		props &^= c.MatchProperties()
	}
	return rules.CardsFrom(props)
}
