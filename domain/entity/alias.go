package entity

import "maps"

// Legacy discriminators from the pre-migration schema. They always trigger
// the cross-table probe even when the alias table happens to map them.
const (
	legacyFirm = "firm"
	legacyFund = "fund"
)

// Normalizer maps loosely-typed discriminator strings (form vocabularies,
// legacy column values) to canonical kinds. Matching is case-sensitive and
// exact: ambiguity is resolved later by probing, never by guessing here.
type Normalizer struct {
	aliases map[string]Kind
}

// DefaultAliases returns the built-in discriminator vocabulary.
func DefaultAliases() map[string]Kind {
	return map[string]Kind{
		// GP firm types.
		"GP":              KindGP,
		"PE":              KindGP,
		"VC":              KindGP,
		"Hedge Fund":      KindGP,
		"Family Office":   KindGP,
		"Asset Manager":   KindGP,
		"General Partner": KindGP,

		// LP investor types.
		"LP":               KindLP,
		"Pension Fund":     KindLP,
		"Endowment":        KindLP,
		"Foundation":       KindLP,
		"Sovereign Wealth": KindLP,
		"Insurance":        KindLP,
		"Fund of Funds":    KindLP,
		"Limited Partner":  KindLP,

		// Fund strategy types.
		"Fund":            KindFund,
		"Buyout":          KindFund,
		"Growth Equity":   KindFund,
		"Venture Capital": KindFund,
		"Mezzanine":       KindFund,
		"Secondaries":     KindFund,
		"Distressed":      KindFund,

		// Portfolio companies.
		"Portfolio Company": KindPortfolioCompany,
		"Company":           KindPortfolioCompany,

		// Service providers.
		"Service Provider": KindServiceProvider,
		"Law Firm":         KindServiceProvider,
		"Placement Agent":  KindServiceProvider,
		"Fund Admin":       KindServiceProvider,

		// Contacts.
		"Contact": KindContact,
		"Person":  KindContact,
	}
}

// NewNormalizer creates a Normalizer from the default vocabulary merged with
// the given overrides. Overrides win on conflict; an override mapping to
// KindUnknown removes the alias.
func NewNormalizer(overrides map[string]Kind) *Normalizer {
	aliases := DefaultAliases()
	for raw, kind := range overrides {
		if kind == KindUnknown {
			delete(aliases, raw)
			continue
		}
		aliases[raw] = kind
	}
	return &Normalizer{aliases: aliases}
}

// Normalize maps a raw discriminator string to a canonical kind. Canonical
// kind values pass through unchanged; unknown strings yield KindUnknown.
func (n *Normalizer) Normalize(raw string) Kind {
	if k := ParseKind(raw); k != KindUnknown {
		return k
	}
	if k, ok := n.aliases[raw]; ok {
		return k
	}
	return KindUnknown
}

// IsLegacy reports whether raw is a pre-migration discriminator that must
// resolve via the cross-table probe regardless of what it normalizes to.
func (n *Normalizer) IsLegacy(raw string) bool {
	return raw == legacyFirm || raw == legacyFund
}

// Aliases returns a copy of the active alias table.
func (n *Normalizer) Aliases() map[string]Kind {
	result := make(map[string]Kind, len(n.aliases))
	maps.Copy(result, n.aliases)
	return result
}
