// Package entity provides the polymorphic CRM entity model: GP and LP firms,
// funds, portfolio companies, service providers, and contacts, each stored in
// its own tenant-scoped table and addressed through a (kind, id) reference.
package entity

// Kind is the canonical discriminant for polymorphic entity references.
type Kind string

// Kind values. KindUnknown marks a discriminator string the alias table
// does not recognize; resolution then falls back to a cross-table probe.
const (
	KindGP               Kind = "gp"
	KindLP               Kind = "lp"
	KindFund             Kind = "fund"
	KindPortfolioCompany Kind = "portfolio_company"
	KindServiceProvider  Kind = "service_provider"
	KindContact          Kind = "contact"
	KindUnknown          Kind = ""
)

// ProbeOrder is the fixed order in which entity tables are probed and search
// results are concatenated. When the same id coincidentally exists in two
// tables for one tenant, the earlier kind wins, keeping resolution
// deterministic.
var ProbeOrder = []Kind{
	KindGP,
	KindLP,
	KindFund,
	KindPortfolioCompany,
	KindContact,
	KindServiceProvider,
}

// Valid reports whether k is one of the six canonical kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindGP, KindLP, KindFund, KindPortfolioCompany, KindServiceProvider, KindContact:
		return true
	}
	return false
}

// String returns the kind's wire representation.
func (k Kind) String() string { return string(k) }

// ParseKind converts a wire string to a Kind, returning KindUnknown for
// anything that is not a canonical kind value.
func ParseKind(s string) Kind {
	k := Kind(s)
	if k.Valid() {
		return k
	}
	return KindUnknown
}
