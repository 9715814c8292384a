package entity

import "testing"

func TestKind_Valid(t *testing.T) {
	for _, k := range ProbeOrder {
		if !k.Valid() {
			t.Errorf("Valid() = false for %q", k)
		}
	}
	if KindUnknown.Valid() {
		t.Error("Valid() = true for KindUnknown")
	}
	if Kind("spaceship").Valid() {
		t.Error("Valid() = true for made-up kind")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"gp", KindGP},
		{"lp", KindLP},
		{"fund", KindFund},
		{"portfolio_company", KindPortfolioCompany},
		{"service_provider", KindServiceProvider},
		{"contact", KindContact},
		{"", KindUnknown},
		{"GP", KindUnknown},
		{"firm", KindUnknown},
	}
	for _, tt := range tests {
		if got := ParseKind(tt.in); got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProbeOrder_CoversEveryKindOnce(t *testing.T) {
	seen := make(map[Kind]bool, len(ProbeOrder))
	for _, k := range ProbeOrder {
		if seen[k] {
			t.Errorf("kind %q appears twice in ProbeOrder", k)
		}
		seen[k] = true
	}
	if len(seen) != 6 {
		t.Errorf("ProbeOrder covers %d kinds, want 6", len(seen))
	}
}
