package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		in    string
		first string
		last  string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"Jane van Dam", "Jane", "van Dam"},
		{"Cher", "Cher", ""},
		{"  Jane   Doe  ", "Jane", "Doe"},
		{"", "", ""},
		{"   ", "", ""},
	}
	for _, tt := range tests {
		first, last := SplitName(tt.in)
		if first != tt.first || last != tt.last {
			t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)", tt.in, first, last, tt.first, tt.last)
		}
	}
}

func TestContact_DisplayName(t *testing.T) {
	orgID := uuid.New()
	userID := uuid.New()

	c := NewContact(orgID, "Jane Doe", userID)
	if got := c.DisplayName(); got != "Jane Doe" {
		t.Errorf("DisplayName() = %q, want \"Jane Doe\"", got)
	}

	withCompany := c.WithCompany("Acme Capital")
	if got := withCompany.DisplayName(); got != "Jane Doe (Acme Capital)" {
		t.Errorf("DisplayName() = %q, want \"Jane Doe (Acme Capital)\"", got)
	}

	blank := NewContact(orgID, "", userID)
	if got := blank.DisplayName(); got != "Unknown" {
		t.Errorf("DisplayName() = %q, want \"Unknown\"", got)
	}
}

func TestContact_Ref(t *testing.T) {
	c := NewContact(uuid.New(), "Jane Doe", uuid.New()).WithCompany("Acme Capital")
	ref := c.Ref()

	if ref.Kind() != KindContact {
		t.Errorf("Kind() = %q, want contact", ref.Kind())
	}
	if ref.ID() != c.ID() {
		t.Error("Ref id mismatch")
	}
	if ref.Name() != "Jane Doe (Acme Capital)" {
		t.Errorf("Name() = %q", ref.Name())
	}
	if ref.IsZero() {
		t.Error("IsZero() = true for a real contact")
	}
}
