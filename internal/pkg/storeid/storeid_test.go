package storeid

import "testing"

func TestToStandard(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"store_1", "STR-1722255700000"},
		{"STR-1722255700000", "STR-1722255700000"},
		{"STR-42", "STR-42"},
		{"store_99", "store_99"}, // no mapping, identity
		{"something-else", "something-else"},
	}
	for _, c := range cases {
		if got := ToStandard(c.in); got != c.want {
			t.Errorf("ToStandard(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestToLegacy(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"STR-1722255700000", "store_1"},
		{"store_1", "store_1"},
		{"STR-42", "STR-42"}, // no mapping, identity
	}
	for _, c := range cases {
		if got := ToLegacy(c.in); got != c.want {
			t.Errorf("ToLegacy(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsStandard(t *testing.T) {
	if !IsStandard("STR-1722255700000") {
		t.Error("expected STR-1722255700000 to be standard")
	}
	for _, id := range []string{"store_1", "STR-", "STR-abc", "str-123", ""} {
		if IsStandard(id) {
			t.Errorf("expected %q not to be standard", id)
		}
	}
}
