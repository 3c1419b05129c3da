package pharmacode

import "testing"

func TestFormatLabel(t *testing.T) {
	cases := []struct {
		scheme Scheme
		number string
		want   string
	}{
		{SchemeDEPZN, "12345678", "PZN: 12345678"},
		{SchemeFRCIP7, "1234567", "CIP7: 1234567"},
		{SchemeFRCIP13, "3400930000017", "CIP13: 3400930000017"},
		{SchemeBECNK, "1234571", "CNK: 1234571"},
		{SchemeNLZIndex, "1234567", "Z-Index: 1234567"},
		{SchemeESCN, "123456", "CN: 123456"},
		{SchemeITAIC, "123456789", "AIC: 123456789"},
		{SchemeUnknown, "42", "UNKNOWN: 42"},
	}

	for _, tc := range cases {
		if got := FormatLabel(tc.number, tc.scheme); got != tc.want {
			t.Errorf("FormatLabel(%q, %v) = %q, want %q", tc.number, tc.scheme, got, tc.want)
		}
	}
}

func TestSchemeTagRoundTrip(t *testing.T) {
	schemes := []Scheme{
		SchemeDEPZN, SchemeFRCIP7, SchemeFRCIP13, SchemeBECNK,
		SchemeITAIC, SchemeESCN, SchemeNLZIndex,
	}

	for _, s := range schemes {
		parsed, ok := ParseScheme(s.String())
		if !ok || parsed != s {
			t.Errorf("ParseScheme(%q) = %v, %v; want %v, true", s.String(), parsed, ok, s)
		}
	}

	if _, ok := ParseScheme("GB_NHS"); ok {
		t.Error("ParseScheme accepted an unknown tag")
	}
	if _, ok := ParseScheme(""); ok {
		t.Error("ParseScheme accepted an empty tag")
	}
}
