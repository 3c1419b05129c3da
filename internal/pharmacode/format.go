package pharmacode

// Label returns the short display abbreviation for the scheme. Schemes
// without an abbreviation fall back to their tag verbatim.
func (s Scheme) Label() string {
	switch s {
	case SchemeDEPZN:
		return "PZN"
	case SchemeFRCIP7:
		return "CIP7"
	case SchemeFRCIP13:
		return "CIP13"
	case SchemeBECNK:
		return "CNK"
	case SchemeNLZIndex:
		return "Z-Index"
	case SchemeESCN:
		return "CN"
	case SchemeITAIC:
		return "AIC"
	default:
		return s.String()
	}
}

// FormatLabel renders a national number for display as "<label>: <number>".
// It trusts its inputs and performs no validation.
func FormatLabel(number string, scheme Scheme) string {
	return scheme.Label() + ": " + number
}
