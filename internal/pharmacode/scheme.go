// Package pharmacode identifies and validates national pharmaceutical
// numbering schemes from bare digit strings scraped off scanned barcodes.
// All functions are pure and safe for concurrent use; malformed input is a
// normal classification miss, never an error.
package pharmacode

// Scheme is a national pharmaceutical numbering scheme.
type Scheme int

const (
	// SchemeUnknown is the zero value for unclassified numbers.
	SchemeUnknown Scheme = iota
	// SchemeDEPZN is the German Pharmazentralnummer (PZN7 legacy or PZN8).
	SchemeDEPZN
	// SchemeFRCIP7 is the French 7-digit Code Identifiant de Présentation.
	SchemeFRCIP7
	// SchemeFRCIP13 is the French 13-digit Code Identifiant de Présentation.
	SchemeFRCIP13
	// SchemeBECNK is the Belgian Code National(e) Kode.
	SchemeBECNK
	// SchemeITAIC is the Italian Autorizzazione all'Immissione in Commercio code.
	SchemeITAIC
	// SchemeESCN is the Spanish Código Nacional.
	SchemeESCN
	// SchemeNLZIndex is the Dutch Z-Index product number.
	SchemeNLZIndex
)

// String returns the stable tag used in storage and API payloads.
func (s Scheme) String() string {
	switch s {
	case SchemeDEPZN:
		return "DE_PZN"
	case SchemeFRCIP7:
		return "FR_CIP7"
	case SchemeFRCIP13:
		return "FR_CIP13"
	case SchemeBECNK:
		return "BE_CNK"
	case SchemeITAIC:
		return "IT_AIC"
	case SchemeESCN:
		return "ES_CN"
	case SchemeNLZIndex:
		return "NL_ZINDEX"
	default:
		return "UNKNOWN"
	}
}

// ParseScheme maps a stored tag back to its Scheme. The second return value
// reports whether the tag named a known scheme.
func ParseScheme(tag string) (Scheme, bool) {
	switch tag {
	case "DE_PZN":
		return SchemeDEPZN, true
	case "FR_CIP7":
		return SchemeFRCIP7, true
	case "FR_CIP13":
		return SchemeFRCIP13, true
	case "BE_CNK":
		return SchemeBECNK, true
	case "IT_AIC":
		return SchemeITAIC, true
	case "ES_CN":
		return SchemeESCN, true
	case "NL_ZINDEX":
		return SchemeNLZIndex, true
	default:
		return SchemeUnknown, false
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
