package pharmacode

// Result is the outcome of classifying a digit string. Number always echoes
// the input unmodified; Scheme is only meaningful when Recognized is true.
type Result struct {
	Number     string
	Scheme     Scheme
	Recognized bool
}

// Classify determines which national numbering scheme a bare digit string
// belongs to. The decision is keyed on length, refined by checksum where one
// exists, and the first matching branch is terminal:
//
//	7 digits:  valid PZN checksum → DE_PZN, otherwise FR_CIP7
//	8 digits:  DE_PZN (wrong check digits are common in the wild and tolerated)
//	9 digits:  IT_AIC (no checksum defined)
//	13 digits: valid CIP13 checksum → FR_CIP13, otherwise unrecognized
//	6 digits:  ES_CN (no checksum defined)
//	anything else: unrecognized
//
// Belgian CNK and Dutch Z-Index numbers are 7 digits long, but the 7-digit
// branch always terminates as PZN or CIP7, so this classifier never reports
// BE_CNK or NL_ZINDEX. Whether that precedence is a restriction or an
// oversight is not decidable from the upstream behavior; it is reproduced
// unchanged and locked in by tests.
//
// Empty or non-digit input is an ordinary miss, not an error: every string
// maps to a Result and Classify never panics.
func Classify(input string) Result {
	if !isDigits(input) {
		return Result{Number: input}
	}

	switch len(input) {
	case 7:
		if ValidatePZN(input) {
			return Result{Number: input, Scheme: SchemeDEPZN, Recognized: true}
		}
		// CIP7 carries no check digit; every non-PZN 7-digit string lands here.
		return Result{Number: input, Scheme: SchemeFRCIP7, Recognized: true}
	case 8:
		return Result{Number: input, Scheme: SchemeDEPZN, Recognized: true}
	case 9:
		return Result{Number: input, Scheme: SchemeITAIC, Recognized: true}
	case 13:
		if ValidateCIP13(input) {
			return Result{Number: input, Scheme: SchemeFRCIP13, Recognized: true}
		}
		return Result{Number: input}
	case 6:
		return Result{Number: input, Scheme: SchemeESCN, Recognized: true}
	default:
		return Result{Number: input}
	}
}
