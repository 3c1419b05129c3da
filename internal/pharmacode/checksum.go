package pharmacode

import "strconv"

// ValidatePZN checks the Modulo-11 weighted check digit of a German PZN.
// PZN8 weights its 7 data digits by position (1..7); the legacy PZN7 format
// weights its 6 data digits by position+1 (2..7). A remainder of 10 cannot be
// represented as a single check digit, so such codes are invalid regardless
// of their final digit. Any other length or non-digit input returns false.
func ValidatePZN(pzn string) bool {
	if !isDigits(pzn) {
		return false
	}

	var sum int
	switch len(pzn) {
	case 8:
		for i := 0; i < 7; i++ {
			sum += int(pzn[i]-'0') * (i + 1)
		}
	case 7:
		for i := 0; i < 6; i++ {
			sum += int(pzn[i]-'0') * (i + 2)
		}
	default:
		return false
	}

	check := sum % 11
	if check == 10 {
		return false
	}
	return check == int(pzn[len(pzn)-1]-'0')
}

// ValidateCIP13 checks the Modulo-10 Luhn-style check digit of a French
// CIP13. Digits at even 0-indexed positions among the first 12 are doubled,
// folding results above 9 by subtracting 9. Any length other than 13 or
// non-digit input returns false.
func ValidateCIP13(cip13 string) bool {
	if len(cip13) != 13 || !isDigits(cip13) {
		return false
	}

	var sum int
	for i := 0; i < 12; i++ {
		digit := int(cip13[i] - '0')
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}

	check := (10 - sum%10) % 10
	return check == int(cip13[12]-'0')
}

// ValidateCNK checks the Modulo-97 check of a Belgian CNK: 5 code digits
// followed by a 2-digit check equal to 97 minus the code modulo 97. A code
// divisible by 97 yields an expected check of 97, which no 2-digit suffix can
// satisfy; that is the established formula and is kept as-is. Any length
// other than 7 or non-digit input returns false.
func ValidateCNK(cnk string) bool {
	if len(cnk) != 7 || !isDigits(cnk) {
		return false
	}

	code, _ := strconv.Atoi(cnk[:5])
	check, _ := strconv.Atoi(cnk[5:7])

	return check == 97-code%97
}
