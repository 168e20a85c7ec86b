package account

import (
	"strings"
	"unicode"
)

// eduDomains is the educational email domain allow-list. Matching is
// substring-based against the lowercased domain portion rather than a strict
// suffix/TLD parse; the check is deliberately permissive.
var eduDomains = []string{".edu", ".ac.", ".edu.in", ".school.nz", ".ac.uk", ".edu.au"}

// professorTokens mark an address as likely belonging to teaching staff.
var professorTokens = []string{"prof", "staff", "faculty"}

// EmailDomain returns the lowercased domain portion of an email address:
// everything after the last "@". An address with no "@" has no domain.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// IsEducationalEmail reports whether the address belongs to a recognized
// educational domain.
func IsEducationalEmail(email string) bool {
	domain := EmailDomain(email)
	if domain == "" {
		return false
	}
	for _, d := range eduDomains {
		if strings.Contains(domain, d) {
			return true
		}
	}
	return false
}

// SuggestInstitution derives an institution name from the email domain;
// e.g. "jane@cs.stanford.edu" -> "Stanford University".
// It returns "" when no sensible suggestion can be made.
func SuggestInstitution(email string) string {
	domain := EmailDomain(email)
	if domain == "" {
		return ""
	}
	parts := strings.Split(domain, ".")
	if len(parts) < 2 {
		return ""
	}
	name := parts[len(parts)-2]
	if name == "" {
		return ""
	}
	return capitalize(name) + " University"
}

// SuggestRole guesses the account role from the email local part:
// professor for staff-looking addresses, student otherwise.
func SuggestRole(email string) string {
	local := strings.ToLower(email)
	if at := strings.LastIndex(local, "@"); at >= 0 {
		local = local[:at]
	}
	for _, tok := range professorTokens {
		if strings.Contains(local, tok) {
			return RoleProfessor
		}
	}
	return RoleStudent
}

func capitalize(s string) string {
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
