package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// AllowedDomains is the set of email domains permitted to register.
var AllowedDomains = []string{"unco.edu", "bears.unco.edu"}

// studentDomainPrefix marks domains whose addresses belong to students;
// anything else on the allowlist is treated as a Faculty address.
const studentDomainPrefix = "bears."

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CheckEmail validates the address shape and the domain allowlist.
func CheckEmail(email string) error {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%q is not a valid email address", email)
	}
	domain := emailDomain(email)
	for _, d := range AllowedDomains {
		if strings.EqualFold(domain, d) {
			return nil
		}
	}
	return fmt.Errorf("email domain %q is not allowed (use one of: %s)",
		domain, strings.Join(AllowedDomains, ", "))
}

// AccountID derives the account identifier from the email's local part.
func AccountID(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	return strings.ToLower(local)
}

// AccountType derives the account type from the email domain: student
// subdomains map to Student, everything else allowed maps to Faculty.
func AccountType(email string) string {
	domain := emailDomain(email)
	if strings.HasPrefix(strings.ToLower(domain), studentDomainPrefix) {
		return "Student"
	}
	return "Faculty"
}

func emailDomain(email string) string {
	_, domain, _ := strings.Cut(strings.TrimSpace(email), "@")
	return domain
}

// PasswordCheck reports each password rule independently. The password is
// acceptable only when every rule holds.
type PasswordCheck struct {
	MinLength bool
	Upper     bool
	Lower     bool
	Digit     bool
	Symbol    bool
}

// PasswordMinLength is the minimum accepted password length.
const PasswordMinLength = 8

// CheckPassword evaluates the five password rules.
func CheckPassword(pw string) PasswordCheck {
	check := PasswordCheck{MinLength: len(pw) >= PasswordMinLength}
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			check.Upper = true
		case unicode.IsLower(r):
			check.Lower = true
		case unicode.IsDigit(r):
			check.Digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			check.Symbol = true
		}
	}
	return check
}

// OK reports whether all five rules hold simultaneously.
func (c PasswordCheck) OK() bool {
	return c.MinLength && c.Upper && c.Lower && c.Digit && c.Symbol
}

// Failures lists the rules that did not hold, in a fixed order.
func (c PasswordCheck) Failures() []string {
	var out []string
	if !c.MinLength {
		out = append(out, fmt.Sprintf("at least %d characters", PasswordMinLength))
	}
	if !c.Upper {
		out = append(out, "an uppercase letter")
	}
	if !c.Lower {
		out = append(out, "a lowercase letter")
	}
	if !c.Digit {
		out = append(out, "a digit")
	}
	if !c.Symbol {
		out = append(out, "a symbol")
	}
	return out
}

// codePattern matches the 6-digit verification codes sent at registration.
var codePattern = regexp.MustCompile(`^\d{6}$`)

// CheckCode validates the verification code shape before it is submitted.
func CheckCode(code string) error {
	if !codePattern.MatchString(strings.TrimSpace(code)) {
		return fmt.Errorf("verification code must be exactly 6 digits")
	}
	return nil
}
