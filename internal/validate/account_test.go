package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPassword(t *testing.T) {
	t.Run("accepts when all five rules hold", func(t *testing.T) {
		check := CheckPassword("Abcd123!")
		assert.True(t, check.OK())
		assert.Empty(t, check.Failures())
	})

	// Flipping a single rule's condition while the others hold flips the
	// overall validity, not the other rules.
	cases := []struct {
		name     string
		password string
		failing  string
	}{
		{"too short", "Ab1!xyz", "at least 8 characters"},
		{"no uppercase", "abcd123!", "an uppercase letter"},
		{"no lowercase", "ABCD123!", "a lowercase letter"},
		{"no digit", "Abcdefg!", "a digit"},
		{"no symbol", "Abcd1234", "a symbol"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			check := CheckPassword(tc.password)
			assert.False(t, check.OK())
			failures := check.Failures()
			assert.Len(t, failures, 1, "exactly one rule should fail")
			assert.Equal(t, tc.failing, failures[0])
		})
	}

	t.Run("reports all failures for an empty password", func(t *testing.T) {
		check := CheckPassword("")
		assert.False(t, check.OK())
		assert.Len(t, check.Failures(), 5)
	})
}

func TestCheckEmail(t *testing.T) {
	t.Run("accepts allowed domains", func(t *testing.T) {
		assert.NoError(t, CheckEmail("student@bears.unco.edu"))
		assert.NoError(t, CheckEmail("prof@unco.edu"))
		assert.NoError(t, CheckEmail("Prof@UNCO.EDU"))
	})

	t.Run("rejects disallowed domains", func(t *testing.T) {
		assert.Error(t, CheckEmail("someone@gmail.com"))
		assert.Error(t, CheckEmail("someone@bears.unco.edu.evil.com"))
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		assert.Error(t, CheckEmail("not-an-email"))
		assert.Error(t, CheckEmail("two@@unco.edu"))
		assert.Error(t, CheckEmail("@unco.edu"))
		assert.Error(t, CheckEmail(""))
	})
}

func TestAccountDerivation(t *testing.T) {
	t.Run("accountID is the lowercased local part", func(t *testing.T) {
		assert.Equal(t, "student", AccountID("Student@bears.unco.edu"))
		assert.Equal(t, "jane.doe", AccountID("jane.doe@unco.edu"))
	})

	t.Run("student subdomain maps to Student", func(t *testing.T) {
		assert.Equal(t, "Student", AccountType("student@bears.unco.edu"))
	})

	t.Run("plain campus domain maps to Faculty", func(t *testing.T) {
		assert.Equal(t, "Faculty", AccountType("prof@unco.edu"))
	})
}

func TestCheckCode(t *testing.T) {
	assert.NoError(t, CheckCode("123456"))
	assert.NoError(t, CheckCode(" 123456 "))
	assert.Error(t, CheckCode("12345"))
	assert.Error(t, CheckCode("1234567"))
	assert.Error(t, CheckCode("12345a"))
	assert.Error(t, CheckCode(""))
}
