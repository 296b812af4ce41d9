package domain

import (
	"strings"
	"unicode/utf8"
)

// Patient represents a patient selected for the booking
type Patient struct {
	ID    string
	Name  string
	Phone string
	Email string
	Age   int
}

// Initials returns up to two initials built from the first letters of the name words
func (p *Patient) Initials() string {
	var b strings.Builder
	count := 0
	for _, word := range strings.Fields(p.Name) {
		if count == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
		count++
	}
	return strings.ToUpper(b.String())
}

// Matches returns true if the query is a case-insensitive substring of the name or email,
// or a raw substring of the phone
func (p *Patient) Matches(query string) bool {
	if query == "" {
		return true
	}
	lower := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), lower) ||
		strings.Contains(p.Phone, query) ||
		strings.Contains(strings.ToLower(p.Email), lower)
}
