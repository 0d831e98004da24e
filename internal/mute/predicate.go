package mute

import (
	"strings"
)

// Predicate is one mute rule with its references resolved against a
// candidate author: the muted account's username, if the rule names one,
// and whether the author belongs to the rule's circle. Phrase matching
// stays per-freet; the other two facts depend only on the author.
type Predicate struct {
	Phrase          string
	AccountUsername string
	HasCircle       bool
	AuthorInCircle  bool
}

// Field-presence mask values
const (
	fieldPhrase = 1 << iota
	fieldAccount
	fieldCircle
)

func (p Predicate) mask() int {
	m := 0
	if p.Phrase != "" {
		m |= fieldPhrase
	}
	if p.AccountUsername != "" {
		m |= fieldAccount
	}
	if p.HasCircle {
		m |= fieldCircle
	}
	return m
}

// Matches reports whether the predicate applies to a freet with the given
// content by the given author. Each field combination has its own row so
// the two-of-three cases keep their OR-relaxation: account and circle
// together widen the audience (either suffices), while a phrase always
// narrows it (the content must contain the phrase).
func (p Predicate) Matches(content, authorUsername string) bool {
	switch p.mask() {
	case fieldPhrase | fieldAccount | fieldCircle:
		return (authorUsername == p.AccountUsername || p.AuthorInCircle) &&
			strings.Contains(content, p.Phrase)
	case fieldAccount | fieldCircle:
		return authorUsername == p.AccountUsername || p.AuthorInCircle
	case fieldPhrase | fieldCircle:
		return p.AuthorInCircle && strings.Contains(content, p.Phrase)
	case fieldPhrase | fieldAccount:
		return authorUsername == p.AccountUsername && strings.Contains(content, p.Phrase)
	case fieldCircle:
		return p.AuthorInCircle
	case fieldAccount:
		return authorUsername == p.AccountUsername
	case fieldPhrase:
		return strings.Contains(content, p.Phrase)
	default:
		// No fields set; the rule is inert
		return false
	}
}
