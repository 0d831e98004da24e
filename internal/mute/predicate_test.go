package mute

import (
	"testing"
)

func TestPredicate_Matches(t *testing.T) {
	const (
		content = "no spoilers here"
		author  = "alice"
	)

	tests := []struct {
		name string
		p    Predicate
		want bool
	}{
		// phrase & account & circle: (account OR member) AND phrase
		{"all set, account matches, non-member, phrase present",
			Predicate{Phrase: "spoiler", AccountUsername: "alice", HasCircle: true, AuthorInCircle: false}, true},
		{"all set, member, phrase present",
			Predicate{Phrase: "spoiler", AccountUsername: "bob", HasCircle: true, AuthorInCircle: true}, true},
		{"all set, neither account nor member",
			Predicate{Phrase: "spoiler", AccountUsername: "bob", HasCircle: true, AuthorInCircle: false}, false},
		{"all set, account matches, phrase absent",
			Predicate{Phrase: "weather", AccountUsername: "alice", HasCircle: true, AuthorInCircle: true}, false},

		// account & circle: account OR member
		{"account+circle, account matches",
			Predicate{AccountUsername: "alice", HasCircle: true, AuthorInCircle: false}, true},
		{"account+circle, member only",
			Predicate{AccountUsername: "bob", HasCircle: true, AuthorInCircle: true}, true},
		{"account+circle, neither",
			Predicate{AccountUsername: "bob", HasCircle: true, AuthorInCircle: false}, false},

		// phrase & circle: member AND phrase
		{"phrase+circle, member, phrase present",
			Predicate{Phrase: "spoiler", HasCircle: true, AuthorInCircle: true}, true},
		{"phrase+circle, non-member, phrase present",
			Predicate{Phrase: "spoiler", HasCircle: true, AuthorInCircle: false}, false},
		{"phrase+circle, member, phrase absent",
			Predicate{Phrase: "weather", HasCircle: true, AuthorInCircle: true}, false},

		// phrase & account: account AND phrase
		{"phrase+account, both hold",
			Predicate{Phrase: "spoiler", AccountUsername: "alice"}, true},
		{"phrase+account, account only",
			Predicate{Phrase: "weather", AccountUsername: "alice"}, false},
		{"phrase+account, phrase only",
			Predicate{Phrase: "spoiler", AccountUsername: "bob"}, false},

		// single fields
		{"circle only, member",
			Predicate{HasCircle: true, AuthorInCircle: true}, true},
		{"circle only, non-member",
			Predicate{HasCircle: true, AuthorInCircle: false}, false},
		{"account only, matches",
			Predicate{AccountUsername: "alice"}, true},
		{"account only, no match",
			Predicate{AccountUsername: "bob"}, false},
		{"phrase only, present",
			Predicate{Phrase: "spoiler"}, true},
		{"phrase only, absent",
			Predicate{Phrase: "weather"}, false},
		{"phrase only, case-sensitive",
			Predicate{Phrase: "Spoiler"}, false},

		// no fields
		{"inert rule never matches", Predicate{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Matches(content, author); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", content, author, got, tt.want)
			}
		})
	}
}

func TestPredicate_CircleOnlyNonMemberNeverMuted(t *testing.T) {
	// A circle-scoped rule must not mute a non-member regardless of content
	p := Predicate{HasCircle: true, AuthorInCircle: false}

	for _, content := range []string{"", "anything", "close-friends"} {
		if p.Matches(content, "alice") {
			t.Errorf("circle-only rule matched non-member author with content %q", content)
		}
	}
}
