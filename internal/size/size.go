package size

import "strings"

// Token is a canonical size identifier. The closed vocabulary is
// mini/regular/large/family/party; anything the rules below cannot place
// passes through lowercased so lookups stay consistent either way.
type Token string

const (
	Mini    Token = "mini"
	Regular Token = "regular"
	Large   Token = "large"
	Family  Token = "family"
	Party   Token = "party"
)

type rule struct {
	needles []string
	token   Token
}

// Ordered: party must win over large, and the generic "reg" needle has to
// come last so it cannot shadow the earlier tiers.
var rules = []rule{
	{[]string{"party", "xlarge", "xl"}, Party},
	{[]string{"family", "fam"}, Family},
	{[]string{"large", "lrg"}, Large},
	{[]string{"medium", "med"}, Regular}, // no distinct medium tier
	{[]string{"mini", "small", "sml"}, Mini},
	{[]string{"regular", "reg", "std", "default"}, Regular},
}

// Normalize maps a free-form size label onto a Token.
// Empty input defaults to regular.
func Normalize(label string) Token {
	s := strings.ToLower(strings.TrimSpace(label))
	if s == "" {
		return Regular
	}
	for _, r := range rules {
		for _, needle := range r.needles {
			if strings.Contains(s, needle) {
				return r.token
			}
		}
	}
	return Token(s)
}
