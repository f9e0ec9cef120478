// Package addressbook resolves recipient aliases from a static map
package addressbook

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AlexZinkM/tron-wallet/internal/address"
	"github.com/AlexZinkM/tron-wallet/tron"
)

// maxSuggestDistance bounds how far a typo may be from a known alias
const maxSuggestDistance = 2

// Static is an immutable alias -> address map
type Static struct {
	aliases map[string]address.Address
}

// NewStatic validates every target address and builds the book.
// Alias names are matched case-insensitively.
func NewStatic(aliases map[string]string) (*Static, error) {
	s := &Static{aliases: make(map[string]address.Address, len(aliases))}
	for name, target := range aliases {
		key := normalize(name)
		if key == "" {
			return nil, fmt.Errorf("empty alias name for %q", target)
		}
		addr, err := address.Parse(target)
		if err != nil {
			return nil, fmt.Errorf("alias %q: %w", name, err)
		}
		s.aliases[key] = addr
	}
	return s, nil
}

// Resolve returns token itself when it is an address, otherwise the alias target
func (s *Static) Resolve(token string) (address.Address, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return address.Address{}, fmt.Errorf("%w: empty recipient", address.ErrInvalidAddress)
	}

	// address-shaped input never falls through to alias lookup
	if address.LooksLikeHumanAddress(token) || isHexAddress(token) {
		return address.Parse(token)
	}

	if addr, ok := s.aliases[normalize(token)]; ok {
		return addr, nil
	}
	return address.Address{}, &tron.AliasNotFoundError{Alias: token, Suggestion: s.suggest(token)}
}

// Names lists known aliases in sorted order
func (s *Static) Names() []string {
	names := make([]string, 0, len(s.aliases))
	for name := range s.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Static) suggest(token string) string {
	token = normalize(token)
	best, bestDist := "", maxSuggestDistance+1
	for _, name := range s.Names() {
		if d := editDistance(token, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func isHexAddress(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 40 && len(s) != 42 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// editDistance is the Levenshtein distance over runes
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
