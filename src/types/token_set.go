package types

import (
	"strings"
	"sync"

	"github.com/armon/go-radix"
	"golang.org/x/text/unicode/norm"
)

// NormalizeToken trims and NFC-normalizes a candidate string.
func NormalizeToken(token string) string {
	return norm.NFC.String(strings.TrimSpace(token))
}

// TokenSet holds opaque tokens, matched case-insensitively.
// Safe for concurrent use.
type TokenSet struct {
	mu   sync.RWMutex
	list *radix.Tree
}

func NewTokenSet() *TokenSet {
	return &TokenSet{
		list: radix.New(),
	}
}

func (s *TokenSet) Add(token string) {
	key := tokenKey(token)
	if key == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.list.Insert(key, token)
}

func (s *TokenSet) Contains(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, found := s.list.Get(tokenKey(token))
	return found
}

func (s *TokenSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.list.Len()
}

// All returns the tokens as originally added.
func (s *TokenSet) All() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tokens := make([]string, 0, s.list.Len())
	s.list.Walk(func(_ string, value interface{}) bool {
		tokens = append(tokens, value.(string))
		return false
	})

	return tokens
}

func tokenKey(token string) string {
	return strings.ToLower(NormalizeToken(token))
}
