// Package uuid wraps id generation so stored layouts can be given
// predictable ids in tests
package uuid

import (
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock_generator.go -package=mockuuid -source=uuid.go

// Generator hands out ids for new layouts
type Generator interface {
	New() string
}

// GoogleUUIDGenerator returns random v4 UUIDs
type GoogleUUIDGenerator struct{}

func (g *GoogleUUIDGenerator) New() string {
	return uuid.NewString()
}

func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// Sequence returns ids from a fixed list, then falls back to random ones.
// cmd/layout uses it when an id is given on the command line.
type Sequence struct {
	ids  []string
	next int
}

func NewSequence(ids ...string) *Sequence {
	return &Sequence{ids: ids}
}

func (s *Sequence) New() string {
	if s.next < len(s.ids) {
		id := s.ids[s.next]
		s.next++
		return id
	}
	return uuid.NewString()
}
