package engine

import (
	"io"
	"strconv"

	"github.com/google/uuid"
)

// IDSource hands out tile identifiers.
type IDSource interface {
	NextID() string
}

// UUIDSource generates random UUIDv4 identifiers.
type UUIDSource struct {
	rand io.Reader // nil uses crypto/rand via uuid
}

// NewUUIDSource returns a source backed by the system random generator.
func NewUUIDSource() *UUIDSource {
	return &UUIDSource{}
}

// NewSeededUUIDSource returns a source that draws UUID bytes from r,
// which makes IDs reproducible when r is a seeded *rand.Rand.
func NewSeededUUIDSource(r io.Reader) *UUIDSource {
	return &UUIDSource{rand: r}
}

// NextID returns a new UUID string.
func (s *UUIDSource) NextID() string {
	if s.rand == nil {
		return uuid.NewString()
	}
	id, err := uuid.NewRandomFromReader(s.rand)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// SequentialIDs returns "t1", "t2", ... Useful in tests and replays.
type SequentialIDs struct {
	Prefix string
	n      int
}

// NextID returns the next sequential identifier.
func (s *SequentialIDs) NextID() string {
	s.n++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "t"
	}
	return prefix + strconv.Itoa(s.n)
}

// discardIDs is used for scratch simulations whose results are thrown away.
type discardIDs struct{}

func (discardIDs) NextID() string { return "" }
