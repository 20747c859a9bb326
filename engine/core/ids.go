package core

// EntityID is a unique identifier for planes and power-ups
type EntityID uint64

// IDSource hands out entity ids for one arena. Ids are never reused, so a
// deferred timer that outlives its entity can never address a newer one.
type IDSource struct {
	last uint64
}

// Next returns a fresh id
func (s *IDSource) Next() EntityID {
	s.last++
	return EntityID(s.last)
}
