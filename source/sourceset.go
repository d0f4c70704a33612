package source

import (
	"sync"

	"github.com/karim5623/seismhaz/model"
)

// SourceSet is a logic-tree branch: a named, weighted bundle of sources of
// one SourceType sharing a GmmSet, plus a distance cutoff. Package calc
// applies the cutoff only to SystemSource ruptures, through their
// pre-indexed section distances; sources of every other type are not
// filtered by distance.
//
// Like GmmSet and CalcConfig, it follows the open -> populated -> sealed
// builder lifecycle (spec.md §4.8).
type SourceSet struct {
	name           string
	id             string
	weight         float64
	gmms           *model.GmmSet
	typ            model.SourceType
	sources        []Source
	distanceCutoff float64
}

// Name returns the set's name.
func (s *SourceSet) Name() string { return s.name }

// ID returns the set's id.
func (s *SourceSet) ID() string { return s.id }

// Weight returns the set's weight in (0, 1].
func (s *SourceSet) Weight() float64 { return s.weight }

// Gmms returns the set's GMM logic tree.
func (s *SourceSet) Gmms() *model.GmmSet { return s.gmms }

// Type returns the SourceType every member of the set shares.
func (s *SourceSet) Type() model.SourceType { return s.typ }

// DistanceCutoff returns the SystemSource distance cutoff; 0 means no
// filtering.
func (s *SourceSet) DistanceCutoff() float64 { return s.distanceCutoff }

// Sources returns the set's sources in declaration order.
func (s *SourceSet) Sources() []Source {
	cp := make([]Source, len(s.sources))
	copy(cp, s.sources)

	return cp
}

// SourceSetBuilder accumulates sources before Seal validates and freezes
// them into a SourceSet.
type SourceSetBuilder struct {
	mu             sync.Mutex
	name, id       string
	weight         float64
	gmms           *model.GmmSet
	typ            model.SourceType
	sources        []Source
	distanceCutoff float64
	typSet         bool
	sealed         bool
}

// NewSourceSetBuilder returns an open SourceSetBuilder for the given
// identity, GMM logic tree, and weight.
func NewSourceSetBuilder(name, id string, gmms *model.GmmSet, weight float64) *SourceSetBuilder {
	return &SourceSetBuilder{name: name, id: id, gmms: gmms, weight: weight}
}

// SetDistanceCutoff sets the pre-filter cutoff. Panics if sealed.
func (b *SourceSetBuilder) SetDistanceCutoff(r float64) *SourceSetBuilder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sealed {
		panic(model.ErrSealed)
	}
	b.distanceCutoff = r

	return b
}

// Add appends src, which must share the same SourceType as any
// previously-added source. Panics if sealed.
func (b *SourceSetBuilder) Add(src Source) *SourceSetBuilder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sealed {
		panic(model.ErrSealed)
	}
	if !b.typSet {
		b.typ = src.Type()
		b.typSet = true
	}
	b.sources = append(b.sources, src)

	return b
}

// Seal validates the accumulated sources (non-empty, same type, weight in
// (0,1]) and returns an immutable SourceSet. Further builder calls panic.
func (b *SourceSetBuilder) Seal() (*SourceSet, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sealed {
		return nil, model.ErrSealed
	}
	if len(b.sources) == 0 {
		return nil, ErrEmptySourceSet
	}
	if b.weight <= 0 || b.weight > 1 {
		return nil, ErrInvalidWeight
	}
	for _, s := range b.sources {
		if s.Type() != b.typ {
			return nil, ErrEmptySourceSet
		}
	}

	b.sealed = true
	sources := make([]Source, len(b.sources))
	copy(sources, b.sources)

	return &SourceSet{
		name:           b.name,
		id:             b.id,
		weight:         b.weight,
		gmms:           b.gmms,
		typ:            b.typ,
		sources:        sources,
		distanceCutoff: b.distanceCutoff,
	}, nil
}
