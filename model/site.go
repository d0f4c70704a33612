package model

// Site is an immutable point at which hazard is evaluated (spec.md §3).
// It carries no behavior: SourceToInputs and DefaultProperties are the
// collaborators that populate or consume it.
type Site struct {
	Name         string
	Lat, Lon     float64
	Vs30         float64
	Vs30Inferred bool
	Z1p0         float64
	Z2p5         float64
}

// SourceType is the closed tag the polymorphic Source variant dispatches
// on (spec.md §9: "a closed tagged variant, not an open inheritance
// hierarchy").
type SourceType int

const (
	SourceTypeGrid SourceType = iota
	SourceTypeFault
	SourceTypeCluster
	SourceTypeInterface
	SourceTypeSystem
	SourceTypeArea
)

// String renders the canonical lower-case name of the source type.
func (t SourceType) String() string {
	switch t {
	case SourceTypeGrid:
		return "grid"
	case SourceTypeFault:
		return "fault"
	case SourceTypeCluster:
		return "cluster"
	case SourceTypeInterface:
		return "interface"
	case SourceTypeSystem:
		return "system"
	case SourceTypeArea:
		return "area"
	default:
		return "unknown"
	}
}
