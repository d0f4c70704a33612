package source

import "github.com/karim5623/seismhaz/model"

// HazardModel is the fully materialized, immutable input to a hazard
// calculation: a name, an ordered collection of SourceSets partitioned by
// SourceType, and the shared CalcConfig (spec.md §3). It is produced by an
// external model loader (spec.md §1, §6) and never touches disk itself.
type HazardModel struct {
	name       string
	sourceSets []*SourceSet
	config     *model.CalcConfig
}

// NewHazardModel returns a sealed HazardModel. sourceSets is kept in the
// given declaration order — the order every fan-out/fan-in reduction in
// package calc reduces against (spec.md §5).
func NewHazardModel(name string, sourceSets []*SourceSet, config *model.CalcConfig) *HazardModel {
	cp := make([]*SourceSet, len(sourceSets))
	copy(cp, sourceSets)

	return &HazardModel{name: name, sourceSets: cp, config: config}
}

// Name returns the model's name.
func (m *HazardModel) Name() string { return m.name }

// SourceSets returns the model's SourceSets in declaration order.
func (m *HazardModel) SourceSets() []*SourceSet {
	cp := make([]*SourceSet, len(m.sourceSets))
	copy(cp, m.sourceSets)

	return cp
}

// Config returns the model's CalcConfig.
func (m *HazardModel) Config() *model.CalcConfig { return m.config }
