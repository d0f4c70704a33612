package gmm

// Table is the dense (Gmm × Imt) → GroundMotionModel registry
// InputsToGroundMotions looks up (spec.md §4.2): "the table is dense: every
// GMM produces a value for every listed IMT."
type Table struct {
	models map[Gmm]map[Imt]GroundMotionModel
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{models: make(map[Gmm]map[Imt]GroundMotionModel)}
}

// Register binds g,imt to m, overwriting any prior binding.
func (t *Table) Register(g Gmm, imt Imt, m GroundMotionModel) {
	row, ok := t.models[g]
	if !ok {
		row = make(map[Imt]GroundMotionModel)
		t.models[g] = row
	}
	row[imt] = m
}

// Lookup returns the registered model for (g, imt), or ErrNotRegistered.
func (t *Table) Lookup(g Gmm, imt Imt) (GroundMotionModel, error) {
	row, ok := t.models[g]
	if !ok {
		return nil, ErrNotRegistered
	}
	m, ok := row[imt]
	if !ok {
		return nil, ErrNotRegistered
	}

	return m, nil
}

// HasAll reports whether every (g, imt) pair in gmms × imts is registered,
// the dense-table precondition GroundMotions assembly requires.
func (t *Table) HasAll(gmms []Gmm, imts []Imt) error {
	for _, g := range gmms {
		for _, imt := range imts {
			if _, err := t.Lookup(g, imt); err != nil {
				return err
			}
		}
	}

	return nil
}
