package curve

// Table is a (key × amplitude) aligned array of curves sharing one
// Template — the concrete form of spec.md §4.3's "HazardCurves: table
// (IMT, GMM) → amplitude-sequence" for a single IMT, and of the per-GMM
// rows a GroundMotions accumulates before GroundMotionsToCurves runs.
//
// Rows are stored in one flat row-major buffer (grounded on matrix.Dense),
// keyed by GMM/source name and indexed in declaration order so reduction
// over rows is reproducible independent of any concurrent fill order
// (spec.md §7's ordered-by-declaration-index reduction requirement).
type Table struct {
	tmpl   *Template
	keys   []string
	keyIdx map[string]int
	data   []float64 // len == len(keys) * tmpl.Len()
}

// NewTable allocates a zero-valued Table with one row per key, in the
// given order. Returns ErrDuplicateKey if keys contains a repeat.
func NewTable(tmpl *Template, keys []string) (*Table, error) {
	keyIdx := make(map[string]int, len(keys))
	ordered := make([]string, len(keys))
	for i, k := range keys {
		if _, dup := keyIdx[k]; dup {
			return nil, ErrDuplicateKey
		}
		keyIdx[k] = i
		ordered[i] = k
	}

	return &Table{
		tmpl:   tmpl,
		keys:   ordered,
		keyIdx: keyIdx,
		data:   make([]float64, len(ordered)*tmpl.Len()),
	}, nil
}

// Template returns the shared amplitude axis.
func (t *Table) Template() *Template { return t.tmpl }

// Keys returns the row keys in declaration order.
func (t *Table) Keys() []string {
	cp := make([]string, len(t.keys))
	copy(cp, t.keys)

	return cp
}

func (t *Table) rowOffset(key string) (int, error) {
	i, ok := t.keyIdx[key]
	if !ok {
		return 0, ErrUnknownKey
	}

	return i * t.tmpl.Len(), nil
}

// SetRow overwrites the row for key with y. Returns ErrUnknownKey if key
// was not registered at construction, or ErrLengthMismatch if
// len(y) != Template().Len().
func (t *Table) SetRow(key string, y []float64) error {
	off, err := t.rowOffset(key)
	if err != nil {
		return err
	}
	if len(y) != t.tmpl.Len() {
		return ErrLengthMismatch
	}
	copy(t.data[off:off+t.tmpl.Len()], y)

	return nil
}

// Row returns an independent Curve copy of the row stored under key.
func (t *Table) Row(key string) (*Curve, error) {
	off, err := t.rowOffset(key)
	if err != nil {
		return nil, err
	}
	y := make([]float64, t.tmpl.Len())
	copy(y, t.data[off:off+t.tmpl.Len()])

	return &Curve{tmpl: t.tmpl, y: y}, nil
}

// AddRowScaled adds weight*src into the row stored under key, in place.
func (t *Table) AddRowScaled(key string, src *Curve, weight float64) error {
	off, err := t.rowOffset(key)
	if err != nil {
		return err
	}
	if !t.tmpl.sameAs(src.tmpl) {
		return ErrLengthMismatch
	}
	for i, v := range src.y {
		t.data[off+i] += weight * v
	}

	return nil
}

// WeightedSum reduces every row into a single Curve, combining rows in
// declaration order: out += weights[key] * row(key). Rows absent from
// weights contribute 0, matching a logic tree where a branch's weight can
// legitimately be zero at the margin but every Gmm/SourceSet is still
// walked (spec.md §3's weight-closure invariant).
func (t *Table) WeightedSum(weights map[string]float64) *Curve {
	out := NewCurve(t.tmpl)
	n := t.tmpl.Len()
	for i, key := range t.keys {
		w, ok := weights[key]
		if !ok || w == 0 {
			continue
		}
		off := i * n
		for j := 0; j < n; j++ {
			out.y[j] += w * t.data[off+j]
		}
	}

	return out
}
