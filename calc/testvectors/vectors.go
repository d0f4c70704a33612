package testvectors

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Row is one site's expected (or actual) Poisson exceedance-probability
// vector, matching spec.md §6's CSV row shape:
// <site_name>, <lon>, <lat>, v1;v2;...;vN.
type Row struct {
	SiteName string
	Lon, Lat float64
	Values   []float64
}

// Load parses a §6 test-result CSV from r: one header line, then one row
// per site.
func Load(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("testvectors: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row, err := parseRow(rec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseRow(rec []string) (Row, error) {
	if len(rec) != 4 {
		return Row{}, ErrMalformedRow
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
	if err != nil {
		return Row{}, fmt.Errorf("%w: lon: %v", ErrMalformedRow, err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil {
		return Row{}, fmt.Errorf("%w: lat: %v", ErrMalformedRow, err)
	}
	fields := strings.Split(strings.TrimSpace(rec[3]), ";")
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Row{}, fmt.Errorf("%w: value %d: %v", ErrMalformedRow, i, err)
		}
		values[i] = v
	}

	return Row{SiteName: strings.TrimSpace(rec[0]), Lon: lon, Lat: lat, Values: values}, nil
}

// ByName indexes rows by site name for pairing against a calculation's
// per-site results (spec.md §6: "the test harness pairs sites by name").
func ByName(rows []Row) map[string]Row {
	out := make(map[string]Row, len(rows))
	for _, r := range rows {
		out[r.SiteName] = r
	}

	return out
}

// Compare reports whether actual matches expected under spec.md §6's match
// rule, applied element-wise: |actual-expected|/expected < tolerance, OR
// actual and expected are bitwise-equal as float64 (covers expected==0,
// where relative tolerance is undefined).
func Compare(actual, expected []float64, tolerance float64) (bool, error) {
	if len(actual) != len(expected) {
		return false, ErrLengthMismatch
	}
	for i := range expected {
		if actual[i] == expected[i] {
			continue
		}
		if expected[i] == 0 {
			return false, nil
		}
		rel := math.Abs(actual[i]-expected[i]) / math.Abs(expected[i])
		if rel >= tolerance {
			return false, nil
		}
	}

	return true, nil
}

// CompareSite looks up siteName in expected and compares actual against it.
func CompareSite(expected map[string]Row, siteName string, actual []float64, tolerance float64) (bool, error) {
	row, ok := expected[siteName]
	if !ok {
		return false, ErrUnknownSite
	}

	return Compare(actual, row.Values, tolerance)
}
