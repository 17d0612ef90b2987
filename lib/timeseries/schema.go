package timeseries

import "fmt"

// Field names accepted by Column and by the range accessors. field
// selection is always by plain string resolved against these maps, never
// by reflection.
const (
	FieldConfirmed = "Confirmed"
	FieldDeaths    = "Deaths"
	FieldRecovered = "Recovered"
	FieldActive    = "Active"
	FieldNewCases  = "NewCases"
	FieldNewDeaths = "NewDeaths"
)

var caseColumns = map[string]func(CaseRecord) int64{
	FieldConfirmed: func(r CaseRecord) int64 { return r.Confirmed },
	FieldDeaths:    func(r CaseRecord) int64 { return r.Deaths },
	FieldRecovered: func(r CaseRecord) int64 { return r.Recovered },
	FieldActive:    func(r CaseRecord) int64 { return r.Active },
}

var derivedColumns = map[string]func(DerivedRecord) int64{
	FieldConfirmed: func(r DerivedRecord) int64 { return r.Confirmed },
	FieldDeaths:    func(r DerivedRecord) int64 { return r.Deaths },
	FieldRecovered: func(r DerivedRecord) int64 { return r.Recovered },
	FieldActive:    func(r DerivedRecord) int64 { return r.Active },
	FieldNewCases:  func(r DerivedRecord) int64 { return r.NewCases },
	FieldNewDeaths: func(r DerivedRecord) int64 { return r.NewDeaths },
}

// CaseColumn resolves a field name against the raw (non-derived) record
// schema.
func CaseColumn(field string) (func(CaseRecord) int64, error) {
	col, ok := caseColumns[field]
	if !ok {
		return nil, fmt.Errorf("unknown case field %q", field)
	}
	return col, nil
}

// Column extracts one named numeric column from the dataset.
func (ds Dataset) Column(field string) ([]float64, error) {
	col, ok := derivedColumns[field]
	if !ok {
		return nil, fmt.Errorf("unknown field %q", field)
	}
	out := make([]float64, len(ds))
	for i, rec := range ds {
		out[i] = float64(col(rec))
	}
	return out, nil
}
