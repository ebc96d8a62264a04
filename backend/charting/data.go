package charting

// Data holds one chart column per X label and one series per strategy. Series that
// miss a column are backfilled with zero.
type Data struct {
	X      []string
	Series map[string][]float64
	Labels []string
}

func NewData() *Data {
	return &Data{Series: map[string][]float64{}}
}

func (ld *Data) backfill(count int) []float64 {
	return make([]float64, count)
}

// Append adds a column at x with a value per label.
func (ld *Data) Append(x string, values map[string]float64) {
	for _, label := range ld.Labels {
		value := values[label]
		ld.Series[label] = append(ld.Series[label], value)
	}
	for label, value := range values {
		if _, found := ld.Series[label]; !found {
			ld.Labels = append(ld.Labels, label)
			ld.Series[label] = append(ld.backfill(len(ld.X)), value)
		}
	}
	ld.X = append(ld.X, x)
}

func (ld *Data) Values(label string) []interface{} {
	series := ld.Series[label]
	values := make([]interface{}, len(series))
	for pos, value := range series {
		values[pos] = value
	}
	return values
}
