package report

import (
	"math"
	"strconv"
	"strings"
)

// Metric is a float64 metric value that always marshals with at least one
// digit after the decimal point, rounded to 6 significant digits, per the
// JSON schema's float-formatting rule. Negative zero (an underflow-clamp
// artifact) marshals as "0.0".
type Metric float64

// MarshalJSON implements json.Marshaler.
func (m Metric) MarshalJSON() ([]byte, error) {
	f := roundSignificant(float64(m), 6)
	if f == 0 {
		f = 0 // normalize -0
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return []byte(s), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Metric) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}

	*m = Metric(f)

	return nil
}

func roundSignificant(f float64, digits int) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	mag := math.Ceil(math.Log10(math.Abs(f)))
	power := float64(digits) - mag
	shift := math.Pow(10, power)

	return math.Round(f*shift) / shift
}
