package output

import (
	"math"
	"strconv"
)

// Number is a float64 that survives JSON encoding when it is not finite.
// NaN and the infinities are written as the strings "NaN", "+Inf" and "-Inf".
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// ExecuteOutput is the result of running one operation.
type ExecuteOutput struct {
	Operation string `json:"operation" yaml:"operation"`
	A         Number `json:"a" yaml:"a"`
	B         Number `json:"b" yaml:"b"`
	Result    Number `json:"result" yaml:"result"`
	Formatted string `json:"formatted" yaml:"formatted"`
}

// FormatNumber formats v with %g semantics at the given number of
// significant digits. A precision of -1 yields the shortest representation
// that parses back to v.
func FormatNumber(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}
