package inductor

import (
	"fmt"
	"github.com/ansel1/merry"
	"github.com/fpawel/ltool/internal/pkg"
	"math"
)

// Result is a decoded inductance value. Value is scaled into Unit and rounded
// to two decimal places; RawMicrohenries keeps the exact unscaled value.
type Result struct {
	Value           float64 `json:"value" yaml:"value"`
	Unit            string  `json:"unit" yaml:"unit"`
	Tolerance       string  `json:"tolerance" yaml:"tolerance"`
	Display         string  `json:"display" yaml:"display"`
	RawMicrohenries float64 `json:"raw_uh" yaml:"raw_uh"`
}

// Decode maps an ordered sequence of 3 or 4 band color names to an inductance.
// Names are normalized with Canonical before lookup.
func Decode(bands []string) (Result, error) {
	if len(bands) != 3 && len(bands) != 4 {
		return Result{}, merry.Errorf("expected 3 or 4 bands, got %d", len(bands))
	}

	var digits [2]int
	for i := 0; i < 2; i++ {
		c := Canonical(bands[i])
		code, f := colorCodes[c]
		if !f || code < 0 {
			return Result{}, merry.Errorf("band %d: %q is not a digit color", i+1, bands[i])
		}
		digits[i] = code
	}

	exp, f := colorCodes[Canonical(bands[2])]
	if !f {
		return Result{}, merry.Errorf("band 3: %q is not a multiplier color", bands[2])
	}

	tolerance := defaultTolerance
	if len(bands) == 4 {
		c := Canonical(bands[3])
		if c != None {
			if t, f := tolerances[c]; f {
				tolerance = t
			}
		}
	}

	base := float64(10*digits[0] + digits[1])
	raw := base * math.Pow(10, float64(exp))
	if raw < 0 || math.IsInf(raw, 0) || math.IsNaN(raw) {
		return Result{}, merry.Errorf("computed value %v is out of range", raw)
	}

	value, unit := scale(raw)
	value = math.Round(value*100) / 100

	return Result{
		Value:           value,
		Unit:            unit,
		Tolerance:       tolerance,
		Display:         fmt.Sprintf("%s %s %s", pkg.FormatFloat(value, 2), unit, tolerance),
		RawMicrohenries: raw,
	}, nil
}

// scale picks the largest unit keeping the numeric value at least 1.
func scale(raw float64) (float64, string) {
	switch {
	case raw >= 1e6:
		return raw / 1e6, "H"
	case raw >= 1e3:
		return raw / 1e3, "mH"
	default:
		return raw, "µH"
	}
}
