// Package inductor decodes inductor color-code bands into an inductance value.
package inductor

import (
	"strings"
)

// Color is a band color name in canonical spelling: first letter upper, rest lower.
type Color string

const (
	Black  Color = "Black"
	Brown  Color = "Brown"
	Red    Color = "Red"
	Orange Color = "Orange"
	Yellow Color = "Yellow"
	Green  Color = "Green"
	Blue   Color = "Blue"
	Violet Color = "Violet"
	Gray   Color = "Gray"
	Grey   Color = "Grey"
	White  Color = "White"
	Gold   Color = "Gold"
	Silver Color = "Silver"
	Pink   Color = "Pink"

	// None marks an absent fourth band.
	None Color = "None"
)

// colors lists the selectable band colors in table order. Gray and Grey are
// kept as separate entries resolving to the same code.
var colors = []Color{
	Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Gray, Grey, White,
	Gold, Silver, Pink,
}

// colorCodes maps a color to its digit value or multiplier exponent.
// Gold, Silver and Pink encode negative powers of ten and are never valid
// in digit positions.
var colorCodes = map[Color]int{
	Black:  0,
	Brown:  1,
	Red:    2,
	Orange: 3,
	Yellow: 4,
	Green:  5,
	Blue:   6,
	Violet: 7,
	Gray:   8,
	Grey:   8,
	White:  9,
	Gold:   -1,
	Silver: -2,
	Pink:   -3,
}

// tolerances maps a fourth-band color to its tolerance string.
var tolerances = map[Color]string{
	Black:  "±20%",
	Brown:  "±1%",
	Red:    "±2%",
	Orange: "±3%",
	Yellow: "±4%",
	Gold:   "±5%",
	Silver: "±10%",
	None:   defaultTolerance,
}

const defaultTolerance = "±20%"

// Role is a band position kind.
type Role string

const (
	RoleDigit      Role = "digit"
	RoleMultiplier Role = "multiplier"
	RoleTolerance  Role = "tolerance"
)

// Canonical normalizes a color name: first letter upper, rest lower.
func Canonical(s string) Color {
	if s == "" {
		return ""
	}
	return Color(strings.ToUpper(s[:1]) + strings.ToLower(s[1:]))
}

// Colors returns all band colors in table order.
func Colors() []Color {
	xs := make([]Color, len(colors))
	copy(xs, colors)
	return xs
}

// ToleranceColors returns the colors legal as a fourth band, excluding None.
func ToleranceColors() []Color {
	var xs []Color
	for _, c := range colors {
		if _, f := tolerances[c]; f {
			xs = append(xs, c)
		}
	}
	return xs
}

// ValidForRole reports whether color is legal for the given band role.
// None counts as a legal tolerance selection.
func ValidForRole(color Color, role Role) bool {
	switch role {
	case RoleDigit:
		code, f := colorCodes[color]
		return f && code >= 0
	case RoleMultiplier:
		_, f := colorCodes[color]
		return f
	case RoleTolerance:
		_, f := tolerances[color]
		return f
	}
	return false
}
