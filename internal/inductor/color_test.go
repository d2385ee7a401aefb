package inductor

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCanonical(t *testing.T) {
	assert.Equal(t, Green, Canonical("green"))
	assert.Equal(t, Green, Canonical("GREEN"))
	assert.Equal(t, Green, Canonical("gReEn"))
	assert.Equal(t, Color(""), Canonical(""))
}

func TestColors(t *testing.T) {
	xs := Colors()
	assert.Len(t, xs, 14)
	assert.Contains(t, xs, Gray)
	assert.Contains(t, xs, Grey)
	assert.NotContains(t, xs, None)
	assert.Equal(t, colorCodes[Gray], colorCodes[Grey])
}

func TestToleranceColors(t *testing.T) {
	xs := ToleranceColors()
	assert.NotContains(t, xs, None)
	assert.Contains(t, xs, Gold)
	assert.Contains(t, xs, Silver)
	assert.NotContains(t, xs, Green)
}

func TestValidForRole(t *testing.T) {
	cases := []struct {
		color Color
		role  Role
		want  bool
	}{
		{Pink, RoleDigit, false},
		{Pink, RoleMultiplier, true},
		{Pink, RoleTolerance, false},
		{Gold, RoleDigit, false},
		{Gold, RoleMultiplier, true},
		{Gold, RoleTolerance, true},
		{Black, RoleDigit, true},
		{White, RoleDigit, true},
		{Green, RoleTolerance, false},
		{None, RoleTolerance, true},
		{None, RoleDigit, false},
		{Color("Banana"), RoleMultiplier, false},
		{Black, Role("banana"), false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ValidForRole(c.color, c.role), "%s %s", c.color, c.role)
	}
}
