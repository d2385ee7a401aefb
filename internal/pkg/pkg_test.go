package pkg

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		v         float64
		precision int
		want      string
	}{
		{1, 2, "1"},
		{1.5, 2, "1.5"},
		{1.25, 2, "1.25"},
		{560, 2, "560"},
		{5.6, 2, "5.6"},
		{0.01, 2, "0.01"},
		{1.999, 2, "2"},
		{0, 2, "0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatFloat(c.v, c.precision), "%v", c.v)
	}
}
