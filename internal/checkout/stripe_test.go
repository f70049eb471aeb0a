package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUnitAmount(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{5.00, 500},
		{14.00, 1400},
		{0, 0},
		{9.99, 999},
		// float noise must round, not truncate
		{19.90, 1990},
		{0.1 + 0.2, 30},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, toUnitAmount(tc.price))
	}
}
