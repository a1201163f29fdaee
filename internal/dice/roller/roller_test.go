package roller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name      string
		ndice     int
		nsides    int
		expectErr bool
	}{
		{name: "valid", ndice: 4, nsides: 6},
		{name: "ndice too low", ndice: -1, nsides: 6, expectErr: true},
		{name: "ndice too high", ndice: MaxNDice + 1, nsides: 6, expectErr: true},
		{name: "nsides too low", ndice: 1, nsides: 1, expectErr: true},
		{name: "nsides too high", ndice: 1, nsides: MaxSides + 1, expectErr: true},
		{name: "ndice zero allowed", ndice: 0, nsides: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBounds(tt.ndice, tt.nsides)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNDice(t *testing.T) {
	assert.NoError(t, ValidateNDice(0))
	assert.NoError(t, ValidateNDice(MaxNDice))
	assert.Error(t, ValidateNDice(-1))
	assert.Error(t, ValidateNDice(MaxNDice+1))
}

func TestValueInRange(t *testing.T) {
	assert.True(t, valueInRange(1, 1, 6))
	assert.True(t, valueInRange(6, 1, 6))
	assert.False(t, valueInRange(0, 1, 6))
	assert.False(t, valueInRange(7, 1, 6))
}

func TestValueInSet(t *testing.T) {
	vals := []int{-1, 0, 1}
	assert.True(t, valueInSet(-1, vals))
	assert.True(t, valueInSet(0, vals))
	assert.False(t, valueInSet(2, vals))
}
