package sample

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAdd_Table covers the branch boundaries of Add.
func TestAdd_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"both positive", 5, 3, 8},
		{"ones", 1, 1, 2},
		{"a zero", 0, 3, 0},
		{"b zero", 5, 0, 0},
		{"both zero", 0, 0, 0},
		{"a negative", -5, 3, 0},
		{"b negative", 5, -3, 0},
		{"both negative", -5, -3, 0},
		{"min int", math.MinInt, 1, 0},
		{"large positive", 1 << 20, 1 << 20, 1 << 21},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Add(tc.a, tc.b))
		})
	}
}

// TestAdd_PositivePairsSum verifies Add(a,b) == a+b for random strictly positive pairs.
func TestAdd_PositivePairsSum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a := rng.Intn(math.MaxInt32/2) + 1
		b := rng.Intn(math.MaxInt32/2) + 1
		assert.Equal(t, a+b, Add(a, b), "a=%d b=%d", a, b)
	}
}

// TestAdd_NonPositiveOperandIsZero verifies Add returns 0 whenever either operand is <= 0.
func TestAdd_NonPositiveOperandIsZero(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		nonPos := -rng.Intn(math.MaxInt32)
		other := rng.Intn(math.MaxInt32) - math.MaxInt32/2

		assert.Equal(t, 0, Add(nonPos, other), "a=%d b=%d", nonPos, other)
		assert.Equal(t, 0, Add(other, nonPos), "a=%d b=%d", other, nonPos)
	}
}

// TestAdd_OverflowWraps documents that Add does not guard against overflow.
func TestAdd_OverflowWraps(t *testing.T) {
	t.Parallel()

	a, b := math.MaxInt, 1
	assert.Equal(t, a+b, Add(a, b))
	assert.Equal(t, math.MinInt, Add(a, b))
}
