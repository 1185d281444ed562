package solo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/valops/pkg/val"
)

func multiply(a, b int) int { return a * b }

func TestApply_Multiply(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, Apply2(val.NewT2(2, 3), multiply))
	assert.Equal(t, 24, Apply3(val.NewT3(2, 3, 4), func(a, b, c int) int { return a * b * c }))
}

func TestApply_ReplicatedGroupings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, Apply1(val.ToSingle(7), func(a int) int { return a }))
	assert.Equal(t, 49, Apply2(val.ToPair(7), multiply))
	assert.Equal(t, 21, Apply3(val.ToTriple(7), func(a, b, c int) int { return a + b + c }))
}

func TestApply_PositionalOrder(t *testing.T) {
	t.Parallel()

	join := func(vs ...any) string { return fmt.Sprint(vs...) }

	assert.Equal(t, "a1", Apply2(val.NewT2("a", 1), func(a string, b int) string { return join(a, b) }))
	assert.Equal(t, "1 2 3 4",
		Apply4(val.NewT4(1, 2, 3, 4), func(a, b, c, d int) string { return fmt.Sprint(a, b, c, d) }))
	assert.Equal(t, []int{1, 2, 3, 4, 5},
		Apply5(val.NewT5(1, 2, 3, 4, 5), func(a, b, c, d, e int) []int { return []int{a, b, c, d, e} }))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6},
		Apply6(val.NewT6(1, 2, 3, 4, 5, 6), func(a, b, c, d, e, f int) []int { return []int{a, b, c, d, e, f} }))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7},
		Apply7(val.NewT7(1, 2, 3, 4, 5, 6, 7), func(a, b, c, d, e, f, g int) []int {
			return []int{a, b, c, d, e, f, g}
		}))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8},
		Apply8(val.NewT8(1, 2, 3, 4, 5, 6, 7, 8), func(a, b, c, d, e, f, g, h int) []int {
			return []int{a, b, c, d, e, f, g, h}
		}))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		Apply9(val.NewT9(1, 2, 3, 4, 5, 6, 7, 8, 9), func(a, b, c, d, e, f, g, h, i int) []int {
			return []int{a, b, c, d, e, f, g, h, i}
		}))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		Apply10(val.NewT10(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), func(a, b, c, d, e, f, g, h, i, j int) []int {
			return []int{a, b, c, d, e, f, g, h, i, j}
		}))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		Apply11(val.NewT11(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11), func(a, b, c, d, e, f, g, h, i, j, k int) []int {
			return []int{a, b, c, d, e, f, g, h, i, j, k}
		}))
}

func TestApply12_Heterogeneous(t *testing.T) {
	t.Parallel()

	grouping := val.NewT12(1, "b", 3.0, true, 'e', uint8(6), int64(7), []int{8}, "i", 10, 11, "l")

	out := Apply12(grouping, func(a int, b string, c float64, d bool, e rune, f uint8,
		g int64, h []int, i string, j, k int, l string) string {
		return fmt.Sprintf("%d%s%.0f%t%c%d%d%v%s%d%d%s", a, b, c, d, e, f, g, h, i, j, k, l)
	})

	assert.Equal(t, "1b3truee67[8]i1011l", out)
}
