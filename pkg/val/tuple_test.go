package val

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReplicate(t *testing.T) {
	t.Parallel()

	for i := 0; i < samples; i++ {
		v := uuid.New()

		assert.Equal(t, T1[uuid.UUID]{V1: v}, ToSingle(v))
		assert.Equal(t, T2[uuid.UUID, uuid.UUID]{V1: v, V2: v}, ToPair(v))
		assert.Equal(t, T3[uuid.UUID, uuid.UUID, uuid.UUID]{V1: v, V2: v, V3: v}, ToTriple(v))
	}
}

func TestReplicate_CopiesAreIndependent(t *testing.T) {
	t.Parallel()

	type point struct{ X, Y int }

	p := ToPair(point{X: 1, Y: 2})
	p.V1.X = 10

	assert.Equal(t, point{X: 1, Y: 2}, p.V2)
}

func TestNewT_Unpack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, NewT1(1).Unpack())

	a, b := NewT2(1, "two").Unpack()
	assert.Equal(t, 1, a)
	assert.Equal(t, "two", b)

	x, y, z := NewT3(1.5, true, 'c').Unpack()
	assert.Equal(t, 1.5, x)
	assert.True(t, y)
	assert.Equal(t, 'c', z)

	t12 := NewT12(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, "twelve")
	assert.Equal(t, 1, t12.V1)
	assert.Equal(t, 11, t12.V11)
	assert.Equal(t, "twelve", t12.V12)
}
