package val

// Groupings T1..T12 are fixed-arity ordered tuples with exported
// positional fields. Go has no variadic generics, so each arity is its own
// type; solo.Apply1..Apply12 unpack them into function arguments.

type T1[A any] struct {
	V1 A
}

// NewT1 and its siblings exist because the compiler infers type parameters
// from call arguments but not from composite literals.
func NewT1[A any](v1 A) T1[A] {
	return T1[A]{V1: v1}
}

func (t T1[A]) Unpack() A {
	return t.V1
}

type T2[A, B any] struct {
	V1 A
	V2 B
}

func NewT2[A, B any](v1 A, v2 B) T2[A, B] {
	return T2[A, B]{V1: v1, V2: v2}
}

func (t T2[A, B]) Unpack() (A, B) {
	return t.V1, t.V2
}

type T3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

func NewT3[A, B, C any](v1 A, v2 B, v3 C) T3[A, B, C] {
	return T3[A, B, C]{V1: v1, V2: v2, V3: v3}
}

func (t T3[A, B, C]) Unpack() (A, B, C) {
	return t.V1, t.V2, t.V3
}

type T4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

func NewT4[A, B, C, D any](v1 A, v2 B, v3 C, v4 D) T4[A, B, C, D] {
	return T4[A, B, C, D]{V1: v1, V2: v2, V3: v3, V4: v4}
}

func (t T4[A, B, C, D]) Unpack() (A, B, C, D) {
	return t.V1, t.V2, t.V3, t.V4
}

type T5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

func NewT5[A, B, C, D, E any](v1 A, v2 B, v3 C, v4 D, v5 E) T5[A, B, C, D, E] {
	return T5[A, B, C, D, E]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5}
}

func (t T5[A, B, C, D, E]) Unpack() (A, B, C, D, E) {
	return t.V1, t.V2, t.V3, t.V4, t.V5
}

type T6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

func NewT6[A, B, C, D, E, F any](v1 A, v2 B, v3 C, v4 D, v5 E, v6 F) T6[A, B, C, D, E, F] {
	return T6[A, B, C, D, E, F]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6}
}

func (t T6[A, B, C, D, E, F]) Unpack() (A, B, C, D, E, F) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6
}

type T7[A, B, C, D, E, F, G any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
}

func NewT7[A, B, C, D, E, F, G any](v1 A, v2 B, v3 C, v4 D, v5 E, v6 F, v7 G) T7[A, B, C, D, E, F, G] {
	return T7[A, B, C, D, E, F, G]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7}
}

func (t T7[A, B, C, D, E, F, G]) Unpack() (A, B, C, D, E, F, G) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7
}

type T8[A, B, C, D, E, F, G, H any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
}

func NewT8[A, B, C, D, E, F, G, H any](v1 A, v2 B, v3 C, v4 D, v5 E, v6 F, v7 G, v8 H) T8[A, B, C, D, E, F, G, H] {
	return T8[A, B, C, D, E, F, G, H]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7, V8: v8}
}

func (t T8[A, B, C, D, E, F, G, H]) Unpack() (A, B, C, D, E, F, G, H) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8
}

type T9[A, B, C, D, E, F, G, H, I any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
	V9 I
}

func NewT9[A, B, C, D, E, F, G, H, I any](v1 A, v2 B, v3 C, v4 D, v5 E, v6 F, v7 G, v8 H, v9 I) T9[A, B, C, D, E, F, G, H, I] {
	return T9[A, B, C, D, E, F, G, H, I]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7, V8: v8, V9: v9}
}

func (t T9[A, B, C, D, E, F, G, H, I]) Unpack() (A, B, C, D, E, F, G, H, I) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9
}

type T10[A, B, C, D, E, F, G, H, I, J any] struct {
	V1  A
	V2  B
	V3  C
	V4  D
	V5  E
	V6  F
	V7  G
	V8  H
	V9  I
	V10 J
}

func NewT10[A, B, C, D, E, F, G, H, I, J any](v1 A, v2 B, v3 C, v4 D, v5 E, v6 F, v7 G, v8 H, v9 I, v10 J) T10[A, B, C, D, E, F, G, H, I, J] {
	return T10[A, B, C, D, E, F, G, H, I, J]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7, V8: v8, V9: v9, V10: v10}
}

func (t T10[A, B, C, D, E, F, G, H, I, J]) Unpack() (A, B, C, D, E, F, G, H, I, J) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9, t.V10
}

type T11[A, B, C, D, E, F, G, H, I, J, K any] struct {
	V1  A
	V2  B
	V3  C
	V4  D
	V5  E
	V6  F
	V7  G
	V8  H
	V9  I
	V10 J
	V11 K
}

func NewT11[A, B, C, D, E, F, G, H, I, J, K any](v1 A, v2 B, v3 C, v4 D, v5 E, v6 F, v7 G, v8 H, v9 I, v10 J, v11 K) T11[A, B, C, D, E, F, G, H, I, J, K] {
	return T11[A, B, C, D, E, F, G, H, I, J, K]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7, V8: v8, V9: v9, V10: v10, V11: v11}
}

func (t T11[A, B, C, D, E, F, G, H, I, J, K]) Unpack() (A, B, C, D, E, F, G, H, I, J, K) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9, t.V10, t.V11
}

type T12[A, B, C, D, E, F, G, H, I, J, K, L any] struct {
	V1  A
	V2  B
	V3  C
	V4  D
	V5  E
	V6  F
	V7  G
	V8  H
	V9  I
	V10 J
	V11 K
	V12 L
}

func NewT12[A, B, C, D, E, F, G, H, I, J, K, L any](v1 A, v2 B, v3 C, v4 D, v5 E, v6 F, v7 G, v8 H, v9 I, v10 J, v11 K, v12 L) T12[A, B, C, D, E, F, G, H, I, J, K, L] {
	return T12[A, B, C, D, E, F, G, H, I, J, K, L]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7, V8: v8, V9: v9, V10: v10, V11: v11, V12: v12}
}

func (t T12[A, B, C, D, E, F, G, H, I, J, K, L]) Unpack() (A, B, C, D, E, F, G, H, I, J, K, L) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9, t.V10, t.V11, t.V12
}

// ToSingle, ToPair and ToTriple replicate value by assignment. Reference
// types (pointers, slices, maps) share their referent between the copies.
func ToSingle[T any](value T) T1[T] {
	return T1[T]{V1: value}
}

func ToPair[T any](value T) T2[T, T] {
	return T2[T, T]{V1: value, V2: value}
}

func ToTriple[T any](value T) T3[T, T, T] {
	return T3[T, T, T]{V1: value, V2: value, V3: value}
}
