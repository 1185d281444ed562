package solo

import "github.com/ib-77/valops/pkg/val"

// Apply1..Apply12 call fn with the members of a grouping as positional
// arguments, left to right, and return what fn returns.

func Apply1[A, R any](t val.T1[A], fn func(A) R) R {
	return fn(t.V1)
}

func Apply2[A, B, R any](t val.T2[A, B], fn func(A, B) R) R {
	return fn(t.V1, t.V2)
}

func Apply3[A, B, C, R any](t val.T3[A, B, C], fn func(A, B, C) R) R {
	return fn(t.V1, t.V2, t.V3)
}

func Apply4[A, B, C, D, R any](t val.T4[A, B, C, D], fn func(A, B, C, D) R) R {
	return fn(t.V1, t.V2, t.V3, t.V4)
}

func Apply5[A, B, C, D, E, R any](t val.T5[A, B, C, D, E], fn func(A, B, C, D, E) R) R {
	return fn(t.V1, t.V2, t.V3, t.V4, t.V5)
}

func Apply6[A, B, C, D, E, F, R any](t val.T6[A, B, C, D, E, F], fn func(A, B, C, D, E, F) R) R {
	return fn(t.V1, t.V2, t.V3, t.V4, t.V5, t.V6)
}

func Apply7[A, B, C, D, E, F, G, R any](t val.T7[A, B, C, D, E, F, G], fn func(A, B, C, D, E, F, G) R) R {
	return fn(t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7)
}

func Apply8[A, B, C, D, E, F, G, H, R any](t val.T8[A, B, C, D, E, F, G, H], fn func(A, B, C, D, E, F, G, H) R) R {
	return fn(t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8)
}

func Apply9[A, B, C, D, E, F, G, H, I, R any](t val.T9[A, B, C, D, E, F, G, H, I], fn func(A, B, C, D, E, F, G, H, I) R) R {
	return fn(t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9)
}

func Apply10[A, B, C, D, E, F, G, H, I, J, R any](t val.T10[A, B, C, D, E, F, G, H, I, J], fn func(A, B, C, D, E, F, G, H, I, J) R) R {
	return fn(t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9, t.V10)
}

func Apply11[A, B, C, D, E, F, G, H, I, J, K, R any](t val.T11[A, B, C, D, E, F, G, H, I, J, K], fn func(A, B, C, D, E, F, G, H, I, J, K) R) R {
	return fn(t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9, t.V10, t.V11)
}

func Apply12[A, B, C, D, E, F, G, H, I, J, K, L, R any](t val.T12[A, B, C, D, E, F, G, H, I, J, K, L], fn func(A, B, C, D, E, F, G, H, I, J, K, L) R) R {
	return fn(t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9, t.V10, t.V11, t.V12)
}
