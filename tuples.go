package rx

// Tuple2 through Tuple10 are the fixed-arity results of Zip2..Zip10 and
// Join2..Join10. Arities above 10 are not supported (spec's Zip/Join tuple
// cap); the homogeneous slice forms Zip/Join enforce the same cap.

type Tuple2[A, B any] struct {
	First  A
	Second B
}

type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

type Tuple5[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

type Tuple6[A, B, C, D, E, F any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
	Sixth  F
}

type Tuple7[A, B, C, D, E, F, G any] struct {
	First   A
	Second  B
	Third   C
	Fourth  D
	Fifth   E
	Sixth   F
	Seventh G
}

type Tuple8[A, B, C, D, E, F, G, H any] struct {
	First   A
	Second  B
	Third   C
	Fourth  D
	Fifth   E
	Sixth   F
	Seventh G
	Eighth  H
}

type Tuple9[A, B, C, D, E, F, G, H, I any] struct {
	First   A
	Second  B
	Third   C
	Fourth  D
	Fifth   E
	Sixth   F
	Seventh G
	Eighth  H
	Ninth   I
}

type Tuple10[A, B, C, D, E, F, G, H, I, J any] struct {
	First   A
	Second  B
	Third   C
	Fourth  D
	Fifth   E
	Sixth   F
	Seventh G
	Eighth  H
	Ninth   I
	Tenth   J
}

func boxTuple(mode combineMode, inputs ...Rx[any]) Rx[[]any] {
	return combine(mode, inputs)
}

// Zip2 pairs values positionally: the Nth tuple emitted pairs the Nth value
// from each input, queuing values from an input that runs ahead of others.
func Zip2[A, B any](a Rx[A], b Rx[B]) Rx[Tuple2[A, B]] {
	t := boxTuple(modeZip, boxAny(a), boxAny(b))
	return Map(t, func(v []any) Tuple2[A, B] {
		return Tuple2[A, B]{v[0].(A), v[1].(B)}
	})
}

func Zip3[A, B, C any](a Rx[A], b Rx[B], c Rx[C]) Rx[Tuple3[A, B, C]] {
	t := boxTuple(modeZip, boxAny(a), boxAny(b), boxAny(c))
	return Map(t, func(v []any) Tuple3[A, B, C] {
		return Tuple3[A, B, C]{v[0].(A), v[1].(B), v[2].(C)}
	})
}

func Zip4[A, B, C, D any](a Rx[A], b Rx[B], c Rx[C], d Rx[D]) Rx[Tuple4[A, B, C, D]] {
	t := boxTuple(modeZip, boxAny(a), boxAny(b), boxAny(c), boxAny(d))
	return Map(t, func(v []any) Tuple4[A, B, C, D] {
		return Tuple4[A, B, C, D]{v[0].(A), v[1].(B), v[2].(C), v[3].(D)}
	})
}

func Zip5[A, B, C, D, E any](a Rx[A], b Rx[B], c Rx[C], d Rx[D], e Rx[E]) Rx[Tuple5[A, B, C, D, E]] {
	t := boxTuple(modeZip, boxAny(a), boxAny(b), boxAny(c), boxAny(d), boxAny(e))
	return Map(t, func(v []any) Tuple5[A, B, C, D, E] {
		return Tuple5[A, B, C, D, E]{v[0].(A), v[1].(B), v[2].(C), v[3].(D), v[4].(E)}
	})
}

func Zip6[A, B, C, D, E, F any](a Rx[A], b Rx[B], c Rx[C], d Rx[D], e Rx[E], f Rx[F]) Rx[Tuple6[A, B, C, D, E, F]] {
	t := boxTuple(modeZip, boxAny(a), boxAny(b), boxAny(c), boxAny(d), boxAny(e), boxAny(f))
	return Map(t, func(v []any) Tuple6[A, B, C, D, E, F] {
		return Tuple6[A, B, C, D, E, F]{v[0].(A), v[1].(B), v[2].(C), v[3].(D), v[4].(E), v[5].(F)}
	})
}

func Zip7[A, B, C, D, E, F, G any](a Rx[A], b Rx[B], c Rx[C], d Rx[D], e Rx[E], f Rx[F], g Rx[G]) Rx[Tuple7[A, B, C, D, E, F, G]] {
	t := boxTuple(modeZip, boxAny(a), boxAny(b), boxAny(c), boxAny(d), boxAny(e), boxAny(f), boxAny(g))
	return Map(t, func(v []any) Tuple7[A, B, C, D, E, F, G] {
		return Tuple7[A, B, C, D, E, F, G]{v[0].(A), v[1].(B), v[2].(C), v[3].(D), v[4].(E), v[5].(F), v[6].(G)}
	})
}

func Zip8[A, B, C, D, E, F, G, H any](a Rx[A], b Rx[B], c Rx[C], d Rx[D], e Rx[E], f Rx[F], g Rx[G], h Rx[H]) Rx[Tuple8[A, B, C, D, E, F, G, H]] {
	t := boxTuple(modeZip, boxAny(a), boxAny(b), boxAny(c), boxAny(d), boxAny(e), boxAny(f), boxAny(g), boxAny(h))
	return Map(t, func(v []any) Tuple8[A, B, C, D, E, F, G, H] {
		return Tuple8[A, B, C, D, E, F, G, H]{v[0].(A), v[1].(B), v[2].(C), v[3].(D), v[4].(E), v[5].(F), v[6].(G), v[7].(H)}
	})
}

func Zip9[A, B, C, D, E, F, G, H, I any](a Rx[A], b Rx[B], c Rx[C], d Rx[D], e Rx[E], f Rx[F], g Rx[G], h Rx[H], i Rx[I]) Rx[Tuple9[A, B, C, D, E, F, G, H, I]] {
	t := boxTuple(modeZip, boxAny(a), boxAny(b), boxAny(c), boxAny(d), boxAny(e), boxAny(f), boxAny(g), boxAny(h), boxAny(i))
	return Map(t, func(v []any) Tuple9[A, B, C, D, E, F, G, H, I] {
		return Tuple9[A, B, C, D, E, F, G, H, I]{v[0].(A), v[1].(B), v[2].(C), v[3].(D), v[4].(E), v[5].(F), v[6].(G), v[7].(H), v[8].(I)}
	})
}

func Zip10[A, B, C, D, E, F, G, H, I, J any](a Rx[A], b Rx[B], c Rx[C], d Rx[D], e Rx[E], f Rx[F], g Rx[G], h Rx[H], i Rx[I], j Rx[J]) Rx[Tuple10[A, B, C, D, E, F, G, H, I, J]] {
	t := boxTuple(modeZip, boxAny(a), boxAny(b), boxAny(c), boxAny(d), boxAny(e), boxAny(f), boxAny(g), boxAny(h), boxAny(i), boxAny(j))
	return Map(t, func(v []any) Tuple10[A, B, C, D, E, F, G, H, I, J] {
		return Tuple10[A, B, C, D, E, F, G, H, I, J]{v[0].(A), v[1].(B), v[2].(C), v[3].(D), v[4].(E), v[5].(F), v[6].(G), v[7].(H), v[8].(I), v[9].(J)}
	})
}

// Join2 re-emits the current tuple of latest values whenever any input
// produces a fresh Next, once every input has produced at least once.
func Join2[A, B any](a Rx[A], b Rx[B]) Rx[Tuple2[A, B]] {
	t := boxTuple(modeJoin, boxAny(a), boxAny(b))
	return Map(t, func(v []any) Tuple2[A, B] {
		return Tuple2[A, B]{v[0].(A), v[1].(B)}
	})
}

func Join3[A, B, C any](a Rx[A], b Rx[B], c Rx[C]) Rx[Tuple3[A, B, C]] {
	t := boxTuple(modeJoin, boxAny(a), boxAny(b), boxAny(c))
	return Map(t, func(v []any) Tuple3[A, B, C] {
		return Tuple3[A, B, C]{v[0].(A), v[1].(B), v[2].(C)}
	})
}

func Join4[A, B, C, D any](a Rx[A], b Rx[B], c Rx[C], d Rx[D]) Rx[Tuple4[A, B, C, D]] {
	t := boxTuple(modeJoin, boxAny(a), boxAny(b), boxAny(c), boxAny(d))
	return Map(t, func(v []any) Tuple4[A, B, C, D] {
		return Tuple4[A, B, C, D]{v[0].(A), v[1].(B), v[2].(C), v[3].(D)}
	})
}

func Join5[A, B, C, D, E any](a Rx[A], b Rx[B], c Rx[C], d Rx[D], e Rx[E]) Rx[Tuple5[A, B, C, D, E]] {
	t := boxTuple(modeJoin, boxAny(a), boxAny(b), boxAny(c), boxAny(d), boxAny(e))
	return Map(t, func(v []any) Tuple5[A, B, C, D, E] {
		return Tuple5[A, B, C, D, E]{v[0].(A), v[1].(B), v[2].(C), v[3].(D), v[4].(E)}
	})
}

func Join6[A, B, C, D, E, F any](a Rx[A], b Rx[B], c Rx[C], d Rx[D], e Rx[E], f Rx[F]) Rx[Tuple6[A, B, C, D, E, F]] {
	t := boxTuple(modeJoin, boxAny(a), boxAny(b), boxAny(c), boxAny(d), boxAny(e), boxAny(f))
	return Map(t, func(v []any) Tuple6[A, B, C, D, E, F] {
		return Tuple6[A, B, C, D, E, F]{v[0].(A), v[1].(B), v[2].(C), v[3].(D), v[4].(E), v[5].(F)}
	})
}

func Join7[A, B, C, D, E, F, G any](a Rx[A], b Rx[B], c Rx[C], d Rx[D], e Rx[E], f Rx[F], g Rx[G]) Rx[Tuple7[A, B, C, D, E, F, G]] {
	t := boxTuple(modeJoin, boxAny(a), boxAny(b), boxAny(c), boxAny(d), boxAny(e), boxAny(f), boxAny(g))
	return Map(t, func(v []any) Tuple7[A, B, C, D, E, F, G] {
		return Tuple7[A, B, C, D, E, F, G]{v[0].(A), v[1].(B), v[2].(C), v[3].(D), v[4].(E), v[5].(F), v[6].(G)}
	})
}

func Join8[A, B, C, D, E, F, G, H any](a Rx[A], b Rx[B], c Rx[C], d Rx[D], e Rx[E], f Rx[F], g Rx[G], h Rx[H]) Rx[Tuple8[A, B, C, D, E, F, G, H]] {
	t := boxTuple(modeJoin, boxAny(a), boxAny(b), boxAny(c), boxAny(d), boxAny(e), boxAny(f), boxAny(g), boxAny(h))
	return Map(t, func(v []any) Tuple8[A, B, C, D, E, F, G, H] {
		return Tuple8[A, B, C, D, E, F, G, H]{v[0].(A), v[1].(B), v[2].(C), v[3].(D), v[4].(E), v[5].(F), v[6].(G), v[7].(H)}
	})
}

func Join9[A, B, C, D, E, F, G, H, I any](a Rx[A], b Rx[B], c Rx[C], d Rx[D], e Rx[E], f Rx[F], g Rx[G], h Rx[H], i Rx[I]) Rx[Tuple9[A, B, C, D, E, F, G, H, I]] {
	t := boxTuple(modeJoin, boxAny(a), boxAny(b), boxAny(c), boxAny(d), boxAny(e), boxAny(f), boxAny(g), boxAny(h), boxAny(i))
	return Map(t, func(v []any) Tuple9[A, B, C, D, E, F, G, H, I] {
		return Tuple9[A, B, C, D, E, F, G, H, I]{v[0].(A), v[1].(B), v[2].(C), v[3].(D), v[4].(E), v[5].(F), v[6].(G), v[7].(H), v[8].(I)}
	})
}

func Join10[A, B, C, D, E, F, G, H, I, J any](a Rx[A], b Rx[B], c Rx[C], d Rx[D], e Rx[E], f Rx[F], g Rx[G], h Rx[H], i Rx[I], j Rx[J]) Rx[Tuple10[A, B, C, D, E, F, G, H, I, J]] {
	t := boxTuple(modeJoin, boxAny(a), boxAny(b), boxAny(c), boxAny(d), boxAny(e), boxAny(f), boxAny(g), boxAny(h), boxAny(i), boxAny(j))
	return Map(t, func(v []any) Tuple10[A, B, C, D, E, F, G, H, I, J] {
		return Tuple10[A, B, C, D, E, F, G, H, I, J]{v[0].(A), v[1].(B), v[2].(C), v[3].(D), v[4].(E), v[5].(F), v[6].(G), v[7].(H), v[8].(I), v[9].(J)}
	})
}
