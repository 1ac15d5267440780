package pure

// The O2 variants memoize both results of fn as one table entry.

type pair[A, B any] struct {
	first  A
	second B
}

func pairOf[A, B any](a A, b B) pair[A, B] {
	return pair[A, B]{first: a, second: b}
}

func (p pair[A, B]) unpack() (A, B) {
	return p.first, p.second
}

func TableizeI1O2[I1, O1, O2 any](fn func(I1) (O1, O2), maxTableSize uint32, opts ...Option) func(I1) (O1, O2) {
	memoized := TableizeI1O1(func(a I1) pair[O1, O2] {
		return pairOf[O1, O2](fn(a))
	}, maxTableSize, opts...)
	return func(a I1) (O1, O2) {
		return memoized(a).unpack()
	}
}

func TableizeI2O2[I1, I2, O1, O2 any](fn func(I1, I2) (O1, O2), maxTableSize uint32, opts ...Option) func(I1, I2) (O1, O2) {
	memoized := TableizeI2O1(func(a I1, b I2) pair[O1, O2] {
		return pairOf[O1, O2](fn(a, b))
	}, maxTableSize, opts...)
	return func(a I1, b I2) (O1, O2) {
		return memoized(a, b).unpack()
	}
}

func TableizeI3O2[I1, I2, I3, O1, O2 any](fn func(I1, I2, I3) (O1, O2), maxTableSize uint32, opts ...Option) func(I1, I2, I3) (O1, O2) {
	memoized := TableizeI3O1(func(a I1, b I2, c I3) pair[O1, O2] {
		return pairOf[O1, O2](fn(a, b, c))
	}, maxTableSize, opts...)
	return func(a I1, b I2, c I3) (O1, O2) {
		return memoized(a, b, c).unpack()
	}
}

func TableizeI4O2[I1, I2, I3, I4, O1, O2 any](fn func(I1, I2, I3, I4) (O1, O2), maxTableSize uint32, opts ...Option) func(I1, I2, I3, I4) (O1, O2) {
	memoized := TableizeI4O1(func(a I1, b I2, c I3, d I4) pair[O1, O2] {
		return pairOf[O1, O2](fn(a, b, c, d))
	}, maxTableSize, opts...)
	return func(a I1, b I2, c I3, d I4) (O1, O2) {
		return memoized(a, b, c, d).unpack()
	}
}
