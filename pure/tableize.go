package pure

import "fmt"

// Key addresses one level of a memo table. Arguments that implement
// fmt.Stringer are keyed by their String form, anything else by value, so
// every other argument must be comparable.
type Key = any

func TableizeI1O1[I1, O any](fn func(I1) O, maxTableSize uint32, opts ...Option) func(I1) O {
	m := newMemo[O](maxTableSize, opts)
	return func(a I1) O {
		return m.get(func() O { return fn(a) }, a)
	}
}

func TableizeI2O1[I1, I2, O any](fn func(I1, I2) O, maxTableSize uint32, opts ...Option) func(I1, I2) O {
	m := newMemo[O](maxTableSize, opts)
	return func(a I1, b I2) O {
		return m.get(func() O { return fn(a, b) }, a, b)
	}
}

func TableizeI3O1[I1, I2, I3, O any](fn func(I1, I2, I3) O, maxTableSize uint32, opts ...Option) func(I1, I2, I3) O {
	m := newMemo[O](maxTableSize, opts)
	return func(a I1, b I2, c I3) O {
		return m.get(func() O { return fn(a, b, c) }, a, b, c)
	}
}

func TableizeI4O1[I1, I2, I3, I4, O any](fn func(I1, I2, I3, I4) O, maxTableSize uint32, opts ...Option) func(I1, I2, I3, I4) O {
	m := newMemo[O](maxTableSize, opts)
	return func(a I1, b I2, c I3, d I4) O {
		return m.get(func() O { return fn(a, b, c, d) }, a, b, c, d)
	}
}

type memo[O any] struct {
	table Table[O]
}

func newMemo[O any](maxTableSize uint32, opts []Option) memo[O] {
	return memo[O]{table: newTable[O](maxTableSize, opts)}
}

// get returns the stored value for args, running compute on a miss. compute
// runs without any lock held, so it may recurse into the same memo.
func (m memo[O]) get(compute func() O, args ...any) O {
	keys := make([]Key, len(args))
	for i, arg := range args {
		if s, ok := arg.(fmt.Stringer); ok {
			keys[i] = s.String()
			continue
		}
		keys[i] = arg
	}

	if v, ok := m.table.Load(keys); ok {
		return v
	}
	v := compute()
	m.table.Store(keys, v)
	return v
}
