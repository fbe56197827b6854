package kombu

// Many parses p zero or more times, greedily, collecting the values in
// order. Zero matches succeed with an empty slice and consume nothing, so
// Many never fails. The argument parser must consume input when it succeeds
// (see the package documentation on termination).
func Many[T any](p Parser[T]) Parser[[]T] {
	return Or(Many1(p), Return([]T{}))
}

// Many1 parses p one or more times, greedily. It fails when the first
// attempt at p fails.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Bind(p, func(a T) Parser[[]T] {
		return Bind(Many(p), func(as []T) Parser[[]T] {
			return Return(cons(a, as))
		})
	})
}

// SepBy parses zero or more p separated by sep, keeping only p's values.
// Like Many it never fails: no match yields an empty slice and consumes
// nothing.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Or(SepBy1(p, sep), Return([]T{}))
}

// SepBy1 parses one or more p separated by sep, keeping only p's values.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Bind(p, func(a T) Parser[[]T] {
		next := Bind(sep, func(S) Parser[T] { return p })
		return Bind(Many(next), func(as []T) Parser[[]T] {
			return Return(cons(a, as))
		})
	})
}

// Chain parses zero or more p separated by op, folding the values
// left-associatively with the functions op produces. When the very first p
// fails it succeeds with def and consumes nothing.
func Chain[T any](p Parser[T], op Parser[func(T, T) T], def T) Parser[T] {
	return Or(Chain1(p, op), Return(def))
}

// Chain1 parses one or more p separated by op and folds left. The first p
// seeds the accumulator; each further op/p pair is applied as acc = f(acc,
// v). When op or the p after it fails, the accumulator from before that
// attempt is the result and the failed attempt consumes nothing.
func Chain1[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	var rest func(T) Parser[T]
	rest = func(acc T) Parser[T] {
		step := Bind(op, func(f func(T, T) T) Parser[T] {
			return Bind(p, func(v T) Parser[T] {
				return rest(f(acc, v))
			})
		})
		return Or(step, Return(acc))
	}
	return Bind(p, rest)
}

// ChainRight parses zero or more p separated by op, folding right. When the
// very first p fails it succeeds with def and consumes nothing.
func ChainRight[T any](p Parser[T], op Parser[func(T, T) T], def T) Parser[T] {
	return Or(ChainRight1(p, op), Return(def))
}

// ChainRight1 is the right-associative mirror of Chain1: a op b op c parses
// as f(a, f(b, c)).
func ChainRight1[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return Bind(p, func(a T) Parser[T] {
		step := Bind(op, func(f func(T, T) T) Parser[T] {
			return Bind(ChainRight1(p, op), func(b T) Parser[T] {
				return Return(f(a, b))
			})
		})
		return Or(step, Return(a))
	})
}

// Bracket parses open, then body, then close, and yields only body's value.
func Bracket[O, T, C any](open Parser[O], body Parser[T], close Parser[C]) Parser[T] {
	return Bind(open, func(O) Parser[T] {
		return Bind(body, func(v T) Parser[T] {
			return Bind(close, func(C) Parser[T] {
				return Return(v)
			})
		})
	})
}

func cons[T any](a T, as []T) []T {
	out := make([]T, 0, len(as)+1)
	out = append(out, a)
	return append(out, as...)
}
