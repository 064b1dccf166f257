package maybe

// Map applies f to the value of m. None is passed on without calling f. The
// mapped value goes through Some, so f must not return nil.
func Map[T, B any](m Maybe[T], f func(T) B) Maybe[B] {
	if !m.hasValue {
		return None[B]()
	}
	return Some(f(m.value))
}

// MapOr is Map with none deciding the outcome for None.
func MapOr[T, B any](m Maybe[T], f func(T) B, none func() Maybe[B]) Maybe[B] {
	if !m.hasValue {
		return none()
	}
	return Some(f(m.value))
}

// Bind applies f returning a Maybe directly.
func Bind[T, B any](m Maybe[T], f func(T) Maybe[B]) Maybe[B] {
	if !m.hasValue {
		return None[B]()
	}
	return f(m.value)
}

// Match always yields a B: some with the value or none without one.
func Match[T, B any](m Maybe[T], some func(T) B, none func() B) B {
	if !m.hasValue {
		return none()
	}
	return some(m.value)
}

func MatchValue[T, B any](m Maybe[T], some func(T) B, noneValue B) B {
	if !m.hasValue {
		return noneValue
	}
	return some(m.value)
}
