package rop

type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}
