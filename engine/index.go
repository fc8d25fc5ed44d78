package engine

// Index is a bounded or wraparound counter over snap points. It has value
// semantics: Set and Add return a new Index, so current/previous/target
// holders are always independent copies, never aliases of one mutable cell
type Index struct {
	value  int
	length int
	loop   bool
}

// NewIndex creates an index over length snap points, normalizing value the
// same way Set does. A zero length pins the index to 0
func NewIndex(value, length int, loop bool) Index {
	i := Index{length: length, loop: loop}
	return i.Set(value)
}

// Get returns the current value
func (i Index) Get() int {
	return i.value
}

// Min returns the lowest reachable value
func (i Index) Min() int {
	return 0
}

// Max returns the highest reachable value
func (i Index) Max() int {
	if i.length == 0 {
		return 0
	}
	return i.length - 1
}

// Length returns the number of reachable snap points
func (i Index) Length() int {
	return i.length
}

// Set returns a copy holding n, wrapped modulo length when looping, clamped
// into [Min, Max] otherwise. Out-of-range input never fails
func (i Index) Set(n int) Index {
	if i.length == 0 {
		i.value = 0
		return i
	}
	if i.loop {
		i.value = ((n % i.length) + i.length) % i.length
		return i
	}
	if n < 0 {
		n = 0
	}
	if n > i.length-1 {
		n = i.length - 1
	}
	i.value = n
	return i
}

// Add returns a copy advanced by n with the same wrap/clamp rules as Set
func (i Index) Add(n int) Index {
	return i.Set(i.value + n)
}

// Clone returns an independent copy
func (i Index) Clone() Index {
	return i
}
