package matching

import (
	"lukechampine.com/uint128"
)

// Uint is an unsigned 128-bit integer used for quote quantities and other
// aggregates where a 64-bit price multiplied by a 64-bit quantity would not
// fit into 64 bits.
type Uint struct {
	v uint128.Uint128
}

// NewZeroUint returns zero Uint.
func NewZeroUint() Uint {
	return Uint{}
}

// NewUint returns Uint with the given uint64 value.
func NewUint(u uint64) Uint {
	return Uint{v: uint128.From64(u)}
}

// Add returns u + v.
func (u Uint) Add(v Uint) Uint {
	return Uint{v: u.v.Add(v.v)}
}

// Mul64 returns u * v.
func (u Uint) Mul64(v uint64) Uint {
	return Uint{v: u.v.Mul64(v)}
}

// Cmp compares u and v and returns -1, 0 or 1.
func (u Uint) Cmp(v Uint) int {
	return u.v.Cmp(v.v)
}

// IsZero returns true if u equals zero.
func (u Uint) IsZero() bool {
	return u.v.IsZero()
}

// Uint64 returns the low 64 bits of u.
func (u Uint) Uint64() uint64 {
	return u.v.Lo
}

// String implements the fmt.Stringer interface.
func (u Uint) String() string {
	return u.v.String()
}
