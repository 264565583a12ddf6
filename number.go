package parmat

// Number is the element constraint for vectors and matrices.
//
// Every member type has an additive identity (its zero value), native
// addition and multiplication, and is copied by value, so elements can be
// moved across goroutines without sharing.
type Number interface {
	Integers | Floats | Complexes
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Complexes is a constraint for complex types.
type Complexes interface {
	~complex64 | ~complex128
}
