/*
Package bigint provides Int, an arbitrary-precision signed integer with
two's-complement semantics for its bitwise and shift operations.

Int is an immutable value type; all operations return new values and an Int
is safe for concurrent use. The zero value is 0.

Simple example:

	n, _ := FromString("1649a75c212838e75e09a31f95885cc4", 16)
	fmt.Println(n.Mul(n.Neg()))
	// Output: -877667171546896323489456106578171919281808606142998940201104801244171302416

Int can be created from a variety of sources:

	From64(v int64) Int
	From32(v int32) Int
	FromInt(v int) Int
	FromU64(v uint64) Int
	FromMagnitude(words []uint32, sign int) Int
	FromString(s string, radix int) (Int, error)
	FromBytes(sign int, magnitude []byte) (Int, error)
	FromTwosComplement(b []byte) (Int, error)
	FromBigInt(v *big.Int) Int
	FromFloat64(f float64) (out Int, inRange bool)

Operations that can fail return an error wrapping one of the package's
sentinel errors, which can be tested with errors.Is:

	ErrParse, ErrSignMagnitude, ErrDivideByZero, ErrNegativeExponent,
	ErrNonPositiveModulus, ErrNotInvertible, ErrShiftRange

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package bigint
