// SPDX-License-Identifier: MIT

// Package ring defines the algebraic capability required from array elements
// used by generic construction (Zeros, Identity) and by matrix multiplication.
//
// Purpose:
//   - Name the minimal closed requirement: addition, multiplication, negation,
//     an additive identity (Zero) and a multiplicative identity (One).
//   - Keep it closed: no division, no ordering. Unsigned integers are excluded
//     because negation is not closed over them.
//
// AI-Hints:
//   - Use ring.Element as the type-parameter constraint of kernels and builders.
//   - Zero/One are total; they never fail and never allocate.
package ring

// Element is the Ring capability: every type in the set supports +, *, unary -
// and conversion of the constants 0 and 1.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Zero returns the additive identity of T.
// Complexity: O(1).
func Zero[T Element]() T {
	var z T // zero value of every numeric kind is its additive identity

	return z
}

// One returns the multiplicative identity of T.
// Complexity: O(1).
func One[T Element]() T { return T(1) }

// Neg returns the additive inverse of v.
// Complexity: O(1).
func Neg[T Element](v T) T { return -v }

// IsZero reports whether v equals the additive identity.
// Complexity: O(1).
func IsZero[T Element](v T) bool { return v == Zero[T]() }
