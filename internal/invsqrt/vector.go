package invsqrt

import "github.com/lukaszgryglicki/invsqrt/internal/kernel"

type Real = float64

// Vector3 is a direction in 3D space: X abscissa, Y ordinate, Z applicate.
type Vector3 struct {
	X, Y, Z Real
}

// Vector functions
func (v Vector3) Copy() Vector3         { return Vector3{v.X, v.Y, v.Z} }
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product between two 3D vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Len returns the length using a single FISR step, whatever kernel the caller
// normalizes with.
func (v Vector3) Len() Real { return 1 / kernel.FastInvSqrt(v.Dot(v), false) }

// Norm returns a unit-length copy of v computed with kernel k.
func (v Vector3) Norm(k kernel.Kind) Vector3 {
	return v.Mul(k.InvSqrt(v.Dot(v)))
}

// NormInPlace rescales v to unit length with kernel k and returns v.
func (v *Vector3) NormInPlace(k kernel.Kind) *Vector3 {
	n := k.InvSqrt(v.Dot(*v))
	v.X *= n
	v.Y *= n
	v.Z *= n
	return v
}
