// Package frame computes the rotation matrices that map the packing
// oracle's local frame (panel in the YZ plane, outward normal along +X)
// onto an arbitrary panel orientation in the satellite body frame.
package frame

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/design"
)

// Identity returns the 3x3 identity matrix.
func Identity() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// RotX returns the active rotation by theta radians about the body X axis.
func RotX(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

// RotY returns the active rotation by theta radians about the body Y axis.
func RotY(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)
	return mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

// RotZ returns the active rotation by theta radians about the body Z axis.
func RotZ(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// FromNormal returns the orthonormal rotation (determinant +1) that carries
// the oracle-local frame onto a panel whose outward normal points along
// face. Roll is an additional rotation in radians about the oracle-local
// normal (+X), applied before the face mapping.
func FromNormal(face design.Face, roll float64) *mat.Dense {
	var base *mat.Dense
	switch face {
	case design.FacePosX:
		base = Identity()
	case design.FaceNegX:
		base = RotZ(math.Pi)
	case design.FacePosY:
		base = RotZ(math.Pi / 2)
	case design.FaceNegY:
		base = RotZ(-math.Pi / 2)
	case design.FacePosZ:
		base = RotY(-math.Pi / 2)
	case design.FaceNegZ:
		base = RotY(math.Pi / 2)
	default:
		base = Identity()
	}
	if roll == 0 {
		return base
	}
	var out mat.Dense
	out.Mul(base, RotX(roll))
	return &out
}

// MulVec applies a 3x3 matrix to a vector.
func MulVec(m *mat.Dense, v r3.Vec) r3.Vec {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return r3.Vec{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}
