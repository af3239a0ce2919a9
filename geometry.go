package kerbee

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Collision is the face of the second box that the first box struck.
type Collision int

const (
	CollisionLeft Collision = iota
	CollisionRight
	CollisionTop
	CollisionBottom
	CollisionInside
)

func (c Collision) String() string {
	switch c {
	case CollisionLeft:
		return "Left"
	case CollisionRight:
		return "Right"
	case CollisionTop:
		return "Top"
	case CollisionBottom:
		return "Bottom"
	case CollisionInside:
		return "Inside"
	}
	return "Unknown"
}

var (
	upAxis = mgl32.Vec3{0, 1, 0}
	zAxis  = mgl32.Vec3{0, 0, 1}
)

// normalize returns v scaled to unit length, or the zero vector when v has no length.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(float64(l)) || math.IsInf(float64(l), 0) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// angleBetween is the unsigned angle between a and b in radians.
func angleBetween(a, b mgl32.Vec3) float32 {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := a.Dot(b) / (la * lb)
	cos = mgl32.Clamp(cos, -1, 1)
	return float32(math.Acos(float64(cos)))
}

// Collide tests two axis aligned boxes given by center and full size. When they overlap
// it reports which side of b was hit by a.
func Collide(aPos mgl32.Vec3, aSize mgl32.Vec2, bPos mgl32.Vec3, bSize mgl32.Vec2) (Collision, bool) {
	aMin := aPos.Vec2().Sub(aSize.Mul(0.5))
	aMax := aPos.Vec2().Add(aSize.Mul(0.5))
	bMin := bPos.Vec2().Sub(bSize.Mul(0.5))
	bMax := bPos.Vec2().Add(bSize.Mul(0.5))

	if !(aMin[0] < bMax[0] && aMax[0] > bMin[0] && aMin[1] < bMax[1] && aMax[1] > bMin[1]) {
		return CollisionInside, false
	}

	inf := float32(math.Inf(-1))

	xSide, xDepth := CollisionInside, inf
	if aMin[0] < bMin[0] && aMax[0] > bMin[0] && aMax[0] < bMax[0] {
		xSide, xDepth = CollisionLeft, bMin[0]-aMax[0]
	} else if aMin[0] > bMin[0] && aMin[0] < bMax[0] && aMax[0] > bMax[0] {
		xSide, xDepth = CollisionRight, aMin[0]-bMax[0]
	}

	ySide, yDepth := CollisionInside, inf
	if aMin[1] < bMin[1] && aMax[1] > bMin[1] && aMax[1] < bMax[1] {
		ySide, yDepth = CollisionBottom, bMin[1]-aMax[1]
	} else if aMin[1] > bMin[1] && aMin[1] < bMax[1] && aMax[1] > bMax[1] {
		ySide, yDepth = CollisionTop, aMin[1]-bMax[1]
	}

	if abs32(yDepth) < abs32(xDepth) {
		return ySide, true
	}
	return xSide, true
}

// Resolve moves pos out of other along the single axis named by side and rounds that axis.
func Resolve(pos mgl32.Vec3, size mgl32.Vec2, other mgl32.Vec3, otherSize mgl32.Vec2, side Collision, round func(float64) float64) mgl32.Vec3 {
	switch side {
	case CollisionTop:
		pos[1] -= (pos[1] - size[1]*0.5) - (other[1] + otherSize[1]*0.5)
		pos[1] = float32(round(float64(pos[1])))
	case CollisionBottom:
		pos[1] -= (pos[1] + size[1]*0.5) - (other[1] - otherSize[1]*0.5)
		pos[1] = float32(round(float64(pos[1])))
	case CollisionLeft:
		pos[0] -= (pos[0] + size[0]*0.5) - (other[0] - otherSize[0]*0.5)
		pos[0] = float32(round(float64(pos[0])))
	case CollisionRight:
		pos[0] -= (pos[0] - size[0]*0.5) - (other[0] + otherSize[0]*0.5)
		pos[0] = float32(round(float64(pos[0])))
	}
	return pos
}

// clampToBounds keeps pos inside [-half, half] on x and y.
func clampToBounds(pos mgl32.Vec3, half mgl32.Vec2) mgl32.Vec3 {
	pos[0] = mgl32.Clamp(pos[0], -half[0], half[0])
	pos[1] = mgl32.Clamp(pos[1], -half[1], half[1])
	return pos
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
