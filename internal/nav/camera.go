// Package nav implements first-person navigation for the mezzanine scene:
// camera state, movement integration, building boundary correction and the
// scripted stair teleports.
package nav

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/mezzanine/pkg/math"
)

// StartPosition is where the walkthrough begins: standing height on the
// lower floor, in navigation space.
var StartPosition = math.Vec3{X: 0, Y: -2, Z: 0}

// Camera holds the walkthrough camera state.
//
// Position uses the inverted convention inherited from the scene files:
// the camera is conceptually static and the world translates around it,
// so Position stores the world translation, the negated eye location.
// This is "navigation space". The boundary and teleport constants are
// authored in navigation space, so policy code takes Position directly;
// only EyePosition and ViewMatrix ever negate.
type Camera struct {
	Position   math.Vec3
	YawDegrees float32 // in [0, 360)
}

// NewCamera returns a camera at the walkthrough start position, facing
// yaw 0.
func NewCamera() *Camera {
	return &Camera{Position: StartPosition}
}

// Forward returns the unit horizontal direction of travel for the
// current yaw, in navigation space.
func (c *Camera) Forward() math.Vec3 {
	rad := c.YawDegrees * math32.Pi / 180
	return math.Vec3{X: math32.Sin(rad), Z: math32.Cos(rad)}
}

// EyePosition returns the camera location in world space.
func (c *Camera) EyePosition() math.Vec3 {
	return c.Position.Neg()
}

// ViewMatrix returns the world-to-eye transform: the world is translated
// by Position, then rotated by -yaw about the vertical axis.
func (c *Camera) ViewMatrix() math.Mat4 {
	rad := c.YawDegrees * math32.Pi / 180
	return math.RotateY(-rad).Mul(math.Translate(c.Position.X, c.Position.Y, c.Position.Z))
}
