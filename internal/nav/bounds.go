package nav

import "github.com/Faultbox/mezzanine/pkg/math"

// Building footprint and mezzanine floor plan, in navigation space.
// These are exact constants of the authored scene; the model geometry
// was built against them and they must not drift.
const (
	footprintMinX float32 = -11.5
	footprintMaxX float32 = 11.5
	footprintMinZ float32 = -10
	footprintMaxZ float32 = 10

	// Below this y the camera stands on the upper mezzanine level.
	mezzanineY float32 = -7.53

	// Strip of floor in front of the stairs.
	stairStripMinZ float32 = -10
	stairStripMaxZ float32 = -4.64
	stairStripMinX float32 = -5.45

	// Mirrored strip on the opposite side of the opening.
	farStripMinZ float32 = 4.76
	farStripMaxZ float32 = 10
	farStripMinX float32 = -2.6

	// East edge of the floor opening between the two strips.
	holeMaxX float32 = 4.5
)

// ClampToBuilding corrects a candidate camera position so it stays inside
// the building footprint and, on the upper level, on the L-shaped
// mezzanine floor around the central opening. It is pure and idempotent.
func ClampToBuilding(p math.Vec3) math.Vec3 {
	p.X = clamp(p.X, footprintMinX, footprintMaxX)
	p.Z = clamp(p.Z, footprintMinZ, footprintMaxZ)

	if p.Y < mezzanineY {
		switch {
		case between(p.Z, stairStripMinZ, stairStripMaxZ):
			p.X = clamp(p.X, stairStripMinX, footprintMaxX)
			if between(p.X, stairStripMinX, holeMaxX) {
				// beside the opening: keep z on the strip
				p.Z = clamp(p.Z, stairStripMinZ, stairStripMaxZ)
			}
		case between(p.Z, farStripMinZ, farStripMaxZ):
			p.X = clamp(p.X, farStripMinX, footprintMaxX)
			if between(p.X, farStripMinX, holeMaxX) {
				p.Z = clamp(p.Z, farStripMinZ, farStripMaxZ)
			}
		case between(p.Z, stairStripMaxZ, farStripMinZ):
			// level with the opening: only the east walkway remains
			p.X = clamp(p.X, holeMaxX, footprintMaxX)
		}
	}

	return p
}

// clamp limits v to [min, max].
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// between reports whether v lies in [min, max], inclusive on both ends.
func between(v, min, max float32) bool {
	return v >= min && v <= max
}
