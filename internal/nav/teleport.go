package nav

import "github.com/Faultbox/mezzanine/pkg/math"

// triggerBox is an axis-aligned volume that relocates the camera the
// moment it enters, with all bounds inclusive.
type triggerBox struct {
	minX, maxX float32
	minZ, maxZ float32
	minY, maxY float32
	dest       math.Vec3
}

// The two stairway links, in navigation space. The boxes sit on the top
// step of each stair and are disjoint, so at most one fires per check;
// neither destination lands inside the other box.
var stairLinks = [2]triggerBox{
	// lower stair top -> upper floor
	{
		minX: -11.5, maxX: -7.5,
		minZ: -2.5, maxZ: -1.5,
		minY: -2.01, maxY: -1.99,
		dest: math.Vec3{X: 1.86, Y: -7.54, Z: -9.9},
	},
	// upper stair top -> lower floor
	{
		minX: -3.32, maxX: -2.32,
		minZ: -10, maxZ: -7.5,
		minY: -7.55, maxY: -7.53,
		dest: math.Vec3{X: -9.35, Y: -2, Z: 0},
	},
}

// Teleport relocates a camera position that has stepped onto one of the
// stair trigger volumes; any other position is returned unchanged. The
// jump is instantaneous, a plain position overwrite.
func Teleport(p math.Vec3) math.Vec3 {
	for _, t := range stairLinks {
		if between(p.X, t.minX, t.maxX) &&
			between(p.Z, t.minZ, t.maxZ) &&
			between(p.Y, t.minY, t.maxY) {
			return t.dest
		}
	}
	return p
}
