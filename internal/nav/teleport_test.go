package nav

import (
	"testing"

	"github.com/Faultbox/mezzanine/pkg/math"
)

func TestTeleport(t *testing.T) {
	upperDest := math.Vec3{X: 1.86, Y: -7.54, Z: -9.9}
	lowerDest := math.Vec3{X: -9.35, Y: -2, Z: 0}

	tests := []struct {
		name string
		in   math.Vec3
		want math.Vec3
	}{
		{"lower stair top fires", math.Vec3{X: -9, Y: -2, Z: -2}, upperDest},
		{"upper stair top fires", math.Vec3{X: -2.8, Y: -7.54, Z: -7.6}, lowerDest},
		{"origin unchanged", math.Vec3{}, math.Vec3{}},
		{"lower box corner inclusive", math.Vec3{X: -11.5, Y: -2.01, Z: -2.5}, upperDest},
		{"lower box opposite corner inclusive", math.Vec3{X: -7.5, Y: -1.99, Z: -1.5}, upperDest},
		{"just east of lower box", math.Vec3{X: -7.49, Y: -2, Z: -2}, math.Vec3{X: -7.49, Y: -2, Z: -2}},
		{"just above lower box", math.Vec3{X: -9, Y: -1.98, Z: -2}, math.Vec3{X: -9, Y: -1.98, Z: -2}},
		{"upper box corner inclusive", math.Vec3{X: -3.32, Y: -7.55, Z: -10}, lowerDest},
		{"just outside upper box", math.Vec3{X: -3.33, Y: -7.54, Z: -8}, math.Vec3{X: -3.33, Y: -7.54, Z: -8}},
		{"upper floor walking is safe", math.Vec3{X: 1.86, Y: -7.54, Z: -9.9}, math.Vec3{X: 1.86, Y: -7.54, Z: -9.9}},
		{"lower floor landing is safe", math.Vec3{X: -9.35, Y: -2, Z: 0}, math.Vec3{X: -9.35, Y: -2, Z: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Teleport(tc.in); got != tc.want {
				t.Errorf("Teleport(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTeleport_TriggersDisjoint(t *testing.T) {
	// No position may sit inside both trigger volumes
	for _, p := range sweep() {
		hits := 0
		for _, box := range stairLinks {
			if between(p.X, box.minX, box.maxX) &&
				between(p.Z, box.minZ, box.maxZ) &&
				between(p.Y, box.minY, box.maxY) {
				hits++
			}
		}
		if hits > 1 {
			t.Fatalf("position %v inside %d trigger volumes", p, hits)
		}
	}

	// The y spans alone rule out overlap
	if stairLinks[0].minY <= stairLinks[1].maxY && stairLinks[1].minY <= stairLinks[0].maxY {
		t.Error("trigger volume y spans overlap")
	}
}

func TestTeleport_DestinationsDoNotChain(t *testing.T) {
	for i, box := range stairLinks {
		if got := Teleport(box.dest); got != box.dest {
			t.Errorf("destination of link %d re-teleports to %v", i, got)
		}
	}
}
