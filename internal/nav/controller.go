package nav

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/mezzanine/pkg/math"
)

// Intent is a discrete navigation input: one keypress or one pointer
// motion sample.
type Intent int

// Navigation intents.
const (
	IntentNone Intent = iota
	IntentMoveForward
	IntentMoveBackward
	IntentStrafeLeft
	IntentStrafeRight
	IntentLookLeft
	IntentLookRight
	IntentQuit
)

// String returns the intent name for logging.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentMoveForward:
		return "move-forward"
	case IntentMoveBackward:
		return "move-backward"
	case IntentStrafeLeft:
		return "strafe-left"
	case IntentStrafeRight:
		return "strafe-right"
	case IntentLookLeft:
		return "look-left"
	case IntentLookRight:
		return "look-right"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Default step sizes. One movement intent advances a full forward vector;
// one look intent turns one degree.
const (
	DefaultMoveStep        = 1.0
	DefaultLookStepDegrees = 1.0
)

// Controller applies navigation intents to a camera, one at a time.
// Every movement lands inside the building: the boundary clamp and the
// stair teleport check run after each position change.
type Controller struct {
	cam      *Camera
	moveStep float32
	lookStep float32
}

// NewController creates a controller for the given camera. Non-positive
// steps fall back to the defaults.
func NewController(cam *Camera, moveStep, lookStepDegrees float32) *Controller {
	if moveStep <= 0 {
		moveStep = DefaultMoveStep
	}
	if lookStepDegrees <= 0 {
		lookStepDegrees = DefaultLookStepDegrees
	}
	return &Controller{cam: cam, moveStep: moveStep, lookStep: lookStepDegrees}
}

// Apply processes a single intent. IntentNone and IntentQuit are no-ops
// here; quitting is the caller's concern.
func (ct *Controller) Apply(intent Intent) {
	switch intent {
	case IntentMoveForward:
		ct.move(ct.cam.Forward())
	case IntentMoveBackward:
		ct.move(ct.cam.Forward().Neg())
	case IntentStrafeLeft:
		ct.move(rotate90(ct.cam.Forward()))
	case IntentStrafeRight:
		ct.move(rotate90(ct.cam.Forward()).Neg())
	case IntentLookLeft:
		ct.turn(ct.lookStep)
	case IntentLookRight:
		ct.turn(-ct.lookStep)
	}
}

// move integrates a direction into the position, then corrects for the
// building boundaries and checks the stair triggers, in that order.
func (ct *Controller) move(dir math.Vec3) {
	p := ct.cam.Position.Add(dir.Scale(ct.moveStep))
	p = ClampToBuilding(p)
	p = Teleport(p)
	ct.cam.Position = p
}

// turn rotates the yaw by the given amount and wraps it into [0, 360).
// Rotation cannot leave the building, so no clamp or teleport check.
func (ct *Controller) turn(degrees float32) {
	yaw := math32.Mod(ct.cam.YawDegrees+degrees, 360)
	if yaw < 0 {
		yaw += 360
	}
	ct.cam.YawDegrees = yaw
}

// rotate90 turns a horizontal direction a quarter turn to the left:
// (x, _, z) -> (z, _, -x).
func rotate90(v math.Vec3) math.Vec3 {
	return math.Vec3{X: v.Z, Y: v.Y, Z: -v.X}
}
