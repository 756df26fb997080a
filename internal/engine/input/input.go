// Package input converts SDL2 events into navigation intents.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/mezzanine/internal/logger"
	"github.com/Faultbox/mezzanine/internal/nav"
)

// Handler polls SDL events and produces navigation intents. It tracks the
// previous pointer sample to turn absolute positions into a look
// direction, and warps the pointer back toward the center when it nears
// a horizontal screen edge.
type Handler struct {
	width      int
	height     int
	edgeMargin float32
	warp       func(x, y int)

	prevX    int32
	havePrev bool
	intents  []nav.Intent
}

// New creates an input handler. warp is called to recenter the pointer;
// edgeMargin is the fraction of the window width near each edge that
// triggers it.
func New(width, height int, edgeMargin float32, warp func(x, y int)) *Handler {
	return &Handler{
		width:      width,
		height:     height,
		edgeMargin: edgeMargin,
		warp:       warp,
		intents:    make([]nav.Intent, 0, 16),
	}
}

// Poll drains the SDL event queue and returns the intents it produced,
// in event order. The slice is reused between calls.
func (h *Handler) Poll() []nav.Intent {
	h.intents = h.intents[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			h.intents = append(h.intents, nav.IntentQuit)

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				if intent := keyIntent(e.Keysym.Sym); intent != nav.IntentNone {
					h.intents = append(h.intents, intent)
				}
			}

		case *sdl.MouseMotionEvent:
			h.pointerMoved(e.X)
		}
	}

	return h.intents
}

// pointerMoved derives a look intent from the sign of the horizontal
// delta. Any leftward delta, however small, is one look step; magnitude
// does not matter.
func (h *Handler) pointerMoved(x int32) {
	if h.havePrev {
		if x < h.prevX {
			h.intents = append(h.intents, nav.IntentLookLeft)
		} else if x > h.prevX {
			h.intents = append(h.intents, nav.IntentLookRight)
		}
	}
	h.prevX = x
	h.havePrev = true

	// Recenter before the pointer escapes the window.
	margin := int32(float32(h.width) * h.edgeMargin)
	if h.warp != nil && (x < margin || x > int32(h.width)-margin) {
		h.warp(h.width/2, h.height/2)
	}
}

// keyIntent maps a keypress to its intent. Unrecognized keys are a
// logged no-op.
func keyIntent(sym sdl.Keycode) nav.Intent {
	switch sym {
	case sdl.K_w:
		return nav.IntentMoveForward
	case sdl.K_s:
		return nav.IntentMoveBackward
	case sdl.K_a:
		return nav.IntentStrafeLeft
	case sdl.K_d:
		return nav.IntentStrafeRight
	case sdl.K_q, sdl.K_ESCAPE:
		return nav.IntentQuit
	default:
		logger.Debug("ignored key", zap.String("key", sdl.GetKeyName(sym)))
		return nav.IntentNone
	}
}
