// Package renderer draws scene meshes with the OpenGL fixed-function
// pipeline: one directional light, smooth shading, per-vertex normals.
package renderer

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v2.1/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/mezzanine/internal/logger"
	"github.com/Faultbox/mezzanine/pkg/math"
	"github.com/Faultbox/mezzanine/pkg/obj"
)

// Viewing frustum constants.
const (
	fovYDegrees = 45.0
	nearPlane   = 0.1
	farPlane    = 500.0
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
}

// New creates a renderer and sets up the fixed pipeline state.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	r.setupLighting()

	gl.ClearColor(0.1, 0.1, 0.1, 1)
	gl.ShadeModel(gl.SMOOTH)
	gl.Enable(gl.DEPTH_TEST)

	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// setupLighting configures the single overhead light and the shared
// material the whole scene is drawn with.
func (r *Renderer) setupLighting() {
	ambientLight := [4]float32{0.2, 0.2, 0.2, 1.0}
	diffuseLight := [4]float32{0.7, 0.7, 0.7, 1.0}
	specularLight := [4]float32{1.0, 1.0, 1.0, 1.0}
	lightPosition := [4]float32{0, 100, 0, 1.0}
	specularity := [4]float32{1.0, 1.0, 1.0, 1.0}

	gl.Materialfv(gl.FRONT, gl.SPECULAR, &specularity[0])
	gl.Materiali(gl.FRONT, gl.SHININESS, 60)

	gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, &ambientLight[0])

	gl.Lightfv(gl.LIGHT0, gl.AMBIENT, &ambientLight[0])
	gl.Lightfv(gl.LIGHT0, gl.DIFFUSE, &diffuseLight[0])
	gl.Lightfv(gl.LIGHT0, gl.SPECULAR, &specularLight[0])
	gl.Lightfv(gl.LIGHT0, gl.POSITION, &lightPosition[0])

	gl.Enable(gl.COLOR_MATERIAL)
	gl.Enable(gl.LIGHTING)
	gl.Enable(gl.LIGHT0)
}

// Resize updates the viewport and projection for a new drawable size.
func (r *Renderer) Resize(width, height int) {
	if height == 0 {
		height = 1
	}
	r.config.Width = width
	r.config.Height = height

	gl.Viewport(0, 0, int32(width), int32(height))

	aspect := float32(width) / float32(height)
	proj := math.Perspective(fovYDegrees*math32.Pi/180, aspect, nearPlane, farPlane)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&proj[0])
	gl.MatrixMode(gl.MODELVIEW)
}

// BeginFrame clears the buffers and loads the view transform for this
// frame.
func (r *Renderer) BeginFrame(view math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(&view[0])
}

// DrawMesh submits every quad face of the mesh with per-vertex normals.
// Face indices were validated at load time.
func (r *Renderer) DrawMesh(m *obj.Mesh, color [3]float32) {
	gl.Color3f(color[0], color[1], color[2])

	gl.Begin(gl.QUADS)
	for _, f := range m.Faces {
		for i := 0; i < 4; i++ {
			n := m.Normals[f.NormalIDs[i]]
			v := m.Vertices[f.VertexIDs[i]]
			gl.Normal3f(n.X, n.Y, n.Z)
			gl.Vertex3f(v.X, v.Y, v.Z)
		}
	}
	gl.End()
}
