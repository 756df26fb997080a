// Package scene loads and holds the static meshes composing the world.
package scene

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/mezzanine/internal/logger"
	"github.com/Faultbox/mezzanine/pkg/math"
	"github.com/Faultbox/mezzanine/pkg/obj"
)

// ErrUnknownPart is returned by Get for a name that was never loaded.
var ErrUnknownPart = errors.New("unknown scene part")

// Registry maps scene part names to their loaded meshes. It is populated
// once by Load and read-only afterwards, so lookups are safe from any
// goroutine without synchronization.
type Registry struct {
	meshes map[string]*obj.Mesh
}

// Load parses every part file in the given name -> path mapping.
//
// Loading is all-or-nothing: the scene cannot render with a part
// missing, so the first unreadable file or invalid mesh aborts the
// whole load. Lines the parser skipped are logged as warnings and do
// not fail the load.
func Load(parts map[string]string) (*Registry, error) {
	r := &Registry{meshes: make(map[string]*obj.Mesh, len(parts))}

	for name, path := range parts {
		mesh, warnings, err := obj.ParseFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading scene part %q: %w", name, err)
		}
		for _, w := range warnings {
			logger.Warn("skipped model line",
				zap.String("part", name),
				zap.String("file", path),
				zap.Int("line", w.Line),
				zap.String("text", w.Text),
			)
		}
		logger.Debug("loaded scene part",
			zap.String("part", name),
			zap.Int("vertices", len(mesh.Vertices)),
			zap.Int("normals", len(mesh.Normals)),
			zap.Int("faces", len(mesh.Faces)),
		)
		r.meshes[name] = mesh
	}

	return r, nil
}

// Get returns the mesh for a part name.
func (r *Registry) Get(name string) (*obj.Mesh, error) {
	mesh, ok := r.meshes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPart, name)
	}
	return mesh, nil
}

// Names returns the loaded part names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.meshes))
	for name := range r.meshes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bounds returns the axis-aligned bounding box enclosing every part.
func (r *Registry) Bounds() (min, max math.Vec3) {
	first := true
	for _, name := range r.Names() {
		m := r.meshes[name]
		if len(m.Vertices) == 0 {
			continue
		}
		lo, hi := m.Bounds()
		if first {
			min, max = lo, hi
			first = false
			continue
		}
		min = min.Min(lo)
		max = max.Max(hi)
	}
	return min, max
}
