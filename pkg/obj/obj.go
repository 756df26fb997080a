// Package obj parses the quad-only Wavefront OBJ subset used by the
// mezzanine scene files: "o" object name, "v" vertices, "vn" normals and
// "f v//n v//n v//n v//n" quad faces with 1-based indices.
package obj

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/Faultbox/mezzanine/pkg/math"
)

// OBJ format errors.
var (
	ErrVertexIndexRange = errors.New("vertex index out of range")
	ErrNormalIndexRange = errors.New("normal index out of range")
)

// Face is a quad primitive referencing mesh vertices and normals by
// 0-based index (the file stores them 1-based).
type Face struct {
	VertexIDs [4]int
	NormalIDs [4]int
}

// Mesh is the loaded geometry for one named scene part. It owns its
// vertex, normal and face data and is never mutated after parsing.
type Mesh struct {
	Name     string
	Vertices []math.Vec3
	Normals  []math.Vec3
	Faces    []Face
}

// Warning reports a line the parser skipped. Skipped lines are not fatal:
// the surrounding geometry still loads.
type Warning struct {
	Line int
	Text string
}

// String returns a human-readable description of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("line %d: invalid syntax or unsupported directive: %q", w.Line, w.Text)
}

// Parse parses a single object from raw file bytes.
//
// Malformed lines produce warnings and are skipped; the parse only fails
// when a face references a vertex or normal that does not exist.
func Parse(data []byte) (*Mesh, []Warning, error) {
	mesh := &Mesh{}
	var warnings []Warning

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}

		switch line[0] {
		case '#':
			// comment

		case 'o':
			// The remainder of the line is the name, untrimmed. A file
			// written as "o Test" names the object " Test".
			mesh.Name = line[1:]

		case 'v':
			var p math.Vec3
			// "vn" must be checked before the bare-vertex branch.
			if len(line) > 1 && line[1] == 'n' {
				if n, err := fmt.Sscanf(line, "vn %f %f %f", &p.X, &p.Y, &p.Z); err != nil || n != 3 {
					warnings = append(warnings, Warning{Line: lineNo, Text: line})
					continue
				}
				mesh.Normals = append(mesh.Normals, p)
			} else {
				if n, err := fmt.Sscanf(line, "v %f %f %f", &p.X, &p.Y, &p.Z); err != nil || n != 3 {
					warnings = append(warnings, Warning{Line: lineNo, Text: line})
					continue
				}
				mesh.Vertices = append(mesh.Vertices, p)
			}

		case 'f':
			var f Face
			n, err := fmt.Sscanf(line, "f %d//%d %d//%d %d//%d %d//%d",
				&f.VertexIDs[0], &f.NormalIDs[0], &f.VertexIDs[1], &f.NormalIDs[1],
				&f.VertexIDs[2], &f.NormalIDs[2], &f.VertexIDs[3], &f.NormalIDs[3])
			if err != nil || n != 8 {
				warnings = append(warnings, Warning{Line: lineNo, Text: line})
				continue
			}
			for i := range f.VertexIDs {
				f.VertexIDs[i]--
				f.NormalIDs[i]--
			}
			mesh.Faces = append(mesh.Faces, f)

		default:
			warnings = append(warnings, Warning{Line: lineNo, Text: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("reading object data: %w", err)
	}

	if err := mesh.validate(); err != nil {
		return nil, warnings, err
	}

	return mesh, warnings, nil
}

// ParseFile parses a single object from a file on disk.
func ParseFile(path string) (*Mesh, []Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	mesh, warnings, err := Parse(data)
	if err != nil {
		return nil, warnings, fmt.Errorf("parsing %s: %w", path, err)
	}
	return mesh, warnings, nil
}

// validate checks that every face index resolves within the mesh. Indices
// are checked at load time so rendering never has to.
func (m *Mesh) validate() error {
	for i, f := range m.Faces {
		for _, id := range f.VertexIDs {
			if id < 0 || id >= len(m.Vertices) {
				return fmt.Errorf("face %d: %w: %d (mesh has %d vertices)",
					i, ErrVertexIndexRange, id+1, len(m.Vertices))
			}
		}
		for _, id := range f.NormalIDs {
			if id < 0 || id >= len(m.Normals) {
				return fmt.Errorf("face %d: %w: %d (mesh has %d normals)",
					i, ErrNormalIndexRange, id+1, len(m.Normals))
			}
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the mesh vertices.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Vertices) == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}
