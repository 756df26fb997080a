package obj

import (
	"fmt"
	"io"
)

// Encode writes the mesh back out in the same grammar Parse reads.
// The name is written verbatim after the "o", so a parsed mesh encodes
// to a file that reparses to an identical mesh.
func (m *Mesh) Encode(w io.Writer) error {
	if m.Name != "" {
		if _, err := fmt.Fprintf(w, "o%s\n", m.Name); err != nil {
			return err
		}
	}
	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return err
		}
	}
	for _, n := range m.Normals {
		if _, err := fmt.Fprintf(w, "vn %g %g %g\n", n.X, n.Y, n.Z); err != nil {
			return err
		}
	}
	for _, f := range m.Faces {
		if _, err := fmt.Fprintf(w, "f %d//%d %d//%d %d//%d %d//%d\n",
			f.VertexIDs[0]+1, f.NormalIDs[0]+1, f.VertexIDs[1]+1, f.NormalIDs[1]+1,
			f.VertexIDs[2]+1, f.NormalIDs[2]+1, f.VertexIDs[3]+1, f.NormalIDs[3]+1); err != nil {
			return err
		}
	}
	return nil
}
