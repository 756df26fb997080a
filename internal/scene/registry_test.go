package scene

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Faultbox/mezzanine/pkg/math"
)

// writeParts writes named model files into a temp dir and returns the
// part name -> path mapping.
func writeParts(t *testing.T, parts map[string]string) map[string]string {
	t.Helper()
	dir := t.TempDir()

	paths := make(map[string]string, len(parts))
	for name, content := range parts {
		path := filepath.Join(dir, name+".obj")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
		paths[name] = path
	}
	return paths
}

const quadPart = "o part\nv 0 0 0\nv 1 0 0\nv 1 0 1\nv 0 0 1\nvn 0 1 0\nf 1//1 2//1 3//1 4//1\n"

func TestLoad(t *testing.T) {
	paths := writeParts(t, map[string]string{
		"bottom": quadPart,
		"stairs": quadPart,
		"top":    quadPart,
	})

	r, err := Load(paths)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if want := []string{"bottom", "stairs", "top"}; !reflect.DeepEqual(r.Names(), want) {
		t.Errorf("Names() = %v, want %v", r.Names(), want)
	}

	mesh, err := r.Get("stairs")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(mesh.Faces) != 1 {
		t.Errorf("expected 1 face, got %d", len(mesh.Faces))
	}
}

func TestLoad_MissingFileAborts(t *testing.T) {
	paths := writeParts(t, map[string]string{"bottom": quadPart})
	paths["stairs"] = filepath.Join(t.TempDir(), "missing.obj")

	if _, err := Load(paths); err == nil {
		t.Error("expected error for missing part file")
	}
}

func TestLoad_InvalidMeshAborts(t *testing.T) {
	// Face references a vertex that does not exist
	paths := writeParts(t, map[string]string{
		"bottom": "v 0 0 0\nvn 0 1 0\nf 9//1 1//1 1//1 1//1\n",
	})

	if _, err := Load(paths); err == nil {
		t.Error("expected error for out-of-range face index")
	}
}

func TestLoad_MalformedLinesAreNotFatal(t *testing.T) {
	paths := writeParts(t, map[string]string{
		"bottom": "x garbage\n" + quadPart,
	})

	r, err := Load(paths)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	mesh, err := r.Get("bottom")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(mesh.Faces) != 1 {
		t.Errorf("expected 1 face, got %d", len(mesh.Faces))
	}
}

func TestGet_Unknown(t *testing.T) {
	r, err := Load(writeParts(t, map[string]string{"bottom": quadPart}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, err := r.Get("roof"); !errors.Is(err, ErrUnknownPart) {
		t.Errorf("expected ErrUnknownPart, got %v", err)
	}
}

func TestBounds(t *testing.T) {
	paths := writeParts(t, map[string]string{
		"a": "v -1 0 0\nv 2 1 0\n",
		"b": "v 0 -3 5\n",
	})

	r, err := Load(paths)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	min, max := r.Bounds()
	if want := (math.Vec3{X: -1, Y: -3, Z: 0}); min != want {
		t.Errorf("min = %v, want %v", min, want)
	}
	if want := (math.Vec3{X: 2, Y: 1, Z: 5}); max != want {
		t.Errorf("max = %v, want %v", max, want)
	}
}
