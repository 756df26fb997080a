// objdump is a CLI utility for inspecting mezzanine model files.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/mezzanine/pkg/obj"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "validate", "check":
		cmdValidate(args)
	case "dump":
		cmdDump(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objdump - mezzanine model file utility

Usage:
  objdump <command> <file.obj>

Commands:
  info <file.obj>       Show object name, counts and bounding box
  validate <file.obj>   Parse the file and report warnings and errors
  dump <file.obj>       Reparse and re-encode the file to stdout

Examples:
  objdump info models/mezzanine_bottom.obj
  objdump validate models/mezzanine_stairs.obj`)
}

func load(args []string, command string) (*obj.Mesh, []obj.Warning) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: objdump %s <file.obj>\n", command)
		os.Exit(1)
	}

	mesh, warnings, err := obj.ParseFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return mesh, warnings
}

func cmdInfo(args []string) {
	mesh, _ := load(args, "info")

	min, max := mesh.Bounds()
	fmt.Printf("Object:   %q\n", mesh.Name)
	fmt.Printf("Vertices: %d\n", len(mesh.Vertices))
	fmt.Printf("Normals:  %d\n", len(mesh.Normals))
	fmt.Printf("Quads:    %d\n", len(mesh.Faces))
	fmt.Printf("Bounds:   (%g, %g, %g) .. (%g, %g, %g)\n",
		min.X, min.Y, min.Z, max.X, max.Y, max.Z)
}

func cmdValidate(args []string) {
	_, warnings := load(args, "validate")

	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}
	if len(warnings) > 0 {
		fmt.Printf("%s: OK with %d skipped line(s)\n", args[0], len(warnings))
		return
	}
	fmt.Printf("%s: OK\n", args[0])
}

func cmdDump(args []string) {
	mesh, _ := load(args, "dump")

	if err := mesh.Encode(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
