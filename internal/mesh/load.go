// Package mesh holds the triangulated surface meshes used as BEM boundaries
// together with their derived geometry (centroids, areas, normals).
package mesh

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// LoadFromFile loads a mesh definition from a JSON file
func LoadFromFile(filepath string) (*Mesh, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return parse(data, filepath)
}

// Fixture loads one of the built-in meshes ("plate" or "cavity").
func Fixture(name string) (*Mesh, error) {
	data, err := fixtures.ReadFile("fixtures/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown mesh fixture %q (available: %s)", name, strings.Join(FixtureNames(), ", "))
	}
	return parse(data, name)
}

// FixtureNames lists the built-in meshes.
func FixtureNames() []string {
	entries, _ := fixtures.ReadDir("fixtures")
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// Open resolves source as a fixture name first, then as a file path.
func Open(source string) (*Mesh, error) {
	for _, n := range FixtureNames() {
		if n == source {
			return Fixture(n)
		}
	}
	return LoadFromFile(source)
}

func parse(data []byte, source string) (*Mesh, error) {
	var m Mesh
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse mesh %s: %w", source, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
