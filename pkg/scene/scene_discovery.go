package scene

import (
	"sort"
	"strings"

	"golang.org/x/xerrors"
)

// Info describes a built-in scene
type Info struct {
	Name        string
	Description string
	Animated    bool
}

type entry struct {
	info Info
	make func() *Scene
}

var catalog = map[string]entry{
	"default":    {Info{Name: "default", Description: "Spheres over a ground plane with coated, metal and nested glass materials"}, NewDefaultScene},
	"glass":      {Info{Name: "glass", Description: "Nested water and glass, a dispersive sphere and a frosted coating"}, NewGlassScene},
	"motion":     {Info{Name: "motion", Description: "Spheres moving during the shutter interval", Animated: true}, NewMotionScene},
	"spheregrid": {Info{Name: "spheregrid", Description: "A 20x20 grid of metal spheres"}, func() *Scene { return NewSphereGridScene(20) }},
	"textures":   {Info{Name: "textures", Description: "Image textures and a mixed material"}, NewTextureScene},
}

// ErrUnknownScene is returned by ByName for names not in the catalog
var ErrUnknownScene = xerrors.New("scene: unknown scene")

// List returns the built-in scenes sorted by name
func List() []Info {
	infos := make([]Info, 0, len(catalog))
	for _, e := range catalog {
		infos = append(infos, e.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// ByName builds the named scene. Names are case-insensitive.
func ByName(name string) (*Scene, error) {
	e, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, xerrors.Errorf("%q: %w", name, ErrUnknownScene)
	}
	return e.make(), nil
}
