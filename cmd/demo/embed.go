package main

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/milk9111/radialmenu/script"
	"github.com/milk9111/radialmenu/theme"
)

//go:embed menu.yaml actions/*.tengo
var demoFS embed.FS

// loadContent loads the menu spec and action library, preferring dir on
// disk and falling back to the embedded demo content when dir is empty.
func loadContent(dir string) (theme.MenuSpec, *script.Library, error) {
	if dir == "" {
		data, err := demoFS.ReadFile("menu.yaml")
		if err != nil {
			return theme.MenuSpec{}, nil, err
		}
		spec, err := theme.Parse(data)
		if err != nil {
			return theme.MenuSpec{}, nil, err
		}
		lib, err := script.LoadLibrary(demoFS, "actions")
		if err != nil {
			return theme.MenuSpec{}, nil, err
		}
		return spec, lib, nil
	}

	spec, err := theme.LoadFile(filepath.Join(dir, "menu.yaml"))
	if err != nil {
		return theme.MenuSpec{}, nil, err
	}

	var lib *script.Library
	actionsDir := filepath.Join(dir, "actions")
	if _, statErr := os.Stat(actionsDir); statErr == nil {
		lib, err = script.LoadLibrary(os.DirFS(dir), "actions")
		if err != nil {
			return theme.MenuSpec{}, nil, err
		}
	} else {
		lib = script.NewLibrary()
	}
	return spec, lib, nil
}
