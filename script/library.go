package script

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Library holds the compiled actions a menu can reference by name.
type Library struct {
	actions map[string]*Action
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{actions: make(map[string]*Action)}
}

// LoadLibrary compiles every .tengo file in dir within fsys. Action names
// are file basenames without extension. A script that fails to compile
// fails the whole load; menus should not half-work.
func LoadLibrary(fsys fs.FS, dir string) (*Library, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("script: read dir %s: %w", dir, err)
	}

	lib := NewLibrary()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tengo") {
			continue
		}
		src, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("script: read %s: %w", entry.Name(), err)
		}
		name := cleanName(entry.Name())
		action, err := Compile(name, src)
		if err != nil {
			return nil, err
		}
		lib.actions[name] = action
	}
	return lib, nil
}

// Get resolves an authored action reference (basename, .tengo optional).
func (l *Library) Get(name string) (*Action, bool) {
	if l == nil {
		return nil, false
	}
	a, ok := l.actions[cleanName(name)]
	return a, ok
}

// Len returns the number of registered actions.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.actions)
}
