// Package script binds tengo scripts to menu items. An item's action runs
// when its activation completes, with the selected value injected as a
// global, so demo/menu behavior can be edited without recompiling — the
// same split a game keeps between engine code and scripted content.
package script

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	tengostdlib "github.com/d5/tengo/v2/stdlib"
)

// Globals visible to every action script. The script may assign to result
// to report a string back to the host.
const (
	globalMenu     = "menu"
	globalSelected = "selected"
	globalResult   = "result"
)

// Action is a compiled selection script. Compile once, run per selection.
type Action struct {
	name     string
	compiled *tengo.Compiled
}

// Compile builds an action from tengo source.
func Compile(name string, src []byte) (*Action, error) {
	s := tengo.NewScript(src)
	s.SetImports(tengostdlib.GetModuleMap("fmt", "math", "text", "times"))
	for _, g := range []string{globalMenu, globalSelected, globalResult} {
		if err := s.Add(g, ""); err != nil {
			return nil, fmt.Errorf("script: add global %s: %w", g, err)
		}
	}

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &Action{name: name, compiled: compiled}, nil
}

// Name returns the action's registered name.
func (a *Action) Name() string {
	return a.name
}

// Run executes the action with the menu name and selected value injected.
// It returns whatever the script assigned to result, or "" if nothing.
func (a *Action) Run(menu, selected string) (string, error) {
	if err := a.compiled.Set(globalMenu, menu); err != nil {
		return "", fmt.Errorf("script: set %s: %w", globalMenu, err)
	}
	if err := a.compiled.Set(globalSelected, selected); err != nil {
		return "", fmt.Errorf("script: set %s: %w", globalSelected, err)
	}
	// stale results from a previous run must not leak through
	if err := a.compiled.Set(globalResult, ""); err != nil {
		return "", fmt.Errorf("script: set %s: %w", globalResult, err)
	}
	if err := a.compiled.Run(); err != nil {
		return "", fmt.Errorf("script: run %s: %w", a.name, err)
	}

	v := a.compiled.Get(globalResult)
	if v == nil || v.IsUndefined() {
		return "", nil
	}
	out, _ := v.Value().(string)
	return out, nil
}

// cleanName normalizes an authored action reference to its registry key:
// basename without the .tengo extension.
func cleanName(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, ".tengo")
}
