package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"golang.design/x/clipboard"

	"github.com/milk9111/radialmenu"
	"github.com/milk9111/radialmenu/render"
	"github.com/milk9111/radialmenu/script"
	"github.com/milk9111/radialmenu/theme"
)

const (
	baseWidth  = 800
	baseHeight = 600
)

type Game struct {
	frames int

	dir     string
	spec    theme.MenuSpec
	lib     *script.Library
	watcher *theme.Watcher

	menu    *radialmenu.Menu[string]
	styles  []radialmenu.Style
	actions map[string]string // selected value -> action name

	renderer *render.Renderer
	ui       *ebitenui.UI

	clipboardOK bool
	status      string
}

func NewGame(dir string, useClipboard bool) (*Game, error) {
	g := &Game{
		dir:      dir,
		renderer: render.New(render.Defaults{}),
	}
	g.ui = newControlPanel(g)

	if useClipboard {
		if err := clipboard.Init(); err != nil {
			log.Printf("clipboard unavailable: %v", err)
		} else {
			g.clipboardOK = true
		}
	}

	if err := g.reload(); err != nil {
		return nil, err
	}

	if dir != "" {
		dirs := []string{dir}
		actionsDir := filepath.Join(dir, "actions")
		if _, err := os.Stat(actionsDir); err == nil {
			dirs = append(dirs, actionsDir)
		}
		w, err := theme.NewWatcher(dirs...)
		if err != nil {
			log.Printf("watch %s: %v", dir, err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// reload rebuilds the menu from the current definition files. Called at
// startup and whenever the watcher reports an edit.
func (g *Game) reload() error {
	spec, lib, err := loadContent(g.dir)
	if err != nil {
		return err
	}
	g.spec = spec
	g.lib = lib

	items := make([]radialmenu.Item[string], len(spec.Items))
	g.actions = make(map[string]string, len(spec.Items))
	for i, it := range spec.Items {
		items[i] = radialmenu.Item[string]{
			Value:      it.Label,
			Glyph:      it.Glyph,
			Background: it.Background.Color,
			IconColor:  it.IconColor.Color,
		}
		if it.Action != "" {
			g.actions[it.Label] = it.Action
		}
	}

	g.menu = radialmenu.New(items,
		radialmenu.WithRadius[string](spec.Radius),
		radialmenu.WithItemSize[string](spec.ItemSize),
		radialmenu.WithCenterSize[string](spec.CenterSize),
		radialmenu.WithStrokeWidth[string](spec.StrokeWidth),
		radialmenu.WithOpenDuration[string](spec.OpenDuration()),
		radialmenu.WithActivateDuration[string](spec.ActivateDuration()),
		radialmenu.WithOnSelected[string](g.onSelected),
	)
	g.styles = radialmenu.Styles(items)
	return nil
}

func (g *Game) onSelected(value string) {
	g.status = fmt.Sprintf("selected %q", value)

	if g.clipboardOK {
		clipboard.Write(clipboard.FmtText, []byte(value))
	}

	name, ok := g.actions[value]
	if !ok {
		return
	}
	action, ok := g.lib.Get(name)
	if !ok {
		log.Printf("item %q references unknown action %q", value, name)
		return
	}
	out, err := action.Run(g.spec.Name, value)
	if err != nil {
		log.Printf("action %s: %v", name, err)
		return
	}
	if out != "" {
		g.status = out
	}
}

func (g *Game) Update() error {
	g.frames++

	g.drainWatcher()
	g.handleInput()
	g.menu.Update(1.0 / float64(ebiten.TPS()))
	g.ui.Update()

	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("changed: %s", name)
			changed = true
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("watch error: %v", err)
			}
			return
		default:
			if changed {
				if err := g.reload(); err != nil {
					log.Printf("reload: %v", err)
				} else {
					g.status = "reloaded menu definition"
				}
			}
			return
		}
	}
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.menu.CancelActivation()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.menu.Reset()
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	cursor := cp.Vector{X: float64(mx), Y: float64(my)}

	l := g.menu.Layout(g.menuCenter())
	if discContains(l.Center, cursor) {
		g.menu.Toggle()
		return
	}
	if g.menu.Lifecycle() != radialmenu.Open {
		return
	}
	for i, rect := range l.Items {
		if discContains(rect, cursor) {
			g.menu.Select(i)
			return
		}
	}
}

// discContains treats the rect as the circle inscribed in it, matching how
// the renderer paints buttons.
func discContains(r radialmenu.Rect, p cp.Vector) bool {
	return p.Sub(r.Center()).Length() <= r.Width/2
}

func (g *Game) menuCenter() cp.Vector {
	return cp.Vector{X: baseWidth / 2, Y: baseHeight / 2}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	l := g.menu.Layout(g.menuCenter())
	g.renderer.Draw(screen, l, g.styles)
	g.ui.Draw(screen)

	msg := fmt.Sprintf("FPS: %.0f    state: %s", ebiten.ActualFPS(), g.menu.Lifecycle())
	if g.status != "" {
		msg += "    " + g.status
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
