package gui

import (
	"fmt"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/topograph/internal/config"
	"github.com/san-kum/topograph/internal/graph"
	"github.com/san-kum/topograph/internal/render"
	"github.com/san-kum/topograph/internal/topology"
)

// Theme Colors (Monochrome)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

type App struct {
	Top     *topology.Topology
	Surface *Surface
	Mouse   *Mouse
	Paused  bool
	Font    rl.Font

	// Changes, when set, delivers payloads that replace the graph.
	Changes <-chan graph.Payload

	log       *log.Logger
	width     int32
	height    int32
	frameDone bool
}

// initWindow opens a window sized to the backing store of the view.
func initWindow(cfg *config.Config) {
	rl.InitWindow(int32(cfg.Width*cfg.Scale), int32(cfg.Height*cfg.Scale), "topograph")
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
}

// Surfaces makes the App a topology.Host.
func (a *App) Surfaces() []render.Surface {
	if a.Surface == nil {
		return nil
	}
	return []render.Surface{a.Surface}
}

// NewApp builds the view on the window's surface. The window must be open.
func NewApp(cfg *config.Config, logger *log.Logger) (*App, error) {
	s := NewSurface(ColBg)
	a := &App{
		Surface: s,
		Mouse:   NewMouse(s),
		Font:    rl.GetFontDefault(),
		log:     logger,
		width:   int32(cfg.Width * cfg.Scale),
		height:  int32(cfg.Height * cfg.Scale),
	}

	opts := topology.OptionsFromConfig(cfg)
	opts.Host = a
	opts.Logger = logger
	opts.DeferDraw = true
	top, err := topology.New(opts)
	if err != nil {
		return nil, err
	}
	a.Top = top
	return a, nil
}

func (a *App) Init(p graph.Payload) {
	a.Top.Init(p, topology.Hooks{
		OnTick: func() {
			a.frameDone = true
		},
		OnDragStart: func(n *graph.Node) {
			a.log.Debug("drag start", "node", n.ID)
		},
		OnDragEnd: func(n *graph.Node) {
			a.log.Debug("drag end", "node", n.ID, "x", n.X, "y", n.Y)
		},
	})
}

// Run opens the window and blocks until it is closed. changes may be nil.
func Run(cfg *config.Config, p graph.Payload, changes <-chan graph.Payload, logger *log.Logger) error {
	initWindow(cfg)
	defer rl.CloseWindow()

	app, err := NewApp(cfg, logger)
	if err != nil {
		return err
	}
	app.Changes = changes
	app.Init(p)
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles keys and pointer input; it returns false on quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Paused = !a.Paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Top.Reheat()
	}
	select {
	case p := <-a.Changes:
		a.Top.Reload(p)
	default:
	}
	a.Top.Consume(a.Mouse)
	return true
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.Surface.Begin()
	a.frameDone = false
	if !a.Paused {
		a.Top.Tick()
	}
	// raylib does not keep the previous frame, so a resting layout is
	// redrawn every frame.
	if !a.frameDone {
		a.Top.Redraw()
	}
	a.Surface.End()

	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	a.drawText("topograph", 30, 30, 24, ColSelect)

	g := a.Top.Graph()
	a.drawText(fmt.Sprintf(":: %d nodes  %d links", g.Len(), len(g.Links)), 170, 34, 16, ColText)

	eng := a.Top.Engine()
	status, col := "SETTLED", ColTextDim
	switch {
	case a.Paused:
		status = "PAUSED"
	case eng.Running():
		status, col = "RUNNING", ColSelect
	}
	a.drawText(status, int(a.width)-130, 30, 16, col)
	a.drawText(fmt.Sprintf("alpha %.3f", eng.Alpha()), int(a.width)-130, 52, 14, ColAccent)

	if n := a.Top.Dragging(); n != nil {
		a.drawText(fmt.Sprintf("> %s", n.ID), 30, 64, 16, ColAccent)
	}

	a.drawText("[DRAG] MOVE  [SPACE] PAUSE  [R] REHEAT  [Q] QUIT", int(a.width)-560, int(a.height)-40, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, int(a.height)-40, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
