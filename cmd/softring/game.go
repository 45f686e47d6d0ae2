package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"

	"softring/sim"
)

const (
	overviewScale = 0.5
	zoomScale     = 1.0
	bisectorLen   = 50.0
)

var (
	backgroundColor = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	obstacleColor   = color.RGBA{R: 120, G: 130, B: 150, A: 255}
	bodyColor       = color.RGBA{R: 90, G: 200, B: 140, A: 255}
	linkColor       = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	nodeColor       = color.RGBA{R: 255, G: 120, B: 80, A: 255}
	bisectorColor   = color.RGBA{R: 80, G: 160, B: 255, A: 255}
)

type camera struct {
	x, y   float64
	vx, vy float64
	spring harmonica.Spring
}

// follow eases the camera toward target with a critically damped spring.
func (c *camera) follow(target r2.Vec) {
	c.x, c.vx = c.spring.Update(c.x, c.vx, target.X)
	c.y, c.vy = c.spring.Update(c.y, c.vy, target.Y)
}

type Game struct {
	sim       *sim.Simulation
	obstacles [][]r2.Vec

	screenW, screenH int
	scale            float64
	cam              camera
	paused           bool
	debug            bool

	prevX, prevY int
	fill         *ebiten.Image
	vertices     []ebiten.Vertex
	indices      []uint16
}

func NewGame(s *sim.Simulation, screenW, screenH, tps int, debug bool) *Game {
	g := &Game{
		sim:     s,
		screenW: screenW,
		screenH: screenH,
		scale:   overviewScale,
		debug:   debug,
		cam:     camera{spring: harmonica.NewSpring(harmonica.FPS(tps), 6.0, 1.0)},
		fill:    ebiten.NewImage(1, 1),
	}
	g.fill.Fill(bodyColor)
	for _, o := range s.Obstacles() {
		switch ob := o.(type) {
		case sim.Polygon:
			g.obstacles = append(g.obstacles, ob.Vertices())
		case sim.Segment:
			g.obstacles = append(g.obstacles, []r2.Vec{ob.A, ob.B})
		}
	}
	g.prevX, g.prevY = ebiten.CursorPosition()
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		if g.scale == overviewScale {
			g.scale = zoomScale
		} else {
			g.scale = overviewScale
		}
	}

	g.cam.follow(g.cameraTarget())

	mx, my := ebiten.CursorPosition()
	in := sim.Input{
		Delta:   r2.Vec{X: float64(mx - g.prevX), Y: float64(my - g.prevY)},
		Pointer: g.toWorld(mx, my),
		Held:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	g.prevX, g.prevY = mx, my

	if g.paused {
		return nil
	}
	if err := g.sim.Step(in); err != nil {
		log.Printf("frame %d: %v", g.sim.Frame(), err)
	}
	return nil
}

// cameraTarget is the world point drawn at the top-left corner.
func (g *Game) cameraTarget() r2.Vec {
	if g.scale == overviewScale {
		return r2.Vec{}
	}
	half := r2.Scale(1/g.scale, r2.Vec{X: float64(g.screenW) / 2, Y: float64(g.screenH) / 2})
	return r2.Sub(g.sim.Centroid(), half)
}

func (g *Game) toWorld(sx, sy int) r2.Vec {
	return r2.Vec{X: float64(sx)/g.scale + g.cam.x, Y: float64(sy)/g.scale + g.cam.y}
}

func (g *Game) toScreen(v r2.Vec) (float32, float32) {
	return float32((v.X - g.cam.x) * g.scale), float32((v.Y - g.cam.y) * g.scale)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, poly := range g.obstacles {
		for i := range poly {
			x0, y0 := g.toScreen(poly[i])
			x1, y1 := g.toScreen(poly[(i+1)%len(poly)])
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, obstacleColor, true)
		}
	}

	g.drawBody(screen)

	if g.debug || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.drawDebug(screen)
	}

	state := ""
	if g.paused {
		state = " (paused)"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"frame %d%s\narea %.0f / %.0f\nTPS %.1f\nZ zoom  P pause  D debug",
		g.sim.Frame(), state, g.sim.Area(), g.sim.Config().TargetArea, ebiten.ActualTPS()))
}

func (g *Game) drawBody(screen *ebiten.Image) {
	hull := smoothHull(g.sim.Positions(), hullSpacing, hullPasses)
	if len(hull) < 3 {
		return
	}
	var path vector.Path
	x, y := g.toScreen(hull[0])
	path.MoveTo(x, y)
	for _, p := range hull[1:] {
		x, y := g.toScreen(p)
		path.LineTo(x, y)
	}
	path.Close()

	g.vertices, g.indices = path.AppendVerticesAndIndicesForFilling(g.vertices[:0], g.indices[:0])
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.FillRuleNonZero
	screen.DrawTriangles(g.vertices, g.indices, g.fill, op)
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	pos := g.sim.Positions()
	for _, l := range g.sim.Links() {
		x0, y0 := g.toScreen(pos[l.A])
		x1, y1 := g.toScreen(pos[l.B])
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, linkColor, true)
	}
	for i, b := range g.sim.Bisectors() {
		x0, y0 := g.toScreen(pos[i])
		x1, y1 := g.toScreen(r2.Add(pos[i], r2.Scale(bisectorLen, b)))
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, bisectorColor, true)
	}
	for _, p := range pos {
		x, y := g.toScreen(p)
		vector.DrawFilledCircle(screen, x, y, float32(3*g.scale+1), nodeColor, true)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
