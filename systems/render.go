package systems

import (
	"image/color"
	"math"

	"github.com/automoto/layerhop/components"
	cfg "github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/level"
	"github.com/automoto/layerhop/shared/gamemath"
	"github.com/automoto/layerhop/shared/leveldata"
	"github.com/automoto/layerhop/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only render layer of the world scene.
const LayerDefault ecs.LayerID = 0

// view converts world pixels to screen pixels and culls off-screen boxes.
type view struct {
	offX, offY float64
	w, h       float64
}

func newView(camera *components.CameraData, screen *ebiten.Image) view {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return view{
		offX: w/2 - camera.Position.X,
		offY: h/2 - camera.Position.Y,
		w:    w,
		h:    h,
	}
}

// padding keeps shapes from popping at the screen edges
const padding = 64.0

func (v view) visible(r gamemath.Rect) bool {
	x, y := float64(r.X)+v.offX, float64(r.Y)+v.offY
	return x+float64(r.W) >= -padding && x <= v.w+padding && y+float64(r.H) >= -padding && y <= v.h+padding
}

func (v view) fill(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x+v.offX), float32(y+v.offY), float32(w), float32(h), c, false)
}

func (v view) stroke(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.StrokeRect(screen, float32(float64(r.X)+v.offX), float32(float64(r.Y)+v.offY), float32(r.W), float32(r.H), 1, c, false)
}

// faded scales a premultiplied color by alpha.
func faded(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// layerAlpha fades layers by their distance from the camera focus layer.
func layerAlpha(layer int, focus float64) float32 {
	d := math.Abs(float64(layer) - focus)
	return float32(math.Pow(float64(cfg.Render.LayerFade), d))
}

// DrawLevel renders every layer back to front. Characters, their shadows
// and particles are drawn with the layer they are drawn on.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.BackgroundColor)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	state, err := sim.LevelState(ecs.World)
	if err != nil {
		return
	}
	v := newView(camera, screen)

	for i := 0; i < state.Level.LayerCount(); i++ {
		alpha := layerAlpha(i, camera.Focus)
		drawBlocks(screen, v, state, state.Level.Layer(i), alpha)
		drawGoals(ecs.World, screen, v, i, alpha)
		drawCharacters(ecs.World, screen, v, i, alpha)
		drawParticles(ecs.World, screen, v, i, alpha)
	}
}

func drawBlocks(screen *ebiten.Image, v view, state *components.LevelData, layer *level.Layer, alpha float32) {
	for _, b := range layer.Blocks {
		if !v.visible(b.Box) {
			continue
		}
		x, y := float64(b.Box.X), float64(b.Box.Y)
		w, h := float64(b.Box.W), float64(b.Box.H)

		switch {
		case b.Has(leveldata.PropKeyhole):
			if state.IsConsumed(b) {
				v.fill(screen, x, y, w, h, faded(cfg.Render.SolidColor, alpha))
				v.stroke(screen, b.Box, faded(cfg.Render.KeyholeColor, alpha))
			} else {
				v.fill(screen, x, y, w, h, faded(cfg.Render.KeyholeColor, alpha))
			}
		case b.Has(leveldata.PropHazard):
			v.fill(screen, x, y+h/2, w, h/2, faded(cfg.Render.HazardColor, alpha))
		case b.Has(leveldata.PropSwim):
			v.fill(screen, x, y, w, h, faded(cfg.Render.WaterColor, alpha))
		case b.Slope != leveldata.SlopeNone:
			drawSlope(screen, v, b, faded(cfg.Render.SolidColor, alpha))
		case b.Collidable && !b.Has(leveldata.PropDownWall):
			// one-way platform
			v.fill(screen, x, y, w, h/4, faded(cfg.Render.SolidColor, alpha))
		case b.Collidable:
			v.fill(screen, x, y, w, h, faded(cfg.Render.SolidColor, alpha))
		}
	}
}

// drawSlope approximates the ramp surface with thin columns.
func drawSlope(screen *ebiten.Image, v view, b *level.Block, c color.Color) {
	const strip = 5
	rising := b.Slope == leveldata.SlopeRight
	for dx := 0; dx < b.Box.W; dx += strip {
		top := gamemath.SlopeFloorY(b.Box, b.Box.X+dx+strip/2, rising)
		v.fill(screen, float64(b.Box.X+dx), float64(top), strip, float64(b.Box.Bottom()-top), c)
	}
}

func drawGoals(w donburi.World, screen *ebiten.Image, v view, layer int, alpha float32) {
	components.Goal.Each(w, func(e *donburi.Entry) {
		goal := components.Goal.Get(e)
		if goal.Layer != layer || !v.visible(goal.Box) {
			return
		}
		c := faded(cfg.Render.GoalColor, alpha)
		x, y := float64(goal.Box.X), float64(goal.Box.Y)
		v.fill(screen, x+float64(goal.Box.W)/2-3, y, 6, float64(goal.Box.H), c)
		v.fill(screen, x+float64(goal.Box.W)/2+3, y, 24, 16, c)
	})
}

func drawCharacters(w donburi.World, screen *ebiten.Image, v view, layer int, alpha float32) {
	components.Character.Each(w, func(e *donburi.Entry) {
		body := components.Character.Get(e).Body
		if body.DrawLayer != layer || !v.visible(body.Position) {
			return
		}

		if shadow := body.Shadow(); shadow.Visible() {
			v.fill(screen, shadow.X, shadow.Y, cfg.Shadow.Width, cfg.Shadow.Height, faded(cfg.Shadow.Color, alpha))
		}

		base := cfg.Render.WalkerColor
		if body.Player {
			base = cfg.Render.PlayerColor
		}
		if body.Dead {
			base = cfg.Render.HazardColor
		}

		p := body.Position
		// bob with the animation frame
		bob := 0.0
		if anim := components.Animation.Get(e); anim.Controller != nil && anim.Frame()%2 == 1 {
			bob = 2
		}
		v.fill(screen, float64(p.X), float64(p.Y)+bob, float64(p.W), float64(p.H)-bob, faded(base, alpha))

		eyeX := float64(p.CenterX()) + float64(body.Direction)*float64(p.W)/4
		vector.DrawFilledCircle(screen, float32(eyeX+v.offX), float32(float64(p.Y)+bob+12+v.offY), 4, faded(cfg.White, alpha), true)

		// wall contact is on the side opposite the slide direction
		if body.WallSliding != 0 {
			edge := p.Right()
			if body.WallSliding > 0 {
				edge = p.Left() - 2
			}
			v.fill(screen, float64(edge), float64(p.Y), 2, float64(p.H), faded(cfg.White, alpha))
		}
	})
}

func drawParticles(w donburi.World, screen *ebiten.Image, v view, layer int, alpha float32) {
	components.Particles.Each(w, func(e *donburi.Entry) {
		p := components.Particles.Get(e)
		for _, em := range []*components.Emitter{p.Dust, p.Bubbles} {
			for _, pt := range em.Particles {
				if pt.Layer != layer {
					continue
				}
				a := alpha * pt.Alpha
				vector.DrawFilledCircle(screen, float32(pt.X+v.offX), float32(pt.Y+v.offY), float32(pt.Size/2), faded(em.Color, a), true)
			}
		}
	})
}
