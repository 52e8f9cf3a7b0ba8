package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/ashgrove/components"
	cfg "github.com/automoto/ashgrove/config"
	"github.com/automoto/ashgrove/fonts"
	"github.com/automoto/ashgrove/sim"
	"github.com/automoto/ashgrove/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

const (
	gridSpacing      = 2.0
	indicatorSegment = 16
	hudMargin        = 10
)

// wireframe projects world geometry through the follow camera.
type wireframe struct {
	screen *ebiten.Image
	cam    *components.CameraData
	w, h   float64
}

func (wf wireframe) line(a, b mgl64.Vec3, clr color.Color) {
	x0, y0, ok0 := wf.cam.WorldToScreen(a, wf.w, wf.h)
	x1, y1, ok1 := wf.cam.WorldToScreen(b, wf.w, wf.h)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(wf.screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
}

func (wf wireframe) box(lo, hi mgl64.Vec3, clr color.Color) {
	corner := func(i int) mgl64.Vec3 {
		c := lo
		if i&1 != 0 {
			c[0] = hi[0]
		}
		if i&2 != 0 {
			c[1] = hi[1]
		}
		if i&4 != 0 {
			c[2] = hi[2]
		}
		return c
	}
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				wf.line(corner(i), corner(i|bit), clr)
			}
		}
	}
}

// grid draws lines across the top face of a ground box.
func (wf wireframe) grid(box *components.BoxData, clr color.Color) {
	y := box.Max.Y()
	for x := math.Ceil(box.Min.X()/gridSpacing) * gridSpacing; x <= box.Max.X(); x += gridSpacing {
		wf.line(mgl64.Vec3{x, y, box.Min.Z()}, mgl64.Vec3{x, y, box.Max.Z()}, clr)
	}
	for z := math.Ceil(box.Min.Z()/gridSpacing) * gridSpacing; z <= box.Max.Z(); z += gridSpacing {
		wf.line(mgl64.Vec3{box.Min.X(), y, z}, mgl64.Vec3{box.Max.X(), y, z}, clr)
	}
}

func (wf wireframe) character(e *donburi.Entry, clr color.Color) {
	t := components.Transform.Get(e)
	body := components.Body.Get(e)
	r := body.Radius
	feet := t.Position

	wf.box(feet.Sub(mgl64.Vec3{r, 0, r}), feet.Add(mgl64.Vec3{r, body.Height, r}), clr)

	// Facing
	chest := feet.Add(mgl64.Vec3{0, body.Height * 0.6, 0})
	wf.line(chest, chest.Add(t.Forward().Mul(r*2)), clr)
}

func (wf wireframe) ring(center mgl64.Vec3, radius, angle float64, clr color.Color) {
	point := func(deg float64) mgl64.Vec3 {
		rad := mgl64.DegToRad(deg)
		return center.Add(mgl64.Vec3{math.Sin(rad) * radius, 0, math.Cos(rad) * radius})
	}
	step := 360.0 / indicatorSegment
	for i := 0; i < indicatorSegment; i++ {
		wf.line(point(angle+float64(i)*step), point(angle+float64(i+1)*step), clr)
	}
	wf.line(center, point(angle), clr)
}

func drawWorld(screen *ebiten.Image, s *sim.Simulation) {
	b := screen.Bounds()
	wf := wireframe{screen: screen, cam: s.Camera(), w: float64(b.Dx()), h: float64(b.Dy())}
	world := s.ECS.World

	tags.Ground.Each(world, func(e *donburi.Entry) {
		wf.grid(components.Box.Get(e), cfg.HUD.GridColor)
	})
	tags.Wall.Each(world, func(e *donburi.Entry) {
		box := components.Box.Get(e)
		wf.box(box.Min, box.Max, cfg.HUD.WallColor)
	})

	tags.Enemy.Each(world, func(e *donburi.Entry) {
		wf.character(e, enemyColor(e))
	})
	tags.Player.Each(world, func(e *donburi.Entry) {
		wf.character(e, cfg.HUD.PlayerColor)

		tg := components.Targeting.Get(e)
		if tg.IndicatorVisible {
			wf.ring(tg.IndicatorPosition, cfg.Targeting.IndicatorRadius, tg.IndicatorAngle, cfg.HUD.IndicatorColor)
		}
	})
}

func enemyColor(e *donburi.Entry) color.Color {
	if e.HasComponent(components.Death) {
		return cfg.DarkGrey
	}
	switch components.Perception.Get(e).Highlight {
	case components.HighlightAlert:
		return cfg.HUD.EnemyAlert
	case components.HighlightMelee:
		return cfg.HUD.EnemyMelee
	default:
		return cfg.HUD.EnemyCalm
	}
}

// drawHUD renders the player's health bar, state and target in the top-left
// corner.
func drawHUD(screen *ebiten.Image, s *sim.Simulation) {
	// Background
	vector.FillRect(screen, hudMargin, hudMargin, cfg.HUD.HealthBarWidth, cfg.HUD.HealthBarHeight, cfg.HUD.HealthBackColor, false)
	// Current HP
	ratio := float32(s.PlayerHealthPercent())
	vector.FillRect(screen, hudMargin, hudMargin, cfg.HUD.HealthBarWidth*ratio, cfg.HUD.HealthBarHeight, cfg.HUD.HealthBarColor, false)

	face := fonts.Regular.Get()
	y := hudMargin + int(cfg.HUD.HealthBarHeight) + 18

	if player, ok := s.Player(); ok {
		hp := components.Health.Get(player)
		state := components.State.Get(player).CurrentState
		text.Draw(screen, fmt.Sprintf("HP %d/%d  %s", hp.Current, hp.Max, state), face, hudMargin, y, cfg.White)
	}

	if target, ok := s.CurrentTarget(); ok {
		hp := components.Health.Get(target)
		label := fmt.Sprintf("Target: %s %.0f%%", components.Identity.Get(target).Name, hp.Percent()*100)
		text.Draw(screen, label, face, hudMargin, y+18, cfg.HUD.IndicatorColor)
	}

	hint := "WASD move  Shift run  Space jump  Ctrl dodge  LMB attack  1 heavy  Tab target  RMB orbit  Esc pause"
	text.Draw(screen, hint, fonts.Mono.Get(), hudMargin, screen.Bounds().Dy()-hudMargin, cfg.DarkGrey)
}

func drawPause(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), cfg.HUD.OverlayColor, false)

	face := fonts.Title.Get()
	title := "PAUSED"
	width := text.BoundString(face, title).Dx()
	text.Draw(screen, title, face, (b.Dx()-width)/2, b.Dy()/2, cfg.White)
}
