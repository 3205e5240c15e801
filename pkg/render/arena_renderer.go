package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-radial-arena/internal/app"
	"go-radial-arena/internal/config"
)

const (
	gridRings  = 8
	gridSpokes = 16
)

// ArenaRenderer draws the polar arena and a RenderFrame on top of it.
type ArenaRenderer struct {
	pixelsPerUnit float64
	screenWidth   int
	screenHeight  int
	colors        ArenaColors
	fillImg       *ebiten.Image
	vs            []ebiten.Vertex
	is            []uint16
	arenaImage    *ebiten.Image // pre-rendered grid
	trackMin      float64
	trackMax      float64
	time          float64
}

func NewArenaRenderer(pixelsPerUnit float64, screenWidth, screenHeight int, colors ArenaColors) *ArenaRenderer {
	fillImg := ebiten.NewImage(3, 3)
	fillImg.Fill(color.White)

	r := &ArenaRenderer{
		pixelsPerUnit: pixelsPerUnit,
		screenWidth:   screenWidth,
		screenHeight:  screenHeight,
		colors:        colors,
		fillImg:       fillImg,
		vs:            make([]ebiten.Vertex, 0, 64),
		is:            make([]uint16, 0, 96),
		arenaImage:    ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderArenaImage(config.PlayerMinRadius, config.PlayerMaxRadius)
	return r
}

// RenderArenaImage redraws the static grid. The player's track band changes
// with upgrades, so callers re-render when the bounds move.
func (r *ArenaRenderer) RenderArenaImage(trackMin, trackMax float64) {
	r.trackMin, r.trackMax = trackMin, trackMax
	img := r.arenaImage
	img.Fill(r.colors.BackgroundColor)

	cx, cy := r.center()
	outer := float32(config.SpawnRadius * r.pixelsPerUnit)
	for i := 1; i <= gridRings; i++ {
		rad := outer * float32(i) / gridRings
		vector.StrokeCircle(img, cx, cy, rad, r.colors.StrokeWidth, r.colors.GridColor, true)
	}
	for i := 0; i < gridSpokes; i++ {
		a := 2 * math.Pi * float64(i) / gridSpokes
		x := cx + outer*float32(math.Cos(a))
		y := cy + outer*float32(math.Sin(a))
		vector.StrokeLine(img, cx, cy, x, y, r.colors.StrokeWidth, r.colors.GridColor, true)
	}

	vector.StrokeCircle(img, cx, cy, float32(trackMin*r.pixelsPerUnit), r.colors.StrokeWidth, r.colors.TrackColor, true)
	vector.StrokeCircle(img, cx, cy, float32(trackMax*r.pixelsPerUnit), r.colors.StrokeWidth, r.colors.TrackColor, true)
	vector.StrokeCircle(img, cx, cy, outer, r.colors.StrokeWidth*2, r.colors.BoundaryColor, true)
	vector.DrawFilledCircle(img, cx, cy, float32(config.CoreRadius*r.pixelsPerUnit), DarkenColor(r.colors.BoundaryColor), true)
}

// Draw renders one frame. deltaTime only drives the screen shake jitter.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, f app.RenderFrame, deltaTime float64) {
	r.time += deltaTime
	if f.MinRadius != r.trackMin || f.MaxRadius != r.trackMax {
		r.RenderArenaImage(f.MinRadius, f.MaxRadius)
	}

	ox, oy := r.shakeOffset(f.Shake)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(r.arenaImage, op)

	for _, l := range f.Lasers {
		r.drawLaser(screen, l, ox, oy)
	}
	for _, s := range f.Sprites {
		r.drawSprite(screen, s, ox, oy)
	}
}

func (r *ArenaRenderer) center() (float32, float32) {
	return float32(r.screenWidth) / 2, float32(r.screenHeight) / 2
}

func (r *ArenaRenderer) toScreen(x, y, ox, oy float64) (float32, float32) {
	cx, cy := r.center()
	return cx + float32(x*r.pixelsPerUnit+ox), cy + float32(y*r.pixelsPerUnit+oy)
}

func (r *ArenaRenderer) shakeOffset(shake float64) (float64, float64) {
	if shake <= 0 {
		return 0, 0
	}
	amp := shake * r.pixelsPerUnit * 0.5
	return amp * math.Sin(r.time*53), amp * math.Cos(r.time*41)
}

func (r *ArenaRenderer) drawLaser(screen *ebiten.Image, l app.LaserBeam, ox, oy float64) {
	ax, ay := r.toScreen(l.AX, l.AY, ox, oy)
	bx, by := r.toScreen(l.BX, l.BY, ox, oy)
	if !l.Firing {
		vector.StrokeLine(screen, ax, ay, bx, by, 1, Fade(config.TelegraphColor, 0.6), true)
		return
	}
	w := float32(l.Width * r.pixelsPerUnit)
	vector.StrokeLine(screen, ax, ay, bx, by, w, Fade(config.LaserFireColor, 0.5), true)
	vector.StrokeLine(screen, ax, ay, bx, by, w/3, config.FlashColor, true)
}

func (r *ArenaRenderer) drawSprite(screen *ebiten.Image, s app.Sprite, ox, oy float64) {
	x, y := r.toScreen(s.X, s.Y, ox, oy)
	size := s.Scale * r.pixelsPerUnit
	c := Fade(s.Color, s.Opacity)

	switch s.Kind {
	case app.SpriteParticle:
		vector.DrawFilledCircle(screen, x, y, float32(math.Max(size, 1)), c, true)
	case app.SpriteDebris:
		r.drawPolygon(screen, x, y, size, s.Rotation, 4, c)
	case app.SpritePickup:
		r.drawPolygon(screen, x, y, r.pixelsPerUnit, s.Rotation, 4, c)
		vector.StrokeCircle(screen, x, y, float32(r.pixelsPerUnit*1.4), 1, c, true)
	case app.SpriteObstacle:
		r.drawPolygon(screen, x, y, size, s.Rotation, 6, c)
	case app.SpriteEnemy:
		r.drawPolygon(screen, x, y, size, s.Rotation, sidesFor(s.Variant), c)
		if s.Shielded {
			r.drawShieldArc(screen, x, y, size*1.6, s.ShieldAngle)
		}
	case app.SpriteBoss:
		r.drawPolygon(screen, x, y, size, s.Rotation, 8, c)
		vector.StrokeCircle(screen, x, y, float32(size*1.2), 2, c, true)
	case app.SpritePlayerShot, app.SpriteEnemyShot:
		vector.DrawFilledCircle(screen, x, y, float32(math.Max(size, 2)), c, true)
	case app.SpritePlayer:
		r.drawPolygon(screen, x, y, size*1.5, s.Rotation, 3, c)
	case app.SpriteShieldField:
		vector.StrokeCircle(screen, x, y, float32(size), 2, c, true)
	}
}

// sidesFor gives each enemy type its own silhouette.
func sidesFor(variant string) int {
	switch variant {
	case "tank":
		return 6
	case "speed", "kamikaze", "zigzag":
		return 3
	case "splitter":
		return 5
	case "shooter", "laser":
		return 7
	default:
		return 4
	}
}

func (r *ArenaRenderer) drawPolygon(target *ebiten.Image, x, y float32, radius, rotation float64, sides int, c color.RGBA) {
	path := vector.Path{}
	for i := 0; i < sides; i++ {
		angle := rotation + 2*math.Pi*float64(i)/float64(sides)
		px := x + float32(radius*math.Cos(angle))
		py := y + float32(radius*math.Sin(angle))
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()

	r.vs, r.is = path.AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
	for i := range r.vs {
		r.vs[i].SrcX = 1
		r.vs[i].SrcY = 1
		r.vs[i].ColorR = float32(c.R) / 255
		r.vs[i].ColorG = float32(c.G) / 255
		r.vs[i].ColorB = float32(c.B) / 255
		r.vs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.vs, r.is, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// drawShieldArc strokes the blocking half circle centred on angle.
func (r *ArenaRenderer) drawShieldArc(target *ebiten.Image, x, y float32, radius, angle float64) {
	path := vector.Path{}
	path.Arc(x, y, float32(radius), float32(angle-math.Pi/2), float32(angle+math.Pi/2), vector.Clockwise)

	r.vs, r.is = path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width: 3,
	})
	c := config.ShieldArcColor
	for i := range r.vs {
		r.vs[i].SrcX = 1
		r.vs[i].SrcY = 1
		r.vs[i].ColorR = float32(c.R) / 255
		r.vs[i].ColorG = float32(c.G) / 255
		r.vs[i].ColorB = float32(c.B) / 255
		r.vs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.vs, r.is, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
