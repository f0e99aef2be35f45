package runner

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
)

// Minimum screen size the track view needs.
const (
	minWidth  = 40
	minHeight = 16
)

// View geometry.
const (
	horizonRow = 3     // Row of the horizon line
	nearDepth  = 150.0 // World units at which the view is half as wide as at the player
	viewDepth  = 1400.0
	trackSpan  = 1.5 // Half the track width, in lane widths
)

// Glyphs
const (
	groundEdgeL = '╱'
	groundEdgeR = '╲'
	laneMark    = '┊'
	horizonLine = '─'
	lowBar      = '▄'
	highBar     = '▀'
	highPost    = '│'
	gapFill     = '░'
	heart       = '♥'
	heartLost   = '♡'
)

var coinFrames = []rune{'O', '0', 'o', '0'}

// powerUpLook is how each power-up kind is drawn and listed.
var powerUpLook = [sim.PowerUpCount]struct {
	glyph rune
	color core.Color
	help  string
}{
	sim.PowerUpMagnet:         {'U', core.ColorMagenta, "Magnet (purple): attracts coins"},
	sim.PowerUpShield:         {'◊', core.ColorBrightCyan, "Shield (cyan): temporary invincibility"},
	sim.PowerUpSpeedBoost:     {'»', core.ColorOrange, "Speed Boost (orange): double speed"},
	sim.PowerUpDoubleJump:     {'⇑', core.ColorBrightGreen, "Double Jump (green): jump twice"},
	sim.PowerUpCoinMultiplier: {'$', core.ColorBrightYellow, "Coin Multiplier (yellow): triple coin value"},
}

// view projects world coordinates onto the screen for one frame.
type view struct {
	w, h      int
	cx        int // Center column
	playerRow int // Row of the player's feet
	laneWidth float64
}

func newView(dst *core.Screen, laneWidth float64) view {
	return view{
		w:         dst.Width(),
		h:         dst.Height(),
		cx:        dst.Width() / 2,
		playerRow: dst.Height() - 2,
		laneWidth: laneWidth,
	}
}

// scale returns the perspective factor for a point d units ahead:
// 1 at the player, shrinking toward the horizon.
func (v view) scale(d float64) float64 {
	return nearDepth / (nearDepth + math.Max(d, -nearDepth/2))
}

// row returns the screen row for a point d units ahead.
func (v view) row(d float64) int {
	return horizonRow + int(math.Round(float64(v.playerRow-horizonRow)*v.scale(d)))
}

// depthAt inverts row: the distance ahead drawn at screen row r.
func (v view) depthAt(r int) float64 {
	t := float64(r-horizonRow) / float64(v.playerRow-horizonRow)
	if t <= 0 {
		return viewDepth
	}
	return nearDepth * (1/t - 1)
}

// halfWidth returns half the track width in columns at scale t.
func (v view) halfWidth(t float64) float64 {
	return core.Lerp(2, float64(v.w)*0.42, t)
}

// col returns the screen column of world x at scale t.
func (v view) col(x, t float64) int {
	return v.cx + int(math.Round(x/(trackSpan*v.laneWidth)*v.halfWidth(t)))
}

// laneCols returns how many columns one lane spans at scale t.
func (v view) laneCols(t float64) int {
	return max(1, int(v.halfWidth(t)*2/(2*trackSpan)))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minWidth || dst.Height() < minHeight {
		drawTooSmall(dst)
		return
	}

	switch g.snap.State {
	case sim.StateMenu:
		drawMenu(dst)
	case sim.StateGameOver:
		drawGameOver(dst, g.snap)
	default:
		v := newView(dst, g.snap.LaneWidth)
		g.drawTrack(dst, v)
		g.drawEntities(dst, v)
		g.drawPlayer(dst, v)
		g.drawHUD(dst)
		if g.banner.ticks > 0 {
			dst.DrawTextCenteredColored(horizonRow+2, g.banner.text, g.banner.color)
		}
		if g.snap.State == sim.StatePaused {
			drawPaused(dst)
		}
	}
}

func drawTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
	dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", minWidth, minHeight))
}

// drawTrack draws the horizon, track edges and scrolling lane markers.
func (g *Game) drawTrack(dst *core.Screen, v view) {
	dst.DrawHLine(0, horizonRow, v.w, horizonLine, core.ColorDarkGray)

	for r := horizonRow + 1; r < v.h; r++ {
		d := v.depthAt(r)
		t := v.scale(d)
		half := v.halfWidth(t)

		dst.SetColored(v.cx-int(math.Round(half)), r, groundEdgeL, core.ColorBrown)
		dst.SetColored(v.cx+int(math.Round(half)), r, groundEdgeR, core.ColorBrown)

		// Markers move toward the player as distance grows
		if int((d+g.snap.Distance)/60)%2 == 0 {
			for _, x := range []float64{-v.laneWidth / 2, v.laneWidth / 2} {
				dst.SetColored(v.col(x, t), r, laneMark, core.ColorGray)
			}
		}
	}
}

// drawable is one entity queued for painter's-order drawing.
type drawable struct {
	depth float64
	draw  func()
}

// drawEntities draws obstacles and collectibles far to near so nearer ones
// cover farther ones.
func (g *Game) drawEntities(dst *core.Screen, v view) {
	var items []drawable
	visible := func(d float64) bool { return d > -nearDepth/3 && d < viewDepth }

	for _, o := range g.snap.Obstacles {
		o := o
		d := o.Y - g.snap.Distance
		if !visible(d) {
			continue
		}
		items = append(items, drawable{d, func() { drawObstacle(dst, v, o, d) }})
	}
	for _, c := range g.snap.Coins {
		c := c
		d := c.Y - g.snap.Distance
		if c.Collected || !visible(d) {
			continue
		}
		items = append(items, drawable{d, func() { drawCoin(dst, v, c, d) }})
	}
	for _, p := range g.snap.PowerUps {
		p := p
		d := p.Y - g.snap.Distance
		if p.Collected || !visible(d) {
			continue
		}
		items = append(items, drawable{d, func() { drawPowerUp(dst, v, p, d) }})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].depth > items[j].depth })
	for _, it := range items {
		it.draw()
	}
}

func drawObstacle(dst *core.Screen, v view, o sim.Obstacle, d float64) {
	t := v.scale(d)
	r := v.row(d)
	w := v.laneCols(t)
	left := v.col(o.X, t) - w/2

	color := core.ColorGray
	switch {
	case !o.Active:
	case o.Kind == sim.ObstacleLow:
		color = core.ColorRed
	case o.Kind == sim.ObstacleHigh:
		color = core.ColorOrange
	case o.Kind == sim.ObstacleGap:
		color = core.ColorBlue
	}

	switch o.Kind {
	case sim.ObstacleLow:
		dst.DrawHLine(left, r, w, lowBar, color)
	case sim.ObstacleHigh:
		lift := max(1, int(math.Round(3*t)))
		dst.DrawHLine(left, r-lift, w, highBar, color)
		for y := r - lift + 1; y <= r; y++ {
			dst.SetColored(left, y, highPost, color)
			dst.SetColored(left+w-1, y, highPost, color)
		}
	case sim.ObstacleGap:
		dst.DrawHLine(left, r, w, gapFill, color)
		if t > 0.5 {
			dst.DrawHLine(left, r-1, w, gapFill, color)
		}
	}
}

func drawCoin(dst *core.Screen, v view, c sim.Coin, d float64) {
	t := v.scale(d)
	frame := int(c.Rotation/90) % len(coinFrames)
	dst.SetColored(v.col(c.X, t), v.row(d)-1, coinFrames[frame], core.ColorBrightYellow)
}

func drawPowerUp(dst *core.Screen, v view, p sim.PowerUp, d float64) {
	t := v.scale(d)
	r := v.row(d) - 1
	if p.FloatOffset > 5 {
		r--
	}
	look := powerUpLook[p.Kind]
	dst.SetColored(v.col(p.X, t), r, look.glyph, look.color)
}

// drawPlayer draws the runner at the bottom of the track.
func (g *Game) drawPlayer(dst *core.Screen, v view) {
	p := g.snap.Player
	x := v.col(p.X, 1)
	feet := v.playerRow

	color := core.ColorBrightWhite
	switch {
	case p.Active(sim.PowerUpShield):
		color = core.ColorBrightCyan
	case p.Active(sim.PowerUpSpeedBoost):
		color = core.ColorOrange
	}

	if p.Sliding {
		dst.SetColored(x-1, feet, lowBar, color)
		dst.SetColored(x, feet, lowBar, color)
		dst.SetColored(x+1, feet, 'o', color)
		return
	}

	lift := 0
	if p.Jumping {
		lift = int((p.Z - g.snap.GroundZ) / 25)
		lift = core.Clamp(lift, 0, feet-horizonRow-3)
		dst.SetColored(x, feet, '_', core.ColorDarkGray)
	}
	body := feet - lift
	head := body - 1

	dst.SetColored(x, head, 'O', color)
	dst.SetColored(x, body, '█', color)
	switch {
	case p.Jumping:
		dst.SetColored(x-1, body, '\\', color)
		dst.SetColored(x+1, body, '/', color)
	case g.frame/6%2 == 0:
		dst.SetColored(x-1, body, '/', color)
		dst.SetColored(x+1, body, '\\', color)
	default:
		dst.SetColored(x-1, body, '\\', color)
		dst.SetColored(x+1, body, '/', color)
	}

	if p.Active(sim.PowerUpShield) {
		dst.SetColored(x-2, body, '(', color)
		dst.SetColored(x+2, body, ')', color)
	}
}

// drawHUD draws the score line and active power-ups.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.snap
	stats := fmt.Sprintf("Score %d  Distance %dm  Coins %d  Speed %.1f",
		int(s.Score), int(s.Distance), s.CoinsCollected, s.Speed)
	dst.DrawTextColored(1, 0, stats, core.ColorBrightWhite)

	lives := strings.Repeat(string(heart), s.Lives) +
		strings.Repeat(string(heartLost), max(0, s.StartLives-s.Lives))
	dst.DrawTextColored(dst.Width()-len([]rune(lives))-1, 0, lives, core.ColorBrightRed)

	x := 1
	if s.SpeedUps {
		next := fmt.Sprintf("Next speed boost: %d points", int(s.NextMilestone)-int(s.Score))
		dst.DrawTextColored(x, 1, next, core.ColorGray)
		x += len(next) + 2
	}
	for k := sim.PowerUpKind(0); k < sim.PowerUpCount; k++ {
		if !s.Player.Active(k) {
			continue
		}
		text := fmt.Sprintf("%s: %ds", k, s.Player.SecondsLeft(k))
		dst.DrawTextColored(x, 1, text, powerUpLook[k].color)
		x += len(text) + 2
	}
}

// drawBoxed draws lines inside a centered box, each with its own color.
func drawBoxed(dst *core.Screen, lines []string, colors []core.Color) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(w+6, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		dst.DrawTextCenteredColored(box.Y+1+i, l, colors[i])
	}
}

func drawPaused(dst *core.Screen) {
	drawBoxed(dst,
		[]string{"GAME PAUSED", "", "Press P to Resume", "Press Q for Main Menu"},
		[]core.Color{core.ColorBrightYellow, core.ColorDefault, core.ColorWhite, core.ColorWhite},
	)
}

func drawGameOver(dst *core.Screen, s sim.Snapshot) {
	lines := []string{
		"GAME OVER!",
		s.Reason,
		"",
		fmt.Sprintf("Final Score: %d", int(s.Score)),
		fmt.Sprintf("Distance: %dm", int(s.Distance)),
		fmt.Sprintf("Coins Collected: %d", s.CoinsCollected),
		fmt.Sprintf("Final Speed: %.1f", s.Speed),
		fmt.Sprintf("Speed Milestones Reached: %d", s.Milestones),
		fmt.Sprintf("Lives Used: %d", s.StartLives-s.Lives),
		"",
		"Press R to Restart",
		"Press Q for Main Menu",
	}
	colors := []core.Color{core.ColorBrightRed, core.ColorRed}
	for range lines[2:] {
		colors = append(colors, core.ColorWhite)
	}
	drawBoxed(dst, lines, colors)
}

func drawMenu(dst *core.Screen) {
	type line struct {
		text  string
		color core.Color
	}
	lines := []line{
		{"L A N E   R U N N E R", core.ColorBrightYellow},
		{"", core.ColorDefault},
		{"Press SPACE to Start", core.ColorBrightWhite},
		{"", core.ColorDefault},
		{"Controls:", core.ColorWhite},
		{"A/D or Left/Right: Move lanes", core.ColorGray},
		{"W or Up: Jump (again in the air with Double Jump)", core.ColorGray},
		{"S or Down: Slide", core.ColorGray},
		{"P: Pause    Q: Back    Ctrl+C: Quit", core.ColorGray},
		{"", core.ColorDefault},
		{"Power-ups:", core.ColorWhite},
	}
	for k := sim.PowerUpKind(0); k < sim.PowerUpCount; k++ {
		look := powerUpLook[k]
		lines = append(lines, line{string(look.glyph) + "  " + look.help, look.color})
	}
	lines = append(lines,
		line{"", core.ColorDefault},
		line{"Bonus points for going through obstacles!", core.ColorBrightGreen},
		line{"Speed increases by 0.1 every 2500 points!", core.ColorOrange},
	)

	top := max(0, (dst.Height()-len(lines))/2)
	for i, l := range lines {
		dst.DrawTextCenteredColored(top+i, l.text, l.color)
	}
}
