package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/castletype/internal/game"
	"github.com/verte-zerg/castletype/internal/route"
)

// styledRune is one drawn grid cell. A wide rune owns the cell to its
// right, which is then left empty.
type styledRune struct {
	s     string
	width int
}

// canvas projects world coordinates (origin at the centre, +y up) onto a
// terminal grid of cols x rows cells.
type canvas struct {
	cols  int
	rows  int
	vp    route.Viewport
	cells [][]styledRune
}

func newCanvas(cols, rows int, vp route.Viewport) *canvas {
	c := &canvas{cols: max(cols, 1), rows: max(rows, 1), vp: vp}
	c.cells = make([][]styledRune, c.rows)
	for r := range c.cells {
		line := make([]styledRune, c.cols)
		for i := range line {
			line[i] = styledRune{s: " ", width: 1}
		}
		c.cells[r] = line
	}
	return c
}

// project maps a world point to a cell; points outside the grid are
// reported with ok=false.
func (c *canvas) project(p route.Point) (col, row int, ok bool) {
	col = int(math.Floor((p.X/c.vp.Width + 0.5) * float64(c.cols)))
	row = int(math.Floor((0.5 - p.Y/c.vp.Height) * float64(c.rows)))
	ok = col >= 0 && col < c.cols && row >= 0 && row < c.rows
	return col, row, ok
}

// rowsFor converts a vertical world distance into whole rows, rounding up
// so that any positive distance moves at least one row.
func (c *canvas) rowsFor(units float64) int {
	if units <= 0 {
		return 0
	}
	return int(math.Ceil(units / c.vp.Height * float64(c.rows)))
}

func (c *canvas) put(col, row int, r rune, style lipgloss.Style) int {
	w := runewidth.RuneWidth(r)
	if w == 0 || row < 0 || row >= c.rows || col < 0 || col+w > c.cols {
		return max(w, 1)
	}
	c.cells[row][col] = styledRune{s: style.Render(string(r)), width: w}
	for i := 1; i < w; i++ {
		c.cells[row][col+i] = styledRune{}
	}
	return w
}

func (c *canvas) text(col, row int, s string, style lipgloss.Style) {
	for _, r := range s {
		col += c.put(col, row, r, style)
	}
}

// centered writes the segments as one run centred on col.
func (c *canvas) centered(col, row int, segments ...segment) {
	total := 0
	for _, seg := range segments {
		total += runewidth.StringWidth(seg.text)
	}
	start := col - total/2
	for _, seg := range segments {
		c.text(start, row, seg.text, seg.style)
		start += runewidth.StringWidth(seg.text)
	}
}

type segment struct {
	text  string
	style lipgloss.Style
}

func (c *canvas) box(r game.Rect, style lipgloss.Style) (top, bottom int) {
	left, top, _ := c.project(route.Point{X: r.Min.X, Y: r.Max.Y})
	right, bottom, _ := c.project(route.Point{X: r.Max.X, Y: r.Min.Y})
	if right-left < 2 {
		right = left + 2
	}
	if bottom-top < 2 {
		bottom = top + 2
	}
	for x := left + 1; x < right; x++ {
		c.put(x, top, '─', style)
		c.put(x, bottom, '─', style)
	}
	for y := top + 1; y < bottom; y++ {
		c.put(left, y, '│', style)
		c.put(right, y, '│', style)
	}
	c.put(left, top, '┌', style)
	c.put(right, top, '┐', style)
	c.put(left, bottom, '└', style)
	c.put(right, bottom, '┘', style)
	return top, bottom
}

func (c *canvas) String() string {
	var b strings.Builder
	for i, line := range c.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range line {
			b.WriteString(cell.s)
		}
	}
	return b.String()
}

var glyphs = map[game.Archetype]rune{
	game.Pig:       'ɷ',
	game.Bat:       'ʍ',
	game.Bee:       'ж',
	game.Bunny:     'ʊ',
	game.Chicken:   'ɕ',
	game.Mushroom:  '♣',
	game.BlueBird:  'ϑ',
	game.Radish:    'ƍ',
	game.Rino:      'Ɍ',
	game.RockOne:   '●',
	game.RockTwo:   '◉',
	game.RockThree: '◍',
	game.Slime:     'ɵ',
	game.Snail:     '@',
	game.Trunk:     'Ͳ',
	game.Ghost:     'ǫ',
	game.KingSlime: '♛',
}

func glyph(a game.Archetype) rune {
	if r, ok := glyphs[a]; ok {
		return r
	}
	return '?'
}

// label splits an enemy word into its typed prefix and the rest.
func label(e *game.Enemy) []segment {
	if !e.Targeted() {
		return []segment{{e.Word(), labelStyle}}
	}
	return []segment{{e.Typed(), typedStyle}, {e.Remaining(), targetStyle}}
}

// renderField draws the castle, the boss, every enemy with its label and
// the explosions.
func renderField(g *game.Game, cols, rows int) string {
	c := newCanvas(cols, rows, g.Viewport())
	top, bottom := c.box(game.CastleRect, castleStyle)
	if col, _, ok := c.project(game.CastleRect.Center()); ok {
		hearts := strings.Repeat("♥", g.Lives())
		c.centered(col, (top+bottom)/2, segment{hearts, livesStyle})
	}
	if boss, ok := g.Boss(); ok {
		if col, row, ok := c.project(boss.Position()); ok {
			c.put(col, row, glyph(boss.Archetype()), bossStyle)
		}
	}
	for _, e := range g.Enemies() {
		col, row, ok := c.project(e.Position())
		if !ok {
			continue
		}
		style := enemyStyle
		if e.Flipped() {
			style = flippedStyle
		}
		c.put(col, row, glyph(e.Archetype()), style)
		c.centered(col, row-1-c.rowsFor(e.LabelLift()), label(e)...)
	}
	for _, x := range g.Explosions() {
		if col, row, ok := c.project(x.Pos); ok {
			style := explosionStyle
			if x.Frame() >= 5 {
				style = fadingStyle
			}
			c.put(col, row, '*', style)
		}
	}
	return c.String()
}
