// Package tui is an interactive terminal band picker: four selector columns
// and a live decoded result.
package tui

import (
	"fmt"
	"github.com/fpawel/ltool/internal/inductor"
	"github.com/gdamore/tcell/v2"
)

type picker struct {
	screen  tcell.Screen
	columns []column
	focus   int
}

type column struct {
	title    string
	options  []inductor.Color
	selected int
}

// Run opens the picker and blocks until the user quits. The last decoded
// result is returned so the caller can print it after the screen is restored.
func Run() (inductor.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return inductor.Result{}, err
	}
	if err := screen.Init(); err != nil {
		return inductor.Result{}, err
	}
	defer screen.Fini()

	p := &picker{
		screen:  screen,
		columns: newColumns(),
	}
	return p.loop()
}

func newColumns() []column {
	digits := optionsFor(inductor.RoleDigit)
	multipliers := optionsFor(inductor.RoleMultiplier)
	tolerance := append([]inductor.Color{inductor.None}, inductor.ToleranceColors()...)
	return []column{
		{title: "1st digit", options: digits},
		{title: "2nd digit", options: digits},
		{title: "Multiplier", options: multipliers},
		{title: "Tolerance", options: tolerance},
	}
}

func optionsFor(role inductor.Role) []inductor.Color {
	var xs []inductor.Color
	for _, c := range inductor.Colors() {
		if inductor.ValidForRole(c, role) {
			xs = append(xs, c)
		}
	}
	return xs
}

func (p *picker) loop() (inductor.Result, error) {
	for {
		p.draw()
		switch ev := p.screen.PollEvent().(type) {
		case *tcell.EventResize:
			p.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return p.decode()
			case ev.Key() == tcell.KeyEnter:
				return p.decode()
			case ev.Key() == tcell.KeyLeft || ev.Rune() == 'h':
				if p.focus > 0 {
					p.focus--
				}
			case ev.Key() == tcell.KeyRight || ev.Rune() == 'l':
				if p.focus < len(p.columns)-1 {
					p.focus++
				}
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				p.move(-1)
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				p.move(1)
			}
		}
	}
}

func (p *picker) move(d int) {
	col := &p.columns[p.focus]
	n := col.selected + d
	if n >= 0 && n < len(col.options) {
		col.selected = n
	}
}

func (p *picker) bands() []string {
	var bands []string
	for i, col := range p.columns {
		c := col.options[col.selected]
		if i == 3 && c == inductor.None {
			continue
		}
		bands = append(bands, string(c))
	}
	return bands
}

func (p *picker) decode() (inductor.Result, error) {
	bands := p.bands()
	if err := inductor.ValidateBands(bands); err != nil {
		return inductor.Result{}, err
	}
	return inductor.Decode(bands)
}

const columnWidth = 14

func (p *picker) draw() {
	p.screen.Clear()
	drawText(p.screen, 0, 0, tcell.StyleDefault.Bold(true), "Inductor color code")
	for i, col := range p.columns {
		p.drawColumn(i*columnWidth, 2, i, col)
	}

	y := 4 + maxOptions(p.columns)
	if result, err := p.decode(); err == nil {
		drawText(p.screen, 0, y, tcell.StyleDefault.Bold(true), result.Display)
	} else {
		drawText(p.screen, 0, y, tcell.StyleDefault.Foreground(tcell.ColorRed), err.Error())
	}
	drawText(p.screen, 0, y+2, tcell.StyleDefault.Dim(true), "arrows/hjkl move, enter/q quit")
	p.screen.Show()
}

func (p *picker) drawColumn(x, y, index int, col column) {
	titleStyle := tcell.StyleDefault
	if index == p.focus {
		titleStyle = titleStyle.Bold(true).Underline(true)
	}
	drawText(p.screen, x, y, titleStyle, col.title)
	for i, c := range col.options {
		style := tcell.StyleDefault.Foreground(swatch(c))
		marker := "  "
		if i == col.selected {
			marker = "> "
			style = style.Reverse(index == p.focus).Bold(true)
		}
		drawText(p.screen, x, y+1+i, style, fmt.Sprintf("%s%s", marker, c))
	}
}

func maxOptions(columns []column) int {
	n := 0
	for _, col := range columns {
		if len(col.options) > n {
			n = len(col.options)
		}
	}
	return n
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// swatch maps a band color to a terminal color for display.
var swatches = map[inductor.Color]tcell.Color{
	inductor.Black:  tcell.ColorGray,
	inductor.Brown:  tcell.ColorBrown,
	inductor.Red:    tcell.ColorRed,
	inductor.Orange: tcell.ColorOrange,
	inductor.Yellow: tcell.ColorYellow,
	inductor.Green:  tcell.ColorGreen,
	inductor.Blue:   tcell.ColorBlue,
	inductor.Violet: tcell.ColorBlueViolet,
	inductor.Gray:   tcell.ColorDarkGray,
	inductor.Grey:   tcell.ColorDarkGray,
	inductor.White:  tcell.ColorWhite,
	inductor.Gold:   tcell.ColorGold,
	inductor.Silver: tcell.ColorSilver,
	inductor.Pink:   tcell.ColorPink,
}

func swatch(c inductor.Color) tcell.Color {
	if x, f := swatches[c]; f {
		return x
	}
	return tcell.ColorDefault
}
