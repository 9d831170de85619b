package ui

import "image"

// Button ids returned by Bar.Hit.
const (
	ButtonNext = iota
	ButtonRun
)

// Bar is the strip of push buttons packed under the simulation field.
type Bar struct {
	buttons []barButton
	area    image.Rectangle
}

type barButton struct {
	label       string
	activeLabel string
	toggle      bool
	rect        image.Rectangle
}

// NewBar returns the Next/Run button strip.
func NewBar() *Bar {
	return &Bar{buttons: []barButton{
		{label: "Next"},
		{label: "Run", activeLabel: "Running", toggle: true},
	}}
}

// Layout splits the strip at [0,width)×[top,top+height) into equally wide
// buttons.
func (b *Bar) Layout(width, top, height int) {
	b.area = image.Rect(0, top, width, top+height)
	count := len(b.buttons)
	if count == 0 || width <= 0 {
		return
	}
	for i := range b.buttons {
		x0 := i * width / count
		x1 := (i + 1) * width / count
		b.buttons[i].rect = image.Rect(x0+buttonGap, top+buttonGap, x1-buttonGap, top+height-buttonGap)
	}
}

// Contains reports whether (x, y) lies inside the strip.
func (b *Bar) Contains(x, y int) bool { return pointInRect(x, y, b.area) }

// Hit returns the id of the button under (x, y), or -1.
func (b *Bar) Hit(x, y int) int {
	for i, btn := range b.buttons {
		if pointInRect(x, y, btn.rect) {
			return i
		}
	}
	return -1
}

// Label returns the caption of button id; toggle buttons change caption
// while active.
func (b *Bar) Label(id int, active bool) string {
	if id < 0 || id >= len(b.buttons) {
		return ""
	}
	btn := b.buttons[id]
	if btn.toggle && active {
		return btn.activeLabel
	}
	return btn.label
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const buttonGap = 4
