package picker

import (
	"fmt"
	"strings"
)

// Carousel is a wrapping scroller over the values 0..size-1.
type Carousel struct {
	label string
	size  int
	index int
}

// NewCarousel creates a carousel positioned at 0.
func NewCarousel(label string, size int) Carousel {
	return Carousel{
		label: label,
		size:  size,
	}
}

// Value returns the current value.
func (c Carousel) Value() int {
	return c.index
}

// SetValue moves to v, wrapping values outside the range.
func (c *Carousel) SetValue(v int) {
	c.index = ((v % c.size) + c.size) % c.size
}

// Next scrolls forward by one.
func (c *Carousel) Next() {
	c.SetValue(c.index + 1)
}

// Prev scrolls back by one.
func (c *Carousel) Prev() {
	c.SetValue(c.index - 1)
}

// View renders the previous, current and next values stacked vertically.
func (c Carousel) View(focused bool) string {
	var (
		prev    = formatValue((c.index - 1 + c.size) % c.size)
		current = formatValue(c.index)
		next    = formatValue((c.index + 1) % c.size)
		rows    = make([]string, 0, 4)
	)

	style := valueStyle
	if focused {
		style = focusedValueStyle
	}

	rows = append(rows,
		labelStyle.Render(c.label),
		dimStyle.Render(prev),
		style.Render(current),
		dimStyle.Render(next),
	)

	return strings.Join(rows, "\n")
}

func formatValue(v int) string {
	return fmt.Sprintf("%02d", v)
}
