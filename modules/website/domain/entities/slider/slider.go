// Package slider tracks the active slide of a rotating hero banner.
package slider

// Slider is an immutable position over count slides. All moves wrap around.
type Slider struct {
	count   int
	current int
}

// New returns a slider positioned at current, wrapped into range.
func New(count, current int) Slider {
	if count < 0 {
		count = 0
	}
	s := Slider{count: count}
	return s.GoTo(current)
}

func (s Slider) Count() int {
	return s.count
}

// Current is the active index; 0 when there are no slides.
func (s Slider) Current() int {
	return s.current
}

func (s Slider) Next() Slider {
	return s.GoTo(s.current + 1)
}

func (s Slider) Prev() Slider {
	return s.GoTo(s.current - 1)
}

func (s Slider) GoTo(i int) Slider {
	if s.count == 0 {
		s.current = 0
		return s
	}
	s.current = ((i % s.count) + s.count) % s.count
	return s
}

// HasControls reports whether arrows and dots make sense.
func (s Slider) HasControls() bool {
	return s.count > 1
}
