package slider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/slider"
)

func TestSlider_Wraps(t *testing.T) {
	t.Parallel()

	s := slider.New(3, 0)
	assert.Equal(t, 1, s.Next().Current())
	assert.Equal(t, 2, s.Prev().Current())
	assert.Equal(t, 0, s.Next().Next().Next().Current())
	assert.Equal(t, 1, s.GoTo(7).Current())
	assert.Equal(t, 2, s.GoTo(-4).Current())
	assert.True(t, s.HasControls())
}

func TestSlider_New(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		count   int
		current int
		want    int
	}{
		{name: "in range", count: 4, current: 2, want: 2},
		{name: "past end", count: 4, current: 5, want: 1},
		{name: "negative", count: 4, current: -1, want: 3},
		{name: "no slides", count: 0, current: 3, want: 0},
		{name: "negative count", count: -2, current: 1, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, slider.New(tc.count, tc.current).Current())
		})
	}
}

func TestSlider_SingleSlide(t *testing.T) {
	t.Parallel()

	s := slider.New(1, 0)
	assert.False(t, s.HasControls())
	assert.Equal(t, 0, s.Next().Current())
	assert.Equal(t, 0, s.Prev().Current())
	assert.False(t, slider.New(0, 0).HasControls())
	assert.Equal(t, 0, slider.New(0, 0).Next().Current())
}
