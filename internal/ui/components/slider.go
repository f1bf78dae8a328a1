package components

import (
	"github.com/charmbracelet/bubbles/progress"
)

const defaultSliderWidth = 30

// Slider shows an integer within [min, max] as a filled track.
type Slider struct {
	value int
	min   int
	max   int
}

// NewSlider creates a slider. Values outside the range are clamped when rendered.
func NewSlider(value, min, max int) *Slider {
	return &Slider{value: value, min: min, max: max}
}

// Ratio returns the filled fraction in [0, 1].
func (s *Slider) Ratio() float64 {
	if s.max <= s.min {
		return 1
	}
	v := s.value
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	return float64(v-s.min) / float64(s.max-s.min)
}

// View renders with the default theme.
func (s *Slider) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the track using the context width when set.
func (s *Slider) ViewWithContext(ctx RenderContext) string {
	width := ctx.Width
	if width <= 0 {
		width = defaultSliderWidth
	}

	bar := progress.New(
		progress.WithSolidFill(string(ctx.Theme.Palette.Primary)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	bar.EmptyColor = string(ctx.Theme.Palette.Track)

	return bar.ViewAs(s.Ratio())
}
