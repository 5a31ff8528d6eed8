package propui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/go-theft-auto/propui/flex"
)

// slider describes one horizontal track editor. All value state lives in the
// caller's bindings; the closures translate between value and track fraction.
type slider struct {
	label    string
	thumbW   func(trackW float32) float32
	fraction func() float32  // current value as a track fraction in [0,1]
	set      func(f float32) // apply a dragged fraction
	text     func() string   // value readout, nil for none
	edit     func(io *IO, track Rect)
}

// sliderFraction converts a pointer x into a track fraction. The thumb is
// centered on the pointer and the result is clamped to [0,1].
func sliderFraction(pointerX float32, track Rect, thumbW float32) float32 {
	span := track.W - thumbW
	if span <= 0 {
		return 0
	}
	return clampf((pointerX-track.X-thumbW/2)/span, 0, 1)
}

// intThumbWidth sizes the thumb of an integer slider so that every value has an
// equal share of the track, but never below minThumb.
func intThumbWidth(trackW float32, minVal, maxVal int, minThumb float32) float32 {
	steps := float64(maxVal) - float64(minVal)
	if steps < 0 {
		steps = 0
	}
	return maxf(trackW/float32(steps+1), minThumb)
}

// intSliderValue snaps a track fraction to the nearest integer, rounding halves up.
func intSliderValue(minVal, maxVal int, fraction float32) int {
	if maxVal <= minVal {
		return minVal
	}
	// maxVal-minVal can overflow int
	offset := (float64(maxVal) - float64(minVal)) * float64(clampf(fraction, 0, 1))
	v := float64(minVal) + roundHalfUp64(offset)
	if v >= float64(maxVal) {
		return maxVal
	}
	if v <= float64(minVal) {
		return minVal
	}
	return int(v)
}

func roundHalfUp(v float32) int {
	fl := math32.Floor(v)
	if v-fl >= 0.5 {
		return int(fl) + 1
	}
	return int(fl)
}

func roundHalfUp64(v float64) float64 {
	fl := math.Floor(v)
	if v-fl >= 0.5 {
		return fl + 1
	}
	return fl
}

// valueFraction maps v in [lo,hi] to [0,1].
func valueFraction(v, lo, hi float64) float32 {
	if hi <= lo {
		return 0
	}
	return clampf(float32((v-lo)/(hi-lo)), 0, 1)
}

// ScalarSlider adds a float slider without a value readout.
func (a *Arbiter) ScalarSlider(label string, minVal, maxVal float32, value Binding[float32]) Handle {
	m := a.metrics
	return a.slider(slider{
		label:  label,
		thumbW: func(float32) float32 { return m.FloatThumb },
		fraction: func() float32 {
			return valueFraction(float64(value.Get()), float64(minVal), float64(maxVal))
		},
		set: func(f float32) { value.Set(clampf(minVal+(maxVal-minVal)*f, minVal, maxVal)) },
	})
}

// BoundedFloat adds a float64 slider with a readout. Double-clicking the track
// asks the host for a typed value, which is clamped to [minVal,maxVal].
func (a *Arbiter) BoundedFloat(label string, minVal, maxVal float64, value Binding[float64]) Handle {
	m := a.metrics
	return a.slider(slider{
		label:    label,
		thumbW:   func(float32) float32 { return m.FloatThumb },
		fraction: func() float32 { return valueFraction(value.Get(), minVal, maxVal) },
		set:      func(f float32) { value.Set(clampFloat64(minVal+(maxVal-minVal)*float64(f), minVal, maxVal)) },
		text:     func() string { return fmt.Sprintf("%.3f", value.Get()) },
		edit: func(io *IO, track Rect) {
			io.Host.EditNumber(hostRect(io, track), value.Get(), func(v float64) {
				value.Set(clampFloat64(v, minVal, maxVal))
			})
		},
	})
}

// BoundedInt adds an integer slider. The thumb covers one value's share of the
// track and dragging snaps to whole numbers.
func (a *Arbiter) BoundedInt(label string, minVal, maxVal int, value Binding[int]) Handle {
	m := a.metrics
	return a.slider(slider{
		label: label,
		thumbW: func(trackW float32) float32 {
			return intThumbWidth(trackW, minVal, maxVal, m.MinThumbSize)
		},
		fraction: func() float32 {
			return valueFraction(float64(value.Get()), float64(minVal), float64(maxVal))
		},
		set:  func(f float32) { value.Set(intSliderValue(minVal, maxVal, f)) },
		text: func() string { return strconv.Itoa(value.Get()) },
		edit: func(io *IO, track Rect) {
			io.Host.EditNumber(hostRect(io, track), float64(value.Get()), func(v float64) {
				value.Set(roundHalfUp(float32(clampFloat64(v, float64(minVal), float64(maxVal)))))
			})
		},
	})
}

func (a *Arbiter) slider(s slider) Handle {
	m := a.metrics
	row := a.BeginContainer(s.label, flex.Style{
		Direction:  flex.Row,
		AlignItems: flex.AlignCenter,
		Gap:        m.ItemSpacing,
	})

	a.Leaf("##track", fixedSize(m.TrackWidth, m.TrackHeight),
		func(p *Painter, frame, _ Rect, id ID, io *IO) {
			tw := s.thumbW(frame.W)
			f := s.fraction()
			p.FillRect(frame, StyleColor(ColorSliderTrack), m.Rounding, CornersAll)
			fill := Rect{X: frame.X, Y: frame.Y, W: tw/2 + (frame.W-tw)*f, H: frame.H}
			p.FillRect(fill, StyleColor(ColorSliderFill), m.Rounding, CornersLeft)

			thumb := Rect{X: frame.X + (frame.W-tw)*f, Y: frame.Y, W: tw, H: frame.H}
			color := StyleColor(ColorSliderThumb)
			if _, held, _ := ButtonBehavior(id, io); held || io.Hovered(id) {
				color = StyleColor(ColorSliderThumbActive)
			}
			p.FillRect(thumb, color, m.Rounding, CornersAll)
		},
		func(frame, _ Rect, id ID, io *IO) {
			_, held, _ := ButtonBehavior(id, io)
			if io.DoubleClick && io.Hovered(id) && s.edit != nil && io.Host != nil {
				s.edit(io, frame)
				return
			}
			if held {
				s.set(sliderFraction(io.Pointer.X, frame, s.thumbW(frame.W)))
			}
		})

	if s.text != nil {
		readout := s.text
		size := a.measurer.MeasureText(readout())
		a.Leaf("", fixedSize(size.X, size.Y), func(p *Painter, _, content Rect, _ ID, _ *IO) {
			p.DrawText(content.Min(), readout(), StyleColor(ColorText))
		}, nil)
	}
	if s.label != "" {
		a.text("", s.label, ColorText)
	}
	a.EndContainer()
	return row
}

// hostRect maps a frame rectangle into host coordinates.
func hostRect(io *IO, r Rect) Rect {
	if io.ToHost == nil {
		return r
	}
	tl := io.ToHost(r.Min())
	br := io.ToHost(r.Max())
	return Rect{X: tl.X, Y: tl.Y, W: br.X - tl.X, H: br.Y - tl.Y}
}

func clampFloat64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
