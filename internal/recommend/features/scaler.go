// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package features

// MinMaxScaler maps the observed [Min, Max] range linearly onto [0, 1].
type MinMaxScaler struct {
	Min float64
	Max float64
}

// FitMinMax records the minimum and maximum of values.
// An empty input yields the zero scaler.
func FitMinMax(values []float64) MinMaxScaler {
	if len(values) == 0 {
		return MinMaxScaler{}
	}
	s := MinMaxScaler{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	return s
}

// scale is the divisor; a constant column scales by 1 so every fitted
// value maps to 0.
func (s MinMaxScaler) scale() float64 {
	if r := s.Max - s.Min; r != 0 {
		return r
	}
	return 1
}

// Transform scales v. Values outside the fitted range fall outside [0, 1].
func (s MinMaxScaler) Transform(v float64) float64 {
	return (v - s.Min) / s.scale()
}

// TransformClamped scales v and clamps the result to [0, 1].
func (s MinMaxScaler) TransformClamped(v float64) float64 {
	x := s.Transform(v)
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
