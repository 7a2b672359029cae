package event

import (
	"github.com/srappl/composer/constants"
)

// Rest represents a silence with a duration. It takes the rhythmic
// modifiers but has no pitch and no articulation.
type Rest struct {
	Duration     int  `json:"duration"`
	Triplet      bool `json:"triplet"`
	Dotted       bool `json:"dotted"`
	DoubleDotted bool `json:"double_dotted"`
}

// NewRest returns a quarter rest.
func NewRest() *Rest {
	return &Rest{Duration: constants.QuarterNote}
}

func NewRestWith(duration int) *Rest {
	return &Rest{Duration: duration}
}

func (r *Rest) Ticks() int {
	return r.Duration
}

// Dot adds a dot, or the second dot if the rest is already dotted. Same
// boundaries as Chord.Dot.
func (r *Rest) Dot() bool {
	if !r.Dotted {
		if r.Duration == constants.OneTwentyEighthNote {
			return false
		}
		r.Dotted = true
		r.Duration = r.Duration / 2 * 3
		return true
	}
	if !r.DoubleDotted {
		if r.Duration == constants.DottedSixtyFourthNote {
			return false
		}
		r.DoubleDotted = true
		r.Duration = r.Duration / 6 * 7
		return true
	}
	return false
}

// DoubleDot adds two dots at once. Same boundaries as Chord.DoubleDot.
func (r *Rest) DoubleDot() bool {
	if r.Dotted {
		return false
	}
	if r.Duration == constants.OneTwentyEighthNote || r.Duration == constants.SixtyFourthNote {
		return false
	}
	r.Dotted = true
	r.DoubleDotted = true
	r.Duration = r.Duration / 4 * 7
	return true
}

// PutInTriplet compresses the duration to 2/3 of its value, once.
func (r *Rest) PutInTriplet() bool {
	if r.Triplet {
		return false
	}
	r.Triplet = true
	r.Duration = r.Duration / 3 * 2
	return true
}

// Equals reports whether both rests agree on every field.
func (r *Rest) Equals(other *Rest) bool {
	if r.Duration != other.Duration {
		return false
	}
	if r.Triplet != other.Triplet {
		return false
	}
	if r.Dotted != other.Dotted {
		return false
	}
	if r.DoubleDotted != other.DoubleDotted {
		return false
	}
	return true
}
