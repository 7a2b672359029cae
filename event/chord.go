package event

import (
	"github.com/srappl/composer/constants"
)

// Chord represents several pitches sounding together for the same duration.
// Pitches is voicing order as entered: index 0 is the bottom voice, which is
// what the octave and inversion operations key off. The slice is not kept
// sorted after mutation.
//
// Every mutating method reports success with a bool and leaves the chord
// untouched when it returns false.
type Chord struct {
	Pitches      []int `json:"pitches"`
	Duration     int   `json:"duration"`
	Triplet      bool  `json:"triplet"`
	Dotted       bool  `json:"dotted"`
	DoubleDotted bool  `json:"double_dotted"`
	Staccato     bool  `json:"staccato"`
	Tenuto       bool  `json:"tenuto"`
	Accent       bool  `json:"accent"`
	Fermata      bool  `json:"fermata"`
	Tied         bool  `json:"tied"`
	Slurred      bool  `json:"slurred"`
}

// NewChord returns a C major chord with the duration of a quarter note.
func NewChord() *Chord {
	return &Chord{
		Pitches:  append([]int(nil), constants.CMajorChord...),
		Duration: constants.QuarterNote,
	}
}

// NewChordWith returns a chord with the given pitches and duration and all
// modifier flags off.
func NewChordWith(pitches []int, duration int) *Chord {
	return &Chord{Pitches: pitches, Duration: duration}
}

func (c *Chord) Ticks() int {
	return c.Duration
}

// Dot adds a dot to the chord, extending its duration by half. If the chord
// is already dotted it adds the second dot instead, scaling the dotted
// duration by 7/6 for an overall 7/4 of the original. Fails without changing
// anything when the chord is already double dotted or the duration is too
// fine to subdivide further.
func (c *Chord) Dot() bool {
	if !c.Dotted {
		if c.Duration == constants.OneTwentyEighthNote {
			return false
		}
		c.Dotted = true
		c.Duration = c.Duration / 2 * 3
		return true
	}
	if !c.DoubleDotted {
		if c.Duration == constants.DottedSixtyFourthNote {
			return false
		}
		c.DoubleDotted = true
		c.Duration = c.Duration / 6 * 7
		return true
	}
	return false
}

// DoubleDot adds two dots at once, turning the duration into 7/4 of its
// original value. Fails if the chord already carries a dot or the duration
// is a sixty-fourth note or finer.
func (c *Chord) DoubleDot() bool {
	if c.Dotted {
		return false
	}
	if c.Duration == constants.OneTwentyEighthNote || c.Duration == constants.SixtyFourthNote {
		return false
	}
	c.Dotted = true
	c.DoubleDotted = true
	c.Duration = c.Duration / 4 * 7
	return true
}

// PutInTriplet compresses the duration to 2/3 of its value. A chord can only
// be put in a triplet once.
func (c *Chord) PutInTriplet() bool {
	if c.Triplet {
		return false
	}
	c.Triplet = true
	c.Duration = c.Duration / 3 * 2
	return true
}

// AddOctave moves every pitch up an octave. Fails if the chord is empty or
// the top voice would leave the valid range; on failure no pitch moves.
func (c *Chord) AddOctave() bool {
	if len(c.Pitches) == 0 || c.Pitches[len(c.Pitches)-1]+constants.Octave > constants.MaxPitch {
		return false
	}
	for i := range c.Pitches {
		c.Pitches[i] += constants.Octave
	}
	return true
}

// DropOctave moves every pitch down an octave. Fails if the chord is empty
// or the bottom voice would go below zero; on failure no pitch moves.
func (c *Chord) DropOctave() bool {
	if len(c.Pitches) == 0 || c.Pitches[0]-constants.Octave < 0 {
		return false
	}
	for i := range c.Pitches {
		c.Pitches[i] -= constants.Octave
	}
	return true
}

// Invert moves the bottom voice up an octave and repositions it as the top
// voice. Fails with fewer than two pitches or when the raised voice would
// leave the valid range.
func (c *Chord) Invert() bool {
	if len(c.Pitches) < 2 || c.Pitches[0]+constants.Octave > constants.MaxPitch {
		return false
	}
	c.Pitches = append(c.Pitches, c.Pitches[0]+constants.Octave)
	c.Pitches = c.Pitches[1:]
	return true
}

// Equals reports whether both chords have the same pitches in the same
// order and agree on every other field.
func (c *Chord) Equals(other *Chord) bool {
	if len(c.Pitches) != len(other.Pitches) {
		return false
	}
	for i := range c.Pitches {
		if c.Pitches[i] != other.Pitches[i] {
			return false
		}
	}
	if c.Duration != other.Duration {
		return false
	}
	if c.Triplet != other.Triplet {
		return false
	}
	if c.Dotted != other.Dotted {
		return false
	}
	if c.DoubleDotted != other.DoubleDotted {
		return false
	}
	if c.Staccato != other.Staccato {
		return false
	}
	if c.Tenuto != other.Tenuto {
		return false
	}
	if c.Accent != other.Accent {
		return false
	}
	if c.Fermata != other.Fermata {
		return false
	}
	if c.Tied != other.Tied {
		return false
	}
	if c.Slurred != other.Slurred {
		return false
	}
	return true
}
