package event

import (
	"github.com/srappl/composer/constants"
)

// Note represents a single pitch sounding for a duration. It carries the
// same rhythmic and articulation modifiers as Chord and follows the same
// rule: mutating methods report success with a bool and change nothing on
// failure.
type Note struct {
	Pitch        int  `json:"pitch"`
	Duration     int  `json:"duration"`
	Triplet      bool `json:"triplet"`
	Dotted       bool `json:"dotted"`
	DoubleDotted bool `json:"double_dotted"`
	Staccato     bool `json:"staccato"`
	Tenuto       bool `json:"tenuto"`
	Accent       bool `json:"accent"`
	Fermata      bool `json:"fermata"`
	Tied         bool `json:"tied"`
	Slurred      bool `json:"slurred"`
}

// NewNote returns a middle C with the duration of a quarter note.
func NewNote() *Note {
	return &Note{Pitch: constants.C4, Duration: constants.QuarterNote}
}

func NewNoteWith(pitch int, duration int) *Note {
	return &Note{Pitch: pitch, Duration: duration}
}

func (n *Note) Ticks() int {
	return n.Duration
}

// Dot adds a dot, or the second dot if the note is already dotted. Same
// boundaries as Chord.Dot.
func (n *Note) Dot() bool {
	if !n.Dotted {
		if n.Duration == constants.OneTwentyEighthNote {
			return false
		}
		n.Dotted = true
		n.Duration = n.Duration / 2 * 3
		return true
	}
	if !n.DoubleDotted {
		if n.Duration == constants.DottedSixtyFourthNote {
			return false
		}
		n.DoubleDotted = true
		n.Duration = n.Duration / 6 * 7
		return true
	}
	return false
}

// DoubleDot adds two dots at once. Same boundaries as Chord.DoubleDot.
func (n *Note) DoubleDot() bool {
	if n.Dotted {
		return false
	}
	if n.Duration == constants.OneTwentyEighthNote || n.Duration == constants.SixtyFourthNote {
		return false
	}
	n.Dotted = true
	n.DoubleDotted = true
	n.Duration = n.Duration / 4 * 7
	return true
}

// PutInTriplet compresses the duration to 2/3 of its value, once.
func (n *Note) PutInTriplet() bool {
	if n.Triplet {
		return false
	}
	n.Triplet = true
	n.Duration = n.Duration / 3 * 2
	return true
}

// AddOctave moves the note up an octave if it stays within range.
func (n *Note) AddOctave() bool {
	if n.Pitch+constants.Octave > constants.MaxPitch {
		return false
	}
	n.Pitch += constants.Octave
	return true
}

// DropOctave moves the note down an octave if it stays within range.
func (n *Note) DropOctave() bool {
	if n.Pitch-constants.Octave < 0 {
		return false
	}
	n.Pitch -= constants.Octave
	return true
}

// Equals reports whether both notes agree on every field.
func (n *Note) Equals(other *Note) bool {
	if n.Pitch != other.Pitch {
		return false
	}
	if n.Duration != other.Duration {
		return false
	}
	if n.Triplet != other.Triplet {
		return false
	}
	if n.Dotted != other.Dotted {
		return false
	}
	if n.DoubleDotted != other.DoubleDotted {
		return false
	}
	if n.Staccato != other.Staccato {
		return false
	}
	if n.Tenuto != other.Tenuto {
		return false
	}
	if n.Accent != other.Accent {
		return false
	}
	if n.Fermata != other.Fermata {
		return false
	}
	if n.Tied != other.Tied {
		return false
	}
	if n.Slurred != other.Slurred {
		return false
	}
	return true
}
