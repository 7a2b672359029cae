package constants

import "os"

// Note durations measured in ticks at 192 ticks per quarter note. Every
// value is divisible by 6 so the dot, double dot and triplet math in the
// event package stays exact.
const (
	OneTwentyEighthNote    = 6
	SixtyFourthNote        = 12
	DottedSixtyFourthNote  = 18
	ThirtySecondNote       = 24
	DottedThirtySecondNote = 36
	SixteenthNote          = 48
	DottedSixteenthNote    = 72
	EighthNote             = 96
	DottedEighthNote       = 144
	QuarterNote            = 192
	DottedQuarterNote      = 288
	HalfNote               = 384
	DottedHalfNote         = 576
	WholeNote              = 768
	DottedWholeNote        = 1152
)

const TicksPerQuarterNote = QuarterNote

// Pitches are midi note numbers restricted to [0, MaxPitch].
const (
	MaxPitch = 126
	Octave   = 12
)

const (
	C4  = 60
	Cs4 = 61
	D4  = 62
	Ds4 = 63
	E4  = 64
	F4  = 65
	Fs4 = 66
	G4  = 67
	Gs4 = 68
	A4  = 69
	As4 = 70
	B4  = 71
	C5  = 72
	D5  = 74
	E5  = 76
	G5  = 79
)

// CMajorChord is the default pitch set for new chords, voiced from middle C.
var CMajorChord = []int{C4, E4, G4}

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}
