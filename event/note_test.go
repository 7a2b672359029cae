package event

import (
	"testing"

	"github.com/srappl/composer/constants"
	"github.com/stretchr/testify/assert"
)

func TestNewNoteDefaults(t *testing.T) {
	n := NewNote()

	assert := assert.New(t)
	assert.Equal(constants.C4, n.Pitch)
	assert.Equal(constants.QuarterNote, n.Duration)
	assert.False(n.Dotted)
	assert.False(n.Triplet)
}

func TestNoteDotTwice(t *testing.T) {
	n := NewNote()

	assert := assert.New(t)
	assert.True(n.Dot())
	assert.Equal(constants.DottedQuarterNote, n.Duration)
	assert.True(n.Dot())
	assert.Equal(constants.QuarterNote/4*7, n.Duration)
	assert.False(n.Dot())
}

func TestNoteDotFailsAtFinestSubdivision(t *testing.T) {
	n := NewNoteWith(constants.C4, constants.OneTwentyEighthNote)

	assert := assert.New(t)
	assert.False(n.Dot())
	assert.Equal(constants.OneTwentyEighthNote, n.Duration)
}

func TestNoteDoubleDotFailsWhenDotted(t *testing.T) {
	n := NewNote()
	n.Dot()

	assert := assert.New(t)
	assert.False(n.DoubleDot())
	assert.Equal(constants.DottedQuarterNote, n.Duration)
}

func TestNotePutInTripletOnlyOnce(t *testing.T) {
	n := NewNote()

	assert := assert.New(t)
	assert.True(n.PutInTriplet())
	assert.Equal(constants.QuarterNote/3*2, n.Duration)
	assert.False(n.PutInTriplet())
	assert.Equal(constants.QuarterNote/3*2, n.Duration)
}

func TestNoteOctaveBounds(t *testing.T) {
	assert := assert.New(t)

	n := NewNoteWith(120, constants.QuarterNote)
	assert.False(n.AddOctave())
	assert.Equal(120, n.Pitch)

	n = NewNoteWith(5, constants.QuarterNote)
	assert.False(n.DropOctave())
	assert.Equal(5, n.Pitch)

	n = NewNote()
	assert.True(n.AddOctave())
	assert.True(n.DropOctave())
	assert.Equal(constants.C4, n.Pitch)
}

func TestNoteEquals(t *testing.T) {
	a := NewNote()
	b := NewNote()

	assert := assert.New(t)
	assert.True(a.Equals(b))

	b.Slurred = true
	assert.False(a.Equals(b))
}
