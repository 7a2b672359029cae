package midifile

import (
	"fmt"

	"github.com/srappl/composer/constants"
	"github.com/srappl/composer/event"
	"github.com/srappl/composer/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const defaultVelocity = 80
const accentVelocity = 110

// gateTicks is how long an event actually sounds. Staccato halves the gate
// but never below the finest subdivision.
func gateTicks(ticks int, staccato bool) int {
	if staccato {
		return util.Max(ticks/2, constants.OneTwentyEighthNote)
	}
	return ticks
}

// Render turns an event sequence into a single-track standard midi file.
// Rests advance time silently; chords sound all of their pitches at once.
func Render(events []event.Event) *smf.SMF {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarterNote)

	var track smf.Track
	var wait uint32
	for _, ev := range events {
		switch e := ev.(type) {
		case *event.Chord:
			if len(e.Pitches) == 0 {
				wait += uint32(e.Duration)
				continue
			}
			vel := velocity(e.Accent)
			gate := gateTicks(e.Duration, e.Staccato)
			for i, p := range e.Pitches {
				var delta uint32
				if i == 0 {
					delta = wait
				}
				track.Add(delta, midi.NoteOn(0, uint8(p), vel))
			}
			for i, p := range e.Pitches {
				var delta uint32
				if i == 0 {
					delta = uint32(gate)
				}
				track.Add(delta, midi.NoteOff(0, uint8(p)))
			}
			wait = uint32(e.Duration - gate)
		case *event.Note:
			gate := gateTicks(e.Duration, e.Staccato)
			track.Add(wait, midi.NoteOn(0, uint8(e.Pitch), velocity(e.Accent)))
			track.Add(uint32(gate), midi.NoteOff(0, uint8(e.Pitch)))
			wait = uint32(e.Duration - gate)
		case *event.Rest:
			wait += uint32(e.Duration)
		}
	}
	track.Close(wait)

	s.Tracks = append(s.Tracks, track)
	return &s
}

func velocity(accent bool) uint8 {
	if accent {
		return accentVelocity
	}
	return defaultVelocity
}

func WriteFile(path string, events []event.Event) error {
	s := Render(events)
	if err := s.WriteFile(path); err != nil {
		return fmt.Errorf("could not write midi file %v: %w", path, err)
	}
	return nil
}
