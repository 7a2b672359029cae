package cmd

import (
	"fmt"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"github.com/srappl/composer/constants"
	"github.com/srappl/composer/event"
	"github.com/srappl/composer/util"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Builds chords from live midi input",
	Long:  `Builds chords from live midi input`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func printHeld(held map[uint8]bool) {
	keys := util.SortedKeys(held)
	if len(keys) < 2 {
		return
	}

	pitches := make([]int, 0, len(keys))
	for _, k := range keys {
		pitches = append(pitches, int(k))
	}
	c := event.NewChordWith(pitches, constants.QuarterNote)
	fmt.Printf("chord: %v\n", c.Pitches)
}

func listen() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi input port")
		return
	}

	held := make(map[uint8]bool)
	debounced := debounce.New(50 * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			held[key] = true
			debounced(func() { printHeld(held) })
		case msg.GetNoteEnd(&ch, &key):
			delete(held, key)
			debounced(func() { printHeld(held) })
		default:
			// ignore
		}
	}, midi.UseSysEx())

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	time.Sleep(time.Second * 5000) // lol
	stop()
}
