package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/srappl/composer/constants"
	"github.com/srappl/composer/event"
	"github.com/srappl/composer/midifile"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Exports a demo progression as a midi file",
	Long:  `Exports a demo progression as a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		var path string
		if len(args) == 1 {
			path = args[0]
		}
		export(path)
	},
}

func demoProgression() []event.Event {
	tonic := event.NewChord()

	subdominant := event.NewChordWith([]int{constants.F4, constants.A4, constants.C5}, constants.QuarterNote)
	subdominant.Dot()

	dominant := event.NewChordWith([]int{constants.G4, constants.B4, constants.D5}, constants.EighthNote)
	dominant.Invert()
	dominant.Accent = true

	run := event.NewNoteWith(constants.E5, constants.EighthNote)
	run.PutInTriplet()

	resolution := event.NewChord()
	resolution.DropOctave()
	resolution.Fermata = true

	return []event.Event{
		tonic,
		event.NewRestWith(constants.EighthNote),
		subdominant,
		dominant,
		run,
		event.NewNoteWith(constants.C5, constants.QuarterNote),
		resolution,
	}
}

func export(path string) {
	if path == "" {
		outDir := constants.GetOutDir()
		if err := os.MkdirAll(outDir, 0777); err != nil {
			panic("Could not create out dir because: " + err.Error())
		}
		path = filepath.Join(outDir, uuid.New().String()+".mid")
	}

	if err := midifile.WriteFile(path, demoProgression()); err != nil {
		panic("Could not export because: " + err.Error())
	}
	fmt.Printf("Wrote %v\n", path)
}
