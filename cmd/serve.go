package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/srappl/composer/event"
	"github.com/srappl/composer/model"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the transform API",
	Long:  `Serves the transform API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func applyOp(c *event.Chord, op string) (bool, error) {
	switch op {
	case "dot":
		return c.Dot(), nil
	case "double_dot":
		return c.DoubleDot(), nil
	case "triplet":
		return c.PutInTriplet(), nil
	case "add_octave":
		return c.AddOctave(), nil
	case "drop_octave":
		return c.DropOctave(), nil
	case "invert":
		return c.Invert(), nil
	default:
		return false, fmt.Errorf("unknown op: %v", op)
	}
}

func handleTransform(w http.ResponseWriter, r *http.Request) {
	reqBody, err := ioutil.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return
	}

	var input model.TransformRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		w.WriteHeader(400)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: "Could not unmarshal request body: " + err.Error()})
		return
	}

	c := input.Chord
	applied := make([]model.OpResult, 0, len(input.Ops))
	for _, op := range input.Ops {
		ok, err := applyOp(&c, op)
		if err != nil {
			w.WriteHeader(400)
			json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
			return
		}
		applied = append(applied, model.OpResult{Op: op, Ok: ok})
	}

	json.NewEncoder(w).Encode(model.TransformResult{Chord: c, Applied: applied})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/transform", handleTransform).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
