package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/srappl/composer/constants"
	"github.com/srappl/composer/event"
	"github.com/srappl/composer/model"
	"github.com/stretchr/testify/assert"
)

func postTransform(t *testing.T, body model.TransformRequestBody) *httptest.ResponseRecorder {
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/transform", bytes.NewReader(b))
	w := httptest.NewRecorder()
	handleTransform(w, req)
	return w
}

func TestHandleTransformAppliesOpsInOrder(t *testing.T) {
	w := postTransform(t, model.TransformRequestBody{
		Chord: *event.NewChord(),
		Ops:   []string{"dot", "dot", "dot", "invert"},
	})

	assert := assert.New(t)
	assert.Equal(200, w.Code)

	var res model.TransformResult
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal([]int{64, 67, 72}, res.Chord.Pitches)
	assert.Equal(constants.QuarterNote/4*7, res.Chord.Duration)
	assert.Equal([]model.OpResult{
		{Op: "dot", Ok: true},
		{Op: "dot", Ok: true},
		{Op: "dot", Ok: false},
		{Op: "invert", Ok: true},
	}, res.Applied)
}

func TestHandleTransformRejectsUnknownOp(t *testing.T) {
	w := postTransform(t, model.TransformRequestBody{
		Chord: *event.NewChord(),
		Ops:   []string{"smear"},
	})

	assert := assert.New(t)
	assert.Equal(400, w.Code)

	var res model.ErrorResponse
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(res.Error, "unknown op")
}

func TestHandleTransformFailedOpLeavesChordUnchanged(t *testing.T) {
	chord := *event.NewChordWith([]int{115, 120}, constants.QuarterNote)
	w := postTransform(t, model.TransformRequestBody{
		Chord: chord,
		Ops:   []string{"add_octave"},
	})

	assert := assert.New(t)
	assert.Equal(200, w.Code)

	var res model.TransformResult
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal([]int{115, 120}, res.Chord.Pitches)
	assert.Equal([]model.OpResult{{Op: "add_octave", Ok: false}}, res.Applied)
}
