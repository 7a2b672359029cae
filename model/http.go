package model

import (
	"github.com/srappl/composer/event"
)

type TransformRequestBody struct {
	Chord event.Chord `json:"chord"`
	Ops   []string    `json:"ops"`
}

type OpResult struct {
	Op string `json:"op"`
	Ok bool   `json:"ok"`
}

type TransformResult struct {
	Chord   event.Chord `json:"chord"`
	Applied []OpResult  `json:"applied"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
