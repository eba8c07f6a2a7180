// Package solverapi exposes maze variants and their solutions over HTTP.
package solverapi

import "github.com/google/uuid"

// CellResponse is one logical cell of a route.
type CellResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MazeResponse represents an unsolved maze variant.
type MazeResponse struct {
	Variant int64    `json:"variant"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Maze    []string `json:"maze"`
}

// SolutionResponse represents the result of solving a maze variant.
type SolutionResponse struct {
	ID      uuid.UUID      `json:"id"`
	Variant int64          `json:"variant"`
	Found   bool           `json:"found"`
	Maze    []string       `json:"maze"`
	Solved  []string       `json:"solved,omitempty"`
	Route   []CellResponse `json:"route,omitempty"`
}
