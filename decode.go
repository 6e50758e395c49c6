package jsonrepair

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/repairjson/jsonrepair/internal/jsonext"
)

// ParseState reports how far ParsePartialJSON had to go to obtain a value.
type ParseState string

const (
	// ParseStateUndefined means the input was empty.
	ParseStateUndefined ParseState = "undefined"

	// ParseStateSuccessful means the input parsed without repair.
	ParseStateSuccessful ParseState = "successful"

	// ParseStateRepaired means the input parsed after repair.
	ParseStateRepaired ParseState = "repaired"

	// ParseStateFailed means no value could be recovered.
	ParseStateFailed ParseState = "failed"
)

// ParsePartialJSON decodes potentially incomplete JSON into plain Go
// values. It tries a strict decode first and falls back to repair, tagging
// the result with how it got there.
//
// Example:
//
//	obj, state, err := ParsePartialJSON(`{"name": "John", "age": 25`)
//	// Result: map[string]any{"name": "John", "age": float64(25)}, ParseStateRepaired, nil
func ParsePartialJSON(text string) (any, ParseState, error) {
	if text == "" {
		return nil, ParseStateUndefined, nil
	}

	var result any
	if jsonext.IsValidJSON(text) {
		if err := json.Unmarshal([]byte(text), &result); err == nil {
			return result, ParseStateSuccessful, nil
		}
	}

	repaired := Repair(text)
	if repaired == "" {
		return nil, ParseStateFailed, errors.New("no json value could be recovered")
	}
	if err := json.Unmarshal([]byte(repaired), &result); err != nil {
		return nil, ParseStateFailed, fmt.Errorf("failed to parse repaired json: %w", err)
	}
	return result, ParseStateRepaired, nil
}
