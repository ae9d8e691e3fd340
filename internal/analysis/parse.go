package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// the model's text did not parse into a RoomAnalysis
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse room analysis: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// strips optional ```json / ``` fences; anything but a single JSON object is an error
func ParseAnalysis(text string) (*RoomAnalysis, error) {
	cleaned := stripFences(text)

	// null and arrays unmarshal into a struct without complaint
	if !strings.HasPrefix(cleaned, "{") {
		return nil, &ParseError{Raw: text, Err: errors.New("expected a JSON object")}
	}

	var out RoomAnalysis
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, &ParseError{Raw: text, Err: err}
	}

	return &out, nil
}

func stripFences(text string) string {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
