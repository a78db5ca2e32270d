package either

import (
	"encoding/json"
	"fmt"
)

type wire[L, R any] struct {
	Variant uint8 `json:"variant"`
	Left    *L    `json:"left,omitempty"`
	Right   *R    `json:"right,omitempty"`
}

// MarshalJSON encodes a Left as {"variant":1,"left":v} and a Right as
// {"variant":2,"right":v}. The default state cannot be encoded.
func (e Either[L, R]) MarshalJSON() ([]byte, error) {
	w := wire[L, R]{Variant: e.Discriminant()}
	switch e.status {
	case statusLeft:
		w.Left = &e.left
	case statusRight:
		w.Right = &e.right
	default:
		return nil, fmt.Errorf("either: cannot encode: %w", ErrDefaultValue)
	}
	return json.Marshal(w)
}

func (e *Either[L, R]) UnmarshalJSON(data []byte) error {
	var w wire[json.RawMessage, json.RawMessage]
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("either: %w", err)
	}

	switch status(w.Variant) {
	case statusLeft:
		var v L
		if err := unmarshalSide(w.Left, &v); err != nil {
			return fmt.Errorf("either: left: %w", err)
		}
		*e = Left[L, R](v)
	case statusRight:
		var v R
		if err := unmarshalSide(w.Right, &v); err != nil {
			return fmt.Errorf("either: right: %w", err)
		}
		*e = Right[L](v)
	default:
		return fmt.Errorf("either: unknown variant %d: %w", w.Variant, ErrDefaultValue)
	}
	return nil
}

func unmarshalSide[T any](raw *json.RawMessage, v *T) error {
	if raw == nil {
		return nil
	}
	return json.Unmarshal(*raw, v)
}
