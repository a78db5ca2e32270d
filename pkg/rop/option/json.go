package option

import (
	"encoding/json"
	"fmt"
)

type wire[T any] struct {
	HasValue bool `json:"hasValue"`
	Value    *T   `json:"value,omitempty"`
}

// MarshalJSON encodes Some(v) as {"hasValue":true,"value":v} and None as {"hasValue":false}.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	w := wire[T]{HasValue: o.IsSome()}
	if o.IsSome() {
		w.Value = &o.value
	}
	return json.Marshal(w)
}

func (o *Option[T]) UnmarshalJSON(data []byte) error {
	var w wire[json.RawMessage]
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("option: %w", err)
	}
	if !w.HasValue {
		*o = None[T]()
		return nil
	}

	var value T
	if w.Value != nil {
		if err := json.Unmarshal(*w.Value, &value); err != nil {
			return fmt.Errorf("option: value: %w", err)
		}
	}
	*o = Some(value)
	return nil
}
