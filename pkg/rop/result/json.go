package result

import (
	"encoding/json"
	"fmt"
)

type wire[E, T any] struct {
	Variant uint8 `json:"variant"`
	Err     *E    `json:"err,omitempty"`
	Ok      *T    `json:"ok,omitempty"`
}

// MarshalJSON encodes an Err as {"variant":0,"err":e} and an Ok as
// {"variant":1,"ok":v}. Encoding a zero Result panics like any other read of
// its Err payload.
func (r Result[E, T]) MarshalJSON() ([]byte, error) {
	w := wire[E, T]{Variant: r.Discriminant()}
	if r.IsOk() {
		w.Ok = &r.ok
	} else {
		errValue := r.errValue()
		w.Err = &errValue
	}
	return json.Marshal(w)
}

func (r *Result[E, T]) UnmarshalJSON(data []byte) error {
	var w wire[json.RawMessage, json.RawMessage]
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("result: %w", err)
	}

	switch variant(w.Variant) {
	case variantOk:
		var v T
		if err := unmarshalSide(w.Ok, &v); err != nil {
			return fmt.Errorf("result: ok: %w", err)
		}
		*r = Ok[E](v)
	case variantErr:
		var e E
		if err := unmarshalSide(w.Err, &e); err != nil {
			return fmt.Errorf("result: err: %w", err)
		}
		*r = Err[E, T](e)
	default:
		return fmt.Errorf("result: unknown variant %d", w.Variant)
	}
	return nil
}

func unmarshalSide[T any](raw *json.RawMessage, v *T) error {
	if raw == nil {
		return nil
	}
	return json.Unmarshal(*raw, v)
}
