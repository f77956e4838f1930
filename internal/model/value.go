package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Value is a loosely typed numeric field as sent by an upstream API.
// Upstreams mix numbers and numeric strings, so conversion is deferred to
// the consumer.
type Value struct {
	raw     interface{}
	present bool
}

// NewValue wraps an already decoded JSON value.
func NewValue(raw interface{}) Value {
	return Value{raw: raw, present: true}
}

// Present reports whether the field was sent with a non-null value.
func (v Value) Present() bool {
	return v.present && v.raw != nil
}

// Raw returns the decoded JSON value.
func (v Value) Raw() interface{} {
	return v.raw
}

// Float64 converts the value. Absent and null fields are 0.
func (v Value) Float64() (float64, error) {
	if !v.Present() {
		return 0, nil
	}

	raw := v.raw
	if s, ok := raw.(string); ok {
		raw = strings.TrimSpace(s)
	}

	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("value %v is not finite", v.raw)
	}
	return f, nil
}

// FloatOr converts the value, returning fallback on conversion failure.
func (v Value) FloatOr(fallback float64) float64 {
	f, err := v.Float64()
	if err != nil {
		return fallback
	}
	return f
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.raw = raw
	v.present = true
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.present {
		return []byte("null"), nil
	}
	return json.Marshal(v.raw)
}
