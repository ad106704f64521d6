package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// JSON is the default codec using standard library encoding/json. Numbers
// decoded into an any are json.Number, so large integers survive.
type JSON struct{}

// Marshal serializes v to JSON bytes.
func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal deserializes JSON bytes into v.
func (JSON) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("json: unexpected data after top-level value")
	}

	return nil
}

// Name returns "json".
func (JSON) Name() string { return "json" }
