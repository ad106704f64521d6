package wire

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// MsgPack is a codec using MessagePack encoding. Struct fields are named by
// their json tags so Go values keep the same logical names under both
// codecs.
type MsgPack struct{}

// Marshal serializes v to MessagePack bytes. Integers take the smallest
// encoding that holds them.
func (MsgPack) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	enc.UseCompactInts(true)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal deserializes MessagePack bytes into v.
func (MsgPack) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")

	return dec.Decode(v)
}

// Name returns "msgpack".
func (MsgPack) Name() string { return "msgpack" }
