package wire

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Zstd compresses the output of another codec.
type Zstd struct {
	// Codec produces the bytes that get compressed. JSON when nil.
	Codec Codec
	// Level is the encoder level; zero means zstd.SpeedDefault.
	Level zstd.EncoderLevel
}

// Marshal serializes v with the inner codec and compresses the result.
func (z Zstd) Marshal(v any) ([]byte, error) {
	raw, err := z.inner().Marshal(v)
	if err != nil {
		return nil, err
	}

	level := z.Level
	if level == 0 {
		level = zstd.SpeedDefault
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	defer enc.Close()

	return enc.EncodeAll(raw, nil), nil
}

// Unmarshal decompresses data and deserializes it with the inner codec.
func (z Zstd) Unmarshal(data []byte, v any) error {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return fmt.Errorf("zstd decoder: %w", err)
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(data, nil)
	if err != nil {
		return fmt.Errorf("zstd decode: %w", err)
	}

	return z.inner().Unmarshal(raw, v)
}

// Name returns the inner codec name with a "+zstd" suffix.
func (z Zstd) Name() string { return z.inner().Name() + "+zstd" }

func (z Zstd) inner() Codec {
	if z.Codec == nil {
		return JSON{}
	}

	return z.Codec
}
