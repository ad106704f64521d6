package wire

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codecSample struct {
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Ready bool     `json:"ready"`
	Skip  string   `json:"-"`
}

func TestCodecs_RoundTrip(t *testing.T) {
	codecs := []Codec{
		JSON{},
		MsgPack{},
		Zstd{},
		Zstd{Codec: MsgPack{}, Level: zstd.SpeedBestCompression},
	}

	in := codecSample{Name: "n", Tags: []string{"a", "b"}, Ready: true, Skip: "dropped"}

	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			buf, err := c.Marshal(in)
			require.NoError(t, err)

			var out codecSample
			require.NoError(t, c.Unmarshal(buf, &out))

			assert.Equal(t, codecSample{Name: "n", Tags: []string{"a", "b"}, Ready: true}, out)
		})
	}
}

func TestCodecs_Names(t *testing.T) {
	assert.Equal(t, "json", JSON{}.Name())
	assert.Equal(t, "msgpack", MsgPack{}.Name())
	assert.Equal(t, "json+zstd", Zstd{}.Name())
	assert.Equal(t, "msgpack+zstd", Zstd{Codec: MsgPack{}}.Name())
	assert.Equal(t, JSON{}, Default)
}

func TestMsgPack_UsesJSONTags(t *testing.T) {
	buf, err := MsgPack{}.Marshal(codecSample{Name: "n"})
	require.NoError(t, err)

	assert.True(t, bytes.Contains(buf, []byte("name")))
	assert.False(t, bytes.Contains(buf, []byte("Name")))
}

func TestZstd_Compresses(t *testing.T) {
	in := map[string]any{"payload": string(bytes.Repeat([]byte("abcdef"), 512))}

	plain, err := JSON{}.Marshal(in)
	require.NoError(t, err)

	packed, err := Zstd{}.Marshal(in)
	require.NoError(t, err)
	assert.Less(t, len(packed), len(plain)/4)

	var out map[string]any
	require.NoError(t, Zstd{}.Unmarshal(packed, &out))
	assert.Equal(t, in, out)
}

func TestZstd_CorruptInput(t *testing.T) {
	var out any
	err := Zstd{}.Unmarshal([]byte("not zstd"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zstd decode")
}
