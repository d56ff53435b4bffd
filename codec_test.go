package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectCodec(t *testing.T) {
	jsonit, err := selectCodec(CODEC_JSONITER)
	require.NoError(t, err)
	require.Equal(t, CODEC_JSONITER, jsonit.Name())

	std, err := selectCodec(CODEC_STD)
	require.NoError(t, err)
	require.Equal(t, CODEC_STD, std.Name())

	_, err = selectCodec("orjson")
	require.Error(t, err)
}

func TestCodecsProduceEquivalentJSON(t *testing.T) {
	jsonit, err := selectCodec(CODEC_JSONITER)
	require.NoError(t, err)
	std, err := selectCodec(CODEC_STD)
	require.NoError(t, err)

	msg := newBenchMessage(16)

	fast, err := jsonit.Marshal(msg)
	require.NoError(t, err)
	base, err := std.Marshal(msg)
	require.NoError(t, err)

	require.JSONEq(t, string(base), string(fast))
	require.Contains(t, string(fast), `"id":1`)
	require.Contains(t, string(fast), `"method":"test"`)

	var decoded benchMessage
	require.NoError(t, jsonit.Unmarshal(base, &decoded))
	require.Equal(t, *msg, decoded)
}

func BenchmarkCodecMarshal(b *testing.B) {
	msg := newBenchMessage(1024)

	for _, name := range []string{CODEC_JSONITER, CODEC_STD} {
		enc, err := selectCodec(name)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := enc.Marshal(msg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
