package test

import (
	"bytes"
	"testing"

	"rps-duel/codec"
	"rps-duel/message"
	"rps-duel/protocol"
)

func benchmarkCodec(b *testing.B, c codec.Codec) {
	msg := message.NewHello("benchmark-player")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data, err := c.Encode(msg)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := c.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkJSONCodec(b *testing.B) {
	benchmarkCodec(b, &codec.JSONCodec{})
}

func BenchmarkBinaryCodec(b *testing.B) {
	benchmarkCodec(b, &codec.BinaryCodec{})
}

func BenchmarkFraming(b *testing.B) {
	body := []byte(`{"type":2,"action":1}`)
	var buf bytes.Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := protocol.WriteFrame(&buf, body); err != nil {
			b.Fatal(err)
		}
		if _, err := protocol.ReadFrame(&buf); err != nil {
			b.Fatal(err)
		}
	}
}
