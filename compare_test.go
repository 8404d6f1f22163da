package lz8s

import (
	"bytes"
	"io/ioutil"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// The benchmarks below compare against general-purpose codecs on the
// same corpus. LZ8S trades ratio for a decoder small enough for an
// 8-bit target, so it is expected to lose on ratio; the interesting
// numbers are how much, per window size.

func benchmarkEncode(b *testing.B, cfg Config, data []byte) {
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	e, err := NewEncoder(cfg)
	if err != nil {
		b.Fatal(err)
	}
	compressed, err := e.Encode(nil, data)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportMetric(float64(len(data))/float64(len(compressed)), "ratio")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		compressed, err = e.Encode(compressed[:0], data)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	benchmarkEncode(b, DefaultConfig(), testText(32768))
}

func BenchmarkEncodeFast(b *testing.B) {
	cfg := DefaultConfig()
	cfg.FastSearch = true
	benchmarkEncode(b, cfg, testText(32768))
}

func BenchmarkEncodeWide(b *testing.B) {
	cfg := Config{BitsMOff: 16, MaxMLen: 1000, MaxLLen: 1000, OffsetRel: -1, FastSearch: true}
	benchmarkEncode(b, cfg, testText(32768))
}

func BenchmarkDecode(b *testing.B) {
	data := testText(32768)
	e, err := NewEncoder(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	compressed, err := e.Encode(nil, data)
	if err != nil {
		b.Fatal(err)
	}
	d, err := NewDecoder(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	out := []byte{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err = d.Decode(out[:0], compressed)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeSnappy(b *testing.B) {
	data := testText(32768)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	compressed := snappy.Encode(nil, data)
	b.ReportMetric(float64(len(data))/float64(len(compressed)), "ratio")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		compressed = snappy.Encode(compressed[:0], data)
	}
}

func BenchmarkEncodeFlate(b *testing.B) {
	data := testText(32768)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	buf := new(bytes.Buffer)
	w, err := flate.NewWriter(buf, flate.BestCompression)
	if err != nil {
		b.Fatal(err)
	}
	w.Write(data)
	w.Close()
	b.ReportMetric(float64(len(data))/float64(buf.Len()), "ratio")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Reset(ioutil.Discard)
		w.Write(data)
		w.Close()
	}
}

func BenchmarkEncodeLZ4(b *testing.B) {
	data := testText(32768)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	buf := new(bytes.Buffer)
	w := lz4.NewWriter(buf)
	w.Write(data)
	w.Close()
	b.ReportMetric(float64(len(data))/float64(buf.Len()), "ratio")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Reset(ioutil.Discard)
		w.Write(data)
		w.Close()
	}
}

func BenchmarkEncodeZstd(b *testing.B) {
	data := testText(32768)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	w, err := zstd.NewWriter(nil)
	if err != nil {
		b.Fatal(err)
	}
	defer w.Close()
	compressed := w.EncodeAll(data, nil)
	b.ReportMetric(float64(len(data))/float64(len(compressed)), "ratio")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		compressed = w.EncodeAll(data, compressed[:0])
	}
}

func BenchmarkEncodeBrotli(b *testing.B) {
	data := testText(32768)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	buf := new(bytes.Buffer)
	w := brotli.NewWriterLevel(buf, brotli.BestCompression)
	w.Write(data)
	w.Close()
	b.ReportMetric(float64(len(data))/float64(buf.Len()), "ratio")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Reset(ioutil.Discard)
		w.Write(data)
		w.Close()
	}
}
