package loader

import (
	"path/filepath"
	"testing"

	"github.com/fastio/fastio/internal/fixture"
)

func benchmarkLoad(b *testing.B, size int64, cfg Config) {
	path := filepath.Join(b.TempDir(), "bench.bin")
	if err := fixture.Write(path, size, 1); err != nil {
		b.Fatal(err)
	}
	l := New(cfg)

	b.SetBytes(size)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buf, err := l.Load(path)
		if err != nil {
			b.Fatal(err)
		}
		_ = buf.Release()
	}
}

func BenchmarkLoadMapped4MiB(b *testing.B) {
	benchmarkLoad(b, 4<<20, Config{})
}

func BenchmarkLoadChunked4MiB(b *testing.B) {
	benchmarkLoad(b, 4<<20, Config{DisableMmap: true})
}

func BenchmarkLoadChunked4MiBSmallChunks(b *testing.B) {
	benchmarkLoad(b, 4<<20, Config{DisableMmap: true, ChunkSize: 64 << 10})
}

func BenchmarkLoadSmall(b *testing.B) {
	benchmarkLoad(b, 512, Config{})
}
