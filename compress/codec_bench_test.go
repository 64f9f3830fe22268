package compress

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/gustingonzalez/ircodecs-go/format"
)

// getAllCodecs returns all available codec implementations for benchmarking.
func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"Zstd": NewZstdCompressor(),
		"S2":   NewS2Compressor(),
		"LZ4":  NewLZ4Compressor(),
	}
}

// generateBenchmarkData creates test data with the given compressibility
// profile, standing in for codec output of varying regularity (dense
// posting gaps vs. near-random document IDs).
func generateBenchmarkData(size int, compressibility string) []byte {
	data := make([]byte, size)

	switch compressibility {
	case "highly_compressible":
		// All zeros - maximum compression.
	case "compressible":
		pattern := []byte("posting gap sequence 1 2 3 4 5 6 7 8 9 10")
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}
	case "semi_compressible":
		for i := range data {
			if i%100 < 50 {
				data[i] = byte(i % 256)
			} else {
				data[i] = byte((i*7 + i*i) % 256)
			}
		}
	default:
		for i := range data {
			data[i] = byte((i*31 + i*i*7 + i*i*i*3) % 256)
		}
	}

	return data
}

func formatSize(size int) string {
	if size < 1024 {
		return strconv.Itoa(size) + "B"
	}
	if size < 1024*1024 {
		return strconv.Itoa(size/1024) + "KB"
	}

	return strconv.Itoa(size/(1024*1024)) + "MB"
}

func BenchmarkAllCodecs_Compress(b *testing.B) {
	sizes := []int{1024, 16384, 65536, 262144}
	compressibilities := []string{"highly_compressible", "compressible", "semi_compressible", "incompressible"}

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			for _, size := range sizes {
				for _, comp := range compressibilities {
					data := generateBenchmarkData(size, comp)
					testName := fmt.Sprintf("%s_%s", formatSize(size), comp)

					b.Run(testName, func(b *testing.B) {
						b.ReportAllocs()
						b.SetBytes(int64(len(data)))
						b.ResetTimer()

						for b.Loop() {
							if _, err := codec.Compress(data); err != nil {
								b.Fatal(err)
							}
						}
					})
				}
			}
		})
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	sizes := []int{1024, 16384, 65536, 262144}
	compressibilities := []string{"highly_compressible", "compressible", "semi_compressible", "incompressible"}

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			for _, size := range sizes {
				for _, comp := range compressibilities {
					data := generateBenchmarkData(size, comp)
					compressed, err := codec.Compress(data)
					if err != nil {
						b.Fatal(err)
					}
					testName := fmt.Sprintf("%s_%s", formatSize(size), comp)

					b.Run(testName, func(b *testing.B) {
						b.ReportAllocs()
						b.SetBytes(int64(len(data)))
						b.ResetTimer()

						for b.Loop() {
							if _, err := codec.Decompress(compressed); err != nil {
								b.Fatal(err)
							}
						}
					})
				}
			}
		})
	}
}

func BenchmarkAllCodecs_RoundTrip(b *testing.B) {
	const size = 65536
	data := generateBenchmarkData(size, "compressible")

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for b.Loop() {
				compressed, err := codec.Compress(data)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := codec.Decompress(compressed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAllCodecs_CompressionRatio(b *testing.B) {
	const size = 1048576
	compressibilities := []string{"highly_compressible", "compressible", "semi_compressible", "incompressible"}

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			for _, comp := range compressibilities {
				b.Run(comp, func(b *testing.B) {
					data := generateBenchmarkData(size, comp)

					compressed, err := codec.Compress(data)
					if err != nil {
						b.Fatal(err)
					}
					b.ReportMetric(float64(len(compressed))/float64(len(data))*100, "ratio%")

					b.ReportAllocs()
					b.SetBytes(int64(len(data)))
					b.ResetTimer()

					for b.Loop() {
						if _, err := codec.Compress(data); err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		})
	}
}

func BenchmarkAllCodecs_Parallel(b *testing.B) {
	const size = 65536
	data := generateBenchmarkData(size, "compressible")

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName+"_Compress", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if _, err := codec.Compress(data); err != nil {
						b.Fatal(err)
					}
				}
			})
		})

		b.Run(codecName+"_Decompress", func(b *testing.B) {
			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if _, err := codec.Decompress(compressed); err != nil {
						b.Fatal(err)
					}
				}
			})
		})
	}
}

func BenchmarkCodecComparison_Compress(b *testing.B) {
	const size = 8 * 1024
	data := generateBenchmarkData(size, "compressible")

	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionLZ4,
		format.CompressionS2,
		format.CompressionZstd,
	}

	for _, typ := range types {
		codec, err := CreateCodec(typ, "bench")
		if err != nil {
			b.Fatal(err)
		}

		b.Run(typ.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size))
			b.ResetTimer()

			for b.Loop() {
				if _, err := codec.Compress(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
