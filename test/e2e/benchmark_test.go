package e2e_test

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"testing"

	"github.com/mcncl/jsonpp/internal/formatter"
	"github.com/mcncl/jsonpp/internal/parser"
)

// generateNestedJSON creates a deeply nested JSON structure for benchmarking
func generateNestedJSON(depth int, width int) map[string]interface{} {
	if depth <= 0 {
		return map[string]interface{}{
			"leaf_value": "data",
			"count":      rand.Intn(100),
			"ratio":      rand.Float64(),
			"enabled":    rand.Intn(2) == 1,
		}
	}

	result := make(map[string]interface{})
	for i := 0; i < width; i++ {
		key := fmt.Sprintf("nested_%d_%d", depth, i)
		result[key] = generateNestedJSON(depth-1, width)
	}
	return result
}

func benchmarkDocument(b *testing.B, depth, width int) []byte {
	b.Helper()
	data, err := json.Marshal(generateNestedJSON(depth, width))
	if err != nil {
		b.Fatal(err)
	}
	return data
}

func BenchmarkParse(b *testing.B) {
	data := benchmarkDocument(b, 4, 4)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := parser.ParseBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPretty(b *testing.B) {
	data := benchmarkDocument(b, 4, 4)
	value, err := parser.ParseBytes(data)
	if err != nil {
		b.Fatal(err)
	}
	f := formatter.New()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := f.Pretty(io.Discard, value); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompact(b *testing.B) {
	data := benchmarkDocument(b, 4, 4)
	value, err := parser.ParseBytes(data)
	if err != nil {
		b.Fatal(err)
	}
	f := formatter.New()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := f.Compact(io.Discard, value); err != nil {
			b.Fatal(err)
		}
	}
}
