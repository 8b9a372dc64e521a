package canonize_test

import (
	"testing"

	"github.com/katalvlaran/treecanon/builder"
	"github.com/katalvlaran/treecanon/canonize"
)

// BenchmarkCanonize_Path measures the deepest possible peel: a path of N
// nodes needs ~N/2 rounds.
func BenchmarkCanonize_Path(b *testing.B) {
	const N = 10000
	t, err := builder.Path(N)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		t.ResetLabels()
		_, _ = canonize.Canonize(t)
	}
}

// BenchmarkCanonize_Star measures the widest possible round: all leaves fold
// into one parent in a single pass.
func BenchmarkCanonize_Star(b *testing.B) {
	const N = 10000
	t, err := builder.Star(N)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		t.ResetLabels()
		_, _ = canonize.Canonize(t)
	}
}

// BenchmarkCanonize_Binary measures a balanced shape (logarithmic rounds,
// geometric leaf counts).
func BenchmarkCanonize_Binary(b *testing.B) {
	const N = (1 << 13) - 1 // complete binary tree
	t, err := builder.KaryTree(N, 2)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		t.ResetLabels()
		_, _ = canonize.Canonize(t)
	}
}

// BenchmarkCanonize_Random measures a typical uniform random tree.
func BenchmarkCanonize_Random(b *testing.B) {
	const N = 5000
	t, err := builder.Random(N, 42)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		t.ResetLabels()
		_, _ = canonize.Canonize(t)
	}
}

// BenchmarkCenters isolates the label-free peel.
func BenchmarkCenters(b *testing.B) {
	const N = 10000
	t, err := builder.Random(N, 7)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = canonize.Centers(t)
	}
}
