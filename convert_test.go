package bnggrid

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/kailas-cloud/bnggrid/internal/geo"
)

func TestConvert_FixedPoint(t *testing.T) {
	p := Convert(-0.32824866, 51.44533267)
	if p.Easting != 516276 || p.Northing != 173141 {
		t.Fatalf("got (%d, %d), want (516276, 173141)", p.Easting, p.Northing)
	}
}

func TestConvert_Deterministic(t *testing.T) {
	a := Convert(-3.188267, 55.953252)
	b := Convert(-3.188267, 55.953252)
	if a != b {
		t.Fatalf("same input produced %v and %v", a, b)
	}
}

func TestConvertBatch_MatchesSingle(t *testing.T) {
	out, err := ConvertBatch([]float64{-0.32824866}, []float64{51.44533267})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("want 1 result, got %d", len(out))
	}
	if out[0] != Convert(-0.32824866, 51.44533267) {
		t.Fatalf("batch of one %v differs from single %v", out[0], Convert(-0.32824866, 51.44533267))
	}
}

func TestConvertBatch_LengthMismatch(t *testing.T) {
	_, err := ConvertBatch([]float64{1, 2}, []float64{50})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("want ErrLengthMismatch, got %v", err)
	}
	_, err = ConvertBatchParallel([]float64{1}, []float64{50, 51})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("want ErrLengthMismatch, got %v", err)
	}
}

func TestConvertBatch_Empty(t *testing.T) {
	out, err := ConvertBatch(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("want empty result, got %d", len(out))
	}
	out, err = ConvertBatchParallel([]float64{}, []float64{})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("want empty result, got %d", len(out))
	}
}

func randomUKBatch(n int, seed int64) (lons, lats []float64) {
	rng := rand.New(rand.NewSource(seed))
	lons = make([]float64, n)
	lats = make([]float64, n)
	for i := 0; i < n; i++ {
		lons[i] = -6.379880 + rng.Float64()*(1.768960+6.379880)
		lats[i] = 49.871159 + rng.Float64()*(55.811741-49.871159)
	}
	return lons, lats
}

func TestConvertBatchParallel_MatchesSequential(t *testing.T) {
	lons, lats := randomUKBatch(10007, 42) // odd size to exercise chunk remainders
	seq, err := ConvertBatch(lons, lats)
	if err != nil {
		t.Fatal(err)
	}
	par, err := ConvertBatchParallel(lons, lats)
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != len(par) {
		t.Fatalf("length mismatch: %d vs %d", len(seq), len(par))
	}
	for i := range seq {
		if seq[i] != par[i] {
			t.Fatalf("index %d: sequential %v, parallel %v", i, seq[i], par[i])
		}
	}
}

func TestConvertBatchWorkers_MoreWorkersThanPoints(t *testing.T) {
	lons, lats := randomUKBatch(3, 7)
	out, err := ConvertBatchWorkers(lons, lats, 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("want 3 results, got %d", len(out))
	}
	for i := range out {
		if out[i] != Convert(lons[i], lats[i]) {
			t.Fatalf("index %d mismatch", i)
		}
	}
}

func TestConvertBatchWorkers_SingleWorker(t *testing.T) {
	lons, lats := randomUKBatch(100, 3)
	one, err := ConvertBatchWorkers(lons, lats, 1)
	if err != nil {
		t.Fatal(err)
	}
	seq, _ := ConvertBatch(lons, lats)
	for i := range seq {
		if one[i] != seq[i] {
			t.Fatalf("index %d mismatch with workers=1", i)
		}
	}
}

func TestConvertBatchParallel_MillionPoints(t *testing.T) {
	if testing.Short() {
		t.Skip("large batch test skipped in short mode")
	}
	lons, lats := randomUKBatch(1_000_000, 99)
	out, err := ConvertBatchParallel(lons, lats)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1_000_000 {
		t.Fatalf("want 1000000 results, got %d", len(out))
	}
	// Spot-check order preservation at chunk-sized strides.
	for _, i := range []int{0, 1, 65535, 65536, 500000, 999999} {
		if out[i] != Convert(lons[i], lats[i]) {
			t.Fatalf("index %d does not match single conversion", i)
		}
	}
}

func TestInverse_RoundTrip(t *testing.T) {
	const tol = 1e-6 // ~7 cm of longitude at UK latitudes
	lons, lats := randomUKBatch(50, 11)
	for i := range lons {
		e, n := bExact(lons[i], lats[i])
		lon, lat := Inverse(e, n)
		if math.Abs(lon-lons[i]) > tol || math.Abs(lat-lats[i]) > tol {
			t.Fatalf("round trip (%f,%f) -> (%f,%f)", lons[i], lats[i], lon, lat)
		}
	}
}

// bExact projects without metre rounding so the round-trip test measures
// numeric drift, not quantisation.
func bExact(lon, lat float64) (float64, float64) {
	return geo.ToNationalGrid(lon, lat)
}

func TestConvert_OutOfDomainPolicy(t *testing.T) {
	// Compute-and-return: no rejection, output is finite garbage.
	p := Convert(151.2093, -33.8688)
	if IsWithinUK(151.2093, -33.8688) {
		t.Fatal("Sydney must not be inside the UK box")
	}
	_ = p // any value is acceptable; the call must simply not panic
}

func BenchmarkConvertBatch(b *testing.B) {
	lons, lats := randomUKBatch(100000, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ConvertBatch(lons, lats)
	}
}

func BenchmarkConvertBatchParallel(b *testing.B) {
	lons, lats := randomUKBatch(100000, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ConvertBatchParallel(lons, lats)
	}
}
