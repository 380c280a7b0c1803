package varint

import "testing"

// TestDecompressValueTable pins the first compressed codes against the
// amounts they stand for.
func TestDecompressValueTable(t *testing.T) {
	cases := []struct {
		in   uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 10},
		{3, 100},
		{4, 1_000},
		{5, 10_000},
		{6, 100_000},
		{7, 1_000_000},
		{8, 10_000_000},
		{9, 100_000_000},
		{10, 1_000_000_000},
		{11, 2},
		{12, 20},
		{20, 2_000_000_000},
	}

	for _, tc := range cases {
		if got := DecompressValue(tc.in); got != tc.want {
			t.Errorf("DecompressValue(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCompressValueRoundTrip(t *testing.T) {
	amounts := []uint64{
		0, 1, 2, 9, 10, 11, 99, 100, 1000, 123456789,
		100_000_000,       // 1 BSV
		5_000_000_000,     // 50 BSV, the original block subsidy
		2_100_000_000_000_000, // total supply in satoshis
	}
	for _, n := range amounts {
		if got := DecompressValue(CompressValue(n)); got != n {
			t.Errorf("decompress(compress(%d)) = %d", n, got)
		}
	}

	// The compressed codomain is dense: every small code maps back onto
	// exactly the amount that compresses to it.
	for code := uint64(0); code < 100_000; code++ {
		if got := CompressValue(DecompressValue(code)); got != code {
			t.Fatalf("compress(decompress(%d)) = %d", code, got)
		}
	}
}
