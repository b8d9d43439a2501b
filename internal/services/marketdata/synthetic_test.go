package marketdata

import (
	"testing"
	"time"
)

func TestGenerateSyntheticDeterministic(t *testing.T) {
	end := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	a := GenerateSynthetic("RELIANCE", 730, end)
	b := GenerateSynthetic("RELIANCE", 730, end)

	if len(a) != 730 || len(b) != 730 {
		t.Fatalf("expected 730 bars, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("series diverge at row %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateSyntheticDiffersPerSymbol(t *testing.T) {
	end := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	a := GenerateSynthetic("TCS", 100, end)
	b := GenerateSynthetic("INFY", 100, end)

	same := true
	for i := range a {
		if a[i].Close != b[i].Close {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different symbols produced identical price paths")
	}
}

func TestGenerateSyntheticInvariants(t *testing.T) {
	bars := GenerateSynthetic("HDFCBANK", 365, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))

	for i, b := range bars {
		if b.High < b.Low {
			t.Fatalf("row %d: high %v below low %v", i, b.High, b.Low)
		}
		if b.Low < 0 {
			t.Fatalf("row %d: negative low %v", i, b.Low)
		}
		if b.High < b.Open || b.High < b.Close || b.Low > b.Open || b.Low > b.Close {
			t.Fatalf("row %d: open/close outside high-low range: %+v", i, b)
		}
		if b.Volume < volumeMin || b.Volume > volumeMax {
			t.Fatalf("row %d: volume %v outside range", i, b.Volume)
		}
		if i > 0 && !bars[i-1].Date.Before(b.Date) {
			t.Fatalf("row %d: dates not strictly ascending", i)
		}
	}
}
