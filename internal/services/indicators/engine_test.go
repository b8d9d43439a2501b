package indicators

import (
	"math"
	"testing"
	"time"

	"StockCast/internal/domain/models"
	"StockCast/internal/services/marketdata"
)

const warmupRows = 199 // SMA-200 is the longest window

func syntheticBars(t *testing.T, n int) []models.Bar {
	t.Helper()
	return marketdata.GenerateSynthetic("TESTSYM", n, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
}

func TestComputeTrimsWarmup(t *testing.T) {
	bars := syntheticBars(t, 730)
	table, err := Compute(bars)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	want := len(bars) - warmupRows
	if table.Len() != want {
		t.Fatalf("expected %d rows after trim, got %d", want, table.Len())
	}
	if len(table.Dates()) != want {
		t.Fatalf("date index length %d does not match rows %d", len(table.Dates()), want)
	}
	if !table.Dates()[0].Equal(bars[warmupRows].Date) {
		t.Fatalf("trim removed the wrong prefix: first date %v", table.Dates()[0])
	}
}

func TestComputeNoUndefinedValues(t *testing.T) {
	table, err := Compute(syntheticBars(t, 400))
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	for _, name := range table.Columns() {
		col := table.Column(name)
		if len(col) != table.Len() {
			t.Fatalf("column %s has %d rows, table has %d", name, len(col), table.Len())
		}
		for i, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("column %s row %d is undefined: %v", name, i, v)
			}
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	bars := syntheticBars(t, 400)
	a, err := Compute(bars)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	b, err := Compute(bars)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	for _, name := range a.Columns() {
		ca, cb := a.Column(name), b.Column(name)
		for i := range ca {
			if ca[i] != cb[i] {
				t.Fatalf("column %s row %d differs between runs", name, i)
			}
		}
	}
}

func TestComputeBounds(t *testing.T) {
	table, err := Compute(syntheticBars(t, 400))
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	for i, v := range table.Column("RSI") {
		if v < 0 || v > 100 {
			t.Fatalf("RSI row %d out of bounds: %v", i, v)
		}
	}
	for i, v := range table.Column("Stoch_K") {
		if v < 0 || v > 100 {
			t.Fatalf("Stoch_K row %d out of bounds: %v", i, v)
		}
	}
	for i, v := range table.Column("Trend_20") {
		if v != 1 && v != -1 {
			t.Fatalf("Trend_20 row %d not a flag: %v", i, v)
		}
	}
	for i, v := range table.Column("ATR") {
		if v < 0 {
			t.Fatalf("ATR row %d negative: %v", i, v)
		}
	}
}

func TestRollingMean(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	out := rollingMean(xs, 3)

	if !math.IsNaN(out[0]) || !math.IsNaN(out[1]) {
		t.Fatal("expected NaN in warm-up rows")
	}
	if out[2] != 2 || out[3] != 3 || out[4] != 4 {
		t.Fatalf("unexpected means: %v", out)
	}
}

func TestEMASeedsWithFirstValue(t *testing.T) {
	xs := []float64{10, 10, 10, 10}
	out := ema(xs, 5)
	for i, v := range out {
		if v != 10 {
			t.Fatalf("row %d: constant series EMA drifted to %v", i, v)
		}
	}
}
