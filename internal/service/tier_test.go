package service

import (
	"math"
	"math/rand"
	"testing"
)

func TestEarningsConfig_Calc(t *testing.T) {
	e := DefaultEarnings()

	tests := []struct {
		views int64
		want  float64
	}{
		{0, 0},
		{1000, 60},
		{50000, 3000},
		{1, 0.06},
		{1_000_000, 60000},
	}

	for _, tt := range tests {
		if got := e.Calc(tt.views); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Calc(%d) = %v, want %v", tt.views, got, tt.want)
		}
	}

	if got := (EarningsConfig{Rate: 60}).Calc(1000); got != 0 {
		t.Errorf("zero Per must yield 0, got %v", got)
	}
	if got := e.CPM(); got != 60 {
		t.Errorf("CPM = %v, want 60", got)
	}
}

func TestEarningsConfig_CalcIsLinear(t *testing.T) {
	e := DefaultEarnings()
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		x := r.Int63n(1 << 40)
		if a, b := e.Calc(2*x), 2*e.Calc(x); a != b {
			t.Fatalf("Calc(2*%d) = %v, 2*Calc(%d) = %v", x, a, x, b)
		}
		if e.Calc(x+1) < e.Calc(x) {
			t.Fatalf("Calc not monotonic at %d", x)
		}
	}
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		payout float64
		want   Tier
	}{
		{0, TierLow},
		{60, TierLow},
		{99.99, TierLow},
		{100, TierMild},
		{999.99, TierMild},
		{1000, TierGood},
		{3000, TierGood},
		{9999.99, TierGood},
		{10000, TierGreat},
		{99999.99, TierGreat},
		{100000, TierExcellent},
		{math.MaxFloat64, TierExcellent},
		{math.Inf(1), TierExcellent},
		{-1, TierLow},
		{math.NaN(), TierLow},
	}

	for _, tt := range tests {
		if got := Classify(tt.payout); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.payout, got, tt.want)
		}
	}
}

func TestClassify_PartitionIsTotalAndOrdered(t *testing.T) {
	r := rand.New(rand.NewSource(11))

	for i := 0; i < 5000; i++ {
		p := r.Float64() * 1e6
		got := Classify(p)

		matches := 0
		for tier := TierLow; tier <= TierExcellent; tier++ {
			upper := tiers[tier].upper
			if p >= tier.Lower() && p < upper {
				matches++
				if tier != got {
					t.Fatalf("Classify(%v) = %v, band says %v", p, got, tier)
				}
			}
		}
		if matches != 1 {
			t.Fatalf("payout %v fell into %d bands", p, matches)
		}

		if Classify(p*2) < got {
			t.Fatalf("Classify not monotonic at %v", p)
		}
	}
}

func TestTier_Display(t *testing.T) {
	tests := []struct {
		tier      Tier
		name      string
		asset     string
		celebrate bool
	}{
		{TierLow, "low", "sad", false},
		{TierMild, "mild", "meh", false},
		{TierGood, "good", "smile", false},
		{TierGreat, "great", "money", true},
		{TierExcellent, "excellent", "fire", true},
	}

	for _, tt := range tests {
		if tt.tier.String() != tt.name || tt.tier.Asset() != tt.asset || tt.tier.Celebrate() != tt.celebrate {
			t.Errorf("tier %d: got %s/%s/%v", tt.tier, tt.tier.String(), tt.tier.Asset(), tt.tier.Celebrate())
		}
		if tt.tier.Emoji() == "" {
			t.Errorf("tier %s has no emoji", tt.name)
		}
	}

	if Tier(42).String() != "unknown" || Tier(-1).Asset() != "" {
		t.Error("out-of-range tiers must render empty")
	}
}
