package service

// DefaultCPM is the hypothetical price paid per 1,000 views.
const DefaultCPM = 60.0

type EarningsConfig struct {
	Rate float64
	Per  int64
}

func DefaultEarnings() EarningsConfig {
	return EarningsConfig{Rate: DefaultCPM, Per: 1000}
}

// Calc returns views / Per * Rate. It is linear in views and never rounds.
func (e EarningsConfig) Calc(views int64) float64 {
	if e.Per == 0 {
		return 0
	}
	return float64(views) / float64(e.Per) * e.Rate
}

// CPM is the price per 1,000 views implied by the config.
func (e EarningsConfig) CPM() float64 {
	return e.Calc(1000)
}
