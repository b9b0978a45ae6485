package pricing

import "sync"

// Vehicle categories and default base costs. Prices are editable at runtime
// through the settings screen; these defaults apply until settings are saved.
const (
	TwoWheeler   = "2 Wheeler"
	ThreeWheeler = "3 Wheeler"
	FourWheeler  = "4 Wheeler"

	DefaultTwoWheelerCost   = 500.0
	DefaultThreeWheelerCost = 750.0
	DefaultFourWheelerCost  = 1000.0
	DefaultPremiumDiscount  = 10.0
)

// Rates holds one consistent view of the price configuration.
type Rates struct {
	TwoWheelerCost   float64 `json:"twoWheelerCost"`
	ThreeWheelerCost float64 `json:"threeWheelerCost"`
	FourWheelerCost  float64 `json:"fourWheelerCost"`
	PremiumDiscount  float64 `json:"premiumDiscount"`
}

// Table is the process-wide price configuration. It is read by every booking
// and replaced wholesale by a settings save; a booking keeps the cost that
// was current when it was created.
type Table struct {
	mu    sync.RWMutex
	rates Rates
}

func DefaultRates() Rates {
	return Rates{
		TwoWheelerCost:   DefaultTwoWheelerCost,
		ThreeWheelerCost: DefaultThreeWheelerCost,
		FourWheelerCost:  DefaultFourWheelerCost,
		PremiumDiscount:  DefaultPremiumDiscount,
	}
}

func NewTable(rates Rates) *Table {
	return &Table{rates: rates}
}

// Cost returns the service cost for a vehicle category. An unrecognized
// category costs 0; the premium tier applies the configured discount.
func (t *Table) Cost(vehicleType string, premium bool) float64 {
	t.mu.RLock()
	rates := t.rates
	t.mu.RUnlock()

	var base float64
	switch vehicleType {
	case TwoWheeler:
		base = rates.TwoWheelerCost
	case ThreeWheeler:
		base = rates.ThreeWheelerCost
	case FourWheeler:
		base = rates.FourWheelerCost
	default:
		base = 0
	}

	if premium {
		return base * (1 - rates.PremiumDiscount/100)
	}
	return base
}

func (t *Table) Rates() Rates {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rates
}

func (t *Table) Update(rates Rates) {
	t.mu.Lock()
	t.rates = rates
	t.mu.Unlock()
}
