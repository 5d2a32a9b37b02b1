package density

import (
	"fmt"
	"sort"

	"crowdWatch/internal/domain"
)

// Basis selects which density notion drives alert-worthiness.
type Basis string

const (
	// BasisArea grades people per square meter.
	BasisArea Basis = "area"
	// BasisOccupancy grades population as a fraction of zone capacity.
	BasisOccupancy Basis = "occupancy"
)

func ParseBasis(s string) (Basis, error) {
	switch Basis(s) {
	case BasisArea, BasisOccupancy:
		return Basis(s), nil
	default:
		return "", fmt.Errorf("unknown threshold basis %q", s)
	}
}

// Band promotes values at or above Threshold to Severity.
type Band struct {
	Threshold float64              `yaml:"threshold"`
	Severity  domain.AlertSeverity `yaml:"severity"`
}

// Grade returns the severity of the highest band reached, or SeverityNone
// when the value is below every band.
func Grade(value float64, bands []Band) domain.AlertSeverity {
	sorted := make([]Band, len(bands))
	copy(sorted, bands)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Threshold > sorted[j].Threshold })

	for _, b := range sorted {
		if value >= b.Threshold {
			return b.Severity
		}
	}
	return domain.SeverityNone
}

// AlertValue picks the reading's measure for the given basis.
func AlertValue(r domain.DensityReading, basis Basis) float64 {
	if basis == BasisOccupancy {
		return r.Occupancy()
	}
	return r.DensityValue
}
