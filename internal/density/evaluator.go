package density

import (
	"math"

	"crowdWatch/internal/domain"
)

// StatusBreakpoints are the lower edges of the moderate, high and critical
// bands in people per square meter. A value equal to a breakpoint is promoted.
type StatusBreakpoints struct {
	Moderate float64 `yaml:"moderate"`
	High     float64 `yaml:"high"`
	Critical float64 `yaml:"critical"`
}

func DefaultStatusBreakpoints() StatusBreakpoints {
	return StatusBreakpoints{Moderate: 1.6, High: 3.1, Critical: 4.6}
}

type Config struct {
	Status StatusBreakpoints
	// MinArea is the sanity floor below which a computed zone area is not trusted.
	MinArea float64
	// PerPersonArea derives a fallback area from capacity.
	PerPersonArea float64
}

func DefaultConfig() Config {
	return Config{
		Status:        DefaultStatusBreakpoints(),
		MinArea:       1,
		PerPersonArea: 0.5,
	}
}

type Evaluator struct {
	cfg Config
}

func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// EffectiveArea substitutes capacity * PerPersonArea when area is below the floor.
func (e *Evaluator) EffectiveArea(area float64, capacity int) float64 {
	if area < e.cfg.MinArea || math.IsNaN(area) || math.IsInf(area, 0) {
		return float64(capacity) * e.cfg.PerPersonArea
	}
	return area
}

// Evaluate returns people per square meter and its status band.
func (e *Evaluator) Evaluate(count int, area float64, capacity int) (float64, domain.DensityStatus) {
	area = e.EffectiveArea(area, capacity)

	var value float64
	if area > 0 {
		value = float64(count) / area
	}
	return value, e.Status(value)
}

// Status is a pure step function of the density; no hysteresis.
func (e *Evaluator) Status(value float64) domain.DensityStatus {
	b := e.cfg.Status
	switch {
	case value >= b.Critical:
		return domain.DensityCritical
	case value >= b.High:
		return domain.DensityHigh
	case value >= b.Moderate:
		return domain.DensityModerate
	default:
		return domain.DensitySafe
	}
}

// Round4 trims a density to four decimals for storage.
func Round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
