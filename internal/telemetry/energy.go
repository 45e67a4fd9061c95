package telemetry

import (
	"fmt"
	"math"
)

// TariffCNYPerKWh is the flat electricity price.
const TariffCNYPerKWh = 0.6

const (
	roomAreaBase      = 20.0
	roomAreaPerDevice = 15.0
	roomAreaJitter    = 20.0
)

// Energy is the consumption and cost of one device for one day.
type Energy struct {
	BaseKWh    float64 `json:"base_kwh"`
	Multiplier float64 `json:"multiplier"`
	KWh        float64 `json:"energy_kwh"`
	CostCNY    float64 `json:"cost_cny"`
}

// FaultMultiplier maps a fault to its energy overhead factor.
func FaultMultiplier(category FaultCategory, severity int) float64 {
	s := float64(severity) / 100
	switch category {
	case FaultPowerOverload:
		return 1.5 + s*0.5
	case FaultNoCooling:
		return 1.3 + s*0.3
	case FaultTemperatureAbnormal:
		return 1.2 + s*0.3
	case FaultOperationAbnormal:
		return 1.25 + s*0.3
	default:
		return 1.0
	}
}

// ComputeEnergy converts rated power and runtime into energy and cost,
// inflated by the fault multiplier.
func ComputeEnergy(powerW, runtimeHours float64, category FaultCategory, severity int) (Energy, error) {
	if powerW < 0 {
		return Energy{}, fmt.Errorf("compute energy for %.1f W: %w", powerW, ErrNegativePower)
	}
	if runtimeHours < 0 {
		return Energy{}, fmt.Errorf("compute energy for %.2f h: %w", runtimeHours, ErrNegativeRuntime)
	}
	base := powerW * runtimeHours / 1000
	mult := 1.0
	if runtimeHours > 0 {
		mult = FaultMultiplier(category, severity)
	}
	kwh := base * mult
	return Energy{
		BaseKWh:    base,
		Multiplier: mult,
		KWh:        kwh,
		CostCNY:    Round2(kwh * TariffCNYPerKWh),
	}, nil
}

// RoomArea estimates a room's floor area from its device count.
func RoomArea(room string, deviceCount int) float64 {
	return math.Round(roomAreaBase + float64(deviceCount)*roomAreaPerDevice + Scalar(room, deviceCount)*roomAreaJitter)
}

// Efficiency is energy per square metre; 0 for a zero area.
func Efficiency(energyKWh, area float64) float64 {
	return ratio(energyKWh, area)
}

// Round2 rounds to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
