package forecast

import (
	"fmt"
	"math"
)

// Baseline throughput assumptions behind the staffing estimate: one lab
// tech clears about 15 orders/day, one engineer about 25 complex orders/day,
// and 15% headroom covers quality control and breaks.
const (
	ordersPerTech     = 15.0
	ordersPerEngineer = 25.0
	techBuffer        = 1.15
)

// StaffingPlan is the recommended headcount for a predicted order volume.
type StaffingPlan struct {
	LabTechs  int    `json:"lab_techs"`
	Engineers int    `json:"engineers"`
	Reasoning string `json:"reasoning"`
}

// StaffingNeeds estimates headcount from predicted order volume, a
// complexity score (share of orders needing engineering review) and the
// team's historical efficiency factor. A non-positive efficiency is treated
// as the neutral 1.0 so the estimate stays finite.
func StaffingNeeds(orderVolume, complexityScore, historicalEfficiency float64) StaffingPlan {
	if historicalEfficiency <= 0 {
		historicalEfficiency = 1
	}

	baseTechs := math.Ceil(orderVolume / (ordersPerTech * historicalEfficiency))
	labTechs := int(math.Ceil(baseTechs * techBuffer))

	complexOrders := orderVolume * complexityScore
	engineers := int(math.Ceil(complexOrders / ordersPerEngineer))

	reasoning := fmt.Sprintf(
		"Based on %d predicted orders with complexity score %.2f and %.0f%% efficiency, recommend %d lab techs and %d engineers.",
		int(orderVolume), complexityScore, historicalEfficiency*100, labTechs, engineers,
	)

	return StaffingPlan{
		LabTechs:  labTechs,
		Engineers: engineers,
		Reasoning: reasoning,
	}
}
