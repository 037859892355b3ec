package guidance

import (
	"github.com/shreyajaiswal17/athletehub/internal/workload"
)

var riskFlagMessages = map[string]string{
	"acwr_spike":        "Acute load is far above the chronic base: cut volume until the ratio is back under 1.3.",
	"acwr_elevated":     "Acute load is climbing faster than fitness: avoid adding volume this week.",
	"acwr_undertrained": "Training load is below the usual base: build it back gradually.",
	"fatigue":           "Accumulated fatigue is high relative to fitness: plan an easier block.",
	"recovery_deficit":  "Recovery markers (sleep, soreness, resting heart rate) are below par.",
	"active_injuries":   "Active injury: follow the rehab plan and get medical clearance before full training.",
	"recent_injuries":   "Recently recovered from injury: reintroduce high intensity carefully.",
	"sport":             "The sport itself carries an elevated baseline injury risk.",
	"age":               "Age adds to recovery needs: keep an extra rest day.",
}

// RiskFlags turns the contributing risk factors into advice, highest risk first.
func RiskFlags(risk workload.Risk) []string {
	flags := make([]string, 0, len(risk.Factors))
	for _, f := range risk.Factors {
		if msg, ok := riskFlagMessages[f.Name]; ok {
			flags = append(flags, msg)
		}
	}
	return flags
}
