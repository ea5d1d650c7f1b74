package simulation

import (
	"fmt"
	"strings"

	"github.com/kleafrog-source/research-resin/internal/model"
)

// TOCResult reports one organic-carbon removal simulation.
type TOCResult struct {
	RemovalEfficiency float64 `json:"predicted_removal_efficiency"`
	FinalTOC          float64 `json:"final_toc_mg_l"`
}

// Base removal efficiency by organic contaminant class. Larger, more
// hydrophobic molecules sorb better onto scavenger resins.
var contaminantBaseEfficiency = map[string]float64{
	"tannic acid": 0.90,
	"humic acid":  0.85,
	"fulvic acid": 0.75,
}

// SimulateTOCRemoval estimates how much total organic carbon a resin removes
// from water in a single pass. Macroporous structures admit large organic
// molecules and outperform gel resins; efficiency drops as pH rises above
// neutral because the organics deprotonate and hold their charge in solution.
func SimulateTOCRemoval(r model.Resin, contaminant string, initialTOC, pH float64) (TOCResult, error) {
	base, ok := contaminantBaseEfficiency[strings.ToLower(contaminant)]
	if !ok {
		return TOCResult{}, fmt.Errorf("unknown contaminant: %q", contaminant)
	}
	if initialTOC < 0 {
		return TOCResult{}, fmt.Errorf("initial TOC must be non-negative, got %f", initialTOC)
	}
	if pH < 0 || pH > 14 {
		return TOCResult{}, fmt.Errorf("pH must be in [0,14], got %f", pH)
	}

	structureFactor := 0.75
	switch strings.ToLower(r.Structure) {
	case "macroporous":
		structureFactor = 1.0
	case "gel":
		structureFactor = 0.65
	}

	pHFactor := 1.0
	if pH > 7 {
		pHFactor = 1.0 - 0.06*(pH-7)
	}

	efficiency := clamp(base*structureFactor*pHFactor, 0.01, 0.99)
	return TOCResult{
		RemovalEfficiency: efficiency,
		FinalTOC:          initialTOC * (1 - efficiency),
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
