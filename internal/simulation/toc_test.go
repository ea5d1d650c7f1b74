package simulation

import (
	"testing"

	"github.com/kleafrog-source/research-resin/internal/model"
)

func macroporousResin() model.Resin {
	return model.Resin{
		Name:            "CalRes 2304",
		Manufacturer:    "Calgon Carbon",
		Type:            "Strong Base Anion",
		Structure:       "Macroporous",
		FunctionalGroup: "Quaternary Ammonium",
		IonicForm:       "Cl-",
	}
}

func TestTOCRemovalStandardConditions(t *testing.T) {
	result, err := SimulateTOCRemoval(macroporousResin(), "Tannic Acid", 10.0, 7.0)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if result.RemovalEfficiency <= 0 || result.RemovalEfficiency >= 1 {
		t.Fatalf("efficiency out of (0,1): %f", result.RemovalEfficiency)
	}
	if result.FinalTOC >= 10.0 {
		t.Fatalf("final TOC must be below initial: %f", result.FinalTOC)
	}
}

func TestTOCRemovalHighPHReducesEfficiency(t *testing.T) {
	neutral, err := SimulateTOCRemoval(macroporousResin(), "Tannic Acid", 10.0, 7.0)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	alkaline, err := SimulateTOCRemoval(macroporousResin(), "Tannic Acid", 10.0, 9.0)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if alkaline.RemovalEfficiency >= neutral.RemovalEfficiency {
		t.Fatalf("high pH must reduce efficiency: %f vs %f", alkaline.RemovalEfficiency, neutral.RemovalEfficiency)
	}
}

func TestTOCRemovalGelUnderperformsMacroporous(t *testing.T) {
	gel := macroporousResin()
	gel.Structure = "Gel"

	macro, err := SimulateTOCRemoval(macroporousResin(), "Humic Acid", 10.0, 7.0)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	gelResult, err := SimulateTOCRemoval(gel, "Humic Acid", 10.0, 7.0)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if gelResult.RemovalEfficiency >= macro.RemovalEfficiency {
		t.Fatalf("gel must underperform macroporous: %f vs %f", gelResult.RemovalEfficiency, macro.RemovalEfficiency)
	}
}

func TestTOCRemovalInputValidation(t *testing.T) {
	r := macroporousResin()
	if _, err := SimulateTOCRemoval(r, "Motor Oil", 10, 7); err == nil {
		t.Fatal("unknown contaminant must fail")
	}
	if _, err := SimulateTOCRemoval(r, "Tannic Acid", -1, 7); err == nil {
		t.Fatal("negative TOC must fail")
	}
	if _, err := SimulateTOCRemoval(r, "Tannic Acid", 10, 15); err == nil {
		t.Fatal("pH above 14 must fail")
	}
}
