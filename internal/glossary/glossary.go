// Package glossary holds the reference glossary of ion-exchange terms.
package glossary

import "sort"

var terms = map[string]string{
	"Adsorption":                    "The adhesion of atoms, ions, or molecules from a gas, liquid, or dissolved solid to a surface, forming a film of the adsorbate on the adsorbent.",
	"Anion Exchange":                "Ion exchange of negatively charged ions (anions) between a solution and a solid resin, used to remove contaminants like nitrates, sulfates, and organic acids.",
	"Anion Exchange Capacity (AEC)": "The total number of exchangeable anions a resin can hold per unit volume or weight; a measure of operational capacity.",
	"Cation Exchange":               "Ion exchange of positively charged ions, commonly used for water softening (removing Ca2+ and Mg2+) and demineralization.",
	"Cross-linking":                 "Chemically joining polymer chains, typically with divinylbenzene (DVB). The degree of cross-linking affects stability, swelling behavior, and porosity.",
	"Fouling":                       "Irreversible contamination of a resin by substances regeneration cannot remove. Common foulants include iron, manganese, oils, and some organics.",
	"Fulvic Acid":                   "A component of humus and natural organic matter; a complex organic acid removable from water by certain ion exchange resins.",
	"Functional Group":              "The active chemical group on the resin polymer responsible for the exchange, such as sulfonic acid (-SO3H) or quaternary ammonium groups.",
	"Gel Resin":                     "A resin with a dense, microporous internal structure and no discrete pores; it swells in water to let ions pass through the gel matrix.",
	"Humic Acid":                    "A principal component of humus; a high-molecular-weight organic acid that colors water and is a precursor to disinfection byproducts.",
	"Ion Exchange Resin":            "An insoluble, porous, polymer-based material that exchanges its mobile ions for ions of similar charge from a surrounding solution.",
	"Macroporous Resin":             "A resin with a multichannelled structure and discrete large pores, giving high accessibility for large organic molecules.",
	"Particle Size":                 "The diameter of the resin beads, affecting exchange kinetics and the pressure drop across a bed.",
	"PFAS":                          "Per- and polyfluoroalkyl substances: persistent synthetic pollutants removable from water with specialized ion exchange resins.",
	"Porosity":                      "A measure of void spaces in a material; a key difference between gel and macroporous resin types.",
	"Regeneration":                  "Restoring an exhausted resin to its original ionic form, typically by washing with a concentrated solution of the desired ion.",
	"Selectivity":                   "A resin's preference for one ion over another, determined by ionic charge, size, and the resin's chemical structure.",
	"Sorption":                      "A physical and chemical process by which one substance becomes attached to another; includes both adsorption and absorption.",
	"Swelling":                      "The change in resin volume on immersion in a solvent, dependent on cross-linking and ionic form.",
	"Tannins":                       "Natural organic compounds common in surface waters; removed by specialized organic-scavenger anion resins.",
	"Thermal Stability":             "A resin's ability to withstand high temperatures without degradation of its polymer structure or functional groups.",
	"Total Organic Carbon (TOC)":    "The total carbon bound in organic compounds of a water sample; a general water quality indicator.",
}

// Terms returns the glossary keyed by term name. Callers must not mutate the
// returned map.
func Terms() map[string]string {
	return terms
}

// Lookup returns the definition of a term.
func Lookup(term string) (string, bool) {
	def, ok := terms[term]
	return def, ok
}

// Names lists all glossary terms in sorted order.
func Names() []string {
	names := make([]string, 0, len(terms))
	for name := range terms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
