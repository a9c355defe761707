package calc

import "fmt"

// dsDNAMolarMassPerBP is the average molar mass of double-stranded DNA
// per base pair, in g/mol.
const dsDNAMolarMassPerBP = 660.0

type LigationResult struct {
	VectorMassNg   float64 `json:"vector_mass_ng"`
	VectorVolumeUl float64 `json:"vector_volume_ul"`
	InsertMassNg   float64 `json:"insert_mass_ng"`
	InsertVolumeUl float64 `json:"insert_volume_ul"`
	Ratio          float64 `json:"ratio"`
}

// InsertVectorRatio computes the insert mass and pipetting volumes for
// a ligation at the requested insert:vector molar ratio, given a fixed
// vector mass.
func InsertVectorRatio(vectorSizeBP, insertSizeBP int, vectorConcNgUl, insertConcNgUl, ratio, vectorMassNg float64) (LigationResult, error) {
	if vectorSizeBP <= 0 {
		return LigationResult{}, fmt.Errorf("vector size must be positive, got %d", vectorSizeBP)
	}
	if insertSizeBP <= 0 {
		return LigationResult{}, fmt.Errorf("insert size must be positive, got %d", insertSizeBP)
	}
	if vectorConcNgUl <= 0 {
		return LigationResult{}, fmt.Errorf("vector concentration must be positive, got %g", vectorConcNgUl)
	}
	if insertConcNgUl <= 0 {
		return LigationResult{}, fmt.Errorf("insert concentration must be positive, got %g", insertConcNgUl)
	}
	if ratio <= 0 {
		return LigationResult{}, fmt.Errorf("ratio must be positive, got %g", ratio)
	}
	if vectorMassNg <= 0 {
		return LigationResult{}, fmt.Errorf("vector mass must be positive, got %g", vectorMassNg)
	}

	vectorMoles := vectorMassNg * 1e-9 / (float64(vectorSizeBP) * dsDNAMolarMassPerBP)
	insertMoles := vectorMoles * ratio
	insertMassNg := insertMoles * float64(insertSizeBP) * dsDNAMolarMassPerBP * 1e9

	return LigationResult{
		VectorMassNg:   round(vectorMassNg, 2),
		VectorVolumeUl: round(vectorMassNg/vectorConcNgUl, 2),
		InsertMassNg:   round(insertMassNg, 2),
		InsertVolumeUl: round(insertMassNg/insertConcNgUl, 2),
		Ratio:          ratio,
	}, nil
}
