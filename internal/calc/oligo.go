package calc

import "fmt"

type OligoAnnealingResult struct {
	Oligo1VolumeUl float64 `json:"oligo1_volume_ul"`
	Oligo2VolumeUl float64 `json:"oligo2_volume_ul"`
	WaterVolumeUl  float64 `json:"water_volume_ul"`
	FinalVolumeUl  float64 `json:"final_volume_ul"`
	FinalConcUM    float64 `json:"final_concentration_uM"`
}

// OligoAnnealing computes the volumes of two oligo stocks and water
// needed to anneal them at the desired final concentration (C1V1 = C2V2
// per oligo).
func OligoAnnealing(oligo1ConcUM, oligo2ConcUM, desiredConcUM, finalVolumeUl float64) (OligoAnnealingResult, error) {
	if oligo1ConcUM <= 0 {
		return OligoAnnealingResult{}, fmt.Errorf("oligo 1 concentration must be positive, got %g", oligo1ConcUM)
	}
	if oligo2ConcUM <= 0 {
		return OligoAnnealingResult{}, fmt.Errorf("oligo 2 concentration must be positive, got %g", oligo2ConcUM)
	}
	if desiredConcUM <= 0 {
		return OligoAnnealingResult{}, fmt.Errorf("desired concentration must be positive, got %g", desiredConcUM)
	}
	if finalVolumeUl <= 0 {
		return OligoAnnealingResult{}, fmt.Errorf("final volume must be positive, got %g", finalVolumeUl)
	}

	oligo1Vol := desiredConcUM * finalVolumeUl / oligo1ConcUM
	oligo2Vol := desiredConcUM * finalVolumeUl / oligo2ConcUM
	waterVol := finalVolumeUl - oligo1Vol - oligo2Vol
	if waterVol < 0 {
		return OligoAnnealingResult{}, fmt.Errorf("calculated water volume is negative; check concentrations")
	}

	return OligoAnnealingResult{
		Oligo1VolumeUl: round(oligo1Vol, 2),
		Oligo2VolumeUl: round(oligo2Vol, 2),
		WaterVolumeUl:  round(waterVol, 2),
		FinalVolumeUl:  finalVolumeUl,
		FinalConcUM:    desiredConcUM,
	}, nil
}
