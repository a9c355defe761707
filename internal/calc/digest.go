package calc

import "fmt"

// Reference reaction: 1 ug of DNA in a 50 uL digest with 1 uL of enzyme.
const (
	referenceDNAMassUg  = 1.0
	referenceTotalVolUl = 50.0
	referenceEnzymeUl   = 1.0
)

type DigestResult struct {
	DNAMassNg      float64 `json:"dna_mass_ng"`
	DNAVolumeUl    float64 `json:"dna_volume_ul"`
	BufferVolumeUl float64 `json:"buffer_volume_ul"`
	EnzymeVolumeUl float64 `json:"enzyme_volume_ul"`
	WaterVolumeUl  float64 `json:"water_volume_ul"`
	TotalVolumeUl  float64 `json:"total_volume_ul"`
	Warning        string  `json:"warning,omitempty"`
}

// RestrictionDigest computes reagent volumes for a restriction digest,
// scaling the total reaction volume by DNA mass against the reference
// reaction. Buffer is 10% of the total; enzyme scales with the DNA but
// is capped at 10% of the total to limit glycerol carryover.
func RestrictionDigest(dnaMassNg, dnaConcNgUl float64) (DigestResult, error) {
	if dnaMassNg <= 0 {
		return DigestResult{}, fmt.Errorf("DNA mass must be positive, got %g", dnaMassNg)
	}
	if dnaConcNgUl <= 0 {
		return DigestResult{}, fmt.Errorf("DNA concentration must be positive, got %g", dnaConcNgUl)
	}

	scale := (dnaMassNg / 1000.0) / referenceDNAMassUg
	totalVol := referenceTotalVolUl * scale

	dnaVol := dnaMassNg / dnaConcNgUl
	if dnaVol >= totalVol {
		return DigestResult{}, fmt.Errorf("DNA volume exceeds calculated total volume; increase DNA concentration")
	}

	bufferVol := totalVol * 0.1
	enzymeVol := referenceEnzymeUl * scale
	if maxEnzyme := totalVol * 0.1; enzymeVol > maxEnzyme {
		enzymeVol = maxEnzyme
	}

	waterVol := totalVol - (dnaVol + bufferVol + enzymeVol)
	if waterVol < 0 {
		return DigestResult{}, fmt.Errorf("calculated water volume is negative; increase DNA concentration")
	}

	result := DigestResult{
		DNAMassNg:      round(dnaMassNg, 2),
		DNAVolumeUl:    round(dnaVol, 2),
		BufferVolumeUl: round(bufferVol, 2),
		EnzymeVolumeUl: round(enzymeVol, 2),
		WaterVolumeUl:  round(waterVol, 2),
		TotalVolumeUl:  round(totalVol, 2),
	}
	if dnaMassNg < 100 {
		result.Warning = "DNA mass <100 ng may yield suboptimal results."
	}
	return result, nil
}
