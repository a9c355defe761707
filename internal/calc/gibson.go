package calc

import (
	"fmt"
	"strings"
)

// averageBasePairMassNg is the approximate mass of 1 pmol of one base
// pair of double-stranded DNA, in ng*1000 (i.e. 650 g/mol per bp).
const averageBasePairMassNg = 650.0

// basePmol is the reference amount for the fragment with the smallest
// molar ratio; everything else scales from it.
const basePmol = 0.1

type GibsonFragment struct {
	SizeBP     int     `json:"size_bp"`
	ConcNgUl   float64 `json:"concentration_ng_ul"`
	MolarRatio float64 `json:"molar_ratio"`
}

type GibsonFragmentResult struct {
	FragmentNumber int     `json:"fragment_number"`
	SizeBP         int     `json:"size_bp"`
	ConcNgUl       float64 `json:"concentration_ng_ul"`
	VolumeUl       float64 `json:"volume_ul"`
	MassNg         float64 `json:"mass_ng"`
	Pmol           float64 `json:"pmol"`
	MolarRatio     float64 `json:"molar_ratio"`
}

type GibsonResult struct {
	Fragments     []GibsonFragmentResult `json:"fragments"`
	TotalVolumeUl float64                `json:"total_volume_ul"`
	TotalSizeBP   int                    `json:"total_size_bp"`
	TotalPmol     float64                `json:"total_pmol"`
	ScaleFactor   float64                `json:"scale_factor"`
	MolarRatios   string                 `json:"molar_ratios"`
}

// GibsonAssembly computes per-fragment pipetting volumes for a Gibson
// assembly. The fragment with the smallest molar ratio is pinned to the
// base amount, the others scale by their ratios, and the whole reaction
// is then scaled so the fragment volumes sum to the requested total.
func GibsonAssembly(fragments []GibsonFragment, totalVolumeUl float64) (GibsonResult, error) {
	if len(fragments) < 2 {
		return GibsonResult{}, fmt.Errorf("number of fragments must be at least 2, got %d", len(fragments))
	}
	if totalVolumeUl <= 0 {
		return GibsonResult{}, fmt.Errorf("total volume must be positive, got %g", totalVolumeUl)
	}

	minRatio := fragments[0].MolarRatio
	totalSize := 0
	for i, f := range fragments {
		if f.SizeBP <= 0 {
			return GibsonResult{}, fmt.Errorf("fragment %d size must be positive", i+1)
		}
		if f.ConcNgUl <= 0 {
			return GibsonResult{}, fmt.Errorf("fragment %d concentration must be positive", i+1)
		}
		if f.MolarRatio <= 0 {
			return GibsonResult{}, fmt.Errorf("fragment %d molar ratio must be positive", i+1)
		}
		if f.MolarRatio < minRatio {
			minRatio = f.MolarRatio
		}
		totalSize += f.SizeBP
	}

	pmols := make([]float64, len(fragments))
	masses := make([]float64, len(fragments))
	volumes := make([]float64, len(fragments))
	unscaledTotal := 0.0
	for i, f := range fragments {
		pmols[i] = basePmol * f.MolarRatio / minRatio
		masses[i] = pmols[i] * float64(f.SizeBP) * averageBasePairMassNg / 1000
		volumes[i] = masses[i] / f.ConcNgUl
		unscaledTotal += volumes[i]
	}

	scale := totalVolumeUl / unscaledTotal

	result := GibsonResult{
		TotalVolumeUl: totalVolumeUl,
		TotalSizeBP:   totalSize,
		ScaleFactor:   round(scale, 2),
	}

	var ratios []string
	totalPmol := 0.0
	for i, f := range fragments {
		scaledPmol := pmols[i] * scale
		totalPmol += scaledPmol
		result.Fragments = append(result.Fragments, GibsonFragmentResult{
			FragmentNumber: i + 1,
			SizeBP:         f.SizeBP,
			ConcNgUl:       f.ConcNgUl,
			VolumeUl:       round(volumes[i]*scale, 2),
			MassNg:         round(masses[i]*scale, 2),
			Pmol:           round(scaledPmol, 3),
			MolarRatio:     f.MolarRatio,
		})
		ratios = append(ratios, fmt.Sprintf("%.1f", f.MolarRatio))
	}
	result.TotalPmol = round(totalPmol, 3)
	result.MolarRatios = strings.Join(ratios, ":")

	return result, nil
}
