package calc

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Nearest-neighbor thermodynamic parameters from SantaLucia & Hicks
// (2004). Enthalpy in kcal/mol, entropy in cal/(mol*K). Keys are read
// 5'->3' on one strand; each pair appears under both orientations.
type nnParams struct {
	dH, dS float64
}

var nnTable = map[string]nnParams{
	"AA": {-7.6, -21.3}, "TT": {-7.6, -21.3},
	"AT": {-7.2, -20.4},
	"TA": {-7.2, -21.3},
	"CA": {-8.5, -22.7}, "TG": {-8.5, -22.7},
	"GT": {-8.4, -22.4}, "AC": {-8.4, -22.4},
	"CT": {-7.8, -21.0}, "AG": {-7.8, -21.0},
	"GA": {-8.2, -22.2}, "TC": {-8.2, -22.2},
	"CG": {-10.6, -27.2},
	"GC": {-9.8, -24.4},
	"GG": {-8.0, -19.9}, "CC": {-8.0, -19.9},
}

var (
	nnInit       = nnParams{0.2, -5.7}
	nnTerminalAT = nnParams{2.2, 6.9}
)

const gasConstant = 1.987 // cal/(mol*K)

// TmConditions holds buffer and strand concentrations for a melting
// temperature calculation. Na, Mg, and DNTPs are in mM; Primer and
// Template in nM.
type TmConditions struct {
	Na       float64
	Mg       float64
	DNTPs    float64
	Primer   float64
	Template float64
}

// MeltingTemp computes the nearest-neighbor melting temperature of a
// primer in degrees Celsius. Free magnesium (Mg in excess of dNTPs,
// which chelate it) is folded into an equivalent monovalent
// concentration (von Ahsen 2001); the entropy term uses the Owczarzy
// 2004 salt correction. Degenerate bases are not supported here: the
// duplex thermodynamics are undefined for them.
func MeltingTemp(seq string, cond TmConditions) (float64, error) {
	s := strings.ToUpper(strings.TrimSpace(seq))
	if len(s) < 2 {
		return 0, errors.New("sequence too short for nearest-neighbor model")
	}
	for _, b := range s {
		if b != 'A' && b != 'T' && b != 'C' && b != 'G' {
			return 0, fmt.Errorf("cannot compute Tm for base %q: sequence must be unambiguous A/T/C/G", b)
		}
	}

	dH := nnInit.dH
	dS := nnInit.dS
	for _, end := range []byte{s[0], s[len(s)-1]} {
		if end == 'A' || end == 'T' {
			dH += nnTerminalAT.dH
			dS += nnTerminalAT.dS
		}
	}
	for i := 0; i+1 < len(s); i++ {
		p := nnTable[s[i:i+2]]
		dH += p.dH
		dS += p.dS
	}

	mon := cond.Na
	if free := cond.Mg - cond.DNTPs; free > 0 {
		mon += 120 * math.Sqrt(free)
	}
	if mon <= 0 {
		return 0, errors.New("monovalent cation concentration must be positive")
	}
	dS += 0.368 * float64(len(s)-1) * math.Log(mon/1000)

	strand := (cond.Primer - cond.Template/2) * 1e-9
	if strand <= 0 {
		return 0, errors.New("primer concentration must exceed half the template concentration")
	}

	tm := 1000*dH/(dS+gasConstant*math.Log(strand)) - 273.15
	return tm, nil
}
