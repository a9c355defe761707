package calc

import (
	"errors"
	"fmt"
	"strings"
)

// validPrimerBases covers A, T, C, G and the IUPAC degenerate codes.
const validPrimerBases = "ATCGWSMKRYBDHVN"

// ValidatePrimer normalizes a primer sequence to uppercase and rejects
// characters outside the IUPAC alphabet.
func ValidatePrimer(primer string) (string, error) {
	p := strings.ToUpper(strings.TrimSpace(primer))
	if p == "" {
		return "", errors.New("primer sequence is empty")
	}
	for _, b := range p {
		if !strings.ContainsRune(validPrimerBases, b) {
			return "", fmt.Errorf("invalid primer sequence %s: only A, T, C, G and degenerate bases (W, S, M, K, R, Y, B, D, H, V, N) allowed", p)
		}
	}
	return p, nil
}

// validateDNA normalizes a strict DNA sequence (A, T, G, C only) and
// enforces optional length bounds.
func validateDNA(seq, name string, minLen, maxLen int) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(seq))
	if s == "" {
		return "", fmt.Errorf("%s is empty", name)
	}
	for _, b := range s {
		if b != 'A' && b != 'T' && b != 'G' && b != 'C' {
			return "", fmt.Errorf("%s contains invalid characters: use only A, T, G, C", name)
		}
	}
	if minLen > 0 && len(s) < minLen {
		return "", fmt.Errorf("%s is too short (%d bp), minimum %d bp", name, len(s), minLen)
	}
	if maxLen > 0 && len(s) > maxLen {
		return "", fmt.Errorf("%s is too long (%d bp), maximum %d bp", name, len(s), maxLen)
	}
	return s, nil
}

// ReverseComplement returns the reverse complement of a DNA sequence.
// Non-ACGT characters pass through unchanged.
func ReverseComplement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		b := seq[len(seq)-1-i]
		switch b {
		case 'A':
			b = 'T'
		case 'T':
			b = 'A'
		case 'G':
			b = 'C'
		case 'C':
			b = 'G'
		case 'a':
			b = 't'
		case 't':
			b = 'a'
		case 'g':
			b = 'c'
		case 'c':
			b = 'g'
		}
		out[i] = b
	}
	return string(out)
}
