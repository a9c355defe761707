package calc

import (
	"fmt"
	"strings"
)

const (
	// crisprRepeatPattern is the repeat flanking the spacer slot in the
	// gRNA expression vector.
	crisprRepeatPattern = "GTGAACTGCCGAGTAGGTAGCTGATAAC"

	// crisprHomologyLen is how much of each repeat serves as the Gibson
	// homology arm.
	crisprHomologyLen = 22

	maxPrimerLen = 60

	spacerMinLen = 28
	spacerMaxLen = 32
)

type CRISPRPrimerResult struct {
	ForwardPrimer        string `json:"forward_primer"`
	ReversePrimer        string `json:"reverse_primer"`
	ForwardHomology      string `json:"forward_homology"`
	ReverseHomology      string `json:"reverse_homology"`
	SpacerLength         int    `json:"grna_spacer_length"`
	SeedSequence         string `json:"seed_sequence"`
	FirstRepeatPosition  int    `json:"first_repeat_position"`
	SecondRepeatPosition int    `json:"second_repeat_position"`
	ExpectedInsertSizeBP int    `json:"expected_insert_size_bp"`
}

// DesignGRNAPrimers builds the Gibson assembly primer pair that inserts
// a gRNA spacer between the two CRISPR repeats of a vector. The forward
// primer is the spacer followed by the tail of the first repeat; the
// reverse primer is the reverse complement of the spacer followed by
// the reverse complement of the head of the second repeat.
func DesignGRNAPrimers(vectorSequence, grnaSpacer string) (CRISPRPrimerResult, error) {
	vector, err := validateDNA(vectorSequence, "vector sequence", 0, 0)
	if err != nil {
		return CRISPRPrimerResult{}, err
	}
	spacer, err := validateDNA(grnaSpacer, "gRNA spacer", spacerMinLen, spacerMaxLen)
	if err != nil {
		return CRISPRPrimerResult{}, err
	}

	firstPos := strings.Index(vector, crisprRepeatPattern)
	if firstPos < 0 {
		return CRISPRPrimerResult{}, fmt.Errorf("could not find CRISPR repeat pattern in vector sequence")
	}
	secondPos := strings.Index(vector[firstPos+len(crisprRepeatPattern):], crisprRepeatPattern)
	if secondPos < 0 {
		return CRISPRPrimerResult{}, fmt.Errorf("could not find second CRISPR repeat in vector sequence")
	}
	secondPos += firstPos + len(crisprRepeatPattern)

	firstRepeatEnd := firstPos + len(crisprRepeatPattern)
	forwardHomology := vector[firstRepeatEnd-crisprHomologyLen : firstRepeatEnd]
	reverseHomology := vector[secondPos : secondPos+crisprHomologyLen]

	forward := spacer + forwardHomology
	reverse := ReverseComplement(spacer) + ReverseComplement(reverseHomology)

	if len(forward) > maxPrimerLen {
		return CRISPRPrimerResult{}, fmt.Errorf("forward primer (%d bp) exceeds maximum length (%d bp)", len(forward), maxPrimerLen)
	}
	if len(reverse) > maxPrimerLen {
		return CRISPRPrimerResult{}, fmt.Errorf("reverse primer (%d bp) exceeds maximum length (%d bp)", len(reverse), maxPrimerLen)
	}

	return CRISPRPrimerResult{
		ForwardPrimer:        forward,
		ReversePrimer:        reverse,
		ForwardHomology:      forwardHomology,
		ReverseHomology:      reverseHomology,
		SpacerLength:         len(spacer),
		SeedSequence:         spacer[:8],
		FirstRepeatPosition:  firstPos,
		SecondRepeatPosition: secondPos,
		ExpectedInsertSizeBP: crisprHomologyLen*2 + len(spacer),
	}, nil
}
