package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/sopdex/internal/calc"
)

// Calculator endpoints are thin wrappers: decode the request, run the
// stateless calculation, map validation errors to 400.

type annealingTempRequest struct {
	ForwardPrimer string `json:"forward_primer"`
	ReversePrimer string `json:"reverse_primer"`
	PCRType       string `json:"pcr_type"`
}

func (s *Server) handleAnnealingTemp(w http.ResponseWriter, r *http.Request) {
	var req annealingTempRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := calc.AnnealingTemp(req.ForwardPrimer, req.ReversePrimer, req.PCRType)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type gibsonRequest struct {
	Fragments     []calc.GibsonFragment `json:"fragments"`
	TotalVolumeUl float64               `json:"total_volume_ul"`
}

func (s *Server) handleGibson(w http.ResponseWriter, r *http.Request) {
	var req gibsonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Unspecified molar ratios default to 1.0.
	for i := range req.Fragments {
		if req.Fragments[i].MolarRatio == 0 {
			req.Fragments[i].MolarRatio = 1.0
		}
	}

	result, err := calc.GibsonAssembly(req.Fragments, req.TotalVolumeUl)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type digestRequest struct {
	DNAMassNg   float64 `json:"dna_mass_ng"`
	DNAConcNgUl float64 `json:"dna_conc_ng_ul"`
}

func (s *Server) handleDigest(w http.ResponseWriter, r *http.Request) {
	var req digestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := calc.RestrictionDigest(req.DNAMassNg, req.DNAConcNgUl)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type insertVectorRequest struct {
	VectorSizeBP   int     `json:"vector_size_bp"`
	InsertSizeBP   int     `json:"insert_size_bp"`
	VectorConcNgUl float64 `json:"vector_conc_ng_ul"`
	InsertConcNgUl float64 `json:"insert_conc_ng_ul"`
	Ratio          float64 `json:"ratio"`
	VectorMassNg   float64 `json:"vector_mass_ng"`
}

func (s *Server) handleInsertVectorRatio(w http.ResponseWriter, r *http.Request) {
	var req insertVectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Standard 3:1 insert:vector ratio unless the caller overrides it.
	if req.Ratio == 0 {
		req.Ratio = 3.0
	}

	result, err := calc.InsertVectorRatio(req.VectorSizeBP, req.InsertSizeBP,
		req.VectorConcNgUl, req.InsertConcNgUl, req.Ratio, req.VectorMassNg)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type oligoAnnealingRequest struct {
	Oligo1ConcUM  float64 `json:"oligo1_conc_uM"`
	Oligo2ConcUM  float64 `json:"oligo2_conc_uM"`
	DesiredConcUM float64 `json:"desired_conc_uM"`
	FinalVolumeUl float64 `json:"final_volume_ul"`
}

func (s *Server) handleOligoAnnealing(w http.ResponseWriter, r *http.Request) {
	var req oligoAnnealingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := calc.OligoAnnealing(req.Oligo1ConcUM, req.Oligo2ConcUM,
		req.DesiredConcUM, req.FinalVolumeUl)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type crisprPrimerRequest struct {
	VectorSequence string `json:"vector_sequence"`
	GRNASpacer     string `json:"grna_spacer"`
}

func (s *Server) handleCRISPRPrimers(w http.ResponseWriter, r *http.Request) {
	var req crisprPrimerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := calc.DesignGRNAPrimers(req.VectorSequence, req.GRNASpacer)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
