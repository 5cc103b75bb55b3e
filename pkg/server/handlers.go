package server

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"time"

	"injala/certguard/pkg/coi"
	"injala/certguard/pkg/compliance"
)

// validateRequest is the JSON body accepted by POST /validate.
type validateRequest struct {
	DocumentText string `json:"document_text"`
}

// validateResponse is the JSON body returned by POST /validate.
type validateResponse struct {
	ComplianceStatus compliance.OverallStatus     `json:"compliance_status"`
	Validation       *compliance.ValidationResult `json:"validation_results"`
	Fields           *coi.FieldSet                `json:"extracted_fields"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	endpoints := map[string]string{
		"GET /health":    "Health check endpoint",
		"POST /validate": "Validate a COI document text",
	}
	if s.metricsPath != "" {
		endpoints["GET "+s.metricsPath] = "Prometheus metrics"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "CertGuard COI Compliance Validation API",
		"description": "API for validating Certificate of Insurance documents",
		"endpoints":   endpoints,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleValidate extracts and validates a single document. The body is
// either JSON carrying document_text or the raw document text itself.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read request body"})
		return
	}

	text := string(body)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req validateRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}
		text = req.DocumentText
	}
	if text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document_text is required"})
		return
	}

	fields, result := s.pipeline.ValidateText(text, s.Rules())
	writeJSON(w, http.StatusOK, &validateResponse{
		ComplianceStatus: result.OverallStatus,
		Validation:       result,
		Fields:           fields,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
