package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"injala/certguard/pkg/compliance"
	"injala/certguard/pkg/config"
	"injala/certguard/pkg/extract"
	"injala/certguard/pkg/pipeline"
	"injala/certguard/pkg/rules"
	"injala/certguard/pkg/telemetry/metrics"
)

const compliantCOI = `CERTIFICATE OF LIABILITY INSURANCE

Carrier: Acme Mutual Insurance Company
Policy Number: GL-2025-009876
Effective Date: 01/15/2025
Expiration Date: 01/15/2026

Insured: Bright Path Construction
123 Main Street

General Liability: $2,000,000
Professional Liability: $1,000,000
Workers Compensation: $1,000,000

Certificate Holder: Northwind Property Group
456 Oak Avenue

Cancellation: The insurer will provide 30 days written notice.
`

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.DefaultConfig()
	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	p, err := pipeline.New(pipeline.Config{
		DataPath:  ".",
		Extractor: extract.New(nil),
		Validator: compliance.New(&compliance.Config{Now: func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		}}),
		Rules:   rules.NewLoader(rules.NewMemoryStore("rules.json", nil)),
		Metrics: collector,
	})
	if err != nil {
		t.Fatalf("pipeline.New: %v", err)
	}
	return NewServer(cfg, p, collector, rules.Default())
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHandleHealth(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]any
	decodeBody(t, rec, &body)
	if body["status"] != "healthy" {
		t.Errorf("status field = %v, want healthy", body["status"])
	}
	if body["timestamp"] == "" {
		t.Errorf("timestamp missing")
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /health status = %d, want 405", rec.Code)
	}
}

func TestHandleIndex(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Name      string            `json:"name"`
		Endpoints map[string]string `json:"endpoints"`
	}
	decodeBody(t, rec, &body)
	if body.Name == "" {
		t.Errorf("service name missing")
	}
	if _, ok := body.Endpoints["POST /validate"]; !ok {
		t.Errorf("endpoints = %v, want POST /validate listed", body.Endpoints)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no-such-path", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", rec.Code)
	}
}

func TestHandleValidate_JSON(t *testing.T) {
	handler := newTestServer(t).Handler()

	payload, _ := json.Marshal(map[string]string{"document_text": compliantCOI})
	req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body validateResponse
	decodeBody(t, rec, &body)
	if body.ComplianceStatus != compliance.Compliant {
		t.Errorf("compliance_status = %q, want compliant", body.ComplianceStatus)
	}
	if body.Fields == nil || body.Fields.PolicyNumber != "GL-2025-009876" {
		t.Errorf("extracted fields missing: %+v", body.Fields)
	}
	if body.Validation == nil || body.Validation.RequiredFields.Status != compliance.StatusPass {
		t.Errorf("validation results missing: %+v", body.Validation)
	}
}

func TestHandleValidate_PlainText(t *testing.T) {
	handler := newTestServer(t).Handler()

	req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader("Policy Number: GL-1"))
	req.Header.Set("Content-Type", "text/plain")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body validateResponse
	decodeBody(t, rec, &body)
	if body.ComplianceStatus != compliance.NonCompliant {
		t.Errorf("compliance_status = %q, want non_compliant", body.ComplianceStatus)
	}
}

func TestHandleValidate_BadRequests(t *testing.T) {
	handler := newTestServer(t).Handler()

	tests := []struct {
		name        string
		method      string
		body        string
		contentType string
		wantStatus  int
	}{
		{name: "wrong method", method: http.MethodGet, wantStatus: http.StatusMethodNotAllowed},
		{name: "empty body", method: http.MethodPost, wantStatus: http.StatusBadRequest},
		{name: "invalid json", method: http.MethodPost, body: "{", contentType: "application/json", wantStatus: http.StatusBadRequest},
		{name: "json without text", method: http.MethodPost, body: "{}", contentType: "application/json", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/validate", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestSetRules(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.Handler()

	req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(compliantCOI))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var before validateResponse
	decodeBody(t, rec, &before)
	if before.ComplianceStatus != compliance.Compliant {
		t.Fatalf("compliance_status before swap = %q, want compliant", before.ComplianceStatus)
	}

	stricter := rules.Default()
	stricter.RequiredCancellationNoticeDays = 60
	srv.SetRules(stricter)

	req = httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(compliantCOI))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var after validateResponse
	decodeBody(t, rec, &after)
	if after.ComplianceStatus != compliance.NonCompliant {
		t.Errorf("compliance_status after swap = %q, want non_compliant", after.ComplianceStatus)
	}
	if after.Validation.CancellationClause.Status != compliance.StatusFail {
		t.Errorf("cancellation_clause after swap = %q, want fail", after.Validation.CancellationClause.Status)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestServer(t).Handler()

	// Generate some traffic first so counters exist.
	req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(compliantCOI))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "certguard_") {
		t.Errorf("exposition output carries no certguard metrics")
	}
}
