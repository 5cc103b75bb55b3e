package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"injala/certguard/pkg/coi"
	"injala/certguard/pkg/compliance"
	"injala/certguard/pkg/extract"
	"injala/certguard/pkg/history"
	"injala/certguard/pkg/rules"
	"injala/certguard/pkg/telemetry/metrics"
)

// DocumentResult is the full validation outcome for one document.
type DocumentResult struct {
	FileName         string                       `json:"file_name"`
	FilePath         string                       `json:"file_path"`
	ComplianceStatus compliance.OverallStatus     `json:"compliance_status"`
	Error            string                       `json:"error,omitempty"`
	Validation       *compliance.ValidationResult `json:"validation_results,omitempty"`
	Fields           *coi.FieldSet                `json:"extracted_fields,omitempty"`
}

// Summary aggregates a run's results.
type Summary struct {
	RunID                 string            `json:"run_id"`
	Total                 int               `json:"total"`
	Compliant             int               `json:"compliant"`
	CompliantWithWarnings int               `json:"compliant_with_warnings"`
	NonCompliant          int               `json:"non_compliant"`
	Errors                int               `json:"errors"`
	Results               []*DocumentResult `json:"results"`
}

// Config holds the pipeline's collaborators and knobs. Extractor,
// Validator and Rules are required; the rest are optional.
type Config struct {
	// DataPath is the directory scanned for documents.
	DataPath string

	// Extensions lists the accepted file extensions.
	Extensions []string

	// Workers bounds concurrent document processing. Values below 1
	// are treated as 1.
	Workers int

	// Extractor extracts fields from document text.
	Extractor *extract.Extractor

	// Validator runs the compliance checks.
	Validator *compliance.Validator

	// Rules loads the rule specification once per run.
	Rules *rules.Loader

	// History records per-document outcomes when non-nil.
	History history.Storage

	// Metrics records pipeline metrics when non-nil.
	Metrics *metrics.Collector

	// Cache skips re-extraction of unchanged documents when non-nil.
	Cache *Cache
}

// Pipeline orchestrates scan, extraction, validation and recording.
type Pipeline struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a Pipeline from the configuration.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Extractor == nil || cfg.Validator == nil || cfg.Rules == nil {
		return nil, fmt.Errorf("pipeline requires an extractor, a validator and a rules loader")
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Pipeline{
		cfg:    cfg,
		logger: slog.Default().With("component", "pipeline"),
	}, nil
}

// Run scans the data directory and validates every document. The rule
// specification is loaded once so all documents in a run see the same
// rules. The returned summary preserves scan order.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.NewString()
	spec := p.cfg.Rules.Load()

	docs, err := Scan(p.cfg.DataPath, p.cfg.Extensions)
	if err != nil {
		return nil, err
	}

	if p.cfg.Metrics != nil {
		p.cfg.Metrics.RecordRun()
	}
	p.logger.Info("validation run started",
		"run_id", runID,
		"documents", len(docs),
		"workers", p.cfg.Workers,
	)

	results := make([]*DocumentResult, len(docs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.processDocument(ctx, runID, docs[i], spec)
			}
		}()
	}

	for i := range docs {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := &Summary{RunID: runID, Total: len(results), Results: results}
	for _, r := range results {
		switch r.ComplianceStatus {
		case compliance.Compliant:
			summary.Compliant++
		case compliance.CompliantWithWarnings:
			summary.CompliantWithWarnings++
		case compliance.NonCompliant:
			summary.NonCompliant++
		default:
			summary.Errors++
		}
	}

	p.logger.Info("validation run completed",
		"run_id", runID,
		"total", summary.Total,
		"compliant", summary.Compliant,
		"with_warnings", summary.CompliantWithWarnings,
		"non_compliant", summary.NonCompliant,
		"errors", summary.Errors,
	)
	return summary, nil
}

// ValidateText extracts and validates a single raw text blob against
// the current rules. Used by the check command and the HTTP surface.
func (p *Pipeline) ValidateText(text string, spec *rules.Spec) (*coi.FieldSet, *compliance.ValidationResult) {
	start := time.Now()
	fields := p.cfg.Extractor.Extract(text)
	if p.cfg.Metrics != nil {
		p.cfg.Metrics.RecordExtraction(time.Since(start))
	}

	result := p.cfg.Validator.Validate(fields, spec)
	if p.cfg.Metrics != nil {
		p.cfg.Metrics.RecordDocument(string(result.OverallStatus), checkStatusStrings(result))
	}
	return fields, result
}

func (p *Pipeline) processDocument(ctx context.Context, runID string, info coi.DocumentInfo, spec *rules.Spec) *DocumentResult {
	start := time.Now()
	result := &DocumentResult{
		FileName: info.FileName,
		FilePath: info.FilePath,
	}

	fields, cached := p.cachedFields(info)
	if fields == nil {
		raw := ReadDocument(info)
		if raw.ExtractionMethod == coi.ExtractionError {
			result.ComplianceStatus = compliance.StatusError
			result.Error = raw.Error
			p.record(ctx, runID, result)
			if p.cfg.Metrics != nil {
				p.cfg.Metrics.RecordDocument(string(result.ComplianceStatus), nil)
			}
			return result
		}

		extractStart := time.Now()
		fields = p.cfg.Extractor.Extract(raw.ExtractedText)
		if p.cfg.Metrics != nil {
			p.cfg.Metrics.RecordExtraction(time.Since(extractStart))
		}
		if p.cfg.Cache != nil {
			p.cfg.Cache.Put(info, fields)
		}
	}

	validation := p.cfg.Validator.Validate(fields, spec)
	result.ComplianceStatus = validation.OverallStatus
	result.Validation = validation
	result.Fields = fields

	if p.cfg.Metrics != nil {
		p.cfg.Metrics.RecordDocument(string(result.ComplianceStatus), checkStatusStrings(validation))
		p.cfg.Metrics.RecordValidation(time.Since(start))
	}

	p.logger.Debug("document validated",
		"file_name", info.FileName,
		"status", result.ComplianceStatus,
		"cached_extraction", cached,
	)
	p.record(ctx, runID, result)
	return result
}

func (p *Pipeline) cachedFields(info coi.DocumentInfo) (*coi.FieldSet, bool) {
	if p.cfg.Cache == nil {
		return nil, false
	}
	return p.cfg.Cache.Get(info)
}

func (p *Pipeline) record(ctx context.Context, runID string, result *DocumentResult) {
	if p.cfg.History == nil {
		return
	}

	record := &history.Record{
		ID:         uuid.NewString(),
		RunID:      runID,
		FileName:   result.FileName,
		FilePath:   result.FilePath,
		Status:     string(result.ComplianceStatus),
		Error:      result.Error,
		RecordedAt: time.Now().UTC(),
	}
	if result.Validation != nil {
		record.Checks = checkStatusStrings(result.Validation)
	}

	if err := p.cfg.History.Store(ctx, record); err != nil {
		p.logger.Warn("failed to record validation history",
			"file_name", result.FileName,
			"error", err,
		)
	}
}

func checkStatusStrings(v *compliance.ValidationResult) map[string]string {
	statuses := v.CheckStatuses()
	out := make(map[string]string, len(statuses))
	for name, status := range statuses {
		out[name] = string(status)
	}
	return out
}
