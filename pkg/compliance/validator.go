package compliance

import (
	"log/slog"
	"time"

	"injala/certguard/pkg/coi"
	"injala/certguard/pkg/rules"
)

// Config holds the optional knobs of a Validator.
type Config struct {
	// Now supplies the clock for the policy-expiration check. Defaults
	// to time.Now.
	Now func() time.Time
}

// Validator runs the compliance check battery against extracted field
// sets. Safe for concurrent use.
type Validator struct {
	now    func() time.Time
	logger *slog.Logger
}

// New creates a Validator. cfg may be nil.
func New(cfg *Config) *Validator {
	v := &Validator{
		now:    time.Now,
		logger: slog.Default().With("component", "compliance"),
	}
	if cfg != nil && cfg.Now != nil {
		v.now = cfg.Now
	}
	return v
}

// Validate runs every check against the field set and returns the
// per-check results plus the aggregated overall status.
func (v *Validator) Validate(fields *coi.FieldSet, spec *rules.Spec) *ValidationResult {
	result := &ValidationResult{
		RequiredFields:     checkRequiredFields(fields, spec),
		CoverageLimits:     checkCoverageLimits(fields, spec),
		PolicyExpiration:   checkPolicyExpiration(fields, spec, v.now()),
		AdditionalInsureds: checkAdditionalInsureds(fields, spec),
		CancellationClause: checkCancellationClause(fields, spec),
	}
	result.OverallStatus = Aggregate(result.statuses())

	v.logger.Debug("validation complete",
		"overall_status", result.OverallStatus,
		"missing_fields", len(result.RequiredFields.MissingFields),
		"coverage_issues", len(result.CoverageLimits.Issues),
	)
	return result
}

// Aggregate reduces per-check statuses to an overall verdict: any fail
// makes the document non-compliant, otherwise any warning downgrades it
// to compliant-with-warnings.
func Aggregate(statuses []Status) OverallStatus {
	hasFailure := false
	hasWarning := false
	for _, s := range statuses {
		switch s {
		case StatusFail:
			hasFailure = true
		case StatusWarning:
			hasWarning = true
		}
	}
	switch {
	case hasFailure:
		return NonCompliant
	case hasWarning:
		return CompliantWithWarnings
	default:
		return Compliant
	}
}
