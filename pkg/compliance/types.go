package compliance

// Status is the outcome of a single compliance check.
type Status string

const (
	// StatusPass means the check's requirement is met.
	StatusPass Status = "pass"

	// StatusFail means the check's requirement is not met.
	StatusFail Status = "fail"

	// StatusWarning means the requirement is met but needs attention
	// (currently only produced by the policy-expiration check).
	StatusWarning Status = "warning"
)

// OverallStatus is the aggregated compliance verdict for one document.
type OverallStatus string

const (
	// Compliant means every check passed.
	Compliant OverallStatus = "compliant"

	// CompliantWithWarnings means no check failed but at least one warned.
	CompliantWithWarnings OverallStatus = "compliant_with_warnings"

	// NonCompliant means at least one check failed.
	NonCompliant OverallStatus = "non_compliant"

	// StatusError means an upstream stage (ingestion or text extraction)
	// failed before validation; no checks were run. The check battery
	// itself never produces this status.
	StatusError OverallStatus = "error"
)

// Names of the checks in the battery.
const (
	CheckRequiredFields     = "required_fields"
	CheckCoverageLimits     = "coverage_limits"
	CheckPolicyExpiration   = "policy_expiration"
	CheckAdditionalInsureds = "additional_insureds"
	CheckCancellationClause = "cancellation_clause"
)

// RequiredFieldsResult reports which required fields are present.
type RequiredFieldsResult struct {
	Status        Status   `json:"status"`
	Message       string   `json:"message"`
	MissingFields []string `json:"missing_fields"`
	PresentFields []string `json:"present_fields"`
}

// CoverageEntry records the evaluation of one coverage type against its
// configured minimum. Message is set only on issues.
type CoverageEntry struct {
	CoverageType    string `json:"coverage_type"`
	CurrentLimit    int64  `json:"current_limit"`
	MinimumRequired int64  `json:"minimum_required"`
	Message         string `json:"message,omitempty"`
}

// CoverageLimitsResult reports coverage types below their minimums.
type CoverageLimitsResult struct {
	Status       Status          `json:"status"`
	Message      string          `json:"message"`
	Issues       []CoverageEntry `json:"issues"`
	PassedChecks []CoverageEntry `json:"passed_checks"`
}

// PolicyExpirationResult reports the policy's remaining lifetime.
// ExpirationDate holds the parsed date in ISO form, or the raw document
// string when it could not be parsed. DaysUntilExpiration is nil when no
// date was available.
type PolicyExpirationResult struct {
	Status              Status `json:"status"`
	Message             string `json:"message"`
	ExpirationDate      string `json:"expiration_date,omitempty"`
	DaysUntilExpiration *int   `json:"days_until_expiration"`
}

// AdditionalInsuredsResult reports which required additional insureds
// were found among the document's entries.
type AdditionalInsuredsResult struct {
	Status   Status   `json:"status"`
	Message  string   `json:"message"`
	Required []string `json:"required"`
	Found    []string `json:"found"`
	Missing  []string `json:"missing"`
}

// CancellationClauseResult reports the cancellation notice period found
// in the clause text. FoundNoticeDays is nil when no period could be
// determined.
type CancellationClauseResult struct {
	Status             Status `json:"status"`
	Message            string `json:"message"`
	RequiredNoticeDays int    `json:"required_notice_days"`
	FoundNoticeDays    *int   `json:"found_notice_days"`
}

// ValidationResult holds every check result for one document plus the
// derived overall status. It is created fresh per document and never
// mutated after construction.
type ValidationResult struct {
	RequiredFields     RequiredFieldsResult     `json:"required_fields"`
	CoverageLimits     CoverageLimitsResult     `json:"coverage_limits"`
	PolicyExpiration   PolicyExpirationResult   `json:"policy_expiration"`
	AdditionalInsureds AdditionalInsuredsResult `json:"additional_insureds"`
	CancellationClause CancellationClauseResult `json:"cancellation_clause"`

	OverallStatus OverallStatus `json:"overall_status"`
}

// CheckStatuses returns the per-check statuses keyed by check name.
func (r *ValidationResult) CheckStatuses() map[string]Status {
	return map[string]Status{
		CheckRequiredFields:     r.RequiredFields.Status,
		CheckCoverageLimits:     r.CoverageLimits.Status,
		CheckPolicyExpiration:   r.PolicyExpiration.Status,
		CheckAdditionalInsureds: r.AdditionalInsureds.Status,
		CheckCancellationClause: r.CancellationClause.Status,
	}
}

func (r *ValidationResult) statuses() []Status {
	return []Status{
		r.RequiredFields.Status,
		r.CoverageLimits.Status,
		r.PolicyExpiration.Status,
		r.AdditionalInsureds.Status,
		r.CancellationClause.Status,
	}
}
