package rules

import "injala/certguard/pkg/coi"

// Spec is the compliance rule specification a document field set is
// validated against. It is loaded once per validation run and treated as
// read-only input. Unknown keys in a rules document are ignored on read.
type Spec struct {
	// RequiredFields lists the logical field names that must be present
	// in the extracted field set.
	RequiredFields []string `json:"required_fields" yaml:"required_fields"`

	// MinimumCoverageLimits maps coverage-type names to the minimum
	// acceptable limit in whole dollars.
	MinimumCoverageLimits map[string]int64 `json:"minimum_coverage_limits" yaml:"minimum_coverage_limits"`

	// PolicyExpirationWarningDays is the window, in days before
	// expiration, inside which a policy is flagged with a warning.
	PolicyExpirationWarningDays int `json:"policy_expiration_warning_days" yaml:"policy_expiration_warning_days"`

	// RequiredAdditionalInsureds lists names that must appear among the
	// document's additional insureds (case-insensitive substring match).
	RequiredAdditionalInsureds []string `json:"required_additional_insureds" yaml:"required_additional_insureds"`

	// RequiredCancellationNoticeDays is the minimum written-notice period
	// the cancellation clause must grant.
	RequiredCancellationNoticeDays int `json:"required_cancellation_notice_days" yaml:"required_cancellation_notice_days"`
}

// Default returns the built-in rule specification used when no rules
// source exists. The required-additional-insureds list is empty by
// default; deployments add their own entries in the rules file.
func Default() *Spec {
	return &Spec{
		RequiredFields: []string{
			coi.FieldPolicyNumber,
			coi.FieldInsuranceCompany,
			coi.FieldInsuredName,
			coi.FieldPolicyPeriod,
		},
		MinimumCoverageLimits: map[string]int64{
			"general_liability":      1000000,
			"professional_liability": 1000000,
			"workers_compensation":   1000000,
		},
		PolicyExpirationWarningDays:    30,
		RequiredAdditionalInsureds:     []string{},
		RequiredCancellationNoticeDays: 30,
	}
}
