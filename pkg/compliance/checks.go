package compliance

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"injala/certguard/pkg/coi"
	"injala/certguard/pkg/extract"
	"injala/certguard/pkg/rules"
)

var noticeDaysPattern = regexp.MustCompile(`(?i)(\d+)\s*days?`)

func checkRequiredFields(fields *coi.FieldSet, spec *rules.Spec) RequiredFieldsResult {
	missing := []string{}
	present := []string{}
	for _, name := range spec.RequiredFields {
		if fields.Has(name) {
			present = append(present, name)
		} else {
			missing = append(missing, name)
		}
	}

	result := RequiredFieldsResult{
		Status:        StatusPass,
		Message:       "All required fields present",
		MissingFields: missing,
		PresentFields: present,
	}
	if len(missing) > 0 {
		result.Status = StatusFail
		result.Message = "Missing required fields: " + strings.Join(missing, ", ")
	}
	return result
}

func checkCoverageLimits(fields *coi.FieldSet, spec *rules.Spec) CoverageLimitsResult {
	types := make([]string, 0, len(spec.MinimumCoverageLimits))
	for coverageType := range spec.MinimumCoverageLimits {
		types = append(types, coverageType)
	}
	sort.Strings(types)

	issues := []CoverageEntry{}
	passed := []CoverageEntry{}
	for _, coverageType := range types {
		minAmount := spec.MinimumCoverageLimits[coverageType]
		raw, found := fields.CoverageLimits[coverageType]
		if !found {
			issues = append(issues, CoverageEntry{
				CoverageType:    coverageType,
				CurrentLimit:    0,
				MinimumRequired: minAmount,
				Message:         fmt.Sprintf("Required coverage type '%s' not found", coverageType),
			})
			continue
		}

		limit, ok := extract.ExtractNumeric(raw)
		if ok && limit >= minAmount {
			passed = append(passed, CoverageEntry{
				CoverageType:    coverageType,
				CurrentLimit:    limit,
				MinimumRequired: minAmount,
			})
		} else {
			if !ok {
				limit = 0
			}
			issues = append(issues, CoverageEntry{
				CoverageType:    coverageType,
				CurrentLimit:    limit,
				MinimumRequired: minAmount,
				Message: fmt.Sprintf("Coverage limit $%s is below minimum $%s",
					groupDigits(limit), groupDigits(minAmount)),
			})
		}
	}

	result := CoverageLimitsResult{
		Status:       StatusPass,
		Message:      "All coverage limits meet requirements",
		Issues:       issues,
		PassedChecks: passed,
	}
	if len(issues) > 0 {
		result.Status = StatusFail
		result.Message = fmt.Sprintf("Coverage limit issues: %d", len(issues))
	}
	return result
}

func checkPolicyExpiration(fields *coi.FieldSet, spec *rules.Spec, now time.Time) PolicyExpirationResult {
	raw := fields.PolicyPeriod.ExpirationDate
	if raw == "" {
		return PolicyExpirationResult{
			Status:  StatusFail,
			Message: "No expiration date found",
		}
	}

	expiration, ok := extract.ParseDate(raw)
	if !ok {
		return PolicyExpirationResult{
			Status:         StatusFail,
			Message:        "Unable to parse expiration date: " + raw,
			ExpirationDate: raw,
		}
	}

	days := daysBetween(now, expiration)
	result := PolicyExpirationResult{
		ExpirationDate:      expiration.Format(time.DateOnly),
		DaysUntilExpiration: &days,
	}
	switch {
	case days < 0:
		result.Status = StatusFail
		result.Message = fmt.Sprintf("Policy expired %d days ago", -days)
	case days <= spec.PolicyExpirationWarningDays:
		result.Status = StatusWarning
		result.Message = fmt.Sprintf("Policy expires in %d days", days)
	default:
		result.Status = StatusPass
		result.Message = fmt.Sprintf("Policy expires in %d days", days)
	}
	return result
}

func checkAdditionalInsureds(fields *coi.FieldSet, spec *rules.Spec) AdditionalInsuredsResult {
	found := fields.AdditionalInsureds
	if found == nil {
		found = []string{}
	}

	if len(spec.RequiredAdditionalInsureds) == 0 {
		return AdditionalInsuredsResult{
			Status:   StatusPass,
			Message:  "No additional insureds required",
			Required: []string{},
			Found:    found,
			Missing:  []string{},
		}
	}

	missing := []string{}
	for _, required := range spec.RequiredAdditionalInsureds {
		matched := false
		for _, actual := range found {
			if strings.Contains(strings.ToLower(actual), strings.ToLower(required)) {
				matched = true
				break
			}
		}
		if !matched {
			missing = append(missing, required)
		}
	}

	result := AdditionalInsuredsResult{
		Status:   StatusPass,
		Message:  "All required additional insureds present",
		Required: spec.RequiredAdditionalInsureds,
		Found:    found,
		Missing:  missing,
	}
	if len(missing) > 0 {
		result.Status = StatusFail
		result.Message = "Missing additional insureds: " + strings.Join(missing, ", ")
	}
	return result
}

func checkCancellationClause(fields *coi.FieldSet, spec *rules.Spec) CancellationClauseResult {
	required := spec.RequiredCancellationNoticeDays
	clause := fields.CancellationClause
	if clause == "" {
		return CancellationClauseResult{
			Status:             StatusFail,
			Message:            "No cancellation clause found",
			RequiredNoticeDays: required,
		}
	}

	m := noticeDaysPattern.FindStringSubmatch(clause)
	if m == nil {
		return CancellationClauseResult{
			Status:             StatusFail,
			Message:            "Unable to determine cancellation notice period",
			RequiredNoticeDays: required,
		}
	}

	// A digit run too long for an int is as undeterminable as no match.
	found, err := strconv.Atoi(m[1])
	if err != nil {
		return CancellationClauseResult{
			Status:             StatusFail,
			Message:            "Unable to determine cancellation notice period",
			RequiredNoticeDays: required,
		}
	}

	result := CancellationClauseResult{
		RequiredNoticeDays: required,
		FoundNoticeDays:    &found,
	}
	if found >= required {
		result.Status = StatusPass
		result.Message = fmt.Sprintf("Cancellation notice requirement met: %d days", found)
	} else {
		result.Status = StatusFail
		result.Message = fmt.Sprintf("Insufficient cancellation notice: %d days (required: %d)", found, required)
	}
	return result
}

// daysBetween returns the whole calendar days from now's date to target's
// date, negative when target is in the past. Both are truncated to
// midnight UTC so partial days never shift the count.
func daysBetween(now, target time.Time) int {
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// groupDigits renders n with comma thousands separators.
func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
