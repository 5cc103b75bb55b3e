package extract

import (
	"log/slog"

	"injala/certguard/pkg/coi"
)

// Config contains configuration for the Extractor.
type Config struct {
	// Recognizer augments the field set with informational entity spans.
	// Nil disables entity augmentation.
	Recognizer Recognizer
}

// Extractor applies the ordered pattern rules to raw document text and
// produces a structured field set. It holds no per-document state:
// Extract is a pure function of its input.
type Extractor struct {
	recognizer Recognizer
	logger     *slog.Logger
}

// New creates a new Extractor. A nil config disables entity augmentation.
func New(cfg *Config) *Extractor {
	var recognizer Recognizer
	if cfg != nil {
		recognizer = cfg.Recognizer
	}
	return &Extractor{
		recognizer: recognizer,
		logger:     slog.Default().With("component", "extract"),
	}
}

// Extract parses the structured insurance fields out of raw text. Fields
// with no matching rule are left at their zero value; empty or malformed
// text yields an all-absent field set, never an error.
func (e *Extractor) Extract(text string) *coi.FieldSet {
	fields := &coi.FieldSet{}

	if v, ok := policyNumberPatterns.first(text); ok {
		fields.PolicyNumber = v
	}

	// Each half of the policy period is searched independently.
	if v, ok := effectiveDatePatterns.first(text); ok {
		fields.PolicyPeriod.EffectiveDate = v
	}
	if v, ok := expirationDatePatterns.first(text); ok {
		fields.PolicyPeriod.ExpirationDate = v
	}

	if v, ok := insuranceCompanyPatterns.first(text); ok {
		fields.InsuranceCompany = v
	}
	if v, ok := insuredNamePatterns.first(text); ok {
		fields.InsuredName = v
	}
	if v, ok := certificateHolderPatterns.first(text); ok {
		fields.CertificateHolder = v
	}

	for _, coverage := range coveragePatterns {
		if v, ok := coverage.patterns.first(text); ok {
			if fields.CoverageLimits == nil {
				fields.CoverageLimits = make(map[string]string)
			}
			fields.CoverageLimits[coverage.name] = v
		}
	}

	// Unlike the single-value fields, every additional-insured match is
	// collected in order of appearance.
	fields.AdditionalInsureds = additionalInsuredPatterns.all(text)

	if v, ok := cancellationClausePatterns.first(text); ok {
		fields.CancellationClause = v
	}

	e.augment(fields, text)

	return fields
}

// augment adds informational entity fields from the recognizer, if one
// is configured. Organizations are deduplicated preserving first-seen
// order; dates and money amounts keep their raw order.
func (e *Extractor) augment(fields *coi.FieldSet, text string) {
	if e.recognizer == nil {
		return
	}

	entities, err := e.recognizer.Recognize(text)
	if err != nil {
		e.logger.Warn("entity recognition failed, continuing without augmentation",
			"error", err,
		)
		return
	}

	seenOrgs := make(map[string]bool)
	for _, entity := range entities {
		switch entity.Label {
		case LabelOrganization:
			if !seenOrgs[entity.Text] {
				seenOrgs[entity.Text] = true
				fields.Organizations = append(fields.Organizations, entity.Text)
			}
		case LabelDate:
			fields.Dates = append(fields.Dates, entity.Text)
		case LabelMoney:
			fields.MoneyAmounts = append(fields.MoneyAmounts, entity.Text)
		}
	}
}
