package coi

import "time"

// ExtractionMethod identifies how a document's text layer was obtained.
type ExtractionMethod string

const (
	// ExtractionDirect means the text was read straight from the document.
	ExtractionDirect ExtractionMethod = "direct"

	// ExtractionOCR means the text came from optical character recognition.
	ExtractionOCR ExtractionMethod = "ocr"

	// ExtractionError means text extraction failed. Documents tagged with
	// this method skip field extraction and are marked errored downstream.
	ExtractionError ExtractionMethod = "error"
)

// DocumentInfo describes an ingested document before text extraction.
type DocumentInfo struct {
	// FilePath is the full path to the document.
	FilePath string `json:"file_path"`

	// FileName is the base name of the document.
	FileName string `json:"file_name"`

	// FileSize is the document size in bytes.
	FileSize int64 `json:"file_size"`

	// Source identifies where the document came from (e.g. "local").
	Source string `json:"source"`

	// LastModified is the document's modification time.
	LastModified time.Time `json:"last_modified"`
}

// RawDocument is an opaque text blob plus extraction metadata. It is
// produced by the ingestion/text-extraction boundary and is immutable
// once created.
type RawDocument struct {
	// FileName is the base name of the originating document.
	FileName string `json:"file_name"`

	// FilePath is the full path to the originating document.
	FilePath string `json:"file_path"`

	// ExtractedText is the raw document text.
	ExtractedText string `json:"extracted_text"`

	// ExtractionMethod records how the text was obtained.
	ExtractionMethod ExtractionMethod `json:"extraction_method"`

	// TextLength is the length of ExtractedText in bytes.
	TextLength int `json:"text_length"`

	// Source identifies where the document came from.
	Source string `json:"source"`

	// Error describes the extraction failure when ExtractionMethod is
	// ExtractionError.
	Error string `json:"error,omitempty"`
}

// PolicyPeriod holds the effective and expiration date strings of a
// policy as they appeared in the document. Either half may be empty when
// no matching date was found.
type PolicyPeriod struct {
	EffectiveDate  string `json:"effective_date,omitempty"`
	ExpirationDate string `json:"expiration_date,omitempty"`
}

// FieldSet is the structured extraction output for one document. Every
// value is extraction best-effort: an empty string, empty map, or empty
// list means the field was not found.
type FieldSet struct {
	PolicyNumber       string            `json:"policy_number,omitempty"`
	PolicyPeriod       PolicyPeriod      `json:"policy_period"`
	InsuranceCompany   string            `json:"insurance_company,omitempty"`
	InsuredName        string            `json:"insured_name,omitempty"`
	CoverageLimits     map[string]string `json:"coverage_limits,omitempty"`
	CertificateHolder  string            `json:"certificate_holder,omitempty"`
	AdditionalInsureds []string          `json:"additional_insureds,omitempty"`
	CancellationClause string            `json:"cancellation_clause,omitempty"`

	// Informational fields populated only when an entity recognizer is
	// configured on the extractor.
	Organizations []string `json:"organizations,omitempty"`
	Dates         []string `json:"dates,omitempty"`
	MoneyAmounts  []string `json:"money_amounts,omitempty"`
}

// Logical field names referenced by compliance rule specifications.
const (
	FieldPolicyNumber       = "policy_number"
	FieldPolicyPeriod       = "policy_period"
	FieldInsuranceCompany   = "insurance_company"
	FieldInsuredName        = "insured_name"
	FieldCoverageLimits     = "coverage_limits"
	FieldCertificateHolder  = "certificate_holder"
	FieldAdditionalInsureds = "additional_insureds"
	FieldCancellationClause = "cancellation_clause"
)

// Has reports whether the named logical field carries a non-empty value.
// A policy period counts as present when at least one of its dates was
// extracted; an absent field is never silently treated as present.
func (f *FieldSet) Has(name string) bool {
	switch name {
	case FieldPolicyNumber:
		return f.PolicyNumber != ""
	case FieldPolicyPeriod:
		return f.PolicyPeriod.EffectiveDate != "" || f.PolicyPeriod.ExpirationDate != ""
	case FieldInsuranceCompany:
		return f.InsuranceCompany != ""
	case FieldInsuredName:
		return f.InsuredName != ""
	case FieldCoverageLimits:
		return len(f.CoverageLimits) > 0
	case FieldCertificateHolder:
		return f.CertificateHolder != ""
	case FieldAdditionalInsureds:
		return len(f.AdditionalInsureds) > 0
	case FieldCancellationClause:
		return f.CancellationClause != ""
	default:
		return false
	}
}
