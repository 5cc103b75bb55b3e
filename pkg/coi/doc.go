// Package coi defines the shared data model for certificate of insurance
// (COI) documents flowing through the validation pipeline: ingestion
// metadata, extracted raw text, and the structured field set produced by
// the field extractor.
//
// Values in this package are created fresh per document and are never
// mutated after construction. Absence of an extracted field is a
// legitimate, expected state (the zero value), not an error.
package coi
