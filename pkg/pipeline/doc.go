// Package pipeline runs the batch validation flow: scan a data
// directory for certificate documents, source their text, extract
// fields, validate them against the compliance rules and emit JSON and
// CSV reports.
//
// Documents are processed concurrently by a bounded worker pool. A
// document whose text cannot be sourced is not dropped: it flows
// through with compliance status "error" and an empty check set, so
// every ingested file appears in the reports and the history.
package pipeline
