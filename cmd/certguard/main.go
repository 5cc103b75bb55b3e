// CertGuard validates Certificate of Insurance documents against a
// configurable compliance rule specification.
//
// It extracts structured fields from certificate text, runs a battery of
// compliance checks, and records outcomes for audit:
//   - Batch validation of a document directory with JSON/CSV reports
//   - Single-document checks from a file or stdin
//   - A validation HTTP API with Prometheus metrics
//   - A queryable validation history with retention pruning
//
// Usage:
//
//	# Validate every document in the configured data directory
//	certguard run
//
//	# Check a single certificate
//	certguard check certificate.txt
//
//	# Start the validation API server
//	certguard serve
//
//	# Inspect or initialize the rules file
//	certguard rules show
//	certguard rules init
//
//	# Query past validation outcomes
//	certguard history query --status non_compliant
package main

func main() {
	Execute()
}
