// Package compliance validates an extracted field set against a
// compliance rule specification.
//
// The engine runs a fixed battery of named checks, each independent and
// order-insensitive, and reduces their statuses into one overall
// document status. Checks never return errors: anomalous field or rule
// data (unparseable dates, non-numeric limits) resolves locally into a
// fail result with an explanatory message, so the engine's external
// contract is that it never fails for a well-formed input pair.
package compliance
