// Package config defines the certguard configuration structures and
// loading logic.
//
// Configuration is read from a YAML file, defaults are applied to zero
// values, environment variables of the form CERTGUARD_SECTION_FIELD
// override file values, and the final configuration is validated before
// use. All consumers receive a fully defaulted, validated Config.
package config
