// Package extract turns raw certificate of insurance text into a
// structured field set.
//
// Extraction is driven by ordered lists of case-insensitive pattern
// rules per logical field. Rules are evaluated in order and the first
// rule that matches wins; no scoring or ranking of competing matches is
// attempted. The one exception is the additional-insureds field, where
// every match is collected in order of appearance.
//
// Extraction is a pure function of its inputs: malformed or empty text
// yields an all-absent field set, never an error. An optional entity
// recognizer can augment the field set with informational organization,
// date and money spans; its absence or failure degrades silently.
package extract
