package rules

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader resolves a rule specification from a store, falling back to the
// built-in defaults. It never returns an error to its caller: every
// failure mode resolves to a usable Spec.
type Loader struct {
	store  Store
	logger *slog.Logger
}

// NewLoader creates a Loader backed by the given store.
func NewLoader(store Store) *Loader {
	return &Loader{
		store:  store,
		logger: slog.Default().With("component", "rules"),
	}
}

// Load resolves the rule specification.
//
// A readable, parseable source is returned as stored. A missing source
// yields the built-in defaults, persisted back to the store so the next
// run reads an editable file. A source that exists but fails to parse is
// logged and replaced by the defaults without persisting.
func (l *Loader) Load() *Spec {
	data, err := l.store.Read()
	if errors.Is(err, fs.ErrNotExist) {
		spec := Default()
		if werr := l.persist(spec); werr != nil {
			l.logger.Warn("could not persist default rules",
				"source", l.store.Name(),
				"error", werr,
			)
		} else {
			l.logger.Info("created default rules", "source", l.store.Name())
		}
		return spec
	}
	if err != nil {
		l.logger.Error("failed to read rules, using defaults",
			"source", l.store.Name(),
			"error", err,
		)
		return Default()
	}

	spec, err := Parse(data, l.store.Name())
	if err != nil {
		l.logger.Error("failed to parse rules, using defaults",
			"source", l.store.Name(),
			"error", err,
		)
		return Default()
	}

	l.logger.Info("loaded compliance rules", "source", l.store.Name())
	return spec
}

// Parse decodes a rules document as YAML or JSON depending on the source
// name's extension. Keys absent from the document keep the built-in
// 30-day expiration-warning and cancellation-notice fallbacks; unknown
// keys are ignored.
func Parse(data []byte, name string) (*Spec, error) {
	// Fallbacks for omitted numeric thresholds only. Omitted lists stay
	// empty: a rules file that names no required fields requires none.
	spec := &Spec{
		PolicyExpirationWarningDays:    30,
		RequiredCancellationNoticeDays: 30,
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, spec); err != nil {
			return nil, fmt.Errorf("parse rules %q as yaml: %w", name, err)
		}
	default:
		if err := json.Unmarshal(data, spec); err != nil {
			return nil, fmt.Errorf("parse rules %q as json: %w", name, err)
		}
	}

	return spec, nil
}

// Encode serializes a spec in the format matching the source name's
// extension, JSON by default.
func Encode(spec *Spec, name string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return yaml.Marshal(spec)
	default:
		return json.MarshalIndent(spec, "", "  ")
	}
}

func (l *Loader) persist(spec *Spec) error {
	data, err := Encode(spec, l.store.Name())
	if err != nil {
		return err
	}
	return l.store.Write(data)
}
