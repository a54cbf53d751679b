package merger

import (
	"fmt"

	"github.com/erraggy/schematools/corpus"
	"github.com/erraggy/schematools/internal/options"
)

// Option is a function that configures a merge operation.
type Option func(*mergeOptions) error

// mergeOptions holds configuration for a merge operation.
type mergeOptions struct {
	// Input source. When neither is set, the corpus directory is
	// resolved from the environment (corpus.ResolveDir).
	dir     *string
	scanned *corpus.Corpus

	// Configuration options (nil means use the default from DefaultConfig).
	config      *MergeConfig
	filePrefix  *string
	fileSuffix  *string
	nameSuffix  *string
	schemaURI   *string
	onCollision *CollisionStrategy
}

// MergeWithOptions merges a schema corpus using functional options.
// It combines input source selection and configuration in a single call.
//
// Example:
//
//	result, err := merger.MergeWithOptions(
//	    merger.WithSchemaDir("sm-json-data/schema"),
//	    merger.WithCollisionStrategy(merger.StrategyFail),
//	)
//
// With no input option, the corpus directory comes from the
// SCHEMATOOLS_SCHEMA_DIR environment variable or the fixed default.
func MergeWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("merger: invalid options: %w", err)
	}

	// Build MergeConfig from options (use defaults for nil values).
	defaults := DefaultConfig()
	if cfg.config != nil {
		defaults = *cfg.config
	}
	mergeCfg := MergeConfig{
		FilePrefix:  stringValueOrDefault(cfg.filePrefix, defaults.FilePrefix),
		FileSuffix:  stringValueOrDefault(cfg.fileSuffix, defaults.FileSuffix),
		NameSuffix:  stringValueOrDefault(cfg.nameSuffix, defaults.NameSuffix),
		SchemaURI:   stringValueOrDefault(cfg.schemaURI, defaults.SchemaURI),
		OnCollision: valueOrDefault(cfg.onCollision, defaults.OnCollision),
	}
	m := New(mergeCfg)

	switch {
	case cfg.scanned != nil:
		return m.MergeCorpus(cfg.scanned)
	case cfg.dir != nil:
		return m.Merge(*cfg.dir)
	default:
		dir, err := corpus.ResolveDir()
		if err != nil {
			return nil, err
		}
		return m.Merge(dir)
	}
}

func applyOptions(opts ...Option) (*mergeOptions, error) {
	cfg := &mergeOptions{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate at most one input source is specified. Zero sources is
	// fine; MergeWithOptions falls back to corpus.ResolveDir.
	if err := options.ValidateSingleInputSource(
		"",
		"WithSchemaDir and WithCorpus are mutually exclusive",
		cfg.dir != nil, cfg.scanned != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

func valueOrDefault(ptr *CollisionStrategy, defaultVal CollisionStrategy) CollisionStrategy {
	if ptr == nil {
		return defaultVal
	}
	return *ptr
}

func stringValueOrDefault(ptr *string, defaultVal string) string {
	if ptr == nil {
		return defaultVal
	}
	return *ptr
}

// WithSchemaDir merges the corpus found in dir instead of resolving the
// directory from the environment.
func WithSchemaDir(dir string) Option {
	return func(cfg *mergeOptions) error {
		cfg.dir = &dir
		return nil
	}
}

// WithCorpus merges an already scanned corpus. The corpus's own filename
// convention was applied at scan time, so the convention options have no
// effect on which files are merged.
func WithCorpus(c *corpus.Corpus) Option {
	return func(cfg *mergeOptions) error {
		if c == nil {
			return fmt.Errorf("corpus must not be nil")
		}
		cfg.scanned = c
		return nil
	}
}

// WithConfig replaces the entire default configuration. Individual
// With* options still apply on top.
func WithConfig(config MergeConfig) Option {
	return func(cfg *mergeOptions) error {
		cfg.config = &config
		return nil
	}
}

// WithFilePrefix overrides the corpus filename prefix.
func WithFilePrefix(prefix string) Option {
	return func(cfg *mergeOptions) error {
		cfg.filePrefix = &prefix
		return nil
	}
}

// WithFileSuffix overrides the corpus filename suffix.
func WithFileSuffix(suffix string) Option {
	return func(cfg *mergeOptions) error {
		cfg.fileSuffix = &suffix
		return nil
	}
}

// WithNameSuffix overrides the suffix appended to derived definition names.
func WithNameSuffix(suffix string) Option {
	return func(cfg *mergeOptions) error {
		cfg.nameSuffix = &suffix
		return nil
	}
}

// WithSchemaURI overrides the $schema dialect declared by the merged
// document.
func WithSchemaURI(uri string) Option {
	return func(cfg *mergeOptions) error {
		if uri == "" {
			return fmt.Errorf("schema URI must not be empty")
		}
		cfg.schemaURI = &uri
		return nil
	}
}

// WithCollisionStrategy selects how duplicate definition names are
// resolved.
func WithCollisionStrategy(strategy CollisionStrategy) Option {
	return func(cfg *mergeOptions) error {
		if !IsValidStrategy(string(strategy)) {
			return fmt.Errorf("invalid collision strategy %q (valid: %v)", strategy, ValidStrategies())
		}
		cfg.onCollision = &strategy
		return nil
	}
}
