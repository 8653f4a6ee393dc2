// Package validation runs booking-question responses through the per-type
// behavior table: a structural shape gate, then preprocess, then superRefine.
// Validation issues are collected per field so callers can report everything
// at once; broken field configurations surface as errors instead.
package validation

import (
	"errors"

	"github.com/goliatone/go-bookfields/pkg/fields"
	"github.com/goliatone/go-bookfields/pkg/response"
)

// Option customises a validation call.
type Option func(*options)

type options struct {
	partial   bool
	localizer Localizer
	registry  *fields.Registry
}

// Partial toggles partial validation: shapes and types are checked but
// emptiness of required values is not. Used for drafts and prefill.
func Partial(v bool) Option {
	return func(o *options) { o.partial = v }
}

// WithLocalizer sets the message-id resolver. Defaults to Keys.
func WithLocalizer(m Localizer) Option {
	return func(o *options) {
		if m != nil {
			o.localizer = m
		}
	}
}

// WithRegistry overrides the type config registry. Defaults to
// fields.DefaultRegistry.
func WithRegistry(r *fields.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

func buildOptions(opts []Option) options {
	cfg := options{localizer: Keys, registry: fields.DefaultRegistry()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ValidateField validates one raw response value against a field definition.
// On success the returned value is the normalized response to store. Issues
// describe problems with the input; a non-nil error means the field
// definition itself is broken and no issue list is meaningful.
func ValidateField(f fields.Field, raw any, opts ...Option) (response.Value, []Issue, error) {
	cfg := buildOptions(opts)

	if err := fields.ValidateDefinition(cfg.registry, f); err != nil {
		return response.Value{}, nil, err
	}

	parsed, err := response.Parse(raw)
	if err != nil {
		if errors.Is(err, response.ErrShape) {
			issue := Issue{Code: IssueCodeCustom, Message: cfg.localizer(msgInvalidShape)}
			return response.Value{}, []Issue{issue}, nil
		}
		return response.Value{}, nil, err
	}

	behavior := behaviorFor(f.Type)
	normalized := behavior.Preprocess(f, cfg.registry, parsed, cfg.partial)

	sink := &IssueSink{}
	if err := behavior.SuperRefine(f, cfg.registry, normalized, cfg.partial, sink, cfg.localizer); err != nil {
		return response.Value{}, nil, err
	}
	return normalized, sink.Issues(), nil
}

// Result carries the outcome of validating a full form schema.
type Result struct {
	// Values holds the normalized response per field name for fields that
	// produced no issue.
	Values map[string]response.Value
	// Issues holds the collected issues per field name.
	Issues map[string][]Issue
}

// Valid reports whether no field produced an issue.
func (r Result) Valid() bool { return len(r.Issues) == 0 }

// ValidateAll validates every response against its field definition. Fields
// without a response entry are validated against an empty string so types that
// enforce requiredness see the absence. Responses without a matching field are
// ignored; the storage layer owns pruning. A configuration error aborts the
// pass.
func ValidateAll(schema []fields.Field, responses map[string]any, opts ...Option) (Result, error) {
	result := Result{
		Values: make(map[string]response.Value, len(schema)),
		Issues: make(map[string][]Issue),
	}
	for _, f := range schema {
		raw, ok := responses[f.Name]
		if !ok {
			raw = ""
		}
		value, issues, err := ValidateField(f, raw, opts...)
		if err != nil {
			return Result{}, err
		}
		if len(issues) > 0 {
			result.Issues[f.Name] = issues
			continue
		}
		result.Values[f.Name] = value
	}
	return result, nil
}
