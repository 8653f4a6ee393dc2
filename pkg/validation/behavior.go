package validation

import (
	"github.com/goliatone/go-bookfields/pkg/fields"
	"github.com/goliatone/go-bookfields/pkg/response"
)

// PreprocessFunc normalizes a raw response before validation. Its output is
// the value that gets validated and stored.
type PreprocessFunc func(f fields.Field, reg *fields.Registry, raw response.Value, partial bool) response.Value

// SuperRefineFunc runs type- and variant-aware validation, appending issues to
// the sink. A returned error means the field configuration itself is broken.
type SuperRefineFunc func(f fields.Field, reg *fields.Registry, v response.Value, partial bool, sink *IssueSink, m Localizer) error

// Behavior pairs the two per-type operations. The table below maps field types
// to behaviors; extend it by adding entries, never by wrapping types.
type Behavior struct {
	Preprocess  PreprocessFunc
	SuperRefine SuperRefineFunc
}

func identityPreprocess(_ fields.Field, _ *fields.Registry, raw response.Value, _ bool) response.Value {
	return raw
}

func noRefine(fields.Field, *fields.Registry, response.Value, bool, *IssueSink, Localizer) error {
	return nil
}

// defaultBehavior applies to types with no table entry: identity preprocess,
// no validation beyond the structural gate.
var defaultBehavior = Behavior{Preprocess: identityPreprocess, SuperRefine: noRefine}

var behaviors = map[fields.FieldType]Behavior{
	fields.FieldTypeName: {
		Preprocess:  preprocessName,
		SuperRefine: superRefineName,
	},
	fields.FieldTypeEmail: {
		Preprocess:  identityPreprocess,
		SuperRefine: superRefineEmail,
	},
	fields.FieldTypeMultiemail: {
		Preprocess:  preprocessMultiemail,
		SuperRefine: superRefineMultiemail,
	},
}

// behaviorFor returns the behavior registered for a type, or the explicit
// identity default.
func behaviorFor(t fields.FieldType) Behavior {
	if b, ok := behaviors[t]; ok {
		if b.Preprocess == nil {
			b.Preprocess = identityPreprocess
		}
		if b.SuperRefine == nil {
			b.SuperRefine = noRefine
		}
		return b
	}
	return defaultBehavior
}
