package codegen

import "errors"

// The generator fails fast: any of these aborts the whole invocation and no
// output file is written.
var (
	// ErrNoSharedFields reports an empty shared field list.
	ErrNoSharedFields = errors.New("no shared field is set")

	// ErrMalformedSharedFields reports a shared field list that does not
	// conform to the `Name Type` field grammar.
	ErrMalformedSharedFields = errors.New("cannot parse shared fields")

	// ErrNotAnItem reports a definition file that does not parse as Go
	// source at all.
	ErrNotAnItem = errors.New("only can be set at enum definition")

	// ErrNotAnEnum reports a target type that is missing or is not a sealed
	// interface declaration.
	ErrNotAnEnum = errors.New("can only be set at enum")

	// ErrMixedFields reports a variant with embedded (unnamed) fields, which
	// cannot be merged with named shared fields.
	ErrMixedFields = errors.New("cannot mix named fields with unnamed fields")

	// ErrDuplicateField reports a variant that already declares a field with
	// the same name as a shared field.
	ErrDuplicateField = errors.New("shared field is already declared")
)
