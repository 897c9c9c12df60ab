// Package codegen provides shared types and utilities for the diff-enum
// code generation tool.
package codegen

// FieldDecl holds a single named field declaration, either from the shared
// field list or from a variant struct. Doc, Comment and Tag carry the source
// text verbatim so they can be re-emitted on the generated field.
type FieldDecl struct {
	Name    string
	Type    string   // Type expression as source text (e.g. "[]string", "time.Time")
	Tag     string   // Raw struct tag literal including backquotes, if any
	Doc     []string // Doc comment lines above the field, including markers
	Comment string   // Trailing line comment, if any
}

// PayloadKind classifies the payload shape of a union variant.
type PayloadKind int

const (
	// PayloadNone is an empty variant struct.
	PayloadNone PayloadKind = iota
	// PayloadNamed is a variant struct with named fields only.
	PayloadNamed
	// PayloadUnnamed is a variant struct containing at least one embedded
	// (unnamed) field. Shared fields cannot be merged into it.
	PayloadUnnamed
)

// VariantInfo holds one variant of the union: a struct type declared in the
// definition file.
type VariantInfo struct {
	Name   string
	Doc    []string
	Kind   PayloadKind
	Fields []FieldDecl
}

// UnionInfo holds the parsed union definition: the sealed interface and its
// variant structs in declaration order.
type UnionInfo struct {
	Name     string
	Doc      []string // Interface doc comment, directive lines stripped
	Markers  []string // Unexported niladic interface methods to stub per variant
	Variants []VariantInfo
	Imports  []ImportInfo // All imports of the definition file
	UsedPkgs []string     // Package qualifiers referenced by variant field types
}

// ImportInfo holds information about an import.
type ImportInfo struct {
	Path  string
	Alias string
}

// SharedFields is the parsed shared field list together with the package
// qualifiers its type expressions reference.
type SharedFields struct {
	Fields   []FieldDecl
	UsedPkgs []string
}

// GeneratorConfig holds common configuration for generators.
type GeneratorConfig struct {
	TypeName   string
	SourceFile string
	SourceDir  string
	SourcePkg  string
	OutputDir  string
	OutputPkg  string
	SharedSpec string // Raw shared field list, the contents of the braces
}
