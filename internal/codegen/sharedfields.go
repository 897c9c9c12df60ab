package codegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
)

// ParseSharedFields parses the raw shared field list: the text between the
// braces of the --shared argument (or the contents of the --shared-file file).
// The text is wrapped in a synthetic struct type so that it parses with the
// ordinary struct body grammar: `Name Type` declarations separated by
// newlines or semicolons, each optionally preceded by doc comments and
// optionally carrying a struct tag and a trailing comment. All of those are
// preserved verbatim for re-emission on every variant.
func ParseSharedFields(raw string) (*SharedFields, error) {
	src := "package diffenum\n\ntype sharedFields struct {\n" + raw + "\n}\n"
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "shared-fields.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSharedFields, err)
	}
	st := syntheticStruct(f)
	if st == nil {
		return nil, fmt.Errorf("%w: field list is not a struct body", ErrMalformedSharedFields)
	}
	fields, hasUnnamed := parseFieldList(st)
	if hasUnnamed {
		return nil, fmt.Errorf("%w: embedded fields have no name to inject", ErrMalformedSharedFields)
	}
	if len(fields) == 0 {
		return nil, ErrNoSharedFields
	}
	return &SharedFields{Fields: fields, UsedPkgs: collectUsedPkgs(st)}, nil
}

func syntheticStruct(f *ast.File) *ast.StructType {
	for _, decl := range f.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			if st, ok := typeSpec.Type.(*ast.StructType); ok {
				return st
			}
		}
	}
	return nil
}
