package codegen

import (
	"fmt"

	"github.com/mitchellh/copystructure"
)

// InjectSharedFields returns a copy of the union in which every variant
// carries the shared fields appended after its own. An empty variant becomes
// a named-field variant holding exactly the shared fields. The input union is
// left untouched.
//
// Each variant receives its own deep copy of the shared field list, so later
// mutation of one variant's fields can never leak into another variant or
// into the shared set itself.
func InjectSharedFields(shared *SharedFields, union *UnionInfo) (*UnionInfo, error) {
	out := *union
	out.Variants = make([]VariantInfo, 0, len(union.Variants))
	out.UsedPkgs = mergePkgs(union.UsedPkgs, shared.UsedPkgs)
	for _, variant := range union.Variants {
		switch variant.Kind {
		case PayloadUnnamed:
			return nil, fmt.Errorf("%w at enum variant %s", ErrMixedFields, variant.Name)
		case PayloadNamed:
			for _, field := range variant.Fields {
				for _, sf := range shared.Fields {
					if field.Name == sf.Name {
						return nil, fmt.Errorf("%w: field %s at enum variant %s", ErrDuplicateField, sf.Name, variant.Name)
					}
				}
			}
		}
		clone, err := cloneFields(shared.Fields)
		if err != nil {
			return nil, fmt.Errorf("cloning shared fields for variant %s: %w", variant.Name, err)
		}
		variant.Fields = append(variant.Fields[:len(variant.Fields):len(variant.Fields)], clone...)
		variant.Kind = PayloadNamed
		out.Variants = append(out.Variants, variant)
	}
	return &out, nil
}

func cloneFields(fields []FieldDecl) ([]FieldDecl, error) {
	copied, err := copystructure.Copy(fields)
	if err != nil {
		return nil, err
	}
	return copied.([]FieldDecl), nil
}
