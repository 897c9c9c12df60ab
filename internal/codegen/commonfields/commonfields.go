// Package commonfields implements the common-fields code generation subtool.
//
// It rewrites a sealed-interface union so that every variant struct carries a
// copy of the shared fields, and emits one accessor function per shared field
// dispatching over all variants.
package commonfields

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rhysd/diff-enum/internal/codegen"
)

// Subtool implements the common-fields code generator.
type Subtool struct{}

// Name returns the subtool name.
func (s *Subtool) Name() string { return "common-fields" }

// Description returns the subtool description.
func (s *Subtool) Description() string {
	return "Inject shared fields into every union variant and generate field accessors"
}

// Run executes the common-fields code generation. The stages run strictly in
// order and the first failure aborts the invocation before any output is
// written.
func (s *Subtool) Run(cfg codegen.GeneratorConfig) error {
	shared, err := codegen.ParseSharedFields(cfg.SharedSpec)
	if err != nil {
		return err
	}
	union, err := codegen.ParseUnion(cfg.SourceDir, cfg.SourceFile, cfg.TypeName)
	if err != nil {
		return err
	}
	expanded, err := codegen.InjectSharedFields(shared, union)
	if err != nil {
		return err
	}
	data := buildTemplateData(cfg, shared, expanded)
	outputFile := filepath.Join(cfg.OutputDir, OutputFileName(cfg.SourceFile))
	gen := codegen.NewTemplateGenerator(nil)
	if err := gen.GenerateFile(outputFile, fileTemplate, data); err != nil {
		return fmt.Errorf("generating %s: %w", filepath.Base(outputFile), err)
	}
	return nil
}

// OutputFileName returns the generated file name for a definition file.
func OutputFileName(sourceFile string) string {
	return strings.TrimSuffix(sourceFile, ".go") + "_diffenum.go"
}

type templateData struct {
	Package   string
	Imports   []codegen.ImportInfo
	Union     unionData
	Accessors []accessorData
}

type unionData struct {
	Name     string
	Doc      []string
	Markers  []string
	Variants []codegen.VariantInfo
}

type accessorData struct {
	FuncName  string
	FieldName string
	FieldType string
	Union     string
	Variants  []string
}

func buildTemplateData(cfg codegen.GeneratorConfig, shared *codegen.SharedFields, union *codegen.UnionInfo) templateData {
	variantNames := make([]string, 0, len(union.Variants))
	for _, v := range union.Variants {
		variantNames = append(variantNames, v.Name)
	}
	// Accessors in shared field order, arms in variant order. Both orders
	// come straight from the declarations, so output is reproducible.
	accessors := make([]accessorData, 0, len(shared.Fields))
	for _, field := range shared.Fields {
		accessors = append(accessors, accessorData{
			FuncName:  union.Name + capitalize(field.Name),
			FieldName: field.Name,
			FieldType: field.Type,
			Union:     union.Name,
			Variants:  variantNames,
		})
	}
	return templateData{
		Package: cfg.OutputPkg,
		Imports: collectOutputImports(union),
		Union: unionData{
			Name:     union.Name,
			Doc:      union.Doc,
			Markers:  union.Markers,
			Variants: union.Variants,
		},
		Accessors: accessors,
	}
}

// collectOutputImports gathers the imports the generated file needs: fmt for
// the default panic arm plus whichever definition file imports the field
// types reference.
func collectOutputImports(union *codegen.UnionInfo) []codegen.ImportInfo {
	imports := codegen.ResolveImports(union.UsedPkgs, union.Imports)
	for _, imp := range imports {
		if imp.Path == "fmt" {
			return imports
		}
	}
	imports = append(imports, codegen.ImportInfo{Path: "fmt"})
	sort.Slice(imports, func(i, j int) bool { return imports[i].Path < imports[j].Path })
	return imports
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
