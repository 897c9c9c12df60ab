package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

// TemplateGenerator handles template-based code generation.
type TemplateGenerator struct {
	FuncMap template.FuncMap
}

// NewTemplateGenerator creates a new TemplateGenerator with optional custom functions.
func NewTemplateGenerator(customFuncs template.FuncMap) *TemplateGenerator {
	return &TemplateGenerator{FuncMap: customFuncs}
}

// Generate executes a template and returns the gofmt-formatted output.
func (g *TemplateGenerator) Generate(tmplText string, data any) ([]byte, error) {
	tmpl, err := template.New("gen").Funcs(g.FuncMap).Parse(tmplText)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}

// GenerateFile executes a template and writes the formatted output to a file.
// Nothing is written on a template error; a formatting error leaves the
// unformatted output next to the target for diagnosis.
func (g *TemplateGenerator) GenerateFile(outputFile, tmplText string, data any) error {
	formatted, err := g.Generate(tmplText, data)
	if err != nil {
		if formatted != nil {
			_ = os.WriteFile(outputFile+".unformatted", formatted, 0644)
			return fmt.Errorf("%w (wrote unformatted to %s.unformatted)", err, outputFile)
		}
		return err
	}
	if err := os.WriteFile(outputFile, formatted, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	fmt.Printf("Generated: %s\n", filepath.Base(outputFile))
	return nil
}

// Subtool defines the interface for code generation subtools.
type Subtool interface {
	Name() string
	Description() string
	Run(cfg GeneratorConfig) error
}
