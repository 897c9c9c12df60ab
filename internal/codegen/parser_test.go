package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shapeSource = `//go:build ignore

package shapes

import "time"

// Shape is a closed set of geometric figures.
//
//go:generate go run github.com/rhysd/diff-enum/cmd/diffenum common-fields --shared "ID int"
type Shape interface {
	isShape()
}

// Circle is a round shape.
type Circle struct {
	Radius float64 ` + "`json:\"radius\"`" + `
	Born   time.Time
}

type Dot struct{}

type Weird struct {
	time.Time
}
`

func writeSource(t *testing.T, dir, name, src string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0644))
}

func TestParseUnion(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "shape.go", shapeSource)

	union, err := ParseUnion(dir, "shape.go", "Shape")
	require.NoError(t, err)

	assert.Equal(t, "Shape", union.Name)
	assert.Equal(t, []string{"// Shape is a closed set of geometric figures."}, union.Doc,
		"directive and dangling comment lines must be stripped")
	assert.Equal(t, []string{"isShape"}, union.Markers)
	assert.Equal(t, []ImportInfo{{Path: "time"}}, union.Imports)
	assert.Equal(t, []string{"time"}, union.UsedPkgs)

	require.Len(t, union.Variants, 3)
	circle := union.Variants[0]
	assert.Equal(t, "Circle", circle.Name)
	assert.Equal(t, []string{"// Circle is a round shape."}, circle.Doc)
	assert.Equal(t, PayloadNamed, circle.Kind)
	assert.Equal(t, []FieldDecl{
		{Name: "Radius", Type: "float64", Tag: "`json:\"radius\"`"},
		{Name: "Born", Type: "time.Time"},
	}, circle.Fields)

	dot := union.Variants[1]
	assert.Equal(t, "Dot", dot.Name)
	assert.Equal(t, PayloadNone, dot.Kind)
	assert.Empty(t, dot.Fields)

	weird := union.Variants[2]
	assert.Equal(t, "Weird", weird.Name)
	assert.Equal(t, PayloadUnnamed, weird.Kind)
}

func TestParseUnionNotAnEnum(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "shape.go", shapeSource)

	_, err := ParseUnion(dir, "shape.go", "Missing")
	assert.ErrorIs(t, err, ErrNotAnEnum)

	// Pointing the tool at a struct type is the "not an enumeration" case.
	_, err = ParseUnion(dir, "shape.go", "Circle")
	assert.ErrorIs(t, err, ErrNotAnEnum)
}

func TestParseUnionNotAnItem(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "broken.go", "package shapes\n\ntype Shape interface {")

	_, err := ParseUnion(dir, "broken.go", "Shape")
	assert.ErrorIs(t, err, ErrNotAnItem)
}

func TestFindUnionAfterGenerateDirective(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "shape.go", shapeSource)

	name, err := FindUnionAfterGenerateDirective(dir, "shape.go", "diffenum common-fields")
	require.NoError(t, err)
	assert.Equal(t, "Shape", name)

	_, err = FindUnionAfterGenerateDirective(dir, "shape.go", "someothertool")
	assert.Error(t, err)
}

func TestFindUnionAfterLine(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "shape.go", shapeSource)

	// Line 9 is just above the Shape declaration.
	name, err := FindUnionAfterLine(filepath.Join(dir, "shape.go"), 9)
	require.NoError(t, err)
	assert.Equal(t, "Shape", name)

	_, err = FindUnionAfterLine(filepath.Join(dir, "shape.go"), 1000)
	assert.Error(t, err)
}
