package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectTypeNameFromDirective(t *testing.T) {
	dir := t.TempDir()
	src := `package shapes

//go:generate go run github.com/rhysd/diff-enum/cmd/diffenum common-fields --shared "ID int"
type Shape interface {
	isShape()
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shape.go"), []byte(src), 0644))

	name, err := detectTypeName(dir, "shape.go")
	require.NoError(t, err)
	assert.Equal(t, "Shape", name)
}

func TestResolveSharedSpec(t *testing.T) {
	dir := t.TempDir()
	listFile := filepath.Join(dir, "shared.txt")
	require.NoError(t, os.WriteFile(listFile, []byte("User string\nStars uint32\n"), 0644))

	t.Run("inline", func(t *testing.T) {
		sharedSpec, sharedFile = "User string", ""
		spec, err := resolveSharedSpec()
		require.NoError(t, err)
		assert.Equal(t, "User string", spec)
	})

	t.Run("from file", func(t *testing.T) {
		sharedSpec, sharedFile = "", listFile
		spec, err := resolveSharedSpec()
		require.NoError(t, err)
		assert.Equal(t, "User string\nStars uint32\n", spec)
	})

	t.Run("mutually exclusive", func(t *testing.T) {
		sharedSpec, sharedFile = "User string", listFile
		_, err := resolveSharedSpec()
		assert.Error(t, err)
	})
}
