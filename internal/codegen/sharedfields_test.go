package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSharedFields(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     []FieldDecl
		wantPkgs []string
	}{
		{
			name: "single field",
			raw:  "X int32",
			want: []FieldDecl{{Name: "X", Type: "int32"}},
		},
		{
			name: "semicolon separated",
			raw:  "User string; Stars uint32",
			want: []FieldDecl{
				{Name: "User", Type: "string"},
				{Name: "Stars", Type: "uint32"},
			},
		},
		{
			name: "struct tag preserved",
			raw:  "User string `json:\"user\"`",
			want: []FieldDecl{{Name: "User", Type: "string", Tag: "`json:\"user\"`"}},
		},
		{
			name: "doc and trailing comments preserved",
			raw:  "// Owner of the repository.\nUser string // never empty",
			want: []FieldDecl{{
				Name:    "User",
				Type:    "string",
				Doc:     []string{"// Owner of the repository."},
				Comment: "// never empty",
			}},
		},
		{
			name: "multiple names in one declaration",
			raw:  "A, B int",
			want: []FieldDecl{
				{Name: "A", Type: "int"},
				{Name: "B", Type: "int"},
			},
		},
		{
			name:     "qualified type records package",
			raw:      "CreatedAt time.Time",
			want:     []FieldDecl{{Name: "CreatedAt", Type: "time.Time"}},
			wantPkgs: []string{"time"},
		},
		{
			name: "composite types",
			raw:  "Labels map[string]string; Hosts []string; Meta *Metadata",
			want: []FieldDecl{
				{Name: "Labels", Type: "map[string]string"},
				{Name: "Hosts", Type: "[]string"},
				{Name: "Meta", Type: "*Metadata"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shared, err := ParseSharedFields(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, shared.Fields)
			assert.Equal(t, tt.wantPkgs, shared.UsedPkgs)
		})
	}
}

func TestParseSharedFieldsInlineBlockComment(t *testing.T) {
	shared, err := ParseSharedFields("/* this is comment */ X int32")
	require.NoError(t, err)
	require.Len(t, shared.Fields, 1)
	assert.Equal(t, "X", shared.Fields[0].Name)
	assert.Equal(t, "int32", shared.Fields[0].Type)
}

func TestParseSharedFieldsErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "empty", raw: "", want: ErrNoSharedFields},
		{name: "whitespace only", raw: "   \n\t", want: ErrNoSharedFields},
		{name: "comment only", raw: "// nothing here", want: ErrNoSharedFields},
		{name: "name without type", raw: "User", want: ErrMalformedSharedFields},
		{name: "not a field list", raw: "123 +", want: ErrMalformedSharedFields},
		{name: "stray brace", raw: "X int32 }", want: ErrMalformedSharedFields},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shared, err := ParseSharedFields(tt.raw)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, shared)
		})
	}
}
