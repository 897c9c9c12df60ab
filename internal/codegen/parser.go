package codegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"
	"strings"
)

// ParseUnion parses a union definition file and extracts the union named
// typeName: the sealed interface plus every struct type declared in the file,
// in declaration order, as its variants.
func ParseUnion(dir, filename, typeName string) (*UnionInfo, error) {
	fset := token.NewFileSet()
	fullPath := filepath.Join(dir, filename)
	f, err := parser.ParseFile(fset, fullPath, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnItem, err)
	}
	info := &UnionInfo{Name: typeName, Imports: collectImports(f)}
	found := false
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
			doc := specDoc(genDecl, typeSpec)
			if typeSpec.Name.Name == typeName {
				iface, ok := typeSpec.Type.(*ast.InterfaceType)
				if !ok {
					return nil, fmt.Errorf("%w: type %s is not an interface", ErrNotAnEnum, typeName)
				}
				found = true
				info.Doc = stripDirectives(doc)
				info.Markers = markerMethods(iface)
				continue
			}
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue
			}
			info.Variants = append(info.Variants, parseVariant(typeSpec.Name.Name, doc, structType))
			info.UsedPkgs = mergePkgs(info.UsedPkgs, collectUsedPkgs(structType))
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: no interface type %s in %s", ErrNotAnEnum, typeName, filename)
	}
	return info, nil
}

func parseVariant(name string, doc []string, st *ast.StructType) VariantInfo {
	fields, hasUnnamed := parseFieldList(st)
	v := VariantInfo{Name: name, Doc: stripDirectives(doc), Fields: fields}
	switch {
	case hasUnnamed:
		v.Kind = PayloadUnnamed
	case len(fields) == 0:
		v.Kind = PayloadNone
	default:
		v.Kind = PayloadNamed
	}
	return v
}

func parseFieldList(st *ast.StructType) ([]FieldDecl, bool) {
	hasUnnamed := false
	fields := make([]FieldDecl, 0, len(st.Fields.List))
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			hasUnnamed = true
			continue
		}
		tag := ""
		if field.Tag != nil {
			tag = field.Tag.Value
		}
		for i, name := range field.Names {
			fd := FieldDecl{
				Name: name.Name,
				Type: exprToString(field.Type),
				Tag:  tag,
			}
			// Comments attach to the declaration line; carry them on the
			// first name so they appear exactly once after injection.
			if i == 0 {
				fd.Doc = commentLines(field.Doc)
				fd.Comment = commentText(field.Comment)
			}
			fields = append(fields, fd)
		}
	}
	return fields, hasUnnamed
}

// specDoc returns the doc comment lines of a type spec, falling back to the
// enclosing declaration's doc when the spec has none (the usual case for a
// single-spec type declaration).
func specDoc(genDecl *ast.GenDecl, typeSpec *ast.TypeSpec) []string {
	if typeSpec.Doc != nil {
		return commentLines(typeSpec.Doc)
	}
	if len(genDecl.Specs) == 1 {
		return commentLines(genDecl.Doc)
	}
	return nil
}

// markerMethods returns the unexported niladic methods of the union
// interface. The generator emits an empty implementation of each for every
// variant so the variant set stays sealed to the declaring package.
func markerMethods(iface *ast.InterfaceType) []string {
	var markers []string
	if iface.Methods == nil {
		return markers
	}
	for _, m := range iface.Methods.List {
		if len(m.Names) != 1 || ast.IsExported(m.Names[0].Name) {
			continue
		}
		ft, ok := m.Type.(*ast.FuncType)
		if !ok {
			continue
		}
		if ft.Params != nil && len(ft.Params.List) > 0 {
			continue
		}
		if ft.Results != nil && len(ft.Results.List) > 0 {
			continue
		}
		markers = append(markers, m.Names[0].Name)
	}
	return markers
}

func commentLines(cg *ast.CommentGroup) []string {
	if cg == nil {
		return nil
	}
	lines := make([]string, 0, len(cg.List))
	for _, c := range cg.List {
		lines = append(lines, c.Text)
	}
	return lines
}

func commentText(cg *ast.CommentGroup) string {
	if cg == nil || len(cg.List) == 0 {
		return ""
	}
	return cg.List[0].Text
}

// stripDirectives drops go:generate lines from a doc comment so the
// re-emitted declaration does not trigger generation again.
func stripDirectives(doc []string) []string {
	var out []string
	for _, line := range doc {
		if strings.Contains(line, "go:generate") {
			continue
		}
		out = append(out, line)
	}
	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "//" {
		out = out[:len(out)-1]
	}
	return out
}

func collectImports(f *ast.File) []ImportInfo {
	imports := make([]ImportInfo, 0, len(f.Imports))
	for _, imp := range f.Imports {
		path := strings.Trim(imp.Path.Value, `"`)
		alias := ""
		if imp.Name != nil {
			alias = imp.Name.Name
		}
		imports = append(imports, ImportInfo{Path: path, Alias: alias})
	}
	return imports
}

// collectUsedPkgs walks a type and returns the package qualifiers its field
// types reference, sorted and deduplicated.
func collectUsedPkgs(node ast.Node) []string {
	seen := make(map[string]bool)
	ast.Inspect(node, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if pkg, ok := sel.X.(*ast.Ident); ok {
			seen[pkg.Name] = true
		}
		return true
	})
	if len(seen) == 0 {
		return nil
	}
	pkgs := make([]string, 0, len(seen))
	for pkg := range seen {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	return pkgs
}

func mergePkgs(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	for _, pkg := range a {
		seen[pkg] = true
	}
	for _, pkg := range b {
		seen[pkg] = true
	}
	if len(seen) == 0 {
		return nil
	}
	pkgs := make([]string, 0, len(seen))
	for pkg := range seen {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	return pkgs
}

// ResolveImports maps used package qualifiers back to the definition file's
// import declarations. Qualifiers with no matching import are skipped; the
// definition file is expected to import what its field types mention.
func ResolveImports(usedPkgs []string, fileImports []ImportInfo) []ImportInfo {
	var imports []ImportInfo
	for _, pkg := range usedPkgs {
		for _, imp := range fileImports {
			pkgName := imp.Alias
			if pkgName == "" {
				pkgName = filepath.Base(imp.Path)
			}
			if pkgName == pkg {
				imports = append(imports, imp)
				break
			}
		}
	}
	sort.Slice(imports, func(i, j int) bool { return imports[i].Path < imports[j].Path })
	return imports
}

func exprToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + exprToString(t.X)
	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + exprToString(t.Elt)
		}
		return types.ExprString(expr)
	case *ast.MapType:
		return "map[" + exprToString(t.Key) + "]" + exprToString(t.Value)
	case *ast.SelectorExpr:
		return exprToString(t.X) + "." + t.Sel.Name
	case *ast.InterfaceType:
		if t.Methods == nil || len(t.Methods.List) == 0 {
			return "any"
		}
		return types.ExprString(expr)
	default:
		return types.ExprString(expr)
	}
}

// FindUnionAfterGenerateDirective finds the interface type whose doc comment
// contains a go:generate directive invoking the named generator.
func FindUnionAfterGenerateDirective(dir, filename, generatorName string) (string, error) {
	fset := token.NewFileSet()
	fullPath := filepath.Join(dir, filename)
	f, err := parser.ParseFile(fset, fullPath, nil, parser.ParseComments)
	if err != nil {
		return "", fmt.Errorf("parsing file: %w", err)
	}
	for _, decl := range f.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE || genDecl.Doc == nil {
			continue
		}
		for _, comment := range genDecl.Doc.List {
			if strings.Contains(comment.Text, "go:generate") && strings.Contains(comment.Text, generatorName) {
				for _, spec := range genDecl.Specs {
					typeSpec, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}
					if _, ok := typeSpec.Type.(*ast.InterfaceType); ok {
						return typeSpec.Name.Name, nil
					}
				}
			}
		}
	}
	return "", fmt.Errorf("no interface type found after go:generate %s directive", generatorName)
}

// FindUnionAfterLine finds the interface type declared immediately after the
// given line number. Used with the GOLINE environment variable when the
// directive is not directly above the type.
func FindUnionAfterLine(filename string, lineNum int) (string, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return "", fmt.Errorf("parsing file: %w", err)
	}
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
			pos := fset.Position(typeSpec.Pos())
			if pos.Line > lineNum {
				if _, ok := typeSpec.Type.(*ast.InterfaceType); ok {
					return typeSpec.Name.Name, nil
				}
			}
		}
	}
	return "", fmt.Errorf("no interface type found after line %d", lineNum)
}
