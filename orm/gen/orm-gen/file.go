package main

import (
	"go/ast"
	"go/types"
	"reflect"
	"strconv"
	"strings"

	"ormfilter/orm/model"
)

// SingleFileEntryVisitor 只处理 *ast.File 节点，剩下的交给 FileVisitor
type SingleFileEntryVisitor struct {
	file *FileVisitor
}

func (s *SingleFileEntryVisitor) Get() *File {
	if s.file == nil {
		return &File{}
	}
	res := &File{
		Package: s.file.Package,
		Imports: s.file.Imports,
		Types:   make([]Type, 0, len(s.file.types)),
	}
	for _, typ := range s.file.types {
		res.Types = append(res.Types, Type{
			Name:   typ.name,
			Fields: typ.fields,
		})
	}
	return res
}

func (s *SingleFileEntryVisitor) Visit(node ast.Node) ast.Visitor {
	fn, ok := node.(*ast.File)
	if !ok {
		return s
	}
	s.file = &FileVisitor{
		Package: fn.Name.String(),
	}
	return s.file
}

type File struct {
	Package string
	Imports []string
	Types   []Type
}

type FileVisitor struct {
	Package string
	Imports []string
	types   []*TypeVisitor
}

func (f *FileVisitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.FuncDecl:
		// 函数里面的局部类型不生成
		return nil
	case *ast.TypeSpec:
		// 只为结构体生成代码
		if _, ok := n.Type.(*ast.StructType); !ok {
			return nil
		}
		v := &TypeVisitor{name: n.Name.String()}
		f.types = append(f.types, v)
		return v
	case *ast.ImportSpec:
		path := n.Path.Value
		// import 别名
		if n.Name != nil && n.Name.String() != "" {
			path = n.Name.String() + " " + path
		}
		f.Imports = append(f.Imports, path)
	}
	return f
}

type TypeVisitor struct {
	name   string
	fields []Field
}

func (t *TypeVisitor) Visit(node ast.Node) ast.Visitor {
	n, ok := node.(*ast.Field)
	if !ok {
		return t
	}
	col := columnOf(n.Tag)
	typ := types.ExprString(n.Type)
	// 匿名字段没有名字，自然跳过
	for _, name := range n.Names {
		if !name.IsExported() {
			continue
		}
		c := col
		if c == "" {
			c = model.UnderscoreName(name.String())
		}
		t.fields = append(t.fields, Field{
			Name:   name.String(),
			Type:   typ,
			Column: c,
		})
	}
	// 字段的类型里面不会再有我们关心的字段
	return nil
}

// columnOf 和 model 的规则保持一致，读取 `orm:"column=xxx"`
func columnOf(tag *ast.BasicLit) string {
	if tag == nil {
		return ""
	}
	raw, err := strconv.Unquote(tag.Value)
	if err != nil {
		return ""
	}
	ormTag, ok := reflect.StructTag(raw).Lookup("orm")
	if !ok {
		return ""
	}
	for _, pair := range strings.Split(ormTag, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if ok && k == "column" {
			return v
		}
	}
	return ""
}

type Type struct {
	Name   string
	Fields []Field
}

type Field struct {
	Name   string
	Type   string
	Column string
}
