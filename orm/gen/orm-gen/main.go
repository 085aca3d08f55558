package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
)

// html/template 会把引号转义成 &#34;，所以用 text/template
//
//go:embed tpl.gotmpl
var genOrm string

var supportedOps = map[string]struct{}{
	"Eq": {}, "NotEq": {}, "Lt": {}, "Lte": {}, "Gt": {}, "Gte": {},
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		output string
		ops    []string
	)
	cmd := &cobra.Command{
		Use:   "orm-gen <src.go>",
		Short: "Generate filter whitelists and predicate helpers for orm models",
		Long: `orm-gen reads the structs declared in a Go source file and writes,
for every struct, the list of its column names and one predicate
helper per exported field and operator.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			if output == "" {
				output = strings.TrimSuffix(src, ".go") + ".gen.go"
			}
			buf := &bytes.Buffer{}
			if err := gen(buf, src, ops); err != nil {
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("orm-gen: write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "generated %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, defaults to <src>.gen.go")
	cmd.Flags().StringSliceVar(&ops, "ops", []string{"Eq", "Lt", "Gt"}, "predicate helpers to generate")
	return cmd
}

// gen 把生成的代码写进 w，测试的时候不需要真的落盘
func gen(w io.Writer, srcFile string, ops []string) error {
	for _, op := range ops {
		if _, ok := supportedOps[op]; !ok {
			return fmt.Errorf("orm-gen: unsupported operator %q", op)
		}
	}
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, srcFile, nil, parser.ParseComments)
	if err != nil {
		return err
	}
	s := &SingleFileEntryVisitor{}
	ast.Walk(s, f)

	tpl, err := template.New("gen-orm").Parse(genOrm)
	if err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	if err = tpl.Execute(buf, Data{File: s.Get(), Ops: ops}); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("orm-gen: format: %w", err)
	}
	_, err = w.Write(src)
	return err
}

type Data struct {
	*File
	Ops []string
}
