package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGen(t *testing.T) {
	buf := &bytes.Buffer{}
	err := gen(buf, "testdata/user.go", []string{"Eq", "Gt"})
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".gen.go"),
	)
	g.Assert(t, "user", buf.Bytes())
}

func TestGen_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		ops     []string
		wantErr string
	}{
		{
			name:    "unsupported op",
			src:     "testdata/user.go",
			ops:     []string{"Like"},
			wantErr: `orm-gen: unsupported operator "Like"`,
		},
		{
			name:    "missing file",
			src:     "testdata/missing.go",
			ops:     []string{"Eq"},
			wantErr: "open testdata/missing.go: no such file or directory",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := gen(&bytes.Buffer{}, tc.src, tc.ops)
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestRootCommand(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "user.gen.go")
	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"testdata/user.go", "-o", dst, "--ops", "Eq,Gt"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "generated "+dst+"\n", out.String())

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	want, err := os.ReadFile("testdata/user.gen.go")
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestRootCommand_Args(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())
}
