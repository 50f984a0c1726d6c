package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGenerator(types []laneType) *Generator {
	return &Generator{
		Package: "lane",
		Types:   types,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestExpandWidths(t *testing.T) {
	widths := expandWidths([]laneType{
		{Prefix: "F32", Go: "float32", Widths: []int{2, 8}},
		{Prefix: "U8", Go: "uint8", Widths: []int{16}},
	})
	require.Len(t, widths, 3)
	assert.Equal(t, width{Name: "F32x2", Go: "float32", Lanes: 2, Article: "a"}, widths[0])
	assert.Equal(t, width{Name: "F32x8", Go: "float32", Lanes: 8, Article: "an"}, widths[1])
	assert.Equal(t, width{Name: "U8x16", Go: "uint8", Lanes: 16, Article: "a"}, widths[2])
}

func TestFilterTypes(t *testing.T) {
	assert.Len(t, filterTypes(defaultTypes, nil), len(defaultTypes))

	got := filterTypes(defaultTypes, []string{"float32", "i16"})
	require.Len(t, got, 2)
	assert.Equal(t, "I16", got[0].Prefix)
	assert.Equal(t, "F32", got[1].Prefix)

	assert.Empty(t, filterTypes(defaultTypes, []string{"complex64"}))
}

func TestRenderParses(t *testing.T) {
	src, err := testGenerator(defaultTypes).Render("widths_gen.go")
	require.NoError(t, err)

	f, err := parser.ParseFile(token.NewFileSet(), "widths_gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "lane", f.Name.Name)

	// Three functions per width.
	total := 0
	for _, lt := range defaultTypes {
		total += len(lt.Widths)
	}
	assert.Len(t, f.Decls, 3*total)

	text := string(src)
	assert.True(t, strings.HasPrefix(text, "// Code generated by lanegen. DO NOT EDIT."))
	assert.Contains(t, text, "func F32x4(lanes [4]float32) Vec[float32] {")
	assert.Contains(t, text, "func SplatU8x64(x uint8) Vec[uint8] {")
	assert.Contains(t, text, `mustLanes("ArrayI64x8", v.NumLanes(), 8)`)
	assert.Contains(t, text, "creates an 8-lane int16 vector")
}

func TestRenderMatchesCheckedIn(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("..", "..", "lane", "widths_gen.go"))
	if err != nil {
		t.Skipf("checked-in file not available: %v", err)
	}
	got, err := testGenerator(defaultTypes).Render("widths_gen.go")
	require.NoError(t, err)
	if !bytes.Equal(want, got) {
		t.Error("lane/widths_gen.go is stale; run go generate ./lane")
	}
}

func TestRenderNoTypes(t *testing.T) {
	_, err := testGenerator(nil).Render("widths_gen.go")
	require.Error(t, err)
}

func TestRootCmdStdout(t *testing.T) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--stdout", "--types", "float64"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "func F64x2(")
	assert.NotContains(t, out.String(), "float32")
}

func TestRootCmdWritesFile(t *testing.T) {
	dir := t.TempDir()
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"-o", dir, "--types", "u16"})

	require.NoError(t, cmd.Execute())
	src, err := os.ReadFile(filepath.Join(dir, "widths_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "func U16x32(")
}

func TestRootCmdUnknownType(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--stdout", "--types", "bool"})
	require.Error(t, cmd.Execute())
}
