package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"
)

var widthsTemplate = template.Must(template.New("widths").Parse(`// Code generated by lanegen. DO NOT EDIT.

package {{.Package}}
{{range .Widths}}
// {{.Name}} creates {{.Article}} {{.Lanes}}-lane {{.Go}} vector from an array.
func {{.Name}}(lanes [{{.Lanes}}]{{.Go}}) Vec[{{.Go}}] {
	return New(lanes[:]...)
}

// Splat{{.Name}} creates {{.Article}} {{.Lanes}}-lane {{.Go}} vector with every lane set to x.
func Splat{{.Name}}(x {{.Go}}) Vec[{{.Go}}] {
	return Broadcast({{.Lanes}}, x)
}

// Array{{.Name}} copies {{.Article}} {{.Lanes}}-lane {{.Go}} vector into an array.
// It panics with a *LaneCountError if v does not have {{.Lanes}} lanes.
func Array{{.Name}}(v Vec[{{.Go}}]) [{{.Lanes}}]{{.Go}} {
	mustLanes("Array{{.Name}}", v.NumLanes(), {{.Lanes}})
	var out [{{.Lanes}}]{{.Go}}
	copy(out[:], v.data)
	return out
}
{{end}}`))

// Generator renders the fixed-width constructors of package lane.
type Generator struct {
	Package string
	Types   []laneType
	Logger  *slog.Logger
}

// Render returns the formatted Go source for the configured types.
func (g *Generator) Render(filename string) ([]byte, error) {
	widths := expandWidths(g.Types)
	if len(widths) == 0 {
		return nil, fmt.Errorf("no lane types selected")
	}
	var buf bytes.Buffer
	err := widthsTemplate.Execute(&buf, struct {
		Package string
		Widths  []width
	}{g.Package, widths})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	g.Logger.Debug("rendered widths", slog.String("file", filename), slog.Int("constructors", len(widths)))
	return src, nil
}

// WriteFile renders and writes the output into dir.
func (g *Generator) WriteFile(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	src, err := g.Render(path)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	g.Logger.Info("wrote widths", slog.String("file", path))
	return path, nil
}
