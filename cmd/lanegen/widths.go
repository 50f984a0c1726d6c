package main

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// laneType is one element type of the fixed-width family together with
// the lane counts it is offered in.
type laneType struct {
	Prefix string // name prefix, e.g. "F32"
	Go     string // Go element type, e.g. "float32"
	Widths []int
}

// defaultTypes mirrors the classic fixed-width vector family: i8x8 through
// f64x8.
var defaultTypes = []laneType{
	{Prefix: "I8", Go: "int8", Widths: []int{8, 16, 32, 64}},
	{Prefix: "I16", Go: "int16", Widths: []int{2, 4, 8, 16, 32}},
	{Prefix: "I32", Go: "int32", Widths: []int{2, 4, 8, 16}},
	{Prefix: "I64", Go: "int64", Widths: []int{2, 4, 8}},
	{Prefix: "U8", Go: "uint8", Widths: []int{8, 16, 32, 64}},
	{Prefix: "U16", Go: "uint16", Widths: []int{2, 4, 8, 16, 32}},
	{Prefix: "U32", Go: "uint32", Widths: []int{2, 4, 8, 16}},
	{Prefix: "U64", Go: "uint64", Widths: []int{2, 4, 8}},
	{Prefix: "F32", Go: "float32", Widths: []int{2, 4, 8, 16}},
	{Prefix: "F64", Go: "float64", Widths: []int{2, 4, 8}},
}

// width is a single generated constructor family, e.g. F32x4.
type width struct {
	Name    string // "F32x4"
	Go      string // "float32"
	Lanes   int    // 4
	Article string // "a" or "an", agreeing with the spoken lane count
}

func expandWidths(types []laneType) []width {
	return lo.FlatMap(types, func(t laneType, _ int) []width {
		return lo.Map(t.Widths, func(n int, _ int) width {
			return width{
				Name:    t.Prefix + "x" + strconv.Itoa(n),
				Go:      t.Go,
				Lanes:   n,
				Article: article(n),
			}
		})
	})
}

func article(n int) string {
	if strings.HasPrefix(strconv.Itoa(n), "8") || n == 11 || n == 18 {
		return "an"
	}
	return "a"
}

// filterTypes keeps the types whose Go name or prefix is listed in only.
// An empty list keeps everything.
func filterTypes(types []laneType, only []string) []laneType {
	if len(only) == 0 {
		return types
	}
	return lo.Filter(types, func(t laneType, _ int) bool {
		return lo.Contains(only, t.Go) || lo.Contains(only, strings.ToLower(t.Prefix))
	})
}
