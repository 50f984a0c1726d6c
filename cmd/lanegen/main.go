// Command lanegen generates the fixed-width constructors of package lane
// (F32x4, SplatF32x4, ArrayF32x4 and friends).
//
// Usage:
//
//	lanegen -o ../lane
//	lanegen --types float32,float64 --stdout
//
// Or via go:generate in package lane:
//
//	//go:generate go run ../cmd/lanegen -o .
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		outputDir string
		fileName  string
		pkg       string
		only      []string
		stdout    bool
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "lanegen",
		Short: "Generate fixed-width vector constructors for package lane",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			types := filterTypes(defaultTypes, only)
			if len(types) == 0 {
				return fmt.Errorf("--types %v matched no lane types", only)
			}
			gen := &Generator{Package: pkg, Types: types, Logger: logger}

			if stdout {
				src, err := gen.Render(fileName)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			_, err := gen.WriteFile(outputDir, fileName)
			return err
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	cmd.Flags().StringVar(&fileName, "file", "widths_gen.go", "output file name")
	cmd.Flags().StringVar(&pkg, "pkg", "lane", "output package name")
	cmd.Flags().StringSliceVar(&only, "types", nil, "restrict to these element types (e.g. float32,i16)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "write to stdout instead of a file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}
