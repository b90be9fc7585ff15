// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridrect/config"
	"github.com/katalvlaran/gridrect/decompose"
	"github.com/katalvlaran/gridrect/grid"
	"github.com/katalvlaran/gridrect/gridio"
	"github.com/katalvlaran/gridrect/logging"
	"github.com/katalvlaran/gridrect/render"
)

const stdinName = "-"

var errWatchInput = errors.New("--watch needs exactly one input file")

func newDecomposeCmd(v *viper.Viper) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "decompose [file...]",
		Short: "Print the isolated rectangles of each grid",
		Long: `Read a grid ("m n" followed by m*n cells of 0 or 1, plain or zstd
compressed) from each file, or from stdin when no file or "-" is given,
and print the rectangles found as [x, y, w, h].`,
		Example: `  gridrect decompose grid.txt
  gridrect decompose --format grid --summary a.txt b.txt.zst
  cat grid.txt | gridrect decompose --min-width 1 --min-height 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompose(cmd, v, args, watch)
		},
	}

	d := config.Default()
	fs := cmd.Flags()
	fs.Int("min-width", d.Decompose.MinWidth, "smallest accepted rectangle width")
	fs.Int("min-height", d.Decompose.MinHeight, "smallest accepted rectangle height")
	fs.Bool("strict-seams", d.Decompose.StrictSeams, "also reject rectangles touching a 1 above their top edge")
	fs.StringP("format", "f", d.Output.Format, "output format: list, report, grid")
	fs.Bool("color", d.Output.Color, "colour the grid format")
	fs.Bool("verify", d.Output.Verify, "check the result before printing it")
	fs.Bool("summary", d.Output.Summary, "print a coverage summary after each grid")
	fs.BoolVarP(&watch, "watch", "w", false, "re-run whenever the input file is written, until interrupted")
	bindFlags(v, fs, map[string]string{
		"decompose.min_width":    "min-width",
		"decompose.min_height":   "min-height",
		"decompose.strict_seams": "strict-seams",
		"output.format":          "format",
		"output.color":           "color",
		"output.verify":          "verify",
		"output.summary":         "summary",
	})

	return cmd
}

func runDecompose(cmd *cobra.Command, v *viper.Viper, args []string, watch bool) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	d := &decomposer{cfg: cfg, log: log, in: cmd.InOrStdin(), out: cmd.OutOrStdout()}

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}
	if watch {
		if len(inputs) != 1 || inputs[0] == stdinName {
			return errWatchInput
		}
		return watchFile(cmd.Context(), inputs[0], log, func() error { return d.run(inputs[0]) })
	}

	for i, name := range inputs {
		if len(inputs) > 1 {
			if i > 0 {
				fmt.Fprintln(d.out)
			}
			fmt.Fprintf(d.out, "==> %s <==\n", displayName(name))
		}
		if err := d.run(name); err != nil {
			return err
		}
	}

	return nil
}

// decomposer reads, decomposes and prints one grid per run.
type decomposer struct {
	cfg *config.Config
	log *logging.Logger
	in  io.Reader
	out io.Writer
}

func (d *decomposer) run(name string) error {
	g, err := d.read(name)
	if err != nil {
		return err
	}
	log := d.log.With("input", displayName(name))

	opts := append(d.cfg.DecomposeOptions(),
		decompose.WithOnAccept(func(r grid.Rect) {
			log.Debug("rectangle accepted", "rect", r.String())
		}),
		decompose.WithOnReject(func(r grid.Rect, reason decompose.Reason) {
			log.Debug("rectangle rejected", "rect", r.String(), "reason", reason.String())
		}),
	)
	rects, err := decompose.Decompose(g, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(name), err)
	}
	if d.cfg.Output.Verify {
		if err := decompose.Verify(g, rects, d.cfg.DecomposeOptions()...); err != nil {
			return fmt.Errorf("%s: verify: %w", displayName(name), err)
		}
	}

	if err := d.print(g, rects); err != nil {
		return err
	}
	log.Info("decomposed", "rows", g.Rows(), "cols", g.Cols(), "rectangles", len(rects))

	return nil
}

func (d *decomposer) read(name string) (*grid.Grid, error) {
	if name != stdinName {
		return gridio.ReadFile(name)
	}
	g, err := gridio.Read(d.in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", displayName(name), err)
	}

	return g, nil
}

func (d *decomposer) print(g *grid.Grid, rects []grid.Rect) error {
	var err error
	switch d.cfg.Output.Format {
	case config.FormatReport:
		err = gridio.WriteReport(d.out, rects)
	case config.FormatGrid:
		_, err = io.WriteString(d.out, render.Renderer{Color: d.cfg.Output.Color}.Render(g, rects))
	default:
		err = gridio.WriteRects(d.out, rects)
	}
	if err != nil {
		return err
	}
	if d.cfg.Output.Summary {
		_, err = fmt.Fprintln(d.out, decompose.Summarize(g, rects))
	}

	return err
}

func displayName(name string) string {
	if name == stdinName {
		return "<stdin>"
	}

	return name
}
