package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	gperrors "github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
	gridio "github.com/matzehuels/gridpath/pkg/io"
	"github.com/matzehuels/gridpath/pkg/pipeline"
	"github.com/matzehuels/gridpath/pkg/scenario"
)

const (
	defaultBase      = "gridpath" // output base name when reading flags or stdin
	minHeadlessSize  = 2
	defaultSolveSize = grid.DefaultSize
	solvedSuffix     = ".solved" // appended to the input stem for derived outputs
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	output     string   // output file (single format) or base path (multiple)
	formats    string   // comma-separated output formats
	size       int      // board size when building from flags
	start      string   // "row,col"
	end        string   // "row,col"
	walls      []string // "row,col" obstacles
	cellPixels int      // PNG cell size
	labels     bool     // DOT/SVG node labels
	adjacency  bool     // DOT/SVG adjacency edges
	noCache    bool     // bypass the SVG artifact cache
}

// solveCommand creates the headless solve command.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{size: defaultSolveSize}

	cmd := &cobra.Command{
		Use:   "solve [map-file|-]",
		Short: "Solve a text map and export the result",
		Long: `Solve a board without the interactive UI.

The board comes from a map file ("-" reads stdin) or from flags:

  gridpath solve maze.txt -f txt,png
  gridpath solve --size 10 --start 0,0 --end 9,9 --wall 4,0 --wall 4,1

Map files are N lines of N characters: '.' empty, '#' obstacle, 'S' start,
'E' end. Lines starting with ';' are comments. Solved txt output uses 'o' for
visited cells and '*' for the path and can be read back as a map. Files ending
in .json are read as JSON boards, the format written by -f json.

Without -o, output files are named after the input with a .solved suffix
(maze.solved.txt, maze.solved.png). The input file is never overwritten.

Formats: txt (default, printed to stdout without -o), dot, svg, png, json.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			popts := c.Config.PipelineOptions(c.Logger)
			if cmd.Flags().Changed("format") {
				formats, err := pipeline.ParseFormats(opts.formats)
				if err != nil {
					return err
				}
				popts.Formats = formats
			}
			if cmd.Flags().Changed("cell-pixels") {
				popts.CellPixels = opts.cellPixels
			}
			if cmd.Flags().Changed("labels") {
				popts.Labels = opts.labels
			}
			if cmd.Flags().Changed("adjacency") {
				popts.Adjacency = opts.adjacency
			}
			popts.Cache = c.openCache(opts.noCache)
			defer popts.Cache.Close()
			return c.runSolve(cmd.Context(), input, opts, popts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): txt (default), dot, svg, png, json (comma-separated)")
	cmd.Flags().IntVar(&opts.size, "size", opts.size, "board size when no map file is given")
	cmd.Flags().StringVar(&opts.start, "start", "", "start cell as row,col")
	cmd.Flags().StringVar(&opts.end, "end", "", "end cell as row,col")
	cmd.Flags().StringArrayVar(&opts.walls, "wall", nil, "obstacle cell as row,col (repeatable)")
	cmd.Flags().IntVar(&opts.cellPixels, "cell-pixels", 0, "PNG cell size in pixels (default from config, 24)")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "print row,col in DOT/SVG nodes")
	cmd.Flags().BoolVar(&opts.adjacency, "adjacency", false, "draw adjacency edges in DOT/SVG")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render SVG without reading or writing the cache")

	return cmd
}

// runSolve loads or builds the board, runs the pipeline and writes artifacts.
func (c *CLI) runSolve(ctx context.Context, input string, opts solveOpts, popts pipeline.Options) error {
	logger := loggerFromContext(ctx)

	g, err := loadBoard(input, opts)
	if err != nil {
		return err
	}
	logger.Debug("board ready", "size", g.Size(), "obstacles", g.Count(grid.Obstacle))

	spinner := newSpinner(ctx, os.Stderr, "Solving...")
	spinner.Start()
	res, err := c.newRunner().Execute(ctx, g, popts)
	if err != nil {
		spinner.StopWithError("Solve failed")
		return err
	}
	spinner.Stop()

	// A single txt result without -o goes to stdout.
	if opts.output == "" && len(popts.Formats) == 1 && popts.Formats[0] == pipeline.FormatTXT {
		_, err := c.out.Write(res.Artifacts[pipeline.FormatTXT])
		return err
	}

	prog := newProgress(logger)
	paths, err := writeArtifacts(res.Artifacts, popts.Formats, opts.output, input)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d file(s)", len(paths)))

	printResult(c.out, res)
	for _, p := range paths {
		printFile(c.out, p)
	}
	if !slices.Contains(popts.Formats, pipeline.FormatPNG) {
		printNextStep(c.out, "Render an image", fmt.Sprintf("%s solve %s -f png", appName, displayInput(input)))
	}
	return nil
}

// loadBoard reads a map file, or builds a board from flags when input is empty.
func loadBoard(input string, opts solveOpts) (*grid.Grid, error) {
	if input != "" {
		if opts.start != "" || opts.end != "" || len(opts.walls) > 0 {
			return nil, gperrors.New(gperrors.ErrCodeInvalidInput, "--start, --end and --wall cannot be combined with a map file")
		}
		if strings.EqualFold(filepath.Ext(input), ".json") {
			return gridio.ImportJSON(input)
		}
		return scenario.Load(input)
	}
	if opts.start == "" || opts.end == "" {
		return nil, gperrors.New(gperrors.ErrCodeInvalidInput, "give a map file, or both --start and --end")
	}
	if err := gperrors.ValidateSize(opts.size, minHeadlessSize, scenario.MaxSize); err != nil {
		return nil, err
	}

	g := grid.New(opts.size)
	place := func(flag, coord string, mode grid.Mode) error {
		row, col, err := gperrors.ParseCoord(coord)
		if err != nil {
			return err
		}
		if err := gperrors.ValidateCoord(row, col, opts.size); err != nil {
			return err
		}
		if !g.PlaceAt(row, col, mode) {
			return gperrors.New(gperrors.ErrCodeInvalidInput, "--%s %s overlaps an endpoint", flag, coord)
		}
		return nil
	}
	if err := place("start", opts.start, grid.ModeStart); err != nil {
		return nil, err
	}
	if err := place("end", opts.end, grid.ModeEnd); err != nil {
		return nil, err
	}
	for _, w := range opts.walls {
		idx, ok := wallIndex(g, w)
		if ok && g.State(idx) == grid.Obstacle {
			continue // listed twice; placing again would toggle it off
		}
		if err := place("wall", w, grid.ModeObstacle); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func wallIndex(g *grid.Grid, coord string) (int, bool) {
	row, col, err := gperrors.ParseCoord(coord)
	if err != nil {
		return 0, false
	}
	return g.Index(row, col)
}

// writeArtifacts writes one file per format and returns the paths written.
// It refuses to write over the input file.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) ([]string, error) {
	var paths []string
	if len(formats) == 1 && output != "" && !isFormatExt(output) {
		paths = append(paths, output)
	} else {
		base := basePath(output, input)
		for _, f := range formats {
			paths = append(paths, base+"."+f)
		}
	}
	for _, p := range paths {
		if samePath(p, input) {
			return nil, gperrors.New(gperrors.ErrCodeInvalidInput, "output %s would overwrite the input map", p)
		}
	}
	for i, f := range formats {
		if err := os.WriteFile(paths[i], artifacts[f], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", paths[i], err)
		}
	}
	return paths, nil
}

// basePath derives the base output path from the output and input file paths.
// Without output, the input's extension is replaced by solvedSuffix so the
// input itself is never a target. A format extension on output is stripped.
func basePath(output, input string) string {
	if output == "" {
		if input == "" || input == "-" {
			return defaultBase
		}
		return strings.TrimSuffix(input, filepath.Ext(input)) + solvedSuffix
	}
	if isFormatExt(output) {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return output
}

// samePath reports whether a and b name the same file. Stdin never matches.
func samePath(a, b string) bool {
	if b == "" || b == "-" {
		return false
	}
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

func isFormatExt(path string) bool {
	return slices.Contains(pipeline.ValidFormats, strings.TrimPrefix(filepath.Ext(path), "."))
}

func displayInput(input string) string {
	if input == "" {
		return "<map-file>"
	}
	return input
}
