package cli

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	gperrors "github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/scenario"
	"github.com/matzehuels/gridpath/pkg/session"
)

// playOpts holds the command-line flags for the play command.
type playOpts struct {
	size    int    // initial grid size, overrides grid.default_size
	policy  string // clear policy, overrides session.clear_policy
	logFile string // log destination while the board owns the terminal
}

// playCommand creates the interactive board command.
func (c *CLI) playCommand() *cobra.Command {
	var opts playOpts

	cmd := &cobra.Command{
		Use:   "play [map-file]",
		Short: "Draw a board in the terminal and watch the search",
		Long: `Open the interactive board.

Pick a mode with 1-4 (or o/s/e/x), then click cells or move the cursor with the
arrow keys and press space. Press enter to run the search; visited cells turn
blue and the shortest path yellow. +/- change the board size, which clears it.

A map file (see "gridpath solve --help" for the format) preloads obstacles and
endpoints.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var mapFile string
			if len(args) == 1 {
				mapFile = args[0]
			}
			return c.runPlay(cmd.Context(), mapFile, opts)
		},
	}

	cmd.Flags().IntVar(&opts.size, "size", 0, "initial grid size (default from config, 20)")
	cmd.Flags().StringVar(&opts.policy, "clear", "", "when stale marks are removed: edit (default) or run")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file while the board is open")

	return cmd
}

// runPlay builds the session controller from config and flags and runs the
// board until the user quits.
func (c *CLI) runPlay(ctx context.Context, mapFile string, opts playOpts) error {
	logger, closer, err := openLogFile(opts.logFile, c.Logger.GetLevel())
	if err != nil {
		return err
	}
	defer closer.Close()

	// The board owns the terminal; route hook output to the board's logger.
	registerHooks(logger)
	defer registerHooks(c.Logger)

	sessOpts := c.Config.SessionOptions(logger)
	if opts.policy != "" {
		p, err := session.ParseClearPolicy(opts.policy)
		if err != nil {
			return gperrors.Wrap(gperrors.ErrCodeInvalidInput, err, "--clear")
		}
		sessOpts.Policy = p
	}
	if opts.size != 0 {
		if err := gperrors.ValidateSize(opts.size, sessOpts.MinSize, sessOpts.MaxSize); err != nil {
			return err
		}
		sessOpts.DefaultSize = opts.size
	}

	ctrl := session.New(sessOpts)
	if mapFile != "" {
		g, err := scenario.Load(mapFile)
		if err != nil {
			return err
		}
		if err := ctrl.Load(g); err != nil {
			return gperrors.Wrap(gperrors.ErrCodeInvalidSize, err, "map %s", mapFile)
		}
	}

	logger.Info("board opened", "size", ctrl.Size(), "policy", ctrl.Policy())

	p := tea.NewProgram(NewGridModel(ctx, ctrl, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}

	if rep := ctrl.LastReport(); rep != nil {
		printReport(c.out, rep, ctrl.Runs())
	} else {
		printInfo(c.out, "No search was run")
	}
	return nil
}
