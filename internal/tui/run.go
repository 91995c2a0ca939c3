package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gw2inventory/internal/browse"
	"gw2inventory/internal/failures"
	"gw2inventory/internal/logging"
)

// ErrCancelled is returned when the user leaves the picker without
// confirming a selection.
var ErrCancelled = errors.New("selection cancelled")

// Options configures the terminal programs.
type Options struct {
	Input        io.Reader
	Output       io.Writer
	TickInterval time.Duration
	Logger       *slog.Logger
	// AltScreen runs the program on the alternate screen buffer.
	AltScreen bool
}

func (o Options) programOptions(ctx context.Context) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if o.Input != nil {
		opts = append(opts, tea.WithInput(o.Input))
	}
	if o.Output != nil {
		opts = append(opts, tea.WithOutput(o.Output))
	}
	if o.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return opts
}

// PickCharacters asks the user which characters to include. An empty
// selection is returned as-is; cancelling yields ErrCancelled.
func PickCharacters(ctx context.Context, names []string, selectAll bool, opts Options) ([]string, error) {
	logger := logging.NewComponentLogger(opts.Logger, "tui")
	program := tea.NewProgram(NewPicker(names, selectAll), opts.programOptions(ctx)...)
	final, err := program.Run()
	if err != nil {
		return nil, runError(ctx, "pick characters", err)
	}
	picker, ok := final.(Picker)
	if !ok || picker.Cancelled() {
		logger.Info("character selection cancelled")
		return nil, ErrCancelled
	}
	selected := picker.Selected()
	logger.Info("characters selected",
		logging.Int("selected", len(selected)),
		logging.Int("available", len(names)))
	return selected, nil
}

// Browse runs the item browser until the user exits.
func Browse(ctx context.Context, state browse.State, opts Options) error {
	logger := logging.NewComponentLogger(opts.Logger, "tui")
	started := time.Now()
	program := tea.NewProgram(NewBrowser(state, opts.TickInterval), opts.programOptions(ctx)...)
	final, err := program.Run()
	if err != nil {
		return runError(ctx, "browse", err)
	}
	if browser, ok := final.(Browser); ok {
		logger.Info("browser closed",
			logging.String("last_query", browser.State().Query()),
			logging.Duration("session_duration", time.Since(started)))
	}
	return nil
}

func runError(ctx context.Context, operation string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
		return ctxErr
	}
	return failures.Wrap(failures.ErrIO, "tui", operation, "terminal program failed", err)
}
