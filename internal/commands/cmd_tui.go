package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/fieldsend/tend/internal/tui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	err := tui.Run(tui.Options{
		Store:   cmd.flags.Store,
		Config:  cmd.flags.Config,
		Warning: cmd.flags.StoreWarning,
	})
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
