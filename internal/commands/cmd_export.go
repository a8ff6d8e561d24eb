package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/fieldsend/tend/internal/core/dates"
	"github.com/fieldsend/tend/pkg/iojson"
)

type ExportCmd struct {
	flags *Flags

	stdout bool
}

// NewExportCmd creates a new export command
func NewExportCmd(flags *Flags) *ExportCmd {
	return &ExportCmd{flags: flags}
}

// Register adds the export command to the application
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Export all tasks as a JSON file",
		UsageText: "tend export [path]",
		Description: `Writes every task, including next steps, as a pretty-printed JSON array.

When no path is given, the file is written to the current directory as
personal-crm-tasks-<date>.json. The export includes completed tasks and is
suitable for re-importing with 'tend import'.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "stdout",
				Usage:       "write the JSON to stdout instead of a file",
				Destination: &cmd.stdout,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(ctx context.Context, c *cli.Command) error {
	tasks := cmd.flags.Store.List()

	if cmd.stdout {
		return iojson.Write(tasks)
	}

	path := c.Args().First()
	if path == "" {
		path = DefaultExportName(dates.Of(nowFn()))
	}

	if err := iojson.WriteFile(path, tasks); err != nil {
		return fmt.Errorf("export tasks: %w", err)
	}

	log.Info().Str("path", path).Int("count", len(tasks)).Msg("tasks exported")
	fmt.Fprintf(c.Root().Writer, "Exported %d tasks to %s\n", len(tasks), path)
	return nil
}

// DefaultExportName returns the file name used when export is called
// without a path.
func DefaultExportName(today dates.Date) string {
	return "personal-crm-tasks-" + today.String() + ".json"
}
