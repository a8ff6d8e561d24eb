package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/fieldsend/tend/internal/core/task"
	"github.com/fieldsend/tend/internal/core/validate"
	"github.com/fieldsend/tend/pkg/iojson"
	"github.com/fieldsend/tend/pkg/randid"
)

type ImportCmd struct {
	flags *Flags

	reader iojson.FileReader[[]task.Task]
	merge  bool
}

// NewImportCmd creates a new import command
func NewImportCmd(flags *Flags) *ImportCmd {
	return &ImportCmd{flags: flags}
}

// Register adds the import command to the application
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Import tasks from a JSON file",
		UsageText: "tend import -f tasks.json",
		Description: `Reads a JSON array of tasks and replaces the current board with it.

The input format matches what 'tend export' produces. Malformed JSON is an
error and leaves the board untouched. Tasks with unrecognized categories or
statuses are imported as-is with a warning.

Use --merge to upsert the imported tasks into the existing board instead of
replacing it.`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
			&cli.BoolFlag{
				Name:        "merge",
				Usage:       "merge into the existing tasks instead of replacing them",
				Destination: &cmd.merge,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	tasks, err := cmd.reader.Read()
	if err != nil {
		return fmt.Errorf("read import: %w", err)
	}

	for i := range tasks {
		normalizeImported(&tasks[i])
	}

	if cmd.merge {
		for _, t := range tasks {
			if err := cmd.flags.Store.Upsert(t); err != nil {
				return fmt.Errorf("import task %q: %w", t.ID, err)
			}
		}
	} else {
		if err := cmd.flags.Store.Replace(tasks); err != nil {
			return fmt.Errorf("import tasks: %w", err)
		}
	}

	log.Info().Int("count", len(tasks)).Bool("merge", cmd.merge).Msg("tasks imported")
	fmt.Fprintf(c.Root().Writer, "Imported %d tasks\n", len(tasks))
	return nil
}

// normalizeImported fills in the fields an external file may omit and
// warns about values outside the known sets without rejecting them.
func normalizeImported(t *task.Task) {
	if t.ID == "" {
		t.ID = randid.Generate(8)
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = nowFn()
	}
	if t.NextSteps == nil {
		t.NextSteps = []task.NextStep{}
	}
	for i := range t.NextSteps {
		if t.NextSteps[i].ID == "" {
			t.NextSteps[i].ID = randid.Generate(8)
		}
	}

	if err := validate.Category(t.Category); err != nil {
		log.Warn().Str("task_id", t.ID).Str("category", string(t.Category)).Msg("importing task with unknown category")
	}
	if err := validate.Status(t.Status); err != nil {
		log.Warn().Str("task_id", t.ID).Str("status", string(t.Status)).Msg("importing task with unknown status")
	}
}
