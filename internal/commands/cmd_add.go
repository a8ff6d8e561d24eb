package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/fieldsend/tend/internal/core/dates"
	"github.com/fieldsend/tend/internal/core/styles"
	"github.com/fieldsend/tend/internal/core/task"
	"github.com/fieldsend/tend/internal/core/validate"
)

type AddCmd struct {
	flags *Flags

	// Command-specific flags
	title       string
	description string
	category    string
	status      string
	due         string
	steps       []string
}

// NewAddCmd creates a new add command
func NewAddCmd(flags *Flags) *AddCmd {
	return &AddCmd{flags: flags}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a new task",
		UsageText: "tend add [options]",
		Description: `Creates a task without opening the board.

When --title is omitted, an interactive form prompts for the task fields.
Next steps can be attached with repeated --step flags; steps prefixed with
"YYYY-MM-DD:" get that due date.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "task title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "longer free-form description",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "category",
				Aliases:     []string{"c"},
				Usage:       "one of Dealership, Family, Business, Spiritual, Personal",
				Value:       string(task.CategoryPersonal),
				Destination: &cmd.category,
			},
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "one of Active, Pending, Completed",
				Value:       string(task.StatusActive),
				Destination: &cmd.status,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "due date as YYYY-MM-DD",
				Destination: &cmd.due,
			},
			&cli.StringSliceFlag{
				Name:        "step",
				Usage:       "next step text, repeatable",
				Destination: &cmd.steps,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	// Show interactive form if title not provided via flag
	if cmd.title == "" {
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	t, err := cmd.buildTask()
	if err != nil {
		return err
	}

	if err := cmd.flags.Store.Upsert(t); err != nil {
		return fmt.Errorf("save task: %w", err)
	}

	log.Info().Str("task_id", t.ID).Str("title", t.Title).Msg("task added")
	fmt.Fprintf(c.Root().Writer, "Added %q (%s)\n", t.Title, t.ID)
	return nil
}

func (cmd *AddCmd) buildTask() (task.Task, error) {
	t := task.New()
	t.Title = cmd.title
	t.Description = cmd.description
	t.Category = task.Category(cmd.category)
	t.Status = task.Status(cmd.status)

	if cmd.due != "" {
		d, err := dates.Parse(cmd.due)
		if err != nil {
			return task.Task{}, fmt.Errorf("parse due date: %w", err)
		}
		t.DueDate = &d
	}

	for _, raw := range cmd.steps {
		text, due := splitStepFlag(raw)
		t.NextSteps = append(t.NextSteps, task.NewNextStep(text, due))
	}

	if err := validate.Task(t); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// splitStepFlag peels an optional leading "YYYY-MM-DD:" date off a --step
// value.
func splitStepFlag(raw string) (string, *dates.Date) {
	const datedPrefix = len("2006-01-02:")
	if len(raw) >= datedPrefix && raw[datedPrefix-1] == ':' {
		if d, err := dates.Parse(raw[:datedPrefix-1]); err == nil {
			return raw[datedPrefix:], &d
		}
	}
	return raw, nil
}

func (cmd *AddCmd) runForm() error {
	categories := make([]huh.Option[string], 0, len(task.Categories))
	for _, c := range task.Categories {
		categories = append(categories, huh.NewOption(string(c), string(c)))
	}
	statuses := make([]huh.Option[string], 0, len(task.Statuses))
	for _, s := range task.Statuses {
		statuses = append(statuses, huh.NewOption(string(s), string(s)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description("What needs tending").
				Validate(validate.TaskTitle).
				Value(&cmd.title),
			huh.NewText().
				Title("Description").
				Description("Optional details").
				Value(&cmd.description),
			huh.NewSelect[string]().
				Title("Category").
				Options(categories...).
				Value(&cmd.category),
			huh.NewSelect[string]().
				Title("Status").
				Options(statuses...).
				Value(&cmd.status),
			huh.NewInput().
				Title("Due date").
				Description("YYYY-MM-DD, blank for none").
				Validate(validateOptionalDate).
				Value(&cmd.due),
		),
	).WithTheme(styles.FormTheme()).Run()
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	_, err := dates.Parse(s)
	return err
}
