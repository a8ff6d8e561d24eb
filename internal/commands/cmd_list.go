package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/fieldsend/tend/internal/core/board"
	"github.com/fieldsend/tend/internal/core/task"
	"github.com/fieldsend/tend/pkg/iojson"
)

type ListCmd struct {
	flags *Flags

	// flags
	categories []string
	status     string
	query      string
	sort       string
}

// NewListCmd creates a new list command
func NewListCmd(flags *Flags) *ListCmd {
	return &ListCmd{flags: flags}
}

// Register adds the list command to the application
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Usage:     "Print tasks as JSON",
		UsageText: "tend list [--category name]... [--status name] [--query text]",
		Description: `Prints the task list as a JSON array for scripting.

The same filters the board offers are available as flags; with no flags,
every task is printed. Output order follows --sort (dueDate, createdAt, or
category).`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "category",
				Aliases:     []string{"c"},
				Usage:       "keep only these categories, repeatable",
				Destination: &cmd.categories,
			},
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "keep only this status",
				Destination: &cmd.status,
			},
			&cli.StringFlag{
				Name:        "query",
				Aliases:     []string{"q"},
				Usage:       "substring search over titles, descriptions, and steps",
				Destination: &cmd.query,
			},
			&cli.StringFlag{
				Name:        "sort",
				Usage:       "sort key (dueDate, createdAt, category)",
				Value:       string(board.SortDueDate),
				Destination: &cmd.sort,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	vs, err := cmd.viewState()
	if err != nil {
		return err
	}

	tasks := board.SortTasks(board.Filter(cmd.flags.Store.List(), vs), vs.Sort)
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks matched")
	}

	return iojson.WriteWith(c.Root().Writer, os.Stderr, tasks)
}

func (cmd *ListCmd) viewState() (board.State, error) {
	vs := board.DefaultState(nowFn())

	if len(cmd.categories) > 0 {
		for cat := range vs.Categories {
			vs.Categories[cat] = false
		}
		for _, name := range cmd.categories {
			cat := task.Category(name)
			if !cat.Valid() {
				return board.State{}, fmt.Errorf("unknown category %q", name)
			}
			vs.Categories[cat] = true
		}
	}

	if cmd.status != "" {
		st := task.Status(cmd.status)
		if !st.Valid() {
			return board.State{}, fmt.Errorf("unknown status %q", cmd.status)
		}
		vs = vs.WithStatus(st)
	}

	vs = vs.WithQuery(cmd.query)

	key := board.SortKey(cmd.sort)
	found := false
	for _, k := range board.SortKeys {
		if k == key {
			found = true
			break
		}
	}
	if !found {
		return board.State{}, fmt.Errorf("unknown sort key %q", cmd.sort)
	}
	return vs.WithSort(key), nil
}
