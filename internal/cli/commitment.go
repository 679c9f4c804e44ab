package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"

	"weekwise/internal/models"
	"weekwise/internal/timeutil"
)

type CommitmentAddCmd struct {
	Name  string `arg:"" help:"Commitment name."`
	Day   string `arg:"" help:"Weekday (e.g. sunday, tue, 4)."`
	Start string `arg:"" help:"Start time (HH:MM)."`
	End   string `arg:"" help:"End time (HH:MM)."`
}

func (c *CommitmentAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := parseWeekday(c.Day)
	if err != nil {
		return err
	}
	start, err := timeutil.ParseClock(c.Start)
	if err != nil {
		return err
	}
	end, err := timeutil.ParseClock(c.End)
	if err != nil {
		return err
	}
	if end <= start {
		return fmt.Errorf("commitment ends at or before it starts (%s-%s)", c.Start, c.End)
	}

	commitment := models.Commitment{
		ID:    uuid.New().String(),
		Name:  c.Name,
		Day:   day,
		Start: c.Start,
		End:   c.End,
	}
	if err := ctx.Store.AddCommitment(commitment); err != nil {
		return err
	}

	fmt.Printf("Added commitment: %s on %s %s-%s (ID: %s)\n", c.Name, day, c.Start, c.End, commitment.ID)
	return nil
}

type CommitmentListCmd struct{}

func (c *CommitmentListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	commitments, err := ctx.Store.GetAllCommitments()
	if err != nil {
		return err
	}
	if len(commitments) == 0 {
		fmt.Println("No commitments found")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"ID", "Name", "Day", "Time"})
	for _, cm := range commitments {
		tw.AppendRow(table.Row{
			shortID(cm.ID),
			cm.Name,
			cm.Day.String()[:3],
			fmt.Sprintf("%s-%s", cm.Start, cm.End),
		})
	}
	tw.Render()
	return nil
}

type CommitmentDeleteCmd struct {
	ID string `arg:"" help:"ID of the commitment to delete."`
}

func (c *CommitmentDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.DeleteCommitment(c.ID); err != nil {
		return err
	}
	fmt.Println("Deleted commitment")
	return nil
}
