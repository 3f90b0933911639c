package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"life-balance-planner/pkg/backend"
)

var errUsage = errors.New("invalid command")

type command func(ctx context.Context, c backend.IBackend, args []string, out io.Writer) error

var commands = map[string]command{
	"tasks":     listTasks,
	"add":       addTask,
	"toggle":    toggleTask,
	"rm":        deleteTask,
	"balance":   showBalance,
	"schedule":  generateSchedule,
	"recommend": recommend,
	"messages":  listMessages,
}

func run(ctx context.Context, c backend.IBackend, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return errUsage
	}
	return cmd(ctx, c, args[1:], out)
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func listTasks(ctx context.Context, c backend.IBackend, args []string, out io.Writer) error {
	fs := newFlagSet("tasks")
	all := fs.Bool("all", false, "include completed tasks")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var completed *bool
	if !*all {
		open := false
		completed = &open
	}
	list, err := c.ListTasks(ctx, completed)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRIORITY\tDUE\tDONE")
	for _, t := range list.Tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%v\n", t.ID, t.Title, t.Category, t.Priority, t.DueDate, t.Completed)
	}
	return w.Flush()
}

func addTask(ctx context.Context, c backend.IBackend, args []string, out io.Writer) error {
	fs := newFlagSet("add")
	req := backend.AddTaskRequest{}
	fs.StringVar(&req.Title, "title", "", "task title")
	fs.StringVar(&req.Category, "category", "academics", "academics, work, wellness or social")
	fs.StringVar(&req.Priority, "priority", "", "high, medium or low")
	fs.StringVar(&req.DueDate, "due", "", "due date")
	fs.StringVar(&req.Duration, "duration", "", "expected duration")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if req.Title == "" {
		req.Title = strings.Join(fs.Args(), " ")
	}

	t, err := c.AddTask(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "added %s: %s\n", t.ID, t.Title)
	return nil
}

func toggleTask(ctx context.Context, c backend.IBackend, args []string, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	t, err := c.ToggleTask(ctx, args[0])
	if err != nil {
		return err
	}
	state := "open"
	if t.Completed {
		state = "completed"
	}
	fmt.Fprintf(out, "%s is now %s\n", t.Title, state)
	return nil
}

func deleteTask(ctx context.Context, c backend.IBackend, args []string, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := c.DeleteTask(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(out, "deleted %s\n", args[0])
	return nil
}

func showBalance(ctx context.Context, c backend.IBackend, args []string, out io.Writer) error {
	b, err := c.Balance(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "status:  %s\n", b.Status)
	fmt.Fprintf(out, "energy:  %d  stress: %d  burnout risk: %s\n", b.Metrics.Energy, b.Metrics.Stress, b.Metrics.BurnoutRisk)
	fmt.Fprintf(out, "tasks:   %d academics, %d work, %d wellness, %d social\n",
		b.Counts.Academics, b.Counts.Work, b.Counts.Wellness, b.Counts.Social)
	return nil
}

func generateSchedule(ctx context.Context, c backend.IBackend, args []string, out io.Writer) error {
	fs := newFlagSet("schedule")
	date := fs.String("date", "", "day to plan (YYYY-MM-DD), default today")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := c.GenerateSchedule(ctx, *date)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "schedule for %s\n", s.Date)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, e := range s.Events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Time, e.Duration, e.Category, e.Title)
	}
	return w.Flush()
}

func recommend(ctx context.Context, c backend.IBackend, args []string, out io.Writer) error {
	fs := newFlagSet("recommend")
	refresh := fs.Bool("refresh", false, "generate a new recommendation first")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		r   backend.Recommendation
		err error
	)
	if *refresh {
		r, err = c.RefreshRecommendation(ctx)
	} else {
		r, err = c.TodayRecommendation(ctx)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "[%s, %.0f%% confident, %s] %s\n", r.Priority, r.Confidence*100, r.EstimatedDuration, r.Recommendation)
	for i, step := range r.ActionableSteps {
		fmt.Fprintf(out, "  %d. %s\n", i+1, step)
	}
	return nil
}

func listMessages(ctx context.Context, c backend.IBackend, args []string, out io.Writer) error {
	fs := newFlagSet("messages")
	limit := fs.Int("limit", 10, "number of messages")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := c.Messages(ctx, *limit)
	if err != nil {
		return err
	}
	for _, m := range list.Messages {
		fmt.Fprintf(out, "%s  %s\n", m.CreatedAt.Format("15:04:05"), m.Text)
	}
	return nil
}
