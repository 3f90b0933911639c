package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/oauth2"

	"life-balance-planner/pkg/backend"
)

const usage = `usage: plannerctl [global flags] <command> [flags]

commands:
  tasks      list tasks (--all to include completed)
  add        add a task (--title, --category, --priority, --due)
  toggle     toggle completion of a task by id
  rm         delete a task by id
  balance    show the balance snapshot
  schedule   generate a schedule (--date YYYY-MM-DD)
  recommend  show today's recommendation (--refresh to generate one)
  messages   show recent advisory messages (--limit N)

global flags are read from the environment:
  PLANNER_URL, PLANNER_TOKEN, PLANNER_REFRESH_TOKEN
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	client, err := backend.New(backend.Config{
		BaseURL: os.Getenv("PLANNER_URL"),
		Token: &oauth2.Token{
			AccessToken:  os.Getenv("PLANNER_TOKEN"),
			RefreshToken: os.Getenv("PLANNER_REFRESH_TOKEN"),
		},
		OnRefresh: func(*oauth2.Token) {
			fmt.Fprintln(os.Stderr, "plannerctl: access token refreshed; update PLANNER_TOKEN and PLANNER_REFRESH_TOKEN")
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "plannerctl:", err)
		os.Exit(1)
	}

	if err := run(ctx, client, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "plannerctl:", err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		os.Exit(1)
	}
}
