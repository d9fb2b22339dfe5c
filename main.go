package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mordilloSan/go-console-logger/logger"
	"github.com/urfave/cli/v3"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// Example demonstrating go-console-logger usage.
//
// Try:
//
//	go run . --level debug
//	LOG=error go run .
//	DEBUG=1 go run . 2>&1 | cat   # piped output stays plain unless --color
func main() {
	app := &cli.Command{
		Name:  "go-console-logger",
		Usage: "Demo of the leveled console logger",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "level",
				Usage: "Threshold override (debug, info, warning, error); empty uses LOG/DEBUG",
				Value: "",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "Force ANSI colors even when stderr is not a terminal",
				Value: false,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger.Init(logger.Config{
				Level:      cmd.String("level"),
				ForceColor: cmd.Bool("color"),
			})

			fmt.Println(titleStyle.Render("go-console-logger demo"))
			fmt.Println(hintStyle.Render("threshold: " + logger.Threshold().String()))

			net := logger.NewModule("net")
			store := logger.NewModule("store")

			// Formatted logging (one entry point per severity)
			net.Debugf("resolving %s", "example.com")
			net.Infof("connected to %s in %v", "host1", 12*time.Millisecond)
			net.Warnf("retrying after %d failures", 2)
			net.Errorf("dial failed: %v", "connection refused")

			logger.EmptyLine()

			// Structured logging with key-value pairs
			store.InfoKV("request completed",
				"duration_ms", 42,
				"status", 200,
				"path", "/api/users")

			store.ErrorKV("write failed",
				"key", "user:123",
				"retry_count", 3)

			return nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
