package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/quizmate/internal/host"
	"github.com/abhisek/quizmate/internal/quiz"
)

const doctorTimeout = 10 * time.Second

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check connectivity to the quiz API and the host channel",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		logger, closeLog, err := openLog(cmd, cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		client, err := newAPIClient(cfg)
		if err != nil {
			return err
		}
		ch := host.Detect(cfg.Host, logger)
		defer ch.Close()

		ctx, cancel := context.WithTimeout(cmdContext(cmd), doctorTimeout)
		defer cancel()

		fmt.Fprintf(cmd.OutOrStdout(), "api:  %s\nhost: %s\n\n", client.BaseURL(), ch.Name())
		return runDoctor(ctx, cmd.OutOrStdout(), client, ch, logger)
	},
}

type quizLister interface {
	ListQuizzes(ctx context.Context) ([]quiz.Quiz, error)
}

// probeResult is the outcome of one doctor check.
type probeResult struct {
	name   string
	detail string
	err    error
}

// runDoctor probes the API and the host channel concurrently and prints one
// line per probe. It fails if any probe failed.
func runDoctor(ctx context.Context, w io.Writer, src quizLister, ch host.Channel, logger *slog.Logger) error {
	results := make([]probeResult, 2)

	var g errgroup.Group
	g.Go(func() error {
		start := time.Now()
		quizzes, err := src.ListQuizzes(ctx)
		results[0] = probeResult{
			name:   "quiz api",
			detail: fmt.Sprintf("%d quizzes in %s", len(quizzes), time.Since(start).Round(time.Millisecond)),
			err:    err,
		}
		return err
	})
	g.Go(func() error {
		err := host.Start(ctx, ch, logger)
		results[1] = probeResult{
			name:   "host " + ch.Name(),
			detail: "ready",
			err:    err,
		}
		return err
	})
	err := g.Wait()

	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(w, "✗ %-16s %v\n", r.name, r.err)
			continue
		}
		fmt.Fprintf(w, "✓ %-16s %s\n", r.name, r.detail)
	}
	if err != nil {
		return fmt.Errorf("doctor found problems: %w", err)
	}
	return nil
}
