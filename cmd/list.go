package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmate/internal/quiz"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

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

		quizzes, err := client.ListQuizzes(cmdContext(cmd))
		if err != nil {
			logger.Error("list quizzes", "err", err)
			return fmt.Errorf("list quizzes: %w", err)
		}
		if asJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(quizzes)
		}
		printQuizzes(cmd.OutOrStdout(), quizzes)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <quiz-id>",
	Short: "Print a quiz's questions and options",
	Args:  cobra.ExactArgs(1),
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

		d, err := client.GetQuiz(cmdContext(cmd), quiz.StringID(args[0]))
		if err != nil {
			logger.Error("get quiz", "quiz_id", args[0], "err", err)
			return fmt.Errorf("get quiz %s: %w", args[0], err)
		}
		printDetail(cmd.OutOrStdout(), d)
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("json", false, "Print the list as JSON")
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printQuizzes(w io.Writer, quizzes []quiz.Quiz) {
	if len(quizzes) == 0 {
		fmt.Fprintln(w, "No quizzes available.")
		return
	}

	idWidth := len("ID")
	for _, q := range quizzes {
		idWidth = max(idWidth, len(q.ID.String()))
	}

	fmt.Fprintf(w, "%-*s  %s\n", idWidth, "ID", "Title")
	fmt.Fprintln(w, strings.Repeat("─", idWidth+2+40))
	for _, q := range quizzes {
		fmt.Fprintf(w, "%-*s  %s\n", idWidth, q.ID.String(), q.Title)
	}
}

func printDetail(w io.Writer, d *quiz.Detail) {
	fmt.Fprintf(w, "%s  (id %s)\n", d.Quiz.Title, d.Quiz.ID.String())
	fmt.Fprintln(w, strings.Repeat("─", 60))
	for i, q := range d.Questions {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, q.Text)
		for j, opt := range q.Options {
			fmt.Fprintf(w, "   %d) %s\n", j+1, opt)
		}
	}
}
