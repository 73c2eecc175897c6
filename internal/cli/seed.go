package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

const seedContent = "no content"

func seedCmd(g *globals) *cobra.Command {
	var (
		count  int
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert numbered anonymous sample questions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}

			ctx := cmd.Context()
			a, err := openApp(ctx, g.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			for i := 1; i <= count; i++ {
				subject := fmt.Sprintf("%s:[%03d]", prefix, i)
				if _, err := a.questions.Create(ctx, subject, seedContent, nil); err != nil {
					return fmt.Errorf("seed question %d: %w", i, err)
				}
			}
			slog.Info("seeded questions", "count", count, "prefix", prefix)
			fmt.Fprintf(cmd.OutOrStdout(), "created %d questions\n", count)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 300, "number of questions to create")
	cmd.Flags().StringVar(&prefix, "prefix", "test-data", "subject prefix")
	return cmd
}
