package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/msomdec/board/internal/domain"
)

func questionCmd(g *globals) *cobra.Command {
	c := &cobra.Command{
		Use:   "question",
		Short: "Browse questions",
	}

	c.AddCommand(questionListCmd(g), questionGetCmd(g))
	return c
}

func questionListCmd(g *globals) *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List questions in creation order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, g.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.questions.List(ctx, domain.Page{Limit: limit, Offset: offset})
			if err != nil {
				return err
			}

			if len(res.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no questions found)")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSUBJECT\tAUTHOR\tCREATED")
			for _, q := range res.Items {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", q.ID, q.Subject, authorLabel(q.AuthorID), q.CreatedAt.Format(time.RFC3339))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d\n", len(res.Items), res.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultPageLimit, "maximum questions to show")
	cmd.Flags().IntVar(&offset, "offset", 0, "questions to skip")
	return cmd
}

func questionGetCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a question and its answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid question id %q", args[0])
			}

			ctx := cmd.Context()
			a, err := openApp(ctx, g.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			q, err := a.questions.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("question %d: %w", id, err)
			}
			answers, err := a.answers.ListByQuestion(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "#%d %s\n", q.ID, q.Subject)
			fmt.Fprintf(out, "by %s at %s\n\n", authorLabel(q.AuthorID), q.CreatedAt.Format(time.RFC3339))
			fmt.Fprintln(out, q.Content)
			fmt.Fprintf(out, "\n%d answer(s)\n", len(answers))
			for _, ans := range answers {
				fmt.Fprintf(out, "- [%d] %s (%s)\n", ans.ID, ans.Content, authorLabel(ans.AuthorID))
			}
			return nil
		},
	}
}

func authorLabel(id *int64) string {
	if id == nil {
		return "anonymous"
	}
	return "user " + strconv.FormatInt(*id, 10)
}
