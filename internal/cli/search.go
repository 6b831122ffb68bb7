package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	Keyword  string
	Category string
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search events by keyword or category",
		Long: `Search events, ignoring ASCII letter case.

--keyword matches text in the description or the category.
--category matches text in the category only.

Examples:
  planner search --keyword standup
  planner search --category work --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Keyword, "keyword", "k", "", "text to find in description or category")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "text to find in category")
	cmd.MarkFlagsMutuallyExclusive("keyword", "category")
	cmd.MarkFlagsOneRequired("keyword", "category")

	return cmd
}

func runSearch(opts *SearchOptions, cmd *cobra.Command) error {
	return withApp(opts.RootOptions, cmd, func(ctx context.Context, a *app) error {
		if cmd.Flags().Changed("category") {
			events := a.sched.FindByCategory(opts.Category)
			return a.out.Render(events, func(w io.Writer) error {
				return writeSection(w, headerCategory, events, emptyCategory)
			})
		}

		events := a.sched.FindByKeyword(opts.Keyword)
		return a.out.Render(events, func(w io.Writer) error {
			return writeKeywordResults(w, events)
		})
	})
}
