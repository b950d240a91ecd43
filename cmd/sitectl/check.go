package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rutabikini/site/config"
	"github.com/rutabikini/site/content"
	"github.com/rutabikini/site/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate page content and configuration",
	Long: `Validate the static page content and the environment configuration.

The check covers:
- every FAQ entry has a question and an answer
- every icon named by the content exists
- every pricing plan has features and a call to action
- every call to action style is a known button variant
- PORT, SITE_LANGUAGE and checkout/support values are well formed`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.OutOrStdout(), content.Landing)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkContent returns every problem found in p.
func checkContent(p content.Page) []error {
	var problems []error

	if l, err := p.FAQList(); err != nil {
		problems = append(problems, err)
	} else if l.Len() == 0 {
		problems = append(problems, errors.New("faq: no entries"))
	}

	for _, c := range p.Offer.Cards {
		if !ui.HasIcon(c.Icon) {
			problems = append(problems, fmt.Errorf("offer %q: unknown icon %q", c.Title, c.Icon))
		}
	}
	for _, b := range p.Benefits.Items {
		if !ui.HasIcon(b.Icon) {
			problems = append(problems, fmt.Errorf("benefit %q: unknown icon %q", b.Title, b.Icon))
		}
	}

	problems = appendStyleProblem(problems, "hero", p.Hero.CTAStyle)
	problems = appendStyleProblem(problems, "urgency", p.Urgency.CTAStyle)

	for _, plan := range p.Pricing.Plans {
		problems = appendStyleProblem(problems, "plan "+string(plan.ID), plan.CTAStyle)
		if len(plan.Features) == 0 {
			problems = append(problems, fmt.Errorf("plan %s: no features", plan.ID))
		}
		if plan.CTA == "" {
			problems = append(problems, fmt.Errorf("plan %s: no call to action", plan.ID))
		}
	}

	return problems
}

// appendStyleProblem records a call to action style that no button variant
// can render. An empty style renders as primary.
func appendStyleProblem(problems []error, block, style string) []error {
	if style == "" {
		return problems
	}
	if _, err := ui.ParseButtonVariant(style); err != nil {
		return append(problems, fmt.Errorf("%s: %w", block, err))
	}
	return problems
}

func runCheck(w io.Writer, p content.Page) error {
	problems := checkContent(p)
	if _, err := config.FromEnv(); err != nil {
		problems = append(problems, err)
	}

	for _, problem := range problems {
		fmt.Fprintf(w, "❌ %v\n", problem)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d problem(s) found", len(problems))
	}

	fmt.Fprintf(w, "✅ Content OK: %d FAQ entries, %d plans\n", len(p.FAQ), len(p.Pricing.Plans))
	return nil
}
