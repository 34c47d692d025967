package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"upsell/models"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSection(w io.Writer, title string) {
	fmt.Fprintln(w)
	headerColor.Fprintf(w, "▸ %s\n", title)
}

func printLabelValue(w io.Writer, label, value string) {
	labelColor.Fprintf(w, "  %s: ", label)
	fmt.Fprintln(w, value)
}

func severityColor(s models.Severity) *color.Color {
	switch s {
	case models.SeverityCritical, models.SeverityHigh:
		return errorColor
	case models.SeverityMedium:
		return warningColor
	default:
		return dimColor
	}
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func printConflicts(w io.Writer, result models.ConflictResult) {
	printSection(w, "Conflicts")
	if !result.HasConflicts {
		successColor.Fprintln(w, "  ✓ no conflicts")
		return
	}
	for _, c := range result.Conflicts {
		severityColor(c.Severity).Fprintf(w, "  [%s] ", c.Severity)
		fmt.Fprintf(w, "%s: %s\n", c.Type, c.Message)
	}
	printLabelValue(w, "auto-resolvable", fmt.Sprint(result.Summary.AutoResolvable))
}

func printDuplicates(w io.Writer, analysis models.DuplicateAnalysis) {
	printSection(w, "Duplicates")
	if !analysis.HasDuplicates && len(analysis.SimilarItems) == 0 {
		successColor.Fprintln(w, "  ✓ no duplicates")
		return
	}
	for _, g := range analysis.Groups {
		warningColor.Fprintf(w, "  %s ", g.ID)
		fmt.Fprintf(w, "(%.2f) %s\n", g.Similarity, g.Reason)
	}
	for _, s := range analysis.SimilarItems {
		dimColor.Fprintf(w, "  similar: %s ~ %s (%.2f)\n", s.First.Name(), s.Second.Name(), s.Similarity)
	}
	printLabelValue(w, "potential savings", money(analysis.PotentialSavings))
}

func printPricing(w io.Writer, result models.PricingResult) {
	printSection(w, "Pricing")
	printLabelValue(w, "base total", money(result.BaseTotal))
	for _, d := range result.Discounts {
		successColor.Fprintf(w, "  - %s ", d.Name)
		fmt.Fprintf(w, "%s\n", money(d.Savings))
	}
	for _, s := range result.Surcharges {
		warningColor.Fprintf(w, "  + %s ", s.Name)
		fmt.Fprintf(w, "%s\n", money(s.Amount))
	}
	printLabelValue(w, "final total", money(result.FinalTotal))
	printLabelValue(w, "confidence", fmt.Sprintf("%.2f", result.Confidence))
}

func printRecommendations(w io.Writer, recs []models.Recommendation) {
	printSection(w, "Recommendations")
	if len(recs) == 0 {
		dimColor.Fprintln(w, "  none")
		return
	}
	for _, r := range recs {
		fmt.Fprintf(w, "  %.2f  %s\n", r.Confidence, r.Description)
	}
}
