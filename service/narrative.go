package service

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"

	"github.com/nestandloomco/intentra/domain"
)

var narrativeTemplates = map[domain.InterestLevel]string{
	domain.InterestHigh: reflow(`
		Vehicles like your %d %s are seeing strong activity in the current market.
		This means there's generally healthy interest from buyers looking at similar vehicles.

		Factors like the model year, condition, and mileage range you selected are typically
		associated with higher market engagement.
	`),
	domain.InterestModerate: reflow(`
		Your %d %s falls into a category that sees consistent market activity.
		Vehicles with similar characteristics typically attract a steady level of interest.

		The combination of factors you've described puts your vehicle in a comfortable
		middle range for market engagement.
	`),
	domain.InterestSteady: reflow(`
		The market shows steady, ongoing interest in vehicles like your %d %s.
		While activity levels may be more measured, there's still consistent engagement
		with vehicles in this category.

		Many factors can influence individual interest, and this general view reflects
		broad market patterns.
	`),
}

// Narrative renders the description for a level, with year and make
// inserted as given.
func Narrative(level domain.InterestLevel, year int, vehicleMake string) string {
	tpl, ok := narrativeTemplates[level]
	if !ok {
		tpl = narrativeTemplates[domain.InterestSteady]
	}
	return fmt.Sprintf(tpl, year, vehicleMake)
}

// reflow dedents a template and joins its wrapped lines, leaving paragraphs
// separated by a single blank line.
func reflow(text string) string {
	paragraphs := Paragraphs(dedent.Dedent(text))
	for i, p := range paragraphs {
		paragraphs[i] = strings.Join(strings.Fields(p), " ")
	}
	return strings.Join(paragraphs, "\n\n")
}

// Paragraphs splits a narrative on blank lines, dropping empty ones.
func Paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(strings.TrimSpace(text), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
