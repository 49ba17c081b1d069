package ai

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are an expert interior designer with deep knowledge of styles, materials, color theory, and furniture sourcing. Answer concisely and in the exact format requested."

// DescriptionPrompt builds the concept-description prompt for a generation
// request. Budget and keywords are optional.
func DescriptionPrompt(roomType, style string, budget *float64, keywords []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed interior design concept for a %s in %s style.", roomType, style)
	if budget != nil {
		fmt.Fprintf(&b, " The total budget is $%.2f.", *budget)
	}
	if len(keywords) > 0 {
		fmt.Fprintf(&b, " Incorporate these elements: %s.", strings.Join(keywords, ", "))
	}
	b.WriteString(" Describe the layout, materials, lighting, and overall atmosphere in 2-3 paragraphs of plain text.")
	return b.String()
}

// ImagePrompt builds the rendering prompt from the request and the generated
// description.
func ImagePrompt(roomType, style, description string) string {
	prompt := fmt.Sprintf("Professional interior design photograph of a %s in %s style. %s", roomType, style, description)
	// image models reject overly long prompts
	if len(prompt) > 1000 {
		prompt = prompt[:1000]
	}
	return prompt
}

// PalettePrompt asks for a cohesive color palette matching the concept.
func PalettePrompt(roomType, style string) string {
	return fmt.Sprintf(
		"Suggest a cohesive color palette of exactly 5 colors for a %s in %s style. Respond with only a JSON array of hex color strings, for example [\"#AABBCC\"].",
		roomType, style,
	)
}

// ProductListPrompt asks for furniture and decor suggestions, budget-aware
// when a budget was given.
func ProductListPrompt(roomType, style string, budget *float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "List 5 to 8 specific furniture and decor items for a %s in %s style.", roomType, style)
	if budget != nil {
		fmt.Fprintf(&b, " Keep the combined cost under $%.2f.", *budget)
	}
	b.WriteString(" Respond with only a JSON array of item name strings.")
	return b.String()
}

// MarketingPrompt builds a platform-specific marketing draft prompt for a
// completed project.
func MarketingPrompt(contentType, platform, projectTitle, projectDescription string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s for %s promoting the interior design project %q.", contentType, platform, projectTitle)
	if projectDescription != "" {
		fmt.Fprintf(&b, " Project summary: %s.", projectDescription)
	}
	b.WriteString(" Use an engaging, professional tone suited to the platform. Respond with the content only, no preamble.")
	return b.String()
}

// InsightsPrompt asks for an analysis of a project's budget and progress.
func InsightsPrompt(title, description, status string, budget, spent *float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this interior design project and provide actionable insights.\n")
	fmt.Fprintf(&b, "Title: %s\n", title)
	if description != "" {
		fmt.Fprintf(&b, "Description: %s\n", description)
	}
	fmt.Fprintf(&b, "Status: %s\n", status)
	if budget != nil {
		fmt.Fprintf(&b, "Budget: $%.2f\n", *budget)
	}
	if spent != nil {
		fmt.Fprintf(&b, "Spent so far: $%.2f\n", *spent)
	}
	b.WriteString("Cover budget health, schedule risk, and 2-3 concrete recommendations in plain text.")
	return b.String()
}
