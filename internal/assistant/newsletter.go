package assistant

import (
	"strings"

	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/models"
)

const (
	placeholderTitle       = "Tech Update"
	placeholderDescription = "Latest technology updates."
)

var titleMarkers = []string{"**Title:**", "**title:**", "Title:", "title:"}
var descriptionMarkers = []string{"**Description:**", "**description:**", "Description:", "description:"}

// stripMarkers removes every known marker spelling plus surrounding quote
// characters from a line.
func stripMarkers(line string, markers []string) string {
	for _, m := range markers {
		line = strings.ReplaceAll(line, m, "")
	}
	line = strings.ReplaceAll(line, `"`, "")
	line = strings.ReplaceAll(line, `'`, "")
	return strings.TrimSpace(line)
}

// ParseNewsletter extracts a {title, description} pair from unstructured
// model output by scanning for marker lines. Later marker lines overwrite
// earlier ones. A stripped title shorter than 4 characters or description
// shorter than 11 is rejected so a bare marker cannot blank a field. If
// neither field was parsed, the raw text is sniffed for topic words to pick a
// default pair; failing that the placeholders stand.
func ParseNewsletter(raw string, category string) models.Newsletter {
	title := placeholderTitle
	description := placeholderDescription

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "title:"):
			if t := stripMarkers(line, titleMarkers); len(t) > 3 {
				title = t
			}
		case strings.Contains(lower, "description:"):
			if d := stripMarkers(line, descriptionMarkers); len(d) > 10 {
				description = d
			}
		}
	}

	if title == placeholderTitle && description == placeholderDescription {
		content := strings.ToLower(raw)
		switch {
		case strings.Contains(content, "ai") || strings.Contains(content, "software"):
			title = "AI & Software Engineering News"
			description = "Latest AI and software development innovations and trends."
		case strings.Contains(content, "electronics") || strings.Contains(content, "dft") || strings.Contains(content, "hardware"):
			title = "Electronics & DFT Updates"
			description = "Hardware design and Design for Testability advancements."
		}
	}

	return models.Newsletter{Title: title, Description: description, Category: category}
}

// FallbackNewsletter returns the canned per-category newsletter used whenever
// inference fails. Unknown categories get the generic record.
func FallbackNewsletter(category string) models.Newsletter {
	switch category {
	case "AI & Software Engineering":
		return models.Newsletter{
			Title:       "AI & Software Engineering Update",
			Description: "Latest developments in AI and modern software practices.",
			Category:    category,
		}
	case "Electronics & DFT":
		return models.Newsletter{
			Title:       "Electronics & DFT Innovations",
			Description: "Hardware design trends and Design for Testability advances.",
			Category:    category,
		}
	default:
		return models.Newsletter{
			Title:       "Technology Update",
			Description: "Latest technology trends and innovations.",
			Category:    "Technology",
		}
	}
}
