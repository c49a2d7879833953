package render

import (
	"encoding/json"
	"fmt"
)

// jsonDocument mirrors the Markdown payload and carries the rendered text so
// downstream tooling gets both in one artifact.
type jsonDocument struct {
	Document
	Markdown string `json:"markdown"`
}

// JSON renders the document as an indented JSON mirror of the Markdown
// output, including the Markdown text itself.
func JSON(doc Document) (string, error) {
	data, err := json.MarshalIndent(jsonDocument{Document: doc, Markdown: Markdown(doc)}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal show notes: %w", err)
	}
	return string(data) + "\n", nil
}
