package chat

import "mamta-server/internal/domain/genai"

// FormatHistory converts prior turns into the upstream content list. Each
// turn becomes one content whose first part is always the turn's text (empty
// string included), followed by a fileData part when the turn carries an
// attachment reference. The turn currently being answered must not be part of
// the input; it travels separately as the new message.
func FormatHistory(turns []Turn) []genai.Content {
	contents := make([]genai.Content, 0, len(turns))
	for _, turn := range turns {
		contents = append(contents, ContentFromTurn(turn))
	}
	return contents
}

// ContentFromTurn maps a single turn to the upstream content shape.
func ContentFromTurn(turn Turn) genai.Content {
	parts := []genai.Part{genai.TextPart(turn.Text)}
	if turn.HasFile() {
		parts = append(parts, genai.FilePart(turn.FileURI, turn.FileMimeType))
	}
	return genai.Content{Role: string(turn.Role), Parts: parts}
}
