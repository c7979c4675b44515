package chat

import "strings"

// Role identifies the author of a turn. The values match the labels the
// Gemini API expects, so no translation happens at the storage boundary.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one message in a conversation. Turns are immutable once appended;
// histories only ever grow. The JSON field names are the on-disk format and
// stay compatible with records that carry only role and text.
type Turn struct {
	Role         Role   `json:"role"`
	Text         string `json:"text"`
	FileURI      string `json:"fileUri,omitempty"`
	FileMimeType string `json:"fileMimeType,omitempty"`
}

// HasFile reports whether the turn carries an attachment reference.
func (t Turn) HasFile() bool {
	return strings.TrimSpace(t.FileURI) != "" && strings.TrimSpace(t.FileMimeType) != ""
}

// NewUserTurn builds the caller's turn. The file reference is kept only when
// both the URI and the MIME type were supplied.
func NewUserTurn(text, fileURI, fileMimeType string) Turn {
	turn := Turn{Role: RoleUser, Text: text}
	if strings.TrimSpace(fileURI) != "" && strings.TrimSpace(fileMimeType) != "" {
		turn.FileURI = fileURI
		turn.FileMimeType = fileMimeType
	}
	return turn
}

// NewModelTurn builds the model's reply turn.
func NewModelTurn(text string) Turn {
	return Turn{Role: RoleModel, Text: text}
}
