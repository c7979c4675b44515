package dto

// ChatRequest is the POST / body. ConversationID is empty on the first turn
// of a new conversation; FileURI and FileMimeType reference an attachment
// previously relayed through /upload-file.
type ChatRequest struct {
	Prompt         string `json:"prompt"`
	ConversationID string `json:"conversationId"`
	FileURI        string `json:"fileUri"`
	FileMimeType   string `json:"fileMimeType"`
}
