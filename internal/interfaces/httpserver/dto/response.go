package dto

import "mamta-server/internal/domain/files"

// ChatResponse is the POST / reply.
type ChatResponse struct {
	Bot            string `json:"bot"`
	ConversationID string `json:"conversationId"`
}

// UploadResponse is the POST /upload-file reply.
type UploadResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	FileURI  string `json:"fileUri"`
	MimeType string `json:"mimeType"`
}

// ListFilesResponse is the GET /list-files reply.
type ListFilesResponse struct {
	Success bool         `json:"success"`
	Files   []files.Info `json:"files"`
}

// GreetingResponse is the GET / reply kept for the original front end.
type GreetingResponse struct {
	Message string `json:"message"`
}
