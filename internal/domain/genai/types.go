package genai

import "context"

// Provider defines the contract for the Gemini generativelanguage API.
type Provider interface {
	GenerateContent(ctx context.Context, req GenerateContentRequest) (*GenerateContentResponse, error)
	UploadFile(ctx context.Context, req UploadFileRequest) (*FileMetadata, error)
	ListFiles(ctx context.Context) ([]FileMetadata, error)
}

// GenerateContentRequest mirrors the models/<model>:generateContent body.
type GenerateContentRequest struct {
	Model             string            `json:"-"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	Contents          []Content         `json:"contents"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content is one conversation entry in the upstream request shape.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is a single content part. Text uses a pointer so an empty text part
// still serializes as {"text": ""} instead of being dropped.
type Part struct {
	Text     *string   `json:"text,omitempty"`
	FileData *FileData `json:"fileData,omitempty"`
}

// TextPart wraps a string into a text part.
func TextPart(text string) Part {
	return Part{Text: &text}
}

// FilePart wraps an uploaded file reference into a fileData part.
func FilePart(uri, mimeType string) Part {
	return Part{FileData: &FileData{FileURI: uri, MimeType: mimeType}}
}

// FileData references content previously uploaded to the provider's file
// store. Only the reference travels with the request, never the bytes.
type FileData struct {
	MimeType string `json:"mimeType"`
	FileURI  string `json:"fileUri"`
}

// GenerationConfig carries sampling limits.
type GenerationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens,omitempty"`
}

// GenerateContentResponse captures the completion payload.
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one generated completion.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// Text concatenates the text parts of the first candidate.
func (r *GenerateContentResponse) Text() string {
	if r == nil || len(r.Candidates) == 0 {
		return ""
	}
	var out string
	for _, part := range r.Candidates[0].Content.Parts {
		if part.Text != nil {
			out += *part.Text
		}
	}
	return out
}

// UploadFileRequest carries one attachment destined for the file store.
type UploadFileRequest struct {
	DisplayName string
	MimeType    string
	Data        []byte
}

// FileMetadata describes a stored file as reported by the provider.
type FileMetadata struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	URI         string `json:"uri"`
	MimeType    string `json:"mimeType"`
}
