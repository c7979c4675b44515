package geminiprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"time"

	"github.com/go-resty/resty/v2"

	"mamta-server/internal/domain/genai"
	"mamta-server/internal/infrastructure/metrics"
)

// Client implements the genai.Provider interface against the
// generativelanguage API. Every call is a single attempt; retry policy is the
// caller's concern and deliberately absent here.
type Client struct {
	httpClient *resty.Client
	apiKey     string
}

// NewClient creates a Resty-backed client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
		apiKey: apiKey,
	}
}

// GenerateContent calls models/<model>:generateContent.
func (c *Client) GenerateContent(ctx context.Context, req genai.GenerateContentRequest) (*genai.GenerateContentResponse, error) {
	var completion genai.GenerateContentResponse

	start := time.Now()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", c.apiKey).
		SetBody(req).
		SetResult(&completion).
		Post("/v1beta/models/" + req.Model + ":generateContent")
	metrics.RecordUpstream("generate_content", upstreamStatus(resp, err), time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("gemini api error: %s", resp.String())
	}
	return &completion, nil
}

// uploadEnvelope wraps file metadata on both the request and response side of
// the upload endpoint.
type uploadEnvelope struct {
	File genai.FileMetadata `json:"file"`
}

// UploadFile sends the attachment to upload/v1beta/files using the
// multipart/related encoding the upstream expects: a JSON metadata part
// followed by the raw media part.
func (c *Client) UploadFile(ctx context.Context, req genai.UploadFileRequest) (*genai.FileMetadata, error) {
	body, contentType, err := encodeUpload(req)
	if err != nil {
		return nil, err
	}

	var envelope uploadEnvelope

	start := time.Now()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("X-Goog-Upload-Protocol", "multipart").
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&envelope).
		Post("/upload/v1beta/files")
	metrics.RecordUpstream("upload_file", upstreamStatus(resp, err), time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("gemini file upload error: %s", resp.String())
	}
	metrics.AddUploadBytes(len(req.Data))
	return &envelope.File, nil
}

// listFilesResponse mirrors the files list payload.
type listFilesResponse struct {
	Files []genai.FileMetadata `json:"files"`
}

// ListFiles returns the provider's stored files.
func (c *Client) ListFiles(ctx context.Context) ([]genai.FileMetadata, error) {
	var listing listFilesResponse

	start := time.Now()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetResult(&listing).
		Get("/v1beta/files")
	metrics.RecordUpstream("list_files", upstreamStatus(resp, err), time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("gemini list files error: %s", resp.String())
	}
	return listing.Files, nil
}

func encodeUpload(req genai.UploadFileRequest) ([]byte, string, error) {
	metadata, err := json.Marshal(uploadEnvelope{
		File: genai.FileMetadata{DisplayName: req.DisplayName},
	})
	if err != nil {
		return nil, "", fmt.Errorf("encode upload metadata: %w", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	metaHeader := textproto.MIMEHeader{}
	metaHeader.Set("Content-Type", "application/json; charset=UTF-8")
	metaPart, err := writer.CreatePart(metaHeader)
	if err != nil {
		return nil, "", fmt.Errorf("create metadata part: %w", err)
	}
	if _, err := metaPart.Write(metadata); err != nil {
		return nil, "", fmt.Errorf("write metadata part: %w", err)
	}

	mediaHeader := textproto.MIMEHeader{}
	mediaHeader.Set("Content-Type", req.MimeType)
	mediaPart, err := writer.CreatePart(mediaHeader)
	if err != nil {
		return nil, "", fmt.Errorf("create media part: %w", err)
	}
	if _, err := mediaPart.Write(req.Data); err != nil {
		return nil, "", fmt.Errorf("write media part: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finish upload body: %w", err)
	}

	return buf.Bytes(), "multipart/related; boundary=" + writer.Boundary(), nil
}

func upstreamStatus(resp *resty.Response, err error) string {
	switch {
	case err != nil:
		return "error"
	case resp.IsError():
		return "error"
	default:
		return "ok"
	}
}

// Ensure interface compliance.
var _ genai.Provider = (*Client)(nil)
