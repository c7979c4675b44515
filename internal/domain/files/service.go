package files

import (
	"context"

	"github.com/rs/zerolog"

	"mamta-server/internal/domain/genai"
	"mamta-server/internal/utils/platformerrors"
)

// Service relays attachments to the provider's file store and lists what was
// uploaded before. The raw bytes are never kept locally.
type Service interface {
	Upload(ctx context.Context, params UploadParams) (*UploadResult, error)
	List(ctx context.Context) ([]Info, error)
}

// UploadParams carries one attachment read from a multipart request.
type UploadParams struct {
	Filename string
	MimeType string
	Data     []byte
}

// UploadResult reports the stored file reference.
type UploadResult struct {
	Filename string
	FileURI  string
	MimeType string
}

// Info describes one previously uploaded file.
type Info struct {
	Name     string `json:"name"`
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
}

// DefaultService implements Service against the Gemini file store.
type DefaultService struct {
	provider genai.Provider
	log      zerolog.Logger
}

// NewService creates the file relay service.
func NewService(provider genai.Provider, log zerolog.Logger) Service {
	return &DefaultService{
		provider: provider,
		log:      log.With().Str("component", "files-service").Logger(),
	}
}

// Upload relays the attachment bytes to the provider's file store.
func (s *DefaultService) Upload(ctx context.Context, params UploadParams) (*UploadResult, error) {
	if len(params.Data) == 0 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "file is empty", nil)
	}

	meta, err := s.provider.UploadFile(ctx, genai.UploadFileRequest{
		DisplayName: params.Filename,
		MimeType:    params.MimeType,
		Data:        params.Data,
	})
	if err != nil {
		s.log.Error().Err(err).Str("filename", params.Filename).Msg("file relay failed")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeUpload, "file relay failed", err)
	}

	s.log.Info().
		Str("filename", params.Filename).
		Str("uri", meta.URI).
		Int("bytes", len(params.Data)).
		Msg("file relayed to provider store")

	return &UploadResult{
		Filename: params.Filename,
		FileURI:  meta.URI,
		MimeType: meta.MimeType,
	}, nil
}

// List returns the provider's view of previously uploaded files.
func (s *DefaultService) List(ctx context.Context) ([]Info, error) {
	metas, err := s.provider.ListFiles(ctx)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeUpstream, "list files failed", err)
	}

	infos := make([]Info, 0, len(metas))
	for _, meta := range metas {
		infos = append(infos, Info{
			Name:     meta.Name,
			URI:      meta.URI,
			MimeType: meta.MimeType,
		})
	}
	return infos, nil
}
