package usecase

import (
	"context"
	"errors"

	"humancapital-api/internal/domain"
	"humancapital-api/pkg/apperror"
	"humancapital-api/pkg/logger"
	"humancapital-api/pkg/security"
	"humancapital-api/pkg/storage"
)

// UploadUsecase validates a file for its purpose and hands it to the media store.
type UploadUsecase interface {
	Upload(ctx context.Context, purpose security.UploadPurpose, file *domain.FileUpload) (string, error)
}

type uploadUsecase struct {
	store storage.Store
}

func NewUploadUsecase(store storage.Store) UploadUsecase {
	return &uploadUsecase{store: store}
}

var purposeKinds = map[security.UploadPurpose]storage.Kind{
	security.PurposeCV:     storage.KindPDF,
	security.PurposeJobPDF: storage.KindPDF,
	security.PurposeVideo:  storage.KindVideo,
	security.PurposeLogo:   storage.KindImage,
}

func (u *uploadUsecase) Upload(ctx context.Context, purpose security.UploadPurpose, file *domain.FileUpload) (string, error) {
	if file == nil {
		return "", apperror.BadRequest("File is required")
	}

	contentType, err := security.ValidateUpload(purpose, file.Filename, file.ContentType, file.Data)
	if err != nil {
		var fe *security.FileValidationError
		if errors.As(err, &fe) {
			return "", apperror.BadRequest(fe.Message)
		}
		return "", apperror.Internal(err)
	}

	url, err := u.store.Upload(ctx, storage.Asset{
		Data:        file.Data,
		Filename:    file.Filename,
		ContentType: contentType,
	}, purposeKinds[purpose])
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			return "", apperror.Upstream("Media storage is not configured", err)
		}
		logger.Log.Error("Media upload failed", "purpose", purpose, "size", len(file.Data), "error", err)
		return "", apperror.Upstream("Failed to upload file: "+err.Error(), err)
	}
	return url, nil
}
