package services

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"practicehub_backend/internal/logger"
	"practicehub_backend/internal/models"
	"practicehub_backend/internal/repositories"
	"practicehub_backend/internal/services/dto"
	"practicehub_backend/internal/storage"
	"practicehub_backend/pkg/apperrors"
)

// SignedURLTTL bounds how long a form download link stays valid.
const SignedURLTTL = 15 * time.Minute

// FormService manages intake-form documents. Metadata lives in the database,
// payloads in object storage; downloads go through short-lived signed URLs so
// the bucket never has to be public.
type FormService interface {
	Upload(ctx context.Context, accountID, name, contentType string, size int64, reader io.Reader) (*dto.FormDTO, error)
	List(accountID string) ([]*dto.FormDTO, error)
	GetDownloadURL(ctx context.Context, accountID, formID string) (*dto.FormURLResponse, error)
	Delete(ctx context.Context, accountID, formID string) error
}

type FormServiceImpl struct {
	forms        repositories.FormRepository
	store        storage.Storage
	maxSize      int64
	allowedTypes []string
}

func NewFormService(forms repositories.FormRepository, store storage.Storage, maxSize int64, allowedTypes []string) FormService {
	return &FormServiceImpl{
		forms:        forms,
		store:        store,
		maxSize:      maxSize,
		allowedTypes: allowedTypes,
	}
}

func (s *FormServiceImpl) Upload(ctx context.Context, accountID, name, contentType string, size int64, reader io.Reader) (*dto.FormDTO, error) {
	if size > s.maxSize {
		return nil, apperrors.ErrFileTooLarge
	}
	if !s.isAllowedType(contentType) {
		return nil, apperrors.ErrInvalidFileType
	}

	key := "forms/" + accountID + "/" + uuid.NewString() + sanitizeExt(name)
	if err := s.store.Save(ctx, key, reader, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	form := &models.IntakeForm{
		AccountID:   accountID,
		Name:        name,
		StorageKey:  key,
		ContentType: contentType,
		Size:        size,
	}
	if err := s.forms.Create(form); err != nil {
		// Orphaned objects are cheaper than lost metadata; clean up on a
		// best-effort basis.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			logger.Warn("failed to clean up stored object after metadata failure",
				"key", key, "error", delErr)
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("intake form uploaded", "account_id", accountID, "form_id", form.ID, "size", size)
	return dto.NewFormDTO(form), nil
}

func (s *FormServiceImpl) List(accountID string) ([]*dto.FormDTO, error) {
	forms, err := s.forms.FindByAccount(accountID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.FormDTO, 0, len(forms))
	for i := range forms {
		out = append(out, dto.NewFormDTO(&forms[i]))
	}
	return out, nil
}

func (s *FormServiceImpl) GetDownloadURL(ctx context.Context, accountID, formID string) (*dto.FormURLResponse, error) {
	form, err := s.findOwnedForm(accountID, formID)
	if err != nil {
		return nil, err
	}

	signed, err := s.store.GetSignedURL(ctx, form.StorageKey, SignedURLTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.FormURLResponse{
		URL:       signed,
		ExpiresIn: int(SignedURLTTL.Seconds()),
	}, nil
}

func (s *FormServiceImpl) Delete(ctx context.Context, accountID, formID string) error {
	form, err := s.findOwnedForm(accountID, formID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, form.StorageKey); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.forms.Delete(form.ID); err != nil {
		if errors.Is(err, repositories.ErrFormNotFound) {
			return apperrors.ErrFormNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.Info("intake form deleted", "account_id", accountID, "form_id", form.ID)
	return nil
}

// findOwnedForm hides other accounts' forms behind the same not-found error
// as genuinely missing ones.
func (s *FormServiceImpl) findOwnedForm(accountID, formID string) (*models.IntakeForm, error) {
	form, err := s.forms.FindByID(formID)
	if err != nil {
		if errors.Is(err, repositories.ErrFormNotFound) {
			return nil, apperrors.ErrFormNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if form.AccountID != accountID {
		return nil, apperrors.ErrFormNotFound
	}
	return form, nil
}

func (s *FormServiceImpl) isAllowedType(contentType string) bool {
	for _, t := range s.allowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\") {
		return ""
	}
	return ext
}
