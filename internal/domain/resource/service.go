package resource

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"filehost/internal/domain/application"
	"filehost/internal/storage"
)

// Service orchestrates uploads and deletes across the application registry,
// the resource registry, and the disk store. The steps are not wrapped in a
// transaction: bytes are written before the record exists, so a crash in
// between leaves an orphan file but never a record pointing at nothing.
type Service struct {
	resources Repository
	apps      application.Repository
	store     *storage.Store
	baseURL   string
	now       func() time.Time
}

func NewService(resources Repository, apps application.Repository, store *storage.Store, baseURL string) *Service {
	return &Service{
		resources: resources,
		apps:      apps,
		store:     store,
		baseURL:   strings.TrimRight(baseURL, "/"),
		now:       time.Now,
	}
}

// Upload validates the owning application, classifies the file by its
// declared content type, writes the bytes durably, then records the
// resource and bumps the application's file count.
func (s *Service) Upload(ctx context.Context, appName string, fileHeader *multipart.FileHeader) (*Resource, error) {
	if _, err := s.apps.GetByName(ctx, appName); err != nil {
		return nil, err
	}
	if fileHeader == nil || fileHeader.Size == 0 {
		return nil, ErrFileNotFound
	}

	category, bucket := Classify(fileHeader.Header.Get("Content-Type"))
	name := storedName(fileHeader.Filename, s.now())

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	if err := s.store.Save(bucket, name, file); err != nil {
		return nil, err
	}

	res := &Resource{
		ApplicationName: appName,
		FileName:        fileHeader.Filename,
		Size:            FormatSize(fileHeader.Size),
		Type:            category,
		Path:            path.Join("uploads", bucket, name),
		URL:             fmt.Sprintf("%s/uploads/%s/%s", s.baseURL, bucket, name),
		UUID:            uuid.NewString(),
	}

	// From here on failures are not compensated: the written file stays.
	if err := s.resources.Create(ctx, res); err != nil {
		return nil, err
	}
	if err := s.apps.AddFileCount(ctx, appName, 1); err != nil {
		return nil, err
	}
	return res, nil
}

// GetByUUID returns the metadata record for a stored file.
func (s *Service) GetByUUID(ctx context.Context, id string) (*Resource, error) {
	return s.resources.GetByUUID(ctx, id)
}

// Delete removes the record, then the bytes, then decrements the owner's
// file count. Bytes missing on disk fail the request; the decrement has no
// floor.
func (s *Service) Delete(ctx context.Context, id string) error {
	res, err := s.resources.GetByUUID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.resources.DeleteByUUID(ctx, id); err != nil {
		return err
	}

	parts := strings.Split(res.Path, "/")
	if len(parts) != 3 {
		return fmt.Errorf("malformed resource path %q", res.Path)
	}
	if err := s.store.Remove(parts[1], parts[2]); err != nil {
		return err
	}

	return s.apps.AddFileCount(ctx, res.ApplicationName, -1)
}
