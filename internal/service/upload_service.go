package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/FDead21/afc-web/internal/repositories"
	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/logger"
	"github.com/FDead21/afc-web/pkg/revalidate"
	"github.com/FDead21/afc-web/pkg/storage"
)

// UploadFile is one file lifted out of a multipart form.
type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
	Reader      io.Reader
}

// UploadResult extends Result with the public URL of the stored object.
type UploadResult struct {
	Result
	PublicURL string `json:"public_url,omitempty"`
}

type UploadServiceInterface interface {
	UploadImage(ctx context.Context, session *models.Session, file *UploadFile) UploadResult
	UploadProductImages(ctx context.Context, session *models.Session, productID string, files []*UploadFile) Result
	UpdateHeroImage(ctx context.Context, session *models.Session, file *UploadFile) Result
}

// UploadService stores uploaded images in the object bucket. Object
// paths embed an upload timestamp so re-uploads of the same filename
// never collide.
type UploadService struct {
	store       storage.Store
	productRepo repositories.ProductRepositoryInterface
	contentRepo repositories.ContentRepositoryInterface
	pages       *revalidate.Registry
	logger      *logger.Logger
}

func NewUploadService(
	store storage.Store,
	productRepo repositories.ProductRepositoryInterface,
	contentRepo repositories.ContentRepositoryInterface,
	pages *revalidate.Registry,
	logger *logger.Logger,
) *UploadService {
	return &UploadService{
		store:       store,
		productRepo: productRepo,
		contentRepo: contentRepo,
		pages:       pages,
		logger:      logger.WithComponent("upload_service"),
	}
}

// UploadImage stores a single image under the uploading user's prefix
// and returns its public URL. Used by the rich-text editor and the
// generic image fields.
func (s *UploadService) UploadImage(ctx context.Context, session *models.Session, file *UploadFile) UploadResult {
	if session == nil {
		return UploadResult{Result: unauthorizedResult()}
	}
	if s.store == nil {
		return UploadResult{Result: errorResult("Uploads are not configured.")}
	}
	if file == nil || file.Size == 0 {
		return UploadResult{Result: errorResult("No file provided.")}
	}

	objectPath := fmt.Sprintf("public/%s/%d-%s", session.UserID, time.Now().UnixMilli(), file.Name)
	if err := s.store.Upload(ctx, objectPath, file.ContentType, file.Reader); err != nil {
		s.logger.Warn("Image upload failed", "error", err, "path", objectPath)
		return UploadResult{Result: errorResult("Upload failed: " + err.Error())}
	}

	return UploadResult{
		Result:    successResult("Image uploaded successfully"),
		PublicURL: s.store.PublicURL(objectPath),
	}
}

// UploadProductImages stores a batch of gallery images for a product
// and records each public URL. Empty files are skipped; the first
// failed upload aborts the batch, keeping earlier images.
func (s *UploadService) UploadProductImages(ctx context.Context, session *models.Session, productID string, files []*UploadFile) Result {
	if session == nil {
		return unauthorizedResult()
	}
	if s.store == nil {
		return errorResult("Uploads are not configured.")
	}
	if productID == "" || len(files) == 0 {
		return errorResult("Product ID and files are required.")
	}

	for _, file := range files {
		if file == nil || file.Size == 0 {
			continue
		}

		objectPath := fmt.Sprintf("public/products/%s/%d-%s", productID, time.Now().UnixMilli(), file.Name)
		if err := s.store.Upload(ctx, objectPath, file.ContentType, file.Reader); err != nil {
			s.logger.Warn("Product image upload failed", "error", err, "product_id", productID, "path", objectPath)
			return errorResult("Upload failed: " + err.Error())
		}

		if _, err := s.productRepo.AddImage(productID, s.store.PublicURL(objectPath)); err != nil {
			s.logger.Warn("Failed to record product image", "error", err, "product_id", productID)
		}
	}

	s.pages.Invalidate("/admin/edit/" + productID)
	return successResult("Images uploaded successfully!")
}

// UpdateHeroImage replaces the legacy single hero image: the file is
// stored under the hero prefix and its public URL written to the
// hero_image_url content key.
func (s *UploadService) UpdateHeroImage(ctx context.Context, session *models.Session, file *UploadFile) Result {
	if session == nil {
		return unauthorizedResult()
	}
	if s.store == nil {
		return errorResult("Uploads are not configured.")
	}
	if file == nil || file.Size == 0 {
		return errorResult("Please select an image to upload.")
	}

	objectPath := fmt.Sprintf("public/hero/%d-%s", time.Now().UnixMilli(), file.Name)
	if err := s.store.Upload(ctx, objectPath, file.ContentType, file.Reader); err != nil {
		s.logger.Warn("Hero image upload failed", "error", err, "path", objectPath)
		return errorResult("Upload failed: " + err.Error())
	}

	if err := s.contentRepo.Update(models.ContentKeyHeroImageURL, s.store.PublicURL(objectPath)); err != nil {
		s.logger.Warn("Failed to store hero image URL", "error", err)
		return errorResult("Database update failed: " + err.Error())
	}

	s.pages.Invalidate("/")
	return successResult("Hero image updated successfully!")
}
