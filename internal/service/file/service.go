package file

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding support
	"io"
	"net/http"
	"path"
	"strings"

	"golang.org/x/image/draw"

	"github.com/peopledesk/peopledesk-backend/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend/internal/pkg/storage"
)

// maxPhotoDimension caps the longest edge of a stored profile photo.
const maxPhotoDimension = 512

var photoExtensions = []string{".jpg", ".png"}

type FileService interface {
	// UploadProfilePhoto stores an employee profile photo and returns its
	// public URL. Oversized images are downscaled before storage, and a
	// previously stored photo of the same employee is replaced.
	UploadProfilePhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// EncodeDataURL reads a file and returns it as a data: URL, the inline
	// form used when a photo travels inside the create payload.
	EncodeDataURL(file io.Reader) (string, error)

	// DeleteProfilePhoto removes any stored photo for the employee.
	DeleteProfilePhoto(ctx context.Context, employeeID string) error

	// Download opens a stored file for reading.
	Download(ctx context.Context, path string) (io.ReadCloser, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// photoPath is the fixed location of an employee's profile photo; one photo
// per employee, overwritten on re-upload.
func photoPath(employeeID, ext string) string {
	return path.Join("photos", employeeID, "profile"+ext)
}

// UploadProfilePhoto stores an employee profile photo.
func (s *fileServiceImpl) UploadProfilePhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", employee.ErrInvalidPhotoFormat
	}
	if ext == ".jpeg" {
		ext = ".jpg"
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("%w: %v", employee.ErrPhotoReadFailed, err)
	}

	processed, contentType, err := normalizePhoto(buffer, ext)
	if err != nil {
		return "", err
	}
	if contentType == "image/jpeg" {
		ext = ".jpg"
	}

	// A re-upload under a different extension would otherwise leave the
	// old file behind.
	for _, stale := range photoExtensions {
		if stale == ext {
			continue
		}
		p := photoPath(employeeID, stale)
		if ok, _ := s.storage.Exists(ctx, p); ok {
			if err := s.storage.Delete(ctx, p); err != nil {
				return "", fmt.Errorf("failed to replace profile photo: %w", err)
			}
		}
	}

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(processed), photoPath(employeeID, ext), contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload profile photo: %w", err)
	}

	return s.storage.GetURL(ctx, uploadedPath, 0)
}

// EncodeDataURL inlines a file as a data: URL.
func (s *fileServiceImpl) EncodeDataURL(file io.Reader) (string, error) {
	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("%w: %v", employee.ErrPhotoReadFailed, err)
	}

	mime := http.DetectContentType(buffer)
	encoded := base64.StdEncoding.EncodeToString(buffer)
	return fmt.Sprintf("data:%s;base64,%s", mime, encoded), nil
}

// DeleteProfilePhoto removes every stored photo variant for the employee.
func (s *fileServiceImpl) DeleteProfilePhoto(ctx context.Context, employeeID string) error {
	for _, ext := range photoExtensions {
		if err := s.storage.Delete(ctx, photoPath(employeeID, ext)); err != nil {
			return fmt.Errorf("failed to delete profile photo: %w", err)
		}
	}
	return nil
}

// Download opens a stored file.
func (s *fileServiceImpl) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.storage.Download(ctx, path)
}

// normalizePhoto downscales a photo whose longest edge exceeds
// maxPhotoDimension. Small images pass through untouched.
func normalizePhoto(buffer []byte, ext string) ([]byte, string, error) {
	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", employee.ErrInvalidPhotoFormat, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= maxPhotoDimension && height <= maxPhotoDimension {
		return buffer, contentType, nil
	}

	if width > height {
		height = height * maxPhotoDimension / width
		width = maxPhotoDimension
	} else {
		width = width * maxPhotoDimension / height
		height = maxPhotoDimension
	}

	resized := resizeImage(img, width, height)

	// Downscaled photos are re-encoded as JPEG regardless of input format.
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: 85}); err != nil {
		return nil, "", fmt.Errorf("failed to encode photo: %w", err)
	}

	return buf.Bytes(), "image/jpeg", nil
}

// resizeImage resizes an image using high-quality interpolation.
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
