package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrInvalidID          = errors.New("employee id is required")
	ErrUnsupportedFormat  = errors.New("unsupported export format")
	ErrPhotoReadFailed    = errors.New("failed to process the image file")
	ErrInvalidPhotoFormat = errors.New("invalid file type: only jpg, jpeg, png allowed")
)
