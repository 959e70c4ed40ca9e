package libs

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrNotAnImage   = errors.New("file is not an accepted image")
	ErrFileTooLarge = errors.New("file exceeds the maximum upload size")
)

var acceptedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

// Upload is a multipart file whose content has been sniffed and accepted.
type Upload struct {
	Header      *multipart.FileHeader
	Extension   string
	ContentType string
}

// InspectImage sniffs the uploaded bytes rather than trusting the filename or
// the client supplied Content-Type.
func InspectImage(header *multipart.FileHeader, maxSize int64) (*Upload, error) {
	if header == nil {
		return nil, ErrNotAnImage
	}
	if maxSize > 0 && header.Size > maxSize {
		return nil, ErrFileTooLarge
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, fmt.Errorf("detect upload type: %w", err)
	}
	if !acceptedImageTypes[mtype.String()] {
		return nil, ErrNotAnImage
	}

	return &Upload{
		Header:      header,
		Extension:   mtype.Extension(),
		ContentType: mtype.String(),
	}, nil
}
