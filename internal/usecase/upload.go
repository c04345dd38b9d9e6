package usecase

import "io"

// FileUpload carries one uploaded image across the delivery boundary.
type FileUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}
