package domain

// FileUpload is a multipart file read fully into memory by the handler.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
