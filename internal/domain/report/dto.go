package report

// File is a rendered export ready to be streamed as an attachment.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}
