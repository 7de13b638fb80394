// Package models defines the server-side data model: files, their content
// state machine, and the sealed envelope binding content to principals.
package models

// File status values as reported to clients.
const (
	StatusPending           = "pending"
	StatusPartiallyUploaded = "partially_uploaded"
	StatusUploaded          = "uploaded"
)

// FileMetadata describes a registered file independent of its content state.
type FileMetadata struct {
	// FileName is the client-supplied display name.
	FileName string
	// RequesterPrincipal is the original uploader and sole owner.
	RequesterPrincipal Principal
	// RequestedAt is the registration timestamp (unix nanoseconds).
	RequestedAt uint64
	// UploadedAt is set once all chunks have been received.
	UploadedAt *uint64
	// StorageProvider tags where the payload lives ("local" or "s3").
	StorageProvider string
	// BlobRef is the external object key for provider-stored payloads.
	BlobRef string
	// Encrypted reports whether the content has been sealed.
	Encrypted bool
}

// FileContent is the content state of a file. Exactly one of the three
// variants holds at any time, and transitions only move forward:
// Pending -> PartiallyUploaded -> Uploaded.
type FileContent interface {
	isFileContent()
}

// ContentPending means the file is registered but no bytes were received.
type ContentPending struct {
	Alias string
}

// ContentPartiallyUploaded means some but not all chunks were received.
type ContentPartiallyUploaded struct {
	NumChunks uint64
	FileType  string
	// Envelope is present once the atomic first upload sealed the content;
	// it is nil for files still waiting for their first bytes.
	Envelope *Envelope
}

// ContentUploaded means all chunks were received and the content is sealed.
type ContentUploaded struct {
	NumChunks uint64
	FileType  string
	Envelope  *Envelope
}

func (ContentPending) isFileContent()           {}
func (ContentPartiallyUploaded) isFileContent() {}
func (ContentUploaded) isFileContent()          {}

// File is the authoritative record for a file id.
type File struct {
	Metadata FileMetadata
	Content  FileContent
}

// NumChunks returns the declared chunk count of the file, 0 while Pending.
func (f *File) NumChunks() uint64 {
	switch c := f.Content.(type) {
	case ContentPending:
		return 0
	case ContentPartiallyUploaded:
		return c.NumChunks
	case ContentUploaded:
		return c.NumChunks
	default:
		return 0
	}
}

// Status returns the client-visible status string for the content state.
func (f *File) Status() string {
	switch f.Content.(type) {
	case ContentPartiallyUploaded:
		return StatusPartiallyUploaded
	case ContentUploaded:
		return StatusUploaded
	default:
		return StatusPending
	}
}

// FileSummary is the list-operation projection of a file.
type FileSummary struct {
	FileID   uint64
	FileName string
	Status   string
}
