package domain

import "time"

// SourceFile is a file listed in the external drive folder.
type SourceFile struct {
	ID           string
	Name         string
	MimeType     string
	Size         int64
	ModifiedTime time.Time
	// ExportMimeType is set for drive-native documents that have to be
	// exported instead of downloaded.
	ExportMimeType string
}

// StorageObject is an object in a bucket. Name is the sanitized key.
type StorageObject struct {
	Name    string
	Size    int64
	Updated time.Time
}
