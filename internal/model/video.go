package model

// VideoMode selects which of a video's two payload fields is meaningful.
type VideoMode string

const (
	// VideoLink means the video lives at an external URL.
	VideoLink VideoMode = "link"
	// VideoFile means the video was uploaded and is stored inline as a
	// base64 data URL.
	VideoFile VideoMode = "file"
)

// Valid reports whether m is one of the known video modes.
func (m VideoMode) Valid() bool {
	return m == VideoLink || m == VideoFile
}

// Video represents a highlight or training video.  Exactly one of URL
// and FileData is meaningful, selected by Mode.
//
// Fields:
//  ID       – unique identifier, assigned once at creation.
//  URL      – external video link; required in "link" mode.
//  FileData – inline-encoded video (base64 data URL); required in
//             "file" mode.
//  Mode     – "link" or "file".
type Video struct {
	ID       int64     `json:"id"`
	URL      string    `json:"url"`
	FileData string    `json:"fileData"`
	Mode     VideoMode `json:"mode"`
}
