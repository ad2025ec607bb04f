package core

// Part type identifiers shared by all providers' multimodal payloads.
const (
	PartTypeText  = "text"
	PartTypeImage = "image_url"
)

// ContentPart represents one segment of a multimodal message's content
// sequence. The two variants are TextPart and ImagePart.
type ContentPart interface {
	// PartType returns the type identifier for this content part.
	PartType() string
}

// TextPart represents text content in a message.
type TextPart struct {
	Text string
}

// PartType returns the type identifier for TextPart.
func (t TextPart) PartType() string {
	return PartTypeText
}

// ImagePart represents image content in a message, referenced either by URL
// or as inline base64-encoded bytes with a MIME type.
type ImagePart struct {
	// URL is an HTTPS URL or a complete data URL.
	URL string
	// Data contains base64-encoded image bytes, used when URL is empty.
	Data string
	// MIMEType qualifies Data, e.g. "image/png".
	MIMEType string
}

// PartType returns the type identifier for ImagePart.
func (i ImagePart) PartType() string {
	return PartTypeImage
}

// SourceURL returns the image reference in URL form, synthesizing a data URL
// from inline bytes when no URL was given.
func (i ImagePart) SourceURL() string {
	if i.URL != "" {
		return i.URL
	}
	if i.Data == "" {
		return ""
	}
	mime := i.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + i.Data
}
