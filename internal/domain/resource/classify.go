package resource

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Category is the coarse classification of an uploaded file.
type Category string

const (
	CategoryImage    Category = "image"
	CategoryVideo    Category = "video"
	CategoryAudio    Category = "audio"
	CategoryDocument Category = "document"
	CategoryOther    Category = "other"
)

const wordDocumentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Classify maps a declared content type to its category and destination
// bucket. It is total: every input lands in exactly one pair. Only the
// three listed document types count as documents; application/msword and
// the like deliberately fall through to others.
func Classify(contentType string) (Category, string) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return CategoryImage, "images"
	case strings.HasPrefix(contentType, "video/"):
		return CategoryVideo, "videos"
	case strings.HasPrefix(contentType, "audio/"):
		return CategoryAudio, "audios"
	}

	switch contentType {
	case "application/pdf", "text/plain", wordDocumentType:
		return CategoryDocument, "documents"
	}

	return CategoryOther, "others"
}

// Buckets lists every bucket directory, for startup bootstrap.
func Buckets() []string {
	return []string{"images", "videos", "audios", "documents", "others"}
}

// FormatSize renders a byte count as "X.XX KB" below 1 MiB and "X.XX MB"
// from 1 MiB up.
func FormatSize(bytes int64) string {
	mb := float64(bytes) / 1024 / 1024
	if mb < 1 {
		return fmt.Sprintf("%.2f KB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.2f MB", mb)
}

var (
	nonWordPattern = regexp.MustCompile(`[^\w-]+`)
	dashRunPattern = regexp.MustCompile(`--+`)
)

func slugify(name string) string {
	base, _, _ := strings.Cut(name, ".")
	base = strings.ToLower(base)
	base = strings.ReplaceAll(base, " ", "-")
	base = nonWordPattern.ReplaceAllString(base, "")
	base = dashRunPattern.ReplaceAllString(base, "-")
	return base
}

// storedName builds a collision-resistant file name for the destination
// bucket: slug of the original name plus a millisecond timestamp, keeping
// the original extension.
func storedName(original string, now time.Time) string {
	return fmt.Sprintf("%s-%d%s", slugify(original), now.UnixMilli(), filepath.Ext(original))
}
