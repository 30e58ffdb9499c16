package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		contentType string
		category    Category
		bucket      string
	}{
		{"image/png", CategoryImage, "images"},
		{"image/jpeg", CategoryImage, "images"},
		{"image/svg+xml", CategoryImage, "images"},
		{"video/mp4", CategoryVideo, "videos"},
		{"video/webm", CategoryVideo, "videos"},
		{"audio/mpeg", CategoryAudio, "audios"},
		{"audio/ogg", CategoryAudio, "audios"},
		{"application/pdf", CategoryDocument, "documents"},
		{"text/plain", CategoryDocument, "documents"},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", CategoryDocument, "documents"},
		// only the three exact document types qualify
		{"application/msword", CategoryOther, "others"},
		{"text/html", CategoryOther, "others"},
		{"application/zip", CategoryOther, "others"},
		{"application/octet-stream", CategoryOther, "others"},
		{"", CategoryOther, "others"},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			category, bucket := Classify(tt.contentType)
			require.Equal(t, tt.category, category)
			require.Equal(t, tt.bucket, bucket)
		})
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{512, "0.50 KB"},
		{1536, "1.50 KB"},
		{512 * 1024, "512.00 KB"},
		{1 << 20, "1.00 MB"}, // exactly 1 MiB is MB, not KB
		{2 << 20, "2.00 MB"},
		{5<<20 + 256<<10, "5.25 MB"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FormatSize(tt.bytes), "bytes=%d", tt.bytes)
	}
}

func TestStoredName(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	require.Equal(t, "my-holiday-photo-1700000000000.png", storedName("My Holiday Photo.png", now))
	require.Equal(t, "report-v2-1700000000000.pdf", storedName("Report (v2).pdf", now))
	require.Equal(t, "notes-1700000000000", storedName("notes", now))
	// only the part before the first dot feeds the slug
	require.Equal(t, "archive-1700000000000.gz", storedName("archive.tar.gz", now))
}

func TestSlugify(t *testing.T) {
	require.Equal(t, "hello-world", slugify("Hello World.txt"))
	require.Equal(t, "a-b", slugify("a   -  b.png"))
	require.Equal(t, "", slugify("???.bin"))
}
