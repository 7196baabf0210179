package tgmedia

import (
	"fmt"
	"strings"
)

// MediaType is the `type` discriminant of an input media object.
type MediaType string

const (
	MediaTypeAnimation MediaType = "animation"
	MediaTypeAudio     MediaType = "audio"
	MediaTypeDocument  MediaType = "document"
	MediaTypePhoto     MediaType = "photo"
	MediaTypeVideo     MediaType = "video"
)

func ParseMediaType(s string) (MediaType, error) {
	switch strings.ToLower(s) {
	case string(MediaTypeAnimation):
		return MediaTypeAnimation, nil
	case string(MediaTypeAudio):
		return MediaTypeAudio, nil
	case string(MediaTypeDocument):
		return MediaTypeDocument, nil
	case string(MediaTypePhoto):
		return MediaTypePhoto, nil
	case string(MediaTypeVideo):
		return MediaTypeVideo, nil
	default:
		return "", fmt.Errorf("unknown media type: %s", s)
	}
}

// ParseMode selects the markup language Telegram applies to captions and
// message text. Casing follows the Bot API docs.
type ParseMode string

const (
	ParseModeMarkdown   ParseMode = "Markdown"
	ParseModeMarkdownV2 ParseMode = "MarkdownV2"
	ParseModeHTML       ParseMode = "HTML"
)
