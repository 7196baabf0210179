package tgmedia

// EntityType classifies one annotated span of a caption or message text.
type EntityType string

const (
	EntityTypeMention       EntityType = "mention"
	EntityTypeHashtag       EntityType = "hashtag"
	EntityTypeCashtag       EntityType = "cashtag"
	EntityTypeBotCommand    EntityType = "bot_command"
	EntityTypeURL           EntityType = "url"
	EntityTypeEmail         EntityType = "email"
	EntityTypePhoneNumber   EntityType = "phone_number"
	EntityTypeBold          EntityType = "bold"
	EntityTypeItalic        EntityType = "italic"
	EntityTypeUnderline     EntityType = "underline"
	EntityTypeStrikethrough EntityType = "strikethrough"
	EntityTypeCode          EntityType = "code"
	EntityTypePre           EntityType = "pre"
	EntityTypeTextLink      EntityType = "text_link"
	EntityTypeTextMention   EntityType = "text_mention"
)

// MessageEntity marks up one span of a caption. Offset and Length are
// measured in UTF-16 code units, the way the Bot API counts them.
type MessageEntity struct {
	Type     EntityType `json:"type"`
	Offset   int        `json:"offset"`
	Length   int        `json:"length"`
	URL      string     `json:"url,omitempty"`      // text_link only
	Language string     `json:"language,omitempty"` // pre only
}
