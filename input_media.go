package tgmedia

import "fmt"

// InputMedia is implemented by the five media kinds that can appear in an
// album or a media edit.
type InputMedia interface {
	// MediaType returns the kind's wire discriminant.
	MediaType() MediaType
	// Uploads returns the attachment payloads the multipart encoder must
	// send with the request, media first, thumb after.
	Uploads() []*InputFile
}

// UploadFiles flattens the attachment payloads of a media group in order,
// ready to be added to a multipart request.
func UploadFiles(media ...InputMedia) []*InputFile {
	var files []*InputFile
	for _, m := range media {
		files = append(files, m.Uploads()...)
	}
	return files
}

// BaseInputMedia carries the fields shared by all five kinds. Optional
// fields left at their zero value stay out of the serialized object.
type BaseInputMedia struct {
	Type            MediaType       `json:"type"`
	Media           MediaRef        `json:"media"`
	Caption         string          `json:"caption,omitempty"`
	ParseMode       ParseMode       `json:"parse_mode,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
}

func (b *BaseInputMedia) MediaType() MediaType {
	return b.Type
}

func (b *BaseInputMedia) Uploads() []*InputFile {
	if b.Media.IsUpload() {
		return []*InputFile{b.Media.Upload()}
	}
	return nil
}

func appendThumbUpload(files []*InputFile, thumb *MediaRef) []*InputFile {
	if thumb != nil && thumb.IsUpload() {
		files = append(files, thumb.Upload())
	}
	return files
}

// InputMediaAnimation is a GIF or soundless video to send. Fields copied
// from an Animation record can be overwritten by assigning them after
// construction; serialization reads the final field state.
type InputMediaAnimation struct {
	BaseInputMedia
	Thumb    *MediaRef `json:"thumb,omitempty"`
	Width    int       `json:"width,omitempty"`
	Height   int       `json:"height,omitempty"`
	Duration int       `json:"duration,omitempty"`
}

// NewInputMediaAnimation builds an animation from a file_id or URL string,
// an upload payload, or an Animation record. Passing an Animation reuses
// its file_id and carries over width, height, and duration.
func NewInputMediaAnimation(media any) (*InputMediaAnimation, error) {
	m := &InputMediaAnimation{BaseInputMedia: BaseInputMedia{Type: MediaTypeAnimation}}
	switch v := media.(type) {
	case Animation:
		m.Media = remoteRef(v.FileID)
		m.Width = v.Width
		m.Height = v.Height
		m.Duration = v.Duration
	case *Animation:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *Animation", ErrUnsupportedFileInput)
		}
		return NewInputMediaAnimation(*v)
	default:
		ref, err := resolveFileInput(media)
		if err != nil {
			return nil, err
		}
		m.Media = ref
	}
	return m, nil
}

// SetThumb attaches a thumbnail. Thumbnails cannot be recycled from
// previous uploads, so only strings and payloads are accepted.
func (m *InputMediaAnimation) SetThumb(thumb any) error {
	ref, err := resolveFileInput(thumb)
	if err != nil {
		return err
	}
	m.Thumb = &ref
	return nil
}

func (m *InputMediaAnimation) Uploads() []*InputFile {
	return appendThumbUpload(m.BaseInputMedia.Uploads(), m.Thumb)
}

// InputMediaPhoto is a photo to send.
type InputMediaPhoto struct {
	BaseInputMedia
}

// NewInputMediaPhoto builds a photo from a file_id or URL string, an
// upload payload, or a PhotoSize whose file_id is reused.
func NewInputMediaPhoto(media any) (*InputMediaPhoto, error) {
	m := &InputMediaPhoto{BaseInputMedia: BaseInputMedia{Type: MediaTypePhoto}}
	switch v := media.(type) {
	case PhotoSize:
		m.Media = remoteRef(v.FileID)
	case *PhotoSize:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *PhotoSize", ErrUnsupportedFileInput)
		}
		return NewInputMediaPhoto(*v)
	default:
		ref, err := resolveFileInput(media)
		if err != nil {
			return nil, err
		}
		m.Media = ref
	}
	return m, nil
}

// InputMediaVideo is a video to send. Fields copied from a Video record
// can be overwritten by assigning them after construction; serialization
// reads the final field state.
type InputMediaVideo struct {
	BaseInputMedia
	Thumb             *MediaRef `json:"thumb,omitempty"`
	Width             int       `json:"width,omitempty"`
	Height            int       `json:"height,omitempty"`
	Duration          int       `json:"duration,omitempty"`
	SupportsStreaming bool      `json:"supports_streaming,omitempty"`
}

// NewInputMediaVideo builds a video from a file_id or URL string, an
// upload payload, or a Video record. Passing a Video reuses its file_id
// and carries over width, height, and duration.
func NewInputMediaVideo(media any) (*InputMediaVideo, error) {
	m := &InputMediaVideo{BaseInputMedia: BaseInputMedia{Type: MediaTypeVideo}}
	switch v := media.(type) {
	case Video:
		m.Media = remoteRef(v.FileID)
		m.Width = v.Width
		m.Height = v.Height
		m.Duration = v.Duration
	case *Video:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *Video", ErrUnsupportedFileInput)
		}
		return NewInputMediaVideo(*v)
	default:
		ref, err := resolveFileInput(media)
		if err != nil {
			return nil, err
		}
		m.Media = ref
	}
	return m, nil
}

// SetThumb attaches a thumbnail. Thumbnails cannot be recycled from
// previous uploads, so only strings and payloads are accepted.
func (m *InputMediaVideo) SetThumb(thumb any) error {
	ref, err := resolveFileInput(thumb)
	if err != nil {
		return err
	}
	m.Thumb = &ref
	return nil
}

func (m *InputMediaVideo) Uploads() []*InputFile {
	return appendThumbUpload(m.BaseInputMedia.Uploads(), m.Thumb)
}

// InputMediaAudio is an audio file to send, treated as music. Fields
// copied from an Audio record can be overwritten by assigning them after
// construction; serialization reads the final field state.
type InputMediaAudio struct {
	BaseInputMedia
	Thumb     *MediaRef `json:"thumb,omitempty"`
	Duration  int       `json:"duration,omitempty"`
	Performer string    `json:"performer,omitempty"`
	Title     string    `json:"title,omitempty"`
}

// NewInputMediaAudio builds an audio from a file_id or URL string, an
// upload payload, or an Audio record. Passing an Audio reuses its file_id
// and carries over duration, performer, and title.
func NewInputMediaAudio(media any) (*InputMediaAudio, error) {
	m := &InputMediaAudio{BaseInputMedia: BaseInputMedia{Type: MediaTypeAudio}}
	switch v := media.(type) {
	case Audio:
		m.Media = remoteRef(v.FileID)
		m.Duration = v.Duration
		m.Performer = v.Performer
		m.Title = v.Title
	case *Audio:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *Audio", ErrUnsupportedFileInput)
		}
		return NewInputMediaAudio(*v)
	default:
		ref, err := resolveFileInput(media)
		if err != nil {
			return nil, err
		}
		m.Media = ref
	}
	return m, nil
}

// SetThumb attaches a thumbnail. Thumbnails cannot be recycled from
// previous uploads, so only strings and payloads are accepted.
func (m *InputMediaAudio) SetThumb(thumb any) error {
	ref, err := resolveFileInput(thumb)
	if err != nil {
		return err
	}
	m.Thumb = &ref
	return nil
}

func (m *InputMediaAudio) Uploads() []*InputFile {
	return appendThumbUpload(m.BaseInputMedia.Uploads(), m.Thumb)
}

// InputMediaDocument is a general file to send.
type InputMediaDocument struct {
	BaseInputMedia
	Thumb                       *MediaRef `json:"thumb,omitempty"`
	DisableContentTypeDetection bool      `json:"disable_content_type_detection,omitempty"`
}

// NewInputMediaDocument builds a document from a file_id or URL string, an
// upload payload, or a Document whose file_id is reused.
func NewInputMediaDocument(media any) (*InputMediaDocument, error) {
	m := &InputMediaDocument{BaseInputMedia: BaseInputMedia{Type: MediaTypeDocument}}
	switch v := media.(type) {
	case Document:
		m.Media = remoteRef(v.FileID)
	case *Document:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *Document", ErrUnsupportedFileInput)
		}
		return NewInputMediaDocument(*v)
	default:
		ref, err := resolveFileInput(media)
		if err != nil {
			return nil, err
		}
		m.Media = ref
	}
	return m, nil
}

// SetThumb attaches a thumbnail. Thumbnails cannot be recycled from
// previous uploads, so only strings and payloads are accepted.
func (m *InputMediaDocument) SetThumb(thumb any) error {
	ref, err := resolveFileInput(thumb)
	if err != nil {
		return err
	}
	m.Thumb = &ref
	return nil
}

func (m *InputMediaDocument) Uploads() []*InputFile {
	return appendThumbUpload(m.BaseInputMedia.Uploads(), m.Thumb)
}
