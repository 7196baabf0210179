package tgmedia

import (
	"bytes"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/lucsky/cuid"
	log "github.com/sirupsen/logrus"
)

// DefaultMimeType is used when nothing better can be detected.
const DefaultMimeType = "application/octet-stream"

// InputFile is a file payload to be uploaded with a request. The request
// body refers to it as "attach://<name>" and the multipart encoder sends
// the payload under that same field name. Filename and MimeType may be
// reassigned freely before the request is encoded.
type InputFile struct {
	Filename string
	MimeType string

	data       []byte
	reader     io.Reader
	attachName string
}

// NewInputFile wraps raw bytes for upload. The MIME type is sniffed from
// the content; if no filename is given, one is derived from the MIME type
// ("image/png" becomes "image.png").
func NewInputFile(data []byte, filename string) *InputFile {
	f := &InputFile{
		Filename:   filename,
		MimeType:   detectMimeType(data, filename),
		data:       data,
		attachName: cuid.New(),
	}
	if f.Filename == "" {
		f.Filename = defaultFilename(f.MimeType)
	}
	return f
}

// NewInputFileReader wraps a streamed payload. The stream is not consumed
// here, so detection has only the filename extension to go on.
func NewInputFileReader(r io.Reader, filename string) *InputFile {
	f := &InputFile{
		Filename:   filename,
		MimeType:   detectMimeType(nil, filename),
		reader:     r,
		attachName: cuid.New(),
	}
	if f.Filename == "" {
		f.Filename = defaultFilename(f.MimeType)
	}
	return f
}

// AttachName returns the generated multipart field name for this payload.
// It is stable for the lifetime of the InputFile and unique across files.
func (f *InputFile) AttachName() string {
	return f.attachName
}

// AttachURI returns the attach:// reference that stands in for this
// payload inside the request body.
func (f *InputFile) AttachURI() string {
	return "attach://" + f.attachName
}

// Payload returns the upload content for the encoder, never nil.
// Byte-backed files yield a fresh reader each call; stream-backed files
// return the underlying reader, which can only be consumed once.
func (f *InputFile) Payload() io.Reader {
	if f.reader != nil {
		return f.reader
	}
	return bytes.NewReader(f.data)
}

func detectMimeType(data []byte, filename string) string {
	var mt string
	if len(data) > 0 {
		mt = mimetype.Detect(data).String()
	} else if ext := filepath.Ext(filename); ext != "" {
		mt = mime.TypeByExtension(ext)
	}
	if mt == "" {
		log.WithField("filename", filename).Debug("could not detect mime type, falling back to application/octet-stream")
		return DefaultMimeType
	}
	// drop parameters such as "; charset=utf-8"
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}

func defaultFilename(mimeType string) string {
	return strings.ReplaceAll(mimeType, "/", ".")
}
