package tgmedia

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrUnsupportedFileInput reports a media value of a type the resolver
// does not understand.
var ErrUnsupportedFileInput = errors.New("unsupported file input")

// FileID references a file already stored on Telegram's servers.
type FileID string

// FileURL references a file for Telegram to fetch over HTTP.
type FileURL string

// FileBytes is an in-memory upload. Name is optional; Data must be
// non-nil.
type FileBytes struct {
	Name string
	Data []byte
}

// FileReader is a streamed upload. Reader must be non-nil; Name is
// optional but without it MIME detection has nothing to go on.
type FileReader struct {
	Name   string
	Reader io.Reader
}

/*
resolveFileInput turns the open-ended media argument of the input media
constructors into a wire-ready ref.

string, FileID, and FileURL pass through verbatim: a file_id or an HTTP
URL means there is nothing to upload. []byte, FileBytes, FileReader,
io.Reader, *os.File, and *InputFile are payloads; they are wrapped as
attachments and referenced as attach://<name>. Anything else fails with
ErrUnsupportedFileInput.
*/
func resolveFileInput(input any) (MediaRef, error) {
	switch v := input.(type) {
	case string:
		return remoteRef(v), nil
	case FileID:
		return remoteRef(string(v)), nil
	case FileURL:
		return remoteRef(string(v)), nil
	case []byte:
		if v == nil {
			return MediaRef{}, fmt.Errorf("%w: nil []byte", ErrUnsupportedFileInput)
		}
		return uploadRef(NewInputFile(v, "")), nil
	case FileBytes:
		if v.Data == nil {
			return MediaRef{}, fmt.Errorf("%w: FileBytes with nil Data", ErrUnsupportedFileInput)
		}
		return uploadRef(NewInputFile(v.Data, v.Name)), nil
	case FileReader:
		if v.Reader == nil {
			return MediaRef{}, fmt.Errorf("%w: FileReader with nil Reader", ErrUnsupportedFileInput)
		}
		return uploadRef(NewInputFileReader(v.Reader, v.Name)), nil
	case *os.File:
		if v == nil {
			return MediaRef{}, fmt.Errorf("%w: nil *os.File", ErrUnsupportedFileInput)
		}
		return uploadRef(NewInputFileReader(v, filepath.Base(v.Name()))), nil
	case *InputFile:
		if v == nil {
			return MediaRef{}, fmt.Errorf("%w: nil *InputFile", ErrUnsupportedFileInput)
		}
		return uploadRef(v), nil
	case io.Reader:
		return uploadRef(NewInputFileReader(v, "")), nil
	case nil:
		return MediaRef{}, fmt.Errorf("%w: nil", ErrUnsupportedFileInput)
	default:
		return MediaRef{}, fmt.Errorf("%w: %T", ErrUnsupportedFileInput, input)
	}
}
