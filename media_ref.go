package tgmedia

import "encoding/json"

/*
MediaRef is the resolved value of a media or thumb field. Ref is what the
request body carries and its meaning depends on how the ref was built:

If resolved from a string, FileID, or FileURL:

	Ref is the file_id or URL verbatim, Upload is nil.

If resolved from bytes, a reader, or an InputFile:

	Ref is "attach://<name>" and Upload is the payload the multipart
	encoder must send under that name.
*/
type MediaRef struct {
	ref    string
	upload *InputFile
}

func remoteRef(ref string) MediaRef {
	return MediaRef{ref: ref}
}

func uploadRef(f *InputFile) MediaRef {
	return MediaRef{ref: f.AttachURI(), upload: f}
}

// Ref returns the string embedded in the request body.
func (r MediaRef) Ref() string {
	return r.ref
}

// Upload returns the attachment payload, or nil for file_id and URL refs.
func (r MediaRef) Upload() *InputFile {
	return r.upload
}

// IsUpload reports whether the ref points at a payload that travels as a
// multipart attachment.
func (r MediaRef) IsUpload() bool {
	return r.upload != nil
}

// MarshalJSON writes the bare ref string. Payload bytes never appear in
// the request body.
func (r MediaRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ref)
}
