package content

import (
	"bytes"
	"encoding/json"
	"strings"
)

// PlaceholderImage is served when a live record carries no image.
const PlaceholderImage = "/static/images/placeholder.svg"

// ImageRef is one of FlatImage, NestedImage or MissingImage.
type ImageRef interface {
	isImageRef()
}

// FlatImage is the {url} media shape.
type FlatImage struct{ URL string }

// NestedImage is the {data: {attributes: {url}}} media shape.
type NestedImage struct{ URL string }

// MissingImage means no usable media reference was present.
type MissingImage struct{}

func (FlatImage) isImageRef()    {}
func (NestedImage) isImageRef()  {}
func (MissingImage) isImageRef() {}

// ImageURL resolves ref to an absolute URL. Relative URLs are prefixed with
// mediaBase; a missing or empty reference yields placeholder.
func ImageURL(ref ImageRef, mediaBase, placeholder string) string {
	var u string
	switch r := ref.(type) {
	case FlatImage:
		u = r.URL
	case NestedImage:
		u = r.URL
	case MissingImage, nil:
		return placeholder
	}
	if u == "" {
		return placeholder
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") || strings.HasPrefix(u, "//") {
		return u
	}
	return strings.TrimRight(mediaBase, "/") + "/" + strings.TrimLeft(u, "/")
}

// Image is a media field as found in content records. Images from the
// content service carry a Ref; bundled images carry a resolved src.
type Image struct {
	Ref ImageRef
	Alt string
	src string
}

// LocalImage references an asset shipped with the site.
func LocalImage(path, alt string) Image {
	return Image{Ref: MissingImage{}, Alt: alt, src: path}
}

// URL is the resolved address, empty until resolved.
func (i Image) URL() string { return i.src }

// Present reports whether the image has anything to show.
func (i Image) Present() bool {
	if i.src != "" {
		return true
	}
	switch r := i.Ref.(type) {
	case FlatImage:
		return r.URL != ""
	case NestedImage:
		return r.URL != ""
	}
	return false
}

func (i Image) resolved(mediaBase, placeholder string) Image {
	if i.src == "" {
		i.src = ImageURL(i.Ref, mediaBase, placeholder)
	}
	return i
}

func (i Image) MarshalJSON() ([]byte, error) {
	out := struct {
		URL string `json:"url"`
		Alt string `json:"alt,omitempty"`
	}{URL: i.src, Alt: i.Alt}
	return json.Marshal(out)
}

// UnmarshalJSON never fails: unknown shapes decode to MissingImage.
func (i *Image) UnmarshalJSON(b []byte) error {
	i.Ref, i.Alt = parseImageRef(b)
	i.src = ""
	return nil
}

type mediaAttrs struct {
	URL             string `json:"url"`
	AlternativeText string `json:"alternativeText"`
}

func parseImageRef(b []byte) (ImageRef, string) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return MissingImage{}, ""
	}

	switch b[0] {
	case '"':
		var s string
		if json.Unmarshal(b, &s) == nil && s != "" {
			return FlatImage{URL: s}, ""
		}
		return MissingImage{}, ""
	case '[':
		var items []json.RawMessage
		if json.Unmarshal(b, &items) != nil || len(items) == 0 {
			return MissingImage{}, ""
		}
		return parseImageRef(items[0])
	case '{':
	default:
		return MissingImage{}, ""
	}

	var obj struct {
		mediaAttrs
		Data json.RawMessage `json:"data"`
	}
	if json.Unmarshal(b, &obj) != nil {
		return MissingImage{}, ""
	}
	if obj.URL != "" {
		return FlatImage{URL: obj.URL}, obj.AlternativeText
	}

	data := bytes.TrimSpace(obj.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return MissingImage{}, ""
	}
	if data[0] == '[' {
		var items []json.RawMessage
		if json.Unmarshal(data, &items) != nil || len(items) == 0 {
			return MissingImage{}, ""
		}
		data = items[0]
	}

	var nested struct {
		Attributes mediaAttrs `json:"attributes"`
	}
	if json.Unmarshal(data, &nested) != nil || nested.Attributes.URL == "" {
		return MissingImage{}, ""
	}
	return NestedImage{URL: nested.Attributes.URL}, nested.Attributes.AlternativeText
}
