package media

import "strings"

// DataURI holds the parsed pieces of a data:<media-type>;<scheme>,<payload>
// value.
type DataURI struct {
	MediaType string
	Scheme    string
	Payload   string
}

// Subtype returns the media subtype, e.g. "png" for "image/png".
func (d DataURI) Subtype() string {
	_, subtype, ok := strings.Cut(d.MediaType, "/")
	if !ok {
		return ""
	}
	return subtype
}

// ParseDataURI splits a data URI into its media type, encoding scheme and
// payload. The second return value reports whether value matched the
// data:<media-type>;<scheme>,<payload> shape at all.
func ParseDataURI(value string) (DataURI, bool) {
	rest, ok := strings.CutPrefix(value, "data:")
	if !ok {
		return DataURI{}, false
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return DataURI{}, false
	}

	mediaType, scheme, ok := strings.Cut(meta, ";")
	if !ok || mediaType == "" || scheme == "" {
		return DataURI{}, false
	}

	return DataURI{MediaType: mediaType, Scheme: scheme, Payload: payload}, true
}
