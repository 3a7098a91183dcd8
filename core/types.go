package core

// SourceKind identifies where a raw image input comes from.
type SourceKind int

const (
	SourceBase64 SourceKind = iota
	SourceLocalPath
	SourcePublicURL
)

func (k SourceKind) String() string {
	switch k {
	case SourceBase64:
		return "base64"
	case SourceLocalPath:
		return "local"
	case SourcePublicURL:
		return "url"
	}
	return "unknown"
}

// ImageDescriptor is the per-image metadata record assembled during query
// validation. It lives for the duration of one query call and is never
// persisted.
type ImageDescriptor struct {
	// Raw is the input exactly as the caller provided it: a data URI, a
	// local file path or a public URL.
	Raw      string
	Source   SourceKind
	FileType string
	SizeMB   float64

	// Data caches the materialized bytes from validation so the uploader
	// does not fetch them a second time.
	Data []byte
}

// QueryRequest describes one invocation of a hosted function. Text and
// images may not both be empty.
type QueryRequest struct {
	FunctionName string

	// VersionNumber selects the function version to query. nil means the
	// latest version.
	VersionNumber *int

	Text   string
	Images []string

	// ReturnReasoning asks the service to include its reasoning steps in
	// the response.
	ReturnReasoning bool
}

// QueryResponse is the unwrapped result of a function invocation. Remote
// warnings are surfaced through the client's warning handler during
// unwrapping and are not retained here.
type QueryResponse struct {
	Output         map[string]any
	InputTokens    int64
	OutputTokens   int64
	LatencyMS      float64
	ReasoningSteps []string
}

// BuildResult describes a freshly built function.
type BuildResult struct {
	FunctionName  string
	VersionNumber int
	Description   string
}

// BatchInput is one item of a batch query.
type BatchInput struct {
	Text   string
	Images []string

	// VersionNumber selects the function version for this item. nil means
	// the latest version.
	VersionNumber *int

	ReturnReasoning bool
}
