package models

// DirectoryEntry is one element of a remote directory listing. Only the
// fields the filter reads are decoded.
type DirectoryEntry struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type RefreshResult struct {
	IconSet        string         `json:"icon_set,omitempty"`
	SourceURL      string         `json:"source_url"`
	OutputPath     string         `json:"output_path"`
	Names          []string       `json:"names"`
	Count          int            `json:"count"`
	TotalSizeBytes int64          `json:"total_size_bytes"`
	TotalSizeHuman string         `json:"total_size_human"`
	OperationTime  string         `json:"operation_time"`
	Duration       string         `json:"duration"`
	Published      *PublishResult `json:"published,omitempty"`
}

type PublishResult struct {
	BucketName  string `json:"bucket_name"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type SetsResult struct {
	Refreshed []RefreshResult `json:"refreshed"`
	Failed    []string        `json:"failed,omitempty"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	Command   string `json:"command"`
}
