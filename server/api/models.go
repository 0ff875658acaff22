package api

type SpeechRequest struct {
	Text string `json:"text"`

	Speakers []Speaker `json:"speakers,omitempty"`

	SaveToDisk bool   `json:"save_to_disk,omitempty"`
	Filename   string `json:"filename,omitempty"`

	Model string `json:"model,omitempty"`
	Voice string `json:"voice,omitempty"`
}

type Speaker struct {
	Name  string `json:"name"`
	Voice string `json:"voice"`
}

type ChunkedRequest struct {
	Chunks []string `json:"chunks"`

	Speakers []Speaker `json:"speakers,omitempty"`

	// Merge is accepted for compatibility but has no effect: chunks are
	// always written as separate files.
	Merge bool `json:"merge,omitempty"`

	Model string `json:"model,omitempty"`
}

type FileResponse struct {
	Message string `json:"message"`

	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
}

type ChunkFile struct {
	ChunkIndex int    `json:"chunk_index"`
	Filename   string `json:"filename"`
	Path       string `json:"path"`
	Size       int64  `json:"size"`
}

type ChunkedResponse struct {
	Message string `json:"message"`

	AudioFiles  []ChunkFile `json:"audio_files"`
	TotalChunks int         `json:"total_chunks"`
}

type VoicesResponse struct {
	AvailableVoices []string `json:"available_voices"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
