package dto

type RunCycleResponse struct {
	Skipped          bool     `json:"skipped,omitempty"`
	Reason           string   `json:"reason,omitempty"`
	MissionsTouched  int      `json:"missions_touched"`
	MessagesCreated  int      `json:"messages_created"`
	ClaimsCreated    int      `json:"claims_created"`
	CitationsCreated int      `json:"citations_created"`
	Errors           []string `json:"errors,omitempty"`
}

type SeedResponse struct {
	AlreadySeeded    bool     `json:"already_seeded,omitempty"`
	Version          string   `json:"version"`
	SourcesCreated   int      `json:"sources_created"`
	MissionsCreated  int      `json:"missions_created"`
	MessagesCreated  int      `json:"messages_created"`
	ClaimsCreated    int      `json:"claims_created"`
	CitationsCreated int      `json:"citations_created"`
	Log              []string `json:"log,omitempty"`
}
