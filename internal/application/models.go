package application

// ActivityDetail is the caller-facing view of one activity and its roster.
type ActivityDetail struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Confirmation reports a successful signup or unregister operation.
type Confirmation struct {
	Email        string
	ActivityName string
}
