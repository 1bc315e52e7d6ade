package notify

// ApplicationReceivedEvent is published when a volunteer's application is
// first created. Duplicate applies never re-publish it.
type ApplicationReceivedEvent struct {
	ApplicationID uint   `json:"application_id"`
	ProgramID     uint   `json:"program_id"`
	ProgramName   string `json:"program_name"`
	Email         string `json:"email"`
}
