package announcement

import (
	"time"
)

type Target string

const (
	TargetAll        Target = "All"
	TargetIndividual Target = "Individual"
)

// Announcement is an immutable broadcast. It is visible to a user when
// Target is All or the user is the recipient.
type Announcement struct {
	ID          string
	SenderID    string
	RecipientID *string
	Target      Target
	Title       string
	Message     string
	CreatedAt   time.Time

	// DTO / join
	SenderName *string
}
