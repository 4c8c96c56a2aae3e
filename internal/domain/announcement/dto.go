package announcement

import (
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/validator"
)

type CreateAnnouncementRequest struct {
	SenderID       string  `json:"-"`
	Target         string  `json:"target"`
	Title          string  `json:"title"`
	Message        string  `json:"message"`
	RecipientID    *string `json:"recipient_id,omitempty"`
	RecipientEmail *string `json:"recipient_email,omitempty"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	if r.Target != "" && !validator.IsInSlice(r.Target, []string{string(TargetAll), string(TargetIndividual)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "target",
			Message: "target must be All or Individual",
		})
	}

	if r.Target == string(TargetIndividual) && r.RecipientID == nil && r.RecipientEmail == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "recipient",
			Message: "recipient_id or recipient_email is required for an individual announcement",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AnnouncementResponse struct {
	ID          string  `json:"id"`
	SenderID    string  `json:"sender_id"`
	RecipientID *string `json:"recipient_id,omitempty"`
	Target      string  `json:"target"`
	Title       string  `json:"title"`
	Message     string  `json:"message"`
	CreatedAt   string  `json:"created_at"`
	SenderName  *string `json:"sender_name,omitempty"`
}
