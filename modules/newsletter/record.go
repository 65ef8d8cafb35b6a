package newsletter

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a newsletter record.
type Status string

const (
	StatusDraft Status = "draft"
	StatusSent  Status = "sent"
)

// Newsletter is the persisted record: the document content plus the send
// metadata maintained around it. Content is owned by exactly one editing
// session at a time; the record is saved as a whole.
type Newsletter struct {
	ID              uuid.UUID  `json:"id"`
	MainTitle       string     `json:"main_title"`
	SubTitle        string     `json:"sub_title"`
	DisplayDate     string     `json:"display_date"` // display string, never parsed
	Sections        []Section  `json:"sections"`
	Status          Status     `json:"status"`
	RecipientsCount int        `json:"recipients_count"`
	CreatedAt       time.Time  `json:"created_at"`
	SentAt          *time.Time `json:"sent_at,omitempty"`
}

// Document assembles the content tree from the record fields.
func (n Newsletter) Document() Document {
	return Document{
		MainTitle: n.MainTitle,
		SubTitle:  n.SubTitle,
		Date:      n.DisplayDate,
		Sections:  n.Sections,
	}
}

// SubscriberStatus enumerates the states a subscriber can be in.
type SubscriberStatus string

const (
	SubscriberActive       SubscriberStatus = "active"
	SubscriberUnsubscribed SubscriberStatus = "unsubscribed"
	SubscriberBounced      SubscriberStatus = "bounced"
)

// Subscriber is a single recipient on the distribution list.
type Subscriber struct {
	ID               uuid.UUID        `json:"id"`
	Email            string           `json:"email"`
	UnsubscribeToken string           `json:"-"`
	Status           SubscriberStatus `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
}
