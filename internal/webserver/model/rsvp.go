package model

import "time"

const (
	StatusAttending = "attending"
	StatusDeclined  = "declined"
)

// Rsvp is a guest's attendance response. The same struct defines the persisted
// row and the rules a submission must pass before it can become one.
type Rsvp struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"not null" json:"name" validate:"required"`
	Email      *string   `json:"email" validate:"omitempty,email"`
	GuestCount int       `gorm:"not null; default:1" json:"guestCount" validate:"min=1"`
	Status     string    `gorm:"not null; default:attending" json:"status" validate:"oneof=attending declined"`
	Message    *string   `json:"message"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (r Rsvp) Attending() bool {
	return r.Status == StatusAttending
}

// Tally summarizes a guest list: how many parties answered each way and how many
// people are expected in total.
type Tally struct {
	Attending int
	Declined  int
	Guests    int
}

func NewTally(rsvps []Rsvp) Tally {
	var t Tally
	for _, r := range rsvps {
		if r.Attending() {
			t.Attending++
			t.Guests += r.GuestCount
			continue
		}
		t.Declined++
	}
	return t
}
