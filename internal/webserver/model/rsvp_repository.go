package model

import (
	"gorm.io/gorm"
)

type RsvpRepository struct {
	DB *gorm.DB
}

// Create inserts rsvp and fills in its generated ID and CreatedAt.
func (r *RsvpRepository) Create(rsvp *Rsvp) error {
	if result := r.DB.Create(rsvp); result.Error != nil {
		return &StorageError{Op: "creating", Err: result.Error}
	}
	return nil
}

// List returns every stored rsvp, oldest first.
func (r *RsvpRepository) List() ([]Rsvp, error) {
	rsvps := []Rsvp{}

	if result := r.DB.Order("id ASC").Find(&rsvps); result.Error != nil {
		return nil, &StorageError{Op: "listing", Err: result.Error}
	}
	if rsvps == nil {
		rsvps = []Rsvp{}
	}
	return rsvps, nil
}
