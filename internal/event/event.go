// Package event holds the details of the celebration shown on the landing page.
package event

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const startsAtLayout = "2006-01-02T15:04:05"

// Details is read from a YAML file when one is given, with environment variables
// and defaults filling whatever the file leaves out.
type Details struct {
	Title      string `yaml:"title" env:"EVENT_TITLE" env-default:"The Big 30"`
	Tagline    string `yaml:"tagline" env:"EVENT_TAGLINE" env-default:"Join us for a night of elegance, laughter, and celebration as we ring in a new decade."`
	StartsAt   string `yaml:"starts_at" env:"EVENT_STARTS_AT" env-default:"2025-10-25T19:00:00"`
	Timezone   string `yaml:"timezone" env:"EVENT_TIMEZONE" env-default:"Local"`
	TimeLabel  string `yaml:"time_label" env:"EVENT_TIME_LABEL" env-default:"7:00 PM - Late"`
	TimeNote   string `yaml:"time_note" env:"EVENT_TIME_NOTE" env-default:"Cocktail Hour starts at 7"`
	Venue      string `yaml:"venue" env:"EVENT_VENUE" env-default:"The Grand Ballroom, City Center"`
	Address    string `yaml:"address" env:"EVENT_ADDRESS" env-default:"123 Celebration Ave, Downtown"`
	Attire     string `yaml:"attire" env:"EVENT_ATTIRE" env-default:"Cocktail Attire"`
	AttireNote string `yaml:"attire_note" env:"EVENT_ATTIRE_NOTE" env-default:"Dress to impress!"`
	RsvpBy     string `yaml:"rsvp_by" env:"EVENT_RSVP_BY" env-default:"October 1st"`
	// MaxGuests is only a hint for the form, submissions above it are accepted.
	MaxGuests int `yaml:"max_guests" env:"EVENT_MAX_GUESTS" env-default:"5"`
}

type Event struct {
	Details
	start time.Time
}

// Load reads the event details from path, or from the environment alone when
// path is empty.
func Load(path string) (Event, error) {
	var ev Event

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&ev.Details)
	} else {
		err = cleanenv.ReadConfig(path, &ev.Details)
	}
	if err != nil {
		return Event{}, fmt.Errorf("error reading event details: %w", err)
	}

	if err := ev.parseStart(); err != nil {
		return Event{}, err
	}
	return ev, nil
}

func (e *Event) parseStart() error {
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return fmt.Errorf("unknown event timezone '%s': %w", e.Timezone, err)
	}
	start, err := time.ParseInLocation(startsAtLayout, e.StartsAt, loc)
	if err != nil {
		return fmt.Errorf("event start '%s' must follow the format %s: %w", e.StartsAt, startsAtLayout, err)
	}
	e.start = start
	return nil
}

// Start returns the moment the event begins.
func (e Event) Start() time.Time {
	return e.start
}

// WithStart returns a copy of e starting at t. Mostly useful in tests.
func (e Event) WithStart(t time.Time) Event {
	e.start = t
	e.StartsAt = t.Format(startsAtLayout)
	e.Timezone = t.Location().String()
	return e
}
