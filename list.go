package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/birthday-invite/gaurav-dawande/internal/rsvpclient"
	"github.com/birthday-invite/gaurav-dawande/internal/webserver/model"
	"go.uber.org/zap"
)

func (l *ListCmd) Run(logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(l.Timeout)*time.Second)
	defer cancel()

	client := rsvpclient.New(l.Server)
	rsvps, err := client.List(ctx)
	if err != nil {
		return err
	}
	logger.Debug("guest list fetched", zap.String("server", l.Server), zap.Int("rsvps", len(rsvps)))

	return printGuestList(os.Stdout, rsvps)
}

func printGuestList(out io.Writer, rsvps []model.Rsvp) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tGUESTS\tSTATUS\tRECEIVED")
	for _, r := range rsvps {
		email := "-"
		if r.Email != nil {
			email = *r.Email
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n", r.ID, r.Name, email, r.GuestCount, r.Status, r.CreatedAt.Format(time.DateTime))
	}

	tally := model.NewTally(rsvps)
	fmt.Fprintf(w, "\nAttending: %d\tDeclined: %d\tExpected guests: %d\n", tally.Attending, tally.Declined, tally.Guests)

	return w.Flush()
}
