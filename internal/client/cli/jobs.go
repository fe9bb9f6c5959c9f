package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/snaphire/internal/client/models"
	"github.com/dmitrijs2005/snaphire/internal/common"
	"github.com/dmitrijs2005/snaphire/internal/logging"
)

func (a *App) servicesLoop(ctx context.Context, log logging.Logger) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.console.clearScreen()
		opt, err := a.console.choose(servicesMenu)
		if err != nil {
			return err
		}
		a.console.clearScreen()

		switch opt {
		case servicesBrowse:
			err = a.Browse(ctx, log)
		case servicesPost:
			err = a.Post(ctx, log)
		case servicesBack:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Browse asks for a profession and prints every stored listing line for it.
func (a *App) Browse(ctx context.Context, log logging.Logger) error {
	a.console.clearScreen()
	a.console.println("BROWSE JOBS")
	a.console.println("")

	profession, err := a.console.askNonEmpty("Enter profession/job name: ")
	if err != nil {
		return err
	}

	lines, err := a.jobService.Browse(ctx, profession)
	switch {
	case err != nil:
		log.Error(ctx, "browse jobs", "error", err)
		a.console.println("Error: Could not read jobs.")
	case len(lines) == 0:
		a.console.println("No jobs found for this profession.")
	default:
		a.console.println("Job Listings:")
		a.console.println("")
		for _, line := range lines {
			a.console.println(line)
		}
	}

	a.console.println("")
	return a.console.pause()
}

// Post asks for the listing fields one by one and appends the listing.
func (a *App) Post(ctx context.Context, log logging.Logger) error {
	a.console.clearScreen()
	a.console.println("POST A JOB")
	a.console.println("")

	var (
		l   models.Listing
		err error
	)
	if l.Profession, err = a.console.askNonEmpty(models.LabelProfession); err != nil {
		return err
	}
	fields := []struct {
		label string
		dst   *string
	}{
		{models.LabelName, &l.Name},
		{models.LabelGender, &l.Gender},
		{models.LabelContact, &l.Contact},
		{models.LabelAddress, &l.Address},
		{models.LabelFees, &l.Fees},
		{models.LabelDescription, &l.Description},
	}
	for _, f := range fields {
		if *f.dst, err = a.console.ask(f.label); err != nil {
			return err
		}
	}

	if err := a.jobService.Post(ctx, l); err != nil {
		log.Error(ctx, "post job", "error", err)
		if errors.Is(err, common.ErrEmptyProfession) {
			a.console.println("Profession must not be empty.")
		} else {
			a.console.println("Error: Could not save job.")
		}
	} else {
		a.console.println("Job posted successfully!")
	}

	a.console.println("")
	return a.console.pause()
}
