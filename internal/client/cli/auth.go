package cli

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/snaphire/internal/common"
	"github.com/dmitrijs2005/snaphire/internal/logging"
)

// Signup asks for a user ID and a password, re-prompting a field while it is
// rejected, and creates the account. Each field gets config.MaxAttempts
// tries (0 means no limit).
//
// Only input and context errors are returned; everything else is reported
// to the user and the main menu is shown again.
func (a *App) Signup(ctx context.Context) error {
	err := a.signup(ctx)
	switch {
	case err == nil:
		a.console.println("Signup successful! You can now login.")
	case errors.Is(err, common.ErrTooManyAttempts):
		a.console.println("Too many invalid attempts.")
	case errors.Is(err, common.ErrAlreadyExists):
		a.console.println(userMessage(err))
	case errors.Is(err, common.ErrStorage):
		a.console.println("Error: Could not create user file.")
	default:
		return err
	}

	a.console.println("")
	return a.console.pause()
}

func (a *App) signup(ctx context.Context) error {
	var id string
	err := a.retry(func() (err error) {
		if id, err = a.console.ask("User ID: "); err != nil {
			return err
		}
		return a.authService.CheckID(ctx, id)
	})
	if err != nil {
		return err
	}

	var secret []byte
	defer func() { common.WipeByteArray(secret) }()
	err = a.retry(func() (err error) {
		common.WipeByteArray(secret)
		if secret, err = a.console.askSecret("Password: "); err != nil {
			return err
		}
		return a.authService.CheckSecret(secret)
	})
	if err != nil {
		return err
	}

	if err := a.authService.Signup(ctx, id, secret); err != nil {
		a.log.Warn(ctx, "signup failed", "error", err)
		return err
	}
	return nil
}

// retry runs step until it succeeds, fails with an error the user cannot fix
// by typing again, or runs out of attempts.
func (a *App) retry(step func() error) error {
	for attempt := 1; ; attempt++ {
		err := step()
		if err == nil || !isInputError(err) {
			return err
		}

		a.console.println(userMessage(err))
		if a.config.MaxAttempts > 0 && attempt >= a.config.MaxAttempts {
			return common.ErrTooManyAttempts
		}
		a.console.println("Press ENTER to try again!")
		if _, err := a.console.readLine(); err != nil {
			return err
		}
	}
}

func isInputError(err error) bool {
	return errors.Is(err, common.ErrTooShortID) ||
		errors.Is(err, common.ErrAlreadyExists) ||
		errors.Is(err, common.ErrTooShortSecret) ||
		errors.Is(err, common.ErrInvalidSecret)
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrTooShortID):
		return "User ID must contain at least 3 characters!"
	case errors.Is(err, common.ErrAlreadyExists):
		return "User ID already exists! Try a different User ID!"
	case errors.Is(err, common.ErrTooShortSecret):
		return "Password must be at least 4 characters or numbers!"
	case errors.Is(err, common.ErrInvalidSecret):
		return "Password must fit on a single line!"
	default:
		return err.Error()
	}
}

// Login asks for credentials and, when they match, opens the user menu for
// a new session. Attempts are throttled by the login rate limiter.
func (a *App) Login(ctx context.Context) error {
	if err := a.limiter.Wait(ctx); err != nil {
		return err
	}

	id, err := a.console.ask("User ID: ")
	if err != nil {
		return err
	}
	secret, err := a.console.askSecret("Password: ")
	if err != nil {
		return err
	}
	ok := a.authService.Login(ctx, id, secret)
	common.WipeByteArray(secret)

	if !ok {
		a.log.Info(ctx, "login failed")
		a.console.println("Login failed!")
		a.console.println("")
		return a.console.pause()
	}

	log := a.log.With("session", uuid.NewString())
	log.Info(ctx, "login succeeded")

	a.console.println("Login successful!")
	a.console.println("")
	if err := a.console.pause(); err != nil {
		return err
	}
	return a.userLoop(ctx, log)
}

func (a *App) userLoop(ctx context.Context, log logging.Logger) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.console.clearScreen()
		opt, err := a.console.choose(userMenu)
		if err != nil {
			return err
		}
		a.console.clearScreen()

		switch opt {
		case userServices:
			err = a.servicesLoop(ctx, log)
		case userSupport:
			err = a.Support()
		case userAbout:
			err = a.About()
		case userLogout:
			log.Info(ctx, "logout")
			a.console.println("Logging out...")
			a.console.println("")
			return a.console.pause()
		}
		if err != nil {
			return err
		}
	}
}
