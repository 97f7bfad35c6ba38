package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.sessions.Register(ctx, username, email, string(password)); err != nil {
		a.showError(err, true)
		return err
	}

	fmt.Fprintln(a.out, "Registered! Run 'login' to sign in.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.sessions.Login(ctx, username, string(password)); err != nil {
		a.showError(err, false)
		return err
	}

	a.userName = username
	fmt.Fprintln(a.out, "Logged in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		a.showError(err, false)
		return err
	}

	a.userName = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
