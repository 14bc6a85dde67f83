package commands

import (
	"context"
	"fmt"

	"HBnB/internal/cli/api"
	"HBnB/internal/cli/bootstrap"
	"HBnB/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the auth token" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	return withApp(cfg, func(app *bootstrap.App) error {
		if err := app.Auth.Login(ctx, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Logged in successfully")
		app.Session.Go(api.SurfaceIndex)
		return nil
	})
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the stored auth token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withApp(cfg, func(app *bootstrap.App) error {
		app.Auth.Logout()
		fmt.Fprintln(Out, "Logged out")
		return nil
	})
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
}
