package commands

import (
	"context"
	"fmt"

	"HBnB/internal/cli/bootstrap"
	"HBnB/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show whether a session is stored" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withApp(cfg, func(app *bootstrap.App) error {
		if !app.Auth.Authenticated() {
			fmt.Fprintln(Out, "Status: not logged in")
			return nil
		}
		if id, err := app.Auth.CurrentUser(); err == nil {
			fmt.Fprintf(Out, "Status: logged in (user %s)\n", id)
			return nil
		}
		fmt.Fprintln(Out, "Status: logged in")
		return nil
	})
}

func init() { RegisterCmd(statusCmd{}) }
