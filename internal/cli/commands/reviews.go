package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"HBnB/internal/cli/bootstrap"
	"HBnB/internal/config"
)

type reviewsCmd struct{}

func (reviewsCmd) Name() string        { return "reviews" }
func (reviewsCmd) Description() string { return "List reviews of a place" }
func (reviewsCmd) Usage() string       { return "reviews <place-id>" }

func (reviewsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return withApp(cfg, func(app *bootstrap.App) error {
		list, err := app.Reviews.ListForPlace(ctx, args[0])
		if err != nil {
			return err
		}
		printReviews(list)
		return nil
	})
}

type reviewAddCmd struct{}

func (reviewAddCmd) Name() string        { return "review-add" }
func (reviewAddCmd) Description() string { return "Submit a review (requires login)" }
func (reviewAddCmd) Usage() string       { return "review-add <place-id> <rating 1-5> <text...>" }

func (reviewAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	rating, err := strconv.Atoi(args[1])
	if err != nil {
		return ErrUsage
	}
	text := strings.Join(args[2:], " ")
	return withApp(cfg, func(app *bootstrap.App) error {
		r, err := app.Reviews.Submit(ctx, args[0], rating, text)
		if err != nil {
			return err
		}
		if r.ID != "" {
			fmt.Fprintf(Out, "Review submitted successfully (id %s)\n", r.ID)
			return nil
		}
		fmt.Fprintln(Out, "Review submitted successfully")
		return nil
	})
}

func init() {
	RegisterCmd(reviewsCmd{})
	RegisterCmd(reviewAddCmd{})
}
