package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"HBnB/internal/cli/bootstrap"
	"HBnB/internal/cli/model"
	"HBnB/internal/config"
)

type placesCmd struct{}

func (placesCmd) Name() string        { return "places" }
func (placesCmd) Description() string { return "List places, optionally up to a max price" }
func (placesCmd) Usage() string       { return "places [max-price]" }

func (placesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	var maxPrice float64
	if len(args) == 1 && args[0] != "all" {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil || v < 0 {
			return ErrUsage
		}
		maxPrice = v
	}
	return withApp(cfg, func(app *bootstrap.App) error {
		list, err := app.Places.List(ctx, maxPrice)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(Out, "No places found")
			return nil
		}
		for _, p := range list {
			fmt.Fprintf(Out, "- %s  %s  $%.2f/night\n", p.ID, p.Title, p.Price)
		}
		fmt.Fprintf(Out, "Total: %d\n", len(list))
		return nil
	})
}

type placeCmd struct{}

func (placeCmd) Name() string        { return "place" }
func (placeCmd) Description() string { return "Show place details and its reviews" }
func (placeCmd) Usage() string       { return "place <id>" }

func (placeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return withApp(cfg, func(app *bootstrap.App) error {
		p, err := app.Places.Get(ctx, args[0])
		if err != nil {
			return err
		}
		// отзывы запрашиваем только после успешного получения места
		reviews, err := app.Reviews.ListForPlace(ctx, p.ID)
		if err != nil {
			return err
		}
		printPlace(p)
		printReviews(reviews)
		return nil
	})
}

func printPlace(p *model.Place) {
	fmt.Fprintf(Out, "id:          %s\n", p.ID)
	fmt.Fprintf(Out, "title:       %s\n", p.Title)
	fmt.Fprintf(Out, "price:       $%.2f/night\n", p.Price)
	fmt.Fprintf(Out, "location:    %.6f, %.6f\n", p.Latitude, p.Longitude)
	if p.Owner != nil {
		fmt.Fprintf(Out, "host:        %s\n", p.Owner.FullName())
	}
	fmt.Fprintf(Out, "description: %s\n", p.Description)
	if len(p.Amenities) > 0 {
		fmt.Fprintf(Out, "amenities:   %s\n", strings.Join(p.Amenities, ", "))
	}
}

func printReviews(list []model.Review) {
	if len(list) == 0 {
		fmt.Fprintln(Out, "No reviews yet")
		return
	}
	fmt.Fprintln(Out, "reviews:")
	for _, r := range list {
		author := "anonymous"
		if r.User != nil && r.User.FirstName != "" {
			author = r.User.FirstName
		}
		fmt.Fprintf(Out, "  %s (%d/5): %s\n", author, r.Rating, r.Text)
	}
}

func init() {
	RegisterCmd(placesCmd{})
	RegisterCmd(placeCmd{})
}
