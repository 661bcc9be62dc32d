package main

import (
	"context"
	"sort"

	"inkwell/internal/domain/entity"
)

func runStats(ctx context.Context, a *app, _ []string) error {
	counts, err := a.api.CategoryCounts(ctx)
	if err != nil {
		return err
	}
	a.printf("All posts\n")
	renderBreakdown(a.out, counts)

	if a.gate.Session() == nil {
		return nil
	}

	stats, err := a.api.AuthorStats(ctx)
	if err != nil {
		return err
	}
	a.printf("\nYour posts: %d\n", stats.TotalPosts)
	if stats.LastPostTitle != "" && stats.LastPostedAt != nil {
		a.printf("Latest:     %s (%s)\n", stats.LastPostTitle, stats.LastPostedAt.Format(dateLayout))
	}
	renderBreakdown(a.out, stats.ByCategory)

	return nil
}

func runContact(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("contact", a.out)
	name := fs.String("name", "", "your name")
	email := fs.String("email", "", "your email")
	message := fs.String("message", "", "message to send")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *message != "" {
		if err := a.api.SubmitContact(ctx, entity.ContactMessage{Name: *name, Email: *email, Message: *message}); err != nil {
			return err
		}
		a.printf("Message sent, thank you!\n")

		return nil
	}

	info, err := a.api.ContactInfo(ctx)
	if err != nil {
		return err
	}

	a.printf("Email: %s\n", info.Email)
	names := make([]string, 0, len(info.Socials))
	for network := range info.Socials {
		names = append(names, network)
	}
	sort.Strings(names)
	for _, network := range names {
		a.printf("%-8s %s\n", network+":", info.Socials[network])
	}
	if info.Location != nil {
		point := info.Location.Geometry.Bound().Center()
		label, _ := info.Location.Properties["name"].(string)
		a.printf("Find me: %s (%.4f, %.4f)\n", label, point.Lat(), point.Lon())
	}

	return nil
}
