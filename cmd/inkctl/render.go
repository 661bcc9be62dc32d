package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"inkwell/internal/dashboard"
	"inkwell/internal/domain/entity"
	"inkwell/internal/util"
)

const (
	dateLayout   = "Jan 2, 2006"
	barWidth     = 30
	barCharacter = "#"
)

func renderPostList(w io.Writer, posts []*entity.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts yet.")

		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tCATEGORY\tPOSTED")
	now := time.Now()
	for _, post := range posts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", post.ID, post.Title, post.Author, post.Category, util.FormatAge(post.CreatedAt, now))
	}
	_ = tw.Flush()
}

func renderCards(w io.Writer, category entity.Category, cards []dashboard.Card) {
	fmt.Fprintf(w, "%s\n%s\n", category, strings.Repeat("=", len(category)))
	if len(cards) == 0 {
		fmt.Fprintln(w, "No posts in this category yet.")

		return
	}

	for _, card := range cards {
		fmt.Fprintf(w, "\n[%s] %s\n  by %s\n  %s\n", card.ID, card.Title, card.Author, card.Excerpt)
	}
}

func renderHeader(w io.Writer, post *entity.Post) {
	fmt.Fprintf(w, "%s\n", post.Title)
	fmt.Fprintf(w, "by %s in %s on %s\n", post.Author, post.Category, post.CreatedAt.Format(dateLayout))
	if post.UpdatedAt != nil {
		fmt.Fprintf(w, "updated %s\n", post.UpdatedAt.Format(dateLayout))
	}
	if post.ImageURL != "" {
		fmt.Fprintf(w, "image: %s\n", post.ImageURL)
	}
}

func renderPost(w io.Writer, post *entity.Post) {
	renderHeader(w, post)
	fmt.Fprintf(w, "\n%s\n", post.Content)
}

// renderBreakdown draws a horizontal bar per category.
func renderBreakdown(w io.Writer, counts []entity.CategoryCount) {
	largest := 0
	for _, c := range counts {
		largest = max(largest, c.Count)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range counts {
		bar := ""
		if largest > 0 {
			bar = strings.Repeat(barCharacter, c.Count*barWidth/largest)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", c.Category, c.Count, bar)
	}
	_ = tw.Flush()
}
