package main

import (
	"context"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"inkwell/internal/dashboard/crud"
	"inkwell/internal/domain/entity"
	"inkwell/internal/util"

	"github.com/pkg/errors"
)

const defaultFeedLimit = 3

func runFeed(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("feed", a.out)
	limit := fs.Int("limit", defaultFeedLimit, "number of posts (max 50)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	posts, err := a.api.ListRecent(ctx, *limit)
	if err != nil {
		return err
	}
	renderPostList(a.out, posts)

	return nil
}

func runCategory(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("category", a.out)
	id := fs.String("id", "", "show the full post with this id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		a.printf("categories: %v\n", entity.AllCategories())

		return errors.New("usage: inkctl category [-id <post id>] <category>")
	}

	if err := a.browser.Open(ctx, entity.Category(fs.Arg(0))); err != nil {
		return err
	}

	if *id != "" {
		post, err := a.browser.Detail(*id)
		if err != nil {
			return errors.Wrapf(err, "post %s is not in %s", *id, fs.Arg(0))
		}
		renderPost(a.out, post)

		return nil
	}

	renderCards(a.out, a.browser.Category(), a.browser.Cards())

	return nil
}

func runAuthor(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("author", a.out)
	name := fs.String("name", "", "author display name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	posts, err := a.api.ListByAuthor(ctx, *name)
	if err != nil {
		return err
	}
	renderPostList(a.out, posts)

	return nil
}

func runShow(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("show", a.out)
	html := fs.Bool("html", false, "print the rendered HTML body")
	qrPath := fs.String("qr", "", "write a share QR code PNG to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: inkctl show [-html] [-qr file.png] <post id>")
	}
	id := fs.Arg(0)

	if *html {
		rendered, err := a.api.RenderPost(ctx, id)
		if err != nil {
			return err
		}
		renderHeader(a.out, rendered.Post)
		a.printf("\n%s\n", rendered.HTML)
	} else {
		post, err := a.api.GetPost(ctx, id)
		if err != nil {
			return err
		}
		renderPost(a.out, post)
	}

	if *qrPath != "" {
		png, err := a.api.ShareCode(ctx, id)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*qrPath, png, 0o644); err != nil {
			return errors.Wrap(err, "failed to write QR code")
		}
		a.printf("QR code written to %s\n", *qrPath)
	}

	return nil
}

func runMine(ctx context.Context, a *app, _ []string) error {
	if err := a.loadDashboard(ctx); err != nil {
		return err
	}

	renderPostList(a.out, a.posts.Items())
	a.printf("\n")
	renderBreakdown(a.out, a.posts.Breakdown())

	return nil
}

func runCreate(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("create", a.out)
	title := fs.String("title", "", "post title")
	content := fs.String("content", "", "post body (markdown)")
	contentFile := fs.String("content-file", "", "read the body from this file")
	category := fs.String("category", "", "one of Tech, Lifestyle, Health, Education, Entertainment")
	imageURL := fs.String("image", "", "image URL")
	imageFile := fs.String("image-file", "", "upload this image and use it")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.loadDashboard(ctx); err != nil {
		return err
	}

	body, err := contentOrFile(*content, *contentFile)
	if err != nil {
		return err
	}

	image := *imageURL
	if *imageFile != "" {
		if image, err = a.upload(ctx, *imageFile); err != nil {
			return err
		}
	}

	post, err := a.posts.Create(ctx, entity.PostDraft{
		Title:    *title,
		Content:  body,
		Category: entity.Category(*category),
		ImageURL: image,
	})
	if err != nil {
		return err
	}

	a.printf("Published %s (%s)\n", post.ID, post.Title)

	return nil
}

func runEdit(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("edit", a.out)
	title := fs.String("title", "", "new title")
	content := fs.String("content", "", "new body")
	contentFile := fs.String("content-file", "", "read the new body from this file")
	imageURL := fs.String("image", "", "new image URL")
	imageFile := fs.String("image-file", "", "upload this image and use it")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: inkctl edit [-title t] [-content c] [-image url] <post id>")
	}
	if err := a.loadDashboard(ctx); err != nil {
		return err
	}

	if err := a.posts.BeginEdit(fs.Arg(0)); err != nil {
		return notYours(err, fs.Arg(0))
	}

	if isSet(fs, "title") {
		if err := a.posts.SetTitle(*title); err != nil {
			return err
		}
	}
	if isSet(fs, "content") || *contentFile != "" {
		body, err := contentOrFile(*content, *contentFile)
		if err != nil {
			return err
		}
		if err := a.posts.SetContent(body); err != nil {
			return err
		}
	}
	switch {
	case *imageFile != "":
		uploaded, err := a.upload(ctx, *imageFile)
		if err != nil {
			return err
		}
		if err := a.posts.SetImageURL(uploaded); err != nil {
			return err
		}
	case isSet(fs, "image"):
		if err := a.posts.SetImageURL(*imageURL); err != nil {
			return err
		}
	}

	if err := a.posts.Save(ctx); err != nil {
		return errors.New(a.posts.LastError())
	}

	post, _ := a.posts.Find(fs.Arg(0))
	a.printf("Saved %s\n", post.ID)
	renderHeader(a.out, post)

	return nil
}

func runDelete(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("delete", a.out)
	yes := fs.Bool("yes", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: inkctl delete [-yes] <post id>")
	}
	id := fs.Arg(0)
	if err := a.loadDashboard(ctx); err != nil {
		return err
	}

	if err := a.posts.BeginDelete(id); err != nil {
		return notYours(err, id)
	}

	post, _ := a.posts.Selected()
	if !*yes && !a.confirm("Delete "+strconv.Quote(post.Title)+"?") {
		a.printf("Cancelled\n")

		return a.posts.Cancel()
	}

	if err := a.posts.ConfirmDelete(ctx); err != nil {
		return errors.New(a.posts.LastError())
	}
	a.printf("Deleted %s\n", id)

	return nil
}

func runUpload(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("upload", a.out)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: inkctl upload <image file>")
	}
	if _, err := a.requireSession(); err != nil {
		return err
	}

	info, err := os.Stat(fs.Arg(0))
	if err != nil {
		return errors.Wrap(err, "failed to stat image")
	}

	url, err := a.upload(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	a.printf("Uploaded %s (%s)\n%s\n", filepath.Base(fs.Arg(0)), util.FormatBytes(info.Size()), url)

	return nil
}

func (a *app) loadDashboard(ctx context.Context) error {
	userID, err := a.requireSession()
	if err != nil {
		return err
	}

	return a.posts.Load(ctx, userID)
}

func (a *app) upload(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to open image")
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return a.api.UploadImage(ctx, filepath.Base(path), contentType, f)
}

func contentOrFile(content, path string) (string, error) {
	if path == "" {
		return content, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to read content file")
	}

	return string(data), nil
}

func notYours(err error, id string) error {
	if errors.Is(err, crud.ErrNotHeld) {
		return errors.Errorf("post %s is not one of yours", id)
	}

	return err
}
