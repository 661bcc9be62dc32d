// Package firestore implements the repositories on Cloud Firestore, keeping
// the document layout of the hosted deployment: posts, users/{uid} and
// credentials collections.
package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	postsCollection       = "posts"
	usersCollection       = "users"
	credentialsCollection = "credentials"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// New returns the Firestore client of the Firebase project and closes it on shutdown.
func New(params Params) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Firestore client initialized")

	return client, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
