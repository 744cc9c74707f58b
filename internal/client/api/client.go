// Package api defines the transport client used by the accountkeeper
// services to talk to the IAM and account-service backends, together
// with its HTTP/JSON implementation.
package api

import (
	"context"

	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
)

// Client is the remote API surface consumed by the session manager and
// the account store.
//
// Contract:
//   - Register: create a new user; returns the issued token pair.
//   - Login: authenticate; returns the issued token pair.
//   - GoogleLoginURL: the federated-login entry point. This is a
//     navigation target for a full-page hand-off, never fetched here.
//   - ListAccounts: the full managed-account collection, in server order.
//   - SaveAccount: create an account from a draft.
//   - DeleteAccount: delete an account by server-assigned id.
//   - Ping: backend liveness probe.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Register(ctx context.Context, creds models.Credentials) (models.Session, error)
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)
	GoogleLoginURL() string
	ListAccounts(ctx context.Context) ([]models.Account, error)
	SaveAccount(ctx context.Context, draft models.AccountDraft) error
	DeleteAccount(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
