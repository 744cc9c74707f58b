package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
)

// List refreshes the collection from the backend and renders it.
func (a *App) List(ctx context.Context) error {
	a.accounts.FetchAll(ctx)
	a.renderAccounts()
	return nil
}

// Add prompts for a new account draft and submits it. On success the
// store clears the draft and reloads the canonical collection.
func (a *App) Add(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter account username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	a.accounts.SetDialogOpen(true)
	a.accounts.SetDraft(models.AccountDraft{Username: username, Password: password})
	a.accounts.Create(ctx)
	a.renderAccounts()
	return nil
}

// Delete prompts for a server id and removes that account.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter account id", a.out)
	if err != nil {
		return err
	}

	a.accounts.Delete(ctx, id)
	a.renderAccounts()
	return nil
}

// Toggle flips the display enablement of the collection. Disabling
// only clears the local view; the server-side accounts are untouched.
func (a *App) Toggle(ctx context.Context) error {
	a.accounts.ToggleEnabled(ctx)

	state := a.accounts.Snapshot()
	if state.Enabled {
		fmt.Fprintln(a.out, "Accounts display enabled")
		a.renderAccounts()
	} else {
		fmt.Fprintln(a.out, "Accounts display disabled")
	}
	return nil
}

func (a *App) renderAccounts() {
	state := a.accounts.Snapshot()
	if !state.Enabled {
		fmt.Fprintln(a.out, "(accounts display is disabled)")
		return
	}
	if len(state.Accounts) == 0 {
		fmt.Fprintln(a.out, "(no accounts)")
		return
	}
	for _, account := range state.Accounts {
		fmt.Fprintf(a.out, "%3d  %-24s  %-10s  %s\n",
			account.DisplayIndex, account.Username, account.Status, account.ID)
	}
}
