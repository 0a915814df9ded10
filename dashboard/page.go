// Package dashboard holds the page controllers of the admin and student
// dashboards. A page loads its data through the domain services, keeps a
// loading/error state, and renders itself as text tables.
package dashboard

import (
	"context"
	"io"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/rs/zerolog/log"
)

type Page interface {
	Title() string
	// Load fetches the page data. A failure is also kept in the page state so
	// Render can show it.
	Load(ctx context.Context) error
	Render(w io.Writer) error
}

// SessionHandler clears a rejected session. auth.Service implements it.
type SessionHandler interface {
	HandleSessionError(ctx context.Context, err error) error
}

// State is the loading and error state every page carries.
type State struct {
	Loading        bool
	Err            error
	Message        string
	SessionExpired bool
}

type base struct {
	title   string
	session SessionHandler
	state   State
}

func (b *base) Title() string {
	return b.title
}

func (b *base) State() State {
	return b.state
}

// load runs fn with the state kept up to date. On a 401 the session handler
// clears stored credentials.
func (b *base) load(ctx context.Context, fn func(context.Context) error) error {
	b.state = State{Loading: true}
	err := fn(ctx)
	b.state.Loading = false
	if err == nil {
		return nil
	}

	b.state.Err = err
	b.state.Message = apiclient.MessageOf(err)
	if b.session != nil {
		if expired := b.session.HandleSessionError(ctx, err); expired != nil {
			b.state.Err = expired
			b.state.SessionExpired = true
		}
	}
	log.Debug().Err(err).Str("page", b.title).Msg("page load failed")
	return err
}

// Show loads the page and writes it to w. The load error is returned after
// rendering so the caller can set an exit status.
func Show(ctx context.Context, page Page, w io.Writer) error {
	loadErr := page.Load(ctx)
	if err := page.Render(w); err != nil {
		return err
	}
	return loadErr
}
