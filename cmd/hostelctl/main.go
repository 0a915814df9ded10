// Command hostelctl is the terminal front end of the hostel admin dashboard.
//
//	hostelctl [flags] <command> [args]
//
// Credentials are kept in the configured storage backend between runs.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/jrsteele09/hostel-admin/applications"
	"github.com/jrsteele09/hostel-admin/auth"
	"github.com/jrsteele09/hostel-admin/hostels"
	"github.com/jrsteele09/hostel-admin/internal/config"
	apperrors "github.com/jrsteele09/hostel-admin/internal/errors"
	"github.com/jrsteele09/hostel-admin/internal/logging"
	"github.com/jrsteele09/hostel-admin/mailtemplates"
	"github.com/jrsteele09/hostel-admin/maintenance"
	"github.com/jrsteele09/hostel-admin/notifications"
	"github.com/jrsteele09/hostel-admin/payments"
	"github.com/jrsteele09/hostel-admin/reports"
	"github.com/jrsteele09/hostel-admin/roomselection"
	"github.com/jrsteele09/hostel-admin/storage"
	"github.com/jrsteele09/hostel-admin/students"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	_ "github.com/jrsteele09/hostel-admin/storage/memstore"
	_ "github.com/jrsteele09/hostel-admin/storage/redisstore"
	_ "github.com/jrsteele09/hostel-admin/storage/sqlstore"
)

type options struct {
	actor    string
	email    string
	matric   string
	password string
	page     int
	perPage  int
	status   string
	search   string
	banner   bool
}

// app holds the wired client and services for one invocation.
type app struct {
	opts  options
	out   io.Writer
	store *storage.Accessor

	client        *apiclient.Client
	auth          *auth.Service
	applications  *applications.Service
	payments      *payments.Service
	hostels       *hostels.Service
	maintenance   *maintenance.Service
	notifications *notifications.Service
	roomSelection *roomselection.Service
	students      *students.Service
	reports       *reports.Service
	mailTemplates *mailtemplates.Service
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, rest, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if len(rest) == 0 {
		usage(os.Stderr)
		return 2
	}
	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", rest[0])
		usage(os.Stderr)
		return 2
	}

	c := config.Load()
	logging.Setup(logging.Config{Level: c.GetLogLevel(), Env: c.GetEnv()})
	if opts.banner {
		displayAppname(c.GetAppName())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, c, opts, os.Stdout)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		return 1
	}
	defer func() {
		if err := a.store.Close(); err != nil {
			log.Warn().Err(err).Msg("closing storage")
		}
	}()

	if cmd.needsSession {
		if err := a.requireSession(ctx); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	if err := cmd.run(ctx, a, rest[1:]); err != nil {
		if expired := a.auth.HandleSessionError(ctx, err); expired != nil {
			log.Debug().Err(expired).Str("command", rest[0]).Msg("session rejected")
			fmt.Fprintln(os.Stderr, "session expired, please log in again")
			return 1
		}
		fmt.Fprintln(os.Stderr, apiclient.MessageOf(err))
		log.Debug().Err(err).Str("command", rest[0]).Msg("command failed")
		return 1
	}
	return 0
}

func parseFlags(args []string) (options, []string, error) {
	var opts options
	fs := flag.NewFlagSet("hostelctl", flag.ContinueOnError)
	fs.StringVar(&opts.actor, "actor", auth.Admin.Name, "who to act as: admin or student")
	fs.StringVar(&opts.email, "email", "", "login email")
	fs.StringVar(&opts.matric, "matric", "", "student matric number, instead of -email")
	fs.StringVar(&opts.password, "password", config.GetEnv("HOSTEL_PASSWORD", ""), "login password (defaults to $HOSTEL_PASSWORD)")
	fs.IntVar(&opts.page, "page", 1, "page of a list")
	fs.IntVar(&opts.perPage, "per-page", 15, "items per page")
	fs.StringVar(&opts.status, "status", "", "filter a list by status")
	fs.StringVar(&opts.search, "search", "", "filter a list by text")
	fs.BoolVar(&opts.banner, "banner", false, "print the banner first")
	fs.Usage = func() { usage(fs.Output()) }
	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	return opts, fs.Args(), nil
}

func newApp(ctx context.Context, c config.Config, opts options, out io.Writer) (*app, error) {
	kind, ok := auth.ActorKindByName(strings.ToLower(opts.actor))
	if !ok {
		return nil, errors.Errorf("unknown actor %q, want admin or student", opts.actor)
	}

	store, err := storage.New(ctx, storage.Config{
		Driver: c.GetStorageDriver(),
		Prefix: c.GetStoragePrefix(),
		Redis: &storage.RedisConfig{
			Addr:     c.GetRedisAddr(),
			Password: c.GetRedisPassword(),
			DB:       c.GetRedisDB(),
		},
		SQLite: &storage.SQLiteConfig{Path: c.GetStoragePath()},
	})
	switch {
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		// Without storage the client still works, it just cannot remember a login.
		log.Warn().Err(err).Str("driver", c.GetStorageDriver()).Msg("continuing without persisted credentials")
		store = nil
	case err != nil:
		return nil, errors.Wrap(err, "storage.New")
	}
	accessor := storage.NewAccessor(store)

	client, err := apiclient.New(apiclient.Config{
		BaseURL: c.GetAPIBaseURL(),
		Timeout: c.GetRequestTimeout(),
	}, accessor, apiclient.WithUserAgent("hostelctl"))
	if err != nil {
		return nil, errors.Wrap(err, "apiclient.New")
	}

	authService, err := auth.NewService(client, accessor, kind)
	if err != nil {
		return nil, errors.Wrap(err, "auth.NewService")
	}

	fallback := c.GetFallbackDataEnabled()
	return &app{
		opts:          opts,
		out:           out,
		store:         accessor,
		client:        client,
		auth:          authService,
		applications:  applications.NewService(client),
		payments:      payments.NewService(client),
		hostels:       hostels.NewService(client, hostels.WithFallback(fallback)),
		maintenance:   maintenance.NewService(client),
		notifications: notifications.NewService(client),
		roomSelection: roomselection.NewService(client),
		students:      students.NewService(client),
		reports:       reports.NewService(client, reports.WithFallback(fallback)),
		mailTemplates: mailtemplates.NewService(client),
	}, nil
}

// requireSession fails with ErrNotAuthenticated when no token is stored for
// the selected actor.
func (a *app) requireSession(ctx context.Context) error {
	if a.auth.IsAuthenticated(ctx) {
		return nil
	}
	name := a.auth.Kind().Name
	return errors.Wrapf(apperrors.ErrNotAuthenticated, "run `hostelctl -actor %s login` first", name)
}

func (a *app) listParams() apiclient.ListParams {
	return apiclient.ListParams{
		Page:    a.opts.page,
		PerPage: a.opts.perPage,
		Status:  a.opts.status,
		Search:  a.opts.search,
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: hostelctl [flags] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-14s %s\n", name, commands[name].help)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "flags: -actor admin|student -email -matric -password -page -per-page -status -search -banner")
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
