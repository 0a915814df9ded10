// Command fakebackend serves the hostel REST contract from memory so the
// client can be exercised without the real backend.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/hostel-admin/internal/config"
	"github.com/jrsteele09/hostel-admin/internal/fakebackend"
	"github.com/jrsteele09/hostel-admin/internal/logging"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("fake backend stopped with an error")
	}
	log.Info().Msg("fake backend stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Msgf("Recovered from panic: %v\n%s", r, debug.Stack())
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.Load()
	logging.Setup(logging.Config{Level: c.GetLogLevel(), Env: c.GetEnv()})
	displayAppname(c.GetAppName() + " backend")

	backend, err := fakebackend.New(fakebackend.Options{
		Env:    c.GetEnv(),
		Secret: c.GetFakeBackendSecret(),
		Cors:   c,
	})
	if err != nil {
		return errors.Wrap(err, "fakebackend.New")
	}

	server := &http.Server{Addr: c.GetFakeBackendPort(), Handler: backend}
	errs := make(chan error, 1)
	go func() { errs <- listenAndServe(server) }()

	select {
	case err := <-errs:
		return err
	case <-waitForStopSignal():
	}
	return shutdown(server)
}

func listenAndServe(server *http.Server) error {
	log.Info().Msgf("Fake backend listening on %s (seed admin %s, seed student %s)", server.Addr, fakebackend.SeedAdminEmail, fakebackend.SeedStudentMatric)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "server.ListenAndServe")
	}
	return nil
}

func waitForStopSignal() <-chan os.Signal {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	return stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server.Shutdown")
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
