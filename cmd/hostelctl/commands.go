package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jrsteele09/hostel-admin/auth"
	"github.com/jrsteele09/hostel-admin/dashboard"
	"github.com/jrsteele09/hostel-admin/maintenance"
	"github.com/jrsteele09/hostel-admin/reports"
	"github.com/pkg/errors"
)

type command struct {
	help         string
	needsSession bool
	run          func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"login":         {help: "sign in with -email or -matric and -password", run: runLogin},
	"logout":        {help: "end the session and forget the stored token", run: runLogout},
	"whoami":        {help: "show the stored profile", run: runWhoAmI},
	"profile":       {help: "fetch the profile from the backend", needsSession: true, run: runProfile},
	"passwd":        {help: "passwd <new password>: change the password", needsSession: true, run: runChangePassword},
	"overview":      {help: "admin overview and occupancy", needsSession: true, run: showPage(func(a *app) dashboard.Page { return dashboard.NewReportsPage(a.reports, a.auth) })},
	"applications":  {help: "list hostel applications", needsSession: true, run: runApplications},
	"approve":       {help: "approve <id> [note]", needsSession: true, run: runApprove},
	"reject":        {help: "reject <id> <reason>", needsSession: true, run: runReject},
	"payments":      {help: "list payments", needsSession: true, run: showPage(func(a *app) dashboard.Page { return listPage(a, dashboard.NewPaymentsPage(a.payments, a.auth)) })},
	"verify":        {help: "verify <payment id>", needsSession: true, run: runVerify},
	"hostels":       {help: "list hostels", needsSession: true, run: showPage(func(a *app) dashboard.Page { return listPage(a, dashboard.NewHostelsPage(a.hostels, a.auth)) })},
	"rooms":         {help: "rooms <hostel id>", needsSession: true, run: runRooms},
	"maintenance":   {help: "list maintenance requests", needsSession: true, run: showPage(func(a *app) dashboard.Page { return listPage(a, dashboard.NewMaintenancePage(a.maintenance, a.auth)) })},
	"resolve":       {help: "resolve <request id> [note]", needsSession: true, run: runResolve},
	"notifications": {help: "list notifications", needsSession: true, run: showPage(func(a *app) dashboard.Page { return listPage(a, dashboard.NewNotificationsPage(a.notifications, a.auth)) })},
	"read":          {help: "read <notification id>|all: mark notifications read", needsSession: true, run: runRead},
	"sessions":      {help: "list room selection sessions", needsSession: true, run: showPage(func(a *app) dashboard.Page { return listPage(a, dashboard.NewRoomSelectionPage(a.roomSelection, a.auth)) })},
	"students":      {help: "list students", needsSession: true, run: showPage(func(a *app) dashboard.Page { return listPage(a, dashboard.NewStudentsPage(a.students, a.auth)) })},
	"templates":     {help: "list mail templates", needsSession: true, run: showPage(func(a *app) dashboard.Page { return listPage(a, dashboard.NewMailTemplatesPage(a.mailTemplates, a.auth)) })},
	"export":        {help: "export <kind> <format> <file>: download a report", needsSession: true, run: runExport},
	"home":          {help: "student dashboard", needsSession: true, run: showPage(func(a *app) dashboard.Page { return dashboard.NewStudentHomePage(a.students, a.auth) })},
}

// listPage applies the list flags to a ListPage.
func listPage[T any](a *app, page *dashboard.ListPage[T]) dashboard.Page {
	page.Params = a.listParams()
	return page
}

func showPage(build func(a *app) dashboard.Page) func(ctx context.Context, a *app, args []string) error {
	return func(ctx context.Context, a *app, _ []string) error {
		return dashboard.Show(ctx, build(a), a.out)
	}
}

func runLogin(ctx context.Context, a *app, _ []string) error {
	if a.opts.password == "" {
		return errors.New("a password is required, pass -password or set HOSTEL_PASSWORD")
	}

	var profile *auth.Profile
	var err error
	if a.opts.matric != "" {
		var sess *auth.StudentSession
		sess, err = a.auth.LoginWithMatric(ctx, a.opts.matric, a.opts.password)
		if sess != nil {
			profile = &sess.Student
		}
	} else {
		profile, err = a.auth.Login(ctx, auth.Credentials{Email: a.opts.email, Password: a.opts.password})
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s (%s)\n", profile.FullName(), profile.Role)
	return nil
}

func runLogout(ctx context.Context, a *app, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func runWhoAmI(ctx context.Context, a *app, _ []string) error {
	profile := a.auth.GetStoredProfile(ctx)
	if profile == nil || !a.auth.IsAuthenticated(ctx) {
		fmt.Fprintf(a.out, "Not signed in as %s\n", a.auth.Kind().Name)
		return nil
	}
	return printJSON(a, profile)
}

func runProfile(ctx context.Context, a *app, _ []string) error {
	profile, err := a.auth.GetProfile(ctx)
	if err != nil {
		return err
	}
	return printJSON(a, profile)
}

func runChangePassword(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: passwd <new password>")
	}
	if err := a.auth.ChangePassword(ctx, a.opts.password, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed")
	return nil
}

func runApplications(ctx context.Context, a *app, _ []string) error {
	page := dashboard.NewApplicationsPage(a.applications, a.auth)
	page.Params = a.listParams()
	return dashboard.Show(ctx, page, a.out)
}

func runApprove(ctx context.Context, a *app, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: approve <id> [note]")
	}
	note := ""
	if len(args) > 1 {
		note = args[1]
	}
	application, err := a.applications.Approve(ctx, args[0], note)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Application %s is now %s\n", application.ID, application.Status)
	return nil
}

func runReject(ctx context.Context, a *app, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: reject <id> <reason>")
	}
	application, err := a.applications.Reject(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Application %s is now %s\n", application.ID, application.Status)
	return nil
}

func runVerify(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: verify <payment id>")
	}
	payment, err := a.payments.Verify(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Payment %s is now %s\n", payment.ID, payment.Status)
	return nil
}

func runRooms(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: rooms <hostel id>")
	}
	rooms, err := a.hostels.GetRooms(ctx, args[0])
	if err != nil {
		return err
	}
	return printJSON(a, rooms)
}

func runResolve(ctx context.Context, a *app, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: resolve <request id> [note]")
	}
	note := ""
	if len(args) > 1 {
		note = args[1]
	}
	req, err := a.maintenance.UpdateStatus(ctx, args[0], maintenance.StatusResolved, note)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Request %s is now %s\n", req.ID, req.Status)
	return nil
}

func runRead(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: read <notification id>|all")
	}
	if args[0] == "all" {
		updated, err := a.notifications.MarkAllAsRead(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Marked %d notifications read\n", updated)
		return nil
	}
	if _, err := a.notifications.MarkAsRead(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Marked %s read\n", args[0])
	return nil
}

func runExport(ctx context.Context, a *app, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: export <occupancy|revenue|applications|maintenance> <csv|xlsx|pdf> <file>")
	}
	data, err := a.reports.Export(ctx, reports.Kind(args[0]), reports.Format(args[1]))
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[2], data, 0o600); err != nil {
		return errors.Wrapf(err, "write %s", args[2])
	}
	fmt.Fprintf(a.out, "Wrote %d bytes to %s\n", len(data), args[2])
	return nil
}

func printJSON(a *app, v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
