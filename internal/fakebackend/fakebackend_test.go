package fakebackend_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/jrsteele09/hostel-admin/applications"
	"github.com/jrsteele09/hostel-admin/auth"
	"github.com/jrsteele09/hostel-admin/hostels"
	"github.com/jrsteele09/hostel-admin/internal/config"
	apperrors "github.com/jrsteele09/hostel-admin/internal/errors"
	"github.com/jrsteele09/hostel-admin/internal/fakebackend"
	"github.com/jrsteele09/hostel-admin/notifications"
	"github.com/jrsteele09/hostel-admin/payments"
	"github.com/jrsteele09/hostel-admin/reports"
	"github.com/jrsteele09/hostel-admin/storage"
	"github.com/jrsteele09/hostel-admin/storage/memstore"
	"github.com/jrsteele09/hostel-admin/students"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type testFixture struct {
	backend *fakebackend.Server
	server  *httptest.Server
	client  *apiclient.Client
	store   *storage.Accessor
	admin   *auth.Service
	student *auth.Service
	now     atomic.Int64 // unix nanos read by the backend clock
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{}
	f.now.Store(time.Now().UnixNano())
	backend, err := fakebackend.New(fakebackend.Options{
		Env:    "TEST",
		Secret: "test-secret",
		Cors:   config.Cors{},
		Now:    func() time.Time { return time.Unix(0, f.now.Load()) },
	})
	require.NoError(t, err)
	f.backend = backend
	f.server = httptest.NewServer(backend)
	t.Cleanup(f.server.Close)

	f.store = storage.NewAccessor(memstore.New(""), storage.WithLogger(zerolog.Nop()))
	f.client, err = apiclient.New(apiclient.Config{
		BaseURL: f.server.URL + fakebackend.APIPrefix,
		Timeout: 5 * time.Second,
	}, f.store, apiclient.WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	f.admin, err = auth.NewService(f.client, f.store, auth.Admin)
	require.NoError(t, err)
	f.student, err = auth.NewService(f.client, f.store, auth.Student)
	require.NoError(t, err)
	return f
}

func (f *testFixture) loginAdmin(t *testing.T) *auth.Profile {
	t.Helper()
	profile, err := f.admin.Login(context.Background(), auth.Credentials{
		Email:    fakebackend.SeedAdminEmail,
		Password: fakebackend.SeedAdminPassword,
	})
	require.NoError(t, err)
	return profile
}

func TestAdminLoginAndLogout(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	profile := f.loginAdmin(t)
	require.Equal(t, "1", profile.ID)
	require.Equal(t, "Grace", profile.FirstName)
	require.Equal(t, "super_admin", profile.Role)
	require.True(t, profile.IsActive)
	require.True(t, f.admin.IsAuthenticated(ctx))
	require.Equal(t, 1, f.backend.CSRFBootstraps())

	fetched, err := f.admin.GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, profile.Email, fetched.Email)

	token := f.admin.Token(ctx)
	require.NoError(t, f.admin.Logout(ctx))
	require.False(t, f.admin.IsAuthenticated(ctx))

	// The revoked token no longer works.
	f.store.Set(ctx, storage.KeyAdminToken, token)
	_, err = f.admin.GetProfile(ctx)
	require.True(t, apiclient.IsUnauthorized(err))
	require.ErrorIs(t, f.admin.HandleSessionError(ctx, err), apperrors.ErrSessionExpired)
	require.Empty(t, f.admin.Token(ctx))
}

func TestLoginRejected(t *testing.T) {
	tests := []struct {
		name  string
		creds auth.Credentials
	}{
		{"wrong password", auth.Credentials{Email: fakebackend.SeedAdminEmail, Password: "nope"}},
		{"unknown email", auth.Credentials{Email: "ghost@hostel.example.edu", Password: fakebackend.SeedAdminPassword}},
		{"missing password", auth.Credentials{Email: fakebackend.SeedAdminEmail}},
		{"student at admin endpoint", auth.Credentials{Email: fakebackend.SeedStudentEmail, Password: fakebackend.SeedStudentPassword}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupTestFixture(t)
			_, err := f.admin.Login(context.Background(), tt.creds)
			require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
			require.Empty(t, f.admin.Token(context.Background()))
		})
	}
}

func TestStudentLoginWithMatric(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	sess, err := f.student.LoginWithMatric(ctx, fakebackend.SeedStudentMatric, fakebackend.SeedStudentPassword)
	require.NoError(t, err)
	require.NotEmpty(t, sess.AccessToken)
	require.Equal(t, "s-1", sess.Student.ID)
	require.Equal(t, "Ada", sess.Student.FirstName)
	require.Equal(t, fakebackend.SeedStudentMatric, sess.Student.MatricNumber)
	require.Equal(t, "student", sess.Student.Role)

	// Student tokens cannot reach admin endpoints.
	_, err = applications.NewService(f.client).GetAll(ctx, apiclient.ListParams{})
	require.Equal(t, http.StatusForbidden, apiclient.StatusOf(err))
}

func TestCSRFMismatchWithoutHeader(t *testing.T) {
	f := setupTestFixture(t)

	body := bytes.NewBufferString(`{"email":"admin@hostel.example.edu","password":"Admin123!"}`)
	resp, err := http.Post(f.server.URL+fakebackend.APIPrefix+fakebackend.RouteAdminLogin, "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, apiclient.StatusCSRFMismatch, resp.StatusCode)
}

func TestCSRFBootstrapSharedAcrossMutations(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	f.loginAdmin(t)

	svc := applications.NewService(f.client)
	_, err := svc.Approve(ctx, "app-1", "")
	require.NoError(t, err)
	_, err = svc.Reject(ctx, "app-3", "Incomplete documents")
	require.NoError(t, err)

	require.Equal(t, 1, f.backend.CSRFBootstraps())
}

func TestApplicationsNestedPagination(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	f.loginAdmin(t)
	svc := applications.NewService(f.client)

	list, err := svc.GetAll(ctx, apiclient.ListParams{Page: 2, PerPage: 3})
	require.NoError(t, err)
	require.Len(t, list.Applications, 1)
	require.Equal(t, apiclient.Pagination{CurrentPage: 2, PerPage: 3, Total: 4, LastPage: 2, From: 4, To: 4}, list.Pagination)
	require.Equal(t, applications.Statistics{Total: 4, Pending: 2, Approved: 1, Rejected: 1}, list.Statistics)

	pending, err := svc.GetAll(ctx, apiclient.ListParams{Status: string(applications.StatusPending)})
	require.NoError(t, err)
	require.Len(t, pending.Applications, 2)

	approved, err := svc.Approve(ctx, "app-1", "Welcome")
	require.NoError(t, err)
	require.Equal(t, applications.StatusApproved, approved.Status)
	require.Equal(t, "Welcome", approved.Note)

	_, err = svc.Approve(ctx, "app-1", "")
	require.Equal(t, http.StatusConflict, apiclient.StatusOf(err))

	_, err = svc.Reject(ctx, "app-3", "")
	var httpErr *apiclient.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	require.Equal(t, []string{"The reason field is required."}, httpErr.Errors)

	_, err = svc.Approve(ctx, "missing", "")
	require.True(t, apiclient.IsNotFound(err))
}

func TestPaymentsFlatPagination(t *testing.T) {
	f := setupTestFixture(t)
	f.loginAdmin(t)

	page, err := payments.NewService(f.client).GetAll(context.Background(), apiclient.ListParams{Page: 1, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, 1, page.Pagination.CurrentPage)
	require.Equal(t, 2, page.Pagination.PerPage)
	require.Equal(t, 3, page.Pagination.Total)
	require.Equal(t, 2, page.Pagination.LastPage)
}

func TestHostelsAndReports(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	f.loginAdmin(t)

	hostelSvc := hostels.NewService(f.client)
	page, err := hostelSvc.GetAll(ctx, apiclient.ListParams{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	rooms, err := hostelSvc.GetRooms(ctx, "h-1")
	require.NoError(t, err)
	require.Len(t, rooms, 3)

	reportSvc := reports.NewService(f.client)
	overview, err := reportSvc.GetOverview(ctx)
	require.NoError(t, err)
	require.Equal(t, 20, overview.TotalBeds)
	require.Equal(t, 15, overview.OccupiedBeds)
	require.InDelta(t, 75.0, overview.OccupancyRate, 0.001)
	require.Equal(t, 2, overview.PendingApplications)
	require.Equal(t, 2, overview.OpenMaintenance)
	require.InDelta(t, 45000.0, overview.TotalRevenue, 0.001)

	occupancy, err := reportSvc.GetOccupancy(ctx)
	require.NoError(t, err)
	require.Len(t, occupancy, 2)
	require.Equal(t, "Independence Hall", occupancy[0].HostelName)
}

func TestNotificationsReadState(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	f.loginAdmin(t)
	svc := notifications.NewService(f.client)

	// Admins see the "all" and "admins" notifications only.
	count, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	n, err := svc.MarkAsRead(ctx, "n-3")
	require.NoError(t, err)
	require.True(t, n.IsRead)

	updated, err := svc.MarkAllAsRead(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, updated)

	count, err = svc.UnreadCount(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	_, err = svc.MarkAsRead(ctx, "n-1")
	require.True(t, apiclient.IsNotFound(err))
}

func TestStudentDashboard(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	_, err := f.student.LoginWithMatric(ctx, fakebackend.SeedStudentMatric, fakebackend.SeedStudentPassword)
	require.NoError(t, err)

	data := students.NewService(f.client).GetDashboardData(ctx)
	require.False(t, data.Degraded())
	require.Equal(t, "Queen Amina Hall", data.Profile.HostelName)
	require.NotNil(t, data.Application)
	require.Equal(t, "app-1", data.Application.ID)
	require.Len(t, data.Payments, 1)
	require.Len(t, data.Notifications, 2)
	require.Len(t, data.Maintenance, 1)
}

func TestExpiredTokenRejected(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	f.loginAdmin(t)

	f.now.Add(int64(2 * fakebackend.DefaultTokenExpiry))
	_, err := f.admin.GetProfile(ctx)
	require.True(t, apiclient.IsUnauthorized(err))
}

func TestChangePassword(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	f.loginAdmin(t)

	err := f.admin.ChangePassword(ctx, "wrong", "NewPassw0rd!")
	require.Equal(t, http.StatusUnprocessableEntity, apiclient.StatusOf(err))

	require.NoError(t, f.admin.ChangePassword(ctx, fakebackend.SeedAdminPassword, "NewPassw0rd!"))
	require.NoError(t, f.admin.Logout(ctx))

	_, err = f.admin.Login(ctx, auth.Credentials{Email: fakebackend.SeedAdminEmail, Password: "NewPassw0rd!"})
	require.NoError(t, err)
}
