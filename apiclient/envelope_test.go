package apiclient_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/jrsteele09/hostel-admin/apiclient/apiclienttest"
	"github.com/stretchr/testify/require"
)

func TestFlatPageCanonical(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		flat := apiclient.FlatPage[string]{Data: []string{"c", "d"}, Total: 7, Page: 2, Limit: 2, TotalPages: 4}
		page := flat.Canonical()
		require.Equal(t, []string{"c", "d"}, page.Items)
		require.Equal(t, apiclient.Pagination{CurrentPage: 2, PerPage: 2, Total: 7, LastPage: 4, From: 3, To: 4}, page.Pagination)
	})

	t.Run("missing totals derived", func(t *testing.T) {
		flat := apiclient.FlatPage[int]{Data: []int{1, 2, 3}, Total: 10, Limit: 3}
		page := flat.Canonical()
		require.Equal(t, 1, page.Pagination.CurrentPage)
		require.Equal(t, 4, page.Pagination.LastPage)
		require.Equal(t, 1, page.Pagination.From)
		require.Equal(t, 3, page.Pagination.To)
	})

	t.Run("empty", func(t *testing.T) {
		page := apiclient.FlatPage[int]{}.Canonical()
		require.NotNil(t, page.Items)
		require.Empty(t, page.Items)
		require.Zero(t, page.Pagination.From)
	})
}

func TestListParams(t *testing.T) {
	params := apiclient.ListParams{
		Page:      2,
		PerPage:   25,
		Search:    "ade",
		Status:    "pending",
		SortBy:    "created_at",
		SortOrder: "desc",
		Filters:   map[string]string{"hostel_id": "h1", "empty": ""},
	}

	q := params.Query()
	require.Equal(t, "25", q.Get("per_page"))
	require.Empty(t, q.Get("limit"))
	require.Equal(t, "h1", q.Get("hostel_id"))
	require.False(t, q.Has("empty"))

	flat := params.FlatQuery()
	require.Equal(t, "25", flat.Get("limit"))
	require.Equal(t, "2", flat.Get("page"))

	require.Empty(t, apiclient.ListParams{}.Query())
}

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestResource(t *testing.T) {
	ctx := context.Background()
	srv := apiclienttest.New(t)
	res := apiclient.NewResource[item](srv.Client, "/admin/items/")

	srv.OK("GET /admin/items/{id}", item{ID: "a/b", Name: "A"})
	srv.OK("POST /admin/items", item{ID: "n", Name: "New"})
	srv.OK("PUT /admin/items/{id}", item{ID: "u", Name: "Updated"})
	srv.JSON("DELETE /admin/items/{id}", http.StatusOK, map[string]any{"success": true, "message": "deleted"})
	srv.OK("PATCH /admin/items/{id}/archive", item{ID: "x", Name: "Archived"})
	srv.JSON("GET /admin/items", http.StatusOK, map[string]any{
		"data": []item{{ID: "1"}, {ID: "2"}}, "total": 2, "page": 1, "limit": 10, "totalPages": 1,
	})

	require.Equal(t, "/admin/items/a%2Fb/archive", res.Path("a/b", "archive"))

	got, err := res.GetByID(ctx, "a/b")
	require.NoError(t, err)
	require.Equal(t, "A", got.Name)

	created, err := res.Create(ctx, map[string]string{"name": "New"})
	require.NoError(t, err)
	require.Equal(t, "n", created.ID)
	var body map[string]string
	srv.LastCall(t).DecodeBody(t, &body)
	require.Equal(t, "New", body["name"])
	require.Equal(t, apiclienttest.CSRFToken, srv.LastCall(t).Header.Get(apiclient.HeaderXSRFToken))

	updated, err := res.Update(ctx, "u", map[string]string{"name": "Updated"})
	require.NoError(t, err)
	require.Equal(t, "Updated", updated.Name)

	require.NoError(t, res.Delete(ctx, "d"))
	require.Equal(t, http.MethodDelete, srv.LastCall(t).Method)

	archived, err := res.Action(ctx, http.MethodPatch, "x", "archive", nil)
	require.NoError(t, err)
	require.Equal(t, "Archived", archived.Name)

	page, err := res.ListFlat(ctx, apiclient.ListParams{PerPage: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, "10", srv.LastCall(t).Query.Get("limit"))
}

func TestResourceListNested(t *testing.T) {
	ctx := context.Background()
	srv := apiclienttest.New(t)
	res := apiclient.NewResource[item](srv.Client, "/admin/things")

	srv.OK("GET /admin/things", map[string]any{
		"things":     []item{{ID: "1", Name: "One"}},
		"statistics": map[string]int{"total": 1},
		"pagination": apiclient.Pagination{CurrentPage: 1, PerPage: 15, Total: 1, LastPage: 1, From: 1, To: 1},
	})

	page, err := res.ListNested(ctx, apiclient.ListParams{Status: "open"}, "things")
	require.NoError(t, err)
	require.Equal(t, []item{{ID: "1", Name: "One"}}, page.Items)
	require.Equal(t, 15, page.Pagination.PerPage)
	require.JSONEq(t, `{"total":1}`, string(page.Statistics))
	require.Equal(t, "open", srv.LastCall(t).Query.Get("status"))
}
