package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Resource holds the calls shared by every REST collection: one method, one
// request, data unwrapped from the envelope.
type Resource[T any] struct {
	api  Requester
	path string
}

func NewResource[T any](api Requester, path string) Resource[T] {
	return Resource[T]{api: api, path: strings.TrimRight(path, "/")}
}

// Path joins the collection path with escaped segments.
func (r Resource[T]) Path(segments ...string) string {
	var b strings.Builder
	b.WriteString(r.path)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// API exposes the underlying requester to services with extra endpoints.
func (r Resource[T]) API() Requester {
	return r.api
}

func (r Resource[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var out T
	if err := r.api.Do(ctx, http.MethodGet, r.Path(id), RequestOptions{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r Resource[T]) Create(ctx context.Context, data any) (*T, error) {
	var out T
	if err := r.api.Do(ctx, http.MethodPost, r.Path(), RequestOptions{Body: data}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r Resource[T]) Update(ctx context.Context, id string, data any) (*T, error) {
	var out T
	if err := r.api.Do(ctx, http.MethodPut, r.Path(id), RequestOptions{Body: data}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r Resource[T]) Delete(ctx context.Context, id string) error {
	return r.api.Do(ctx, http.MethodDelete, r.Path(id), RequestOptions{}, nil)
}

// Action calls an action endpoint on one item, e.g. PATCH /applications/{id}/approve.
func (r Resource[T]) Action(ctx context.Context, method, id, action string, data any) (*T, error) {
	var out T
	if err := r.api.Do(ctx, method, r.Path(id, action), RequestOptions{Body: data}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListFlat fetches a collection that answers with the flat paginated shape.
func (r Resource[T]) ListFlat(ctx context.Context, params ListParams) (*Page[T], error) {
	var flat FlatPage[T]
	if err := r.api.DoRaw(ctx, http.MethodGet, r.Path(), RequestOptions{Query: params.FlatQuery()}, &flat); err != nil {
		return nil, err
	}
	return flat.Canonical(), nil
}

// ListNested fetches a collection whose envelope data holds the items under
// itemsKey next to "pagination" and optional "statistics".
func (r Resource[T]) ListNested(ctx context.Context, params ListParams, itemsKey string) (*Page[T], error) {
	var data map[string]json.RawMessage
	if err := r.api.Do(ctx, http.MethodGet, r.Path(), RequestOptions{Query: params.Query()}, &data); err != nil {
		return nil, err
	}
	page := &Page[T]{Items: []T{}, Statistics: data["statistics"]}
	if raw, ok := data[itemsKey]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, &page.Items); err != nil {
			return nil, errors.Wrapf(err, "[Resource.ListNested] decode %s", itemsKey)
		}
	}
	if raw, ok := data["pagination"]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, &page.Pagination); err != nil {
			return nil, errors.Wrap(err, "[Resource.ListNested] decode pagination")
		}
	}
	return page, nil
}
