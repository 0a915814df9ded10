package dashboard

import (
	"context"
	"io"

	"github.com/jrsteele09/hostel-admin/apiclient"
)

type listFunc[T any] func(context.Context, apiclient.ListParams) (*apiclient.Page[T], error)

// ListPage is a paginated table of one collection.
type ListPage[T any] struct {
	base
	Params apiclient.ListParams

	list    listFunc[T]
	columns []string
	row     func(T) []string
	data    *apiclient.Page[T]
}

func newListPage[T any](title string, session SessionHandler, list listFunc[T], columns []string, row func(T) []string) *ListPage[T] {
	return &ListPage[T]{
		base:    base{title: title, session: session},
		list:    list,
		columns: columns,
		row:     row,
	}
}

func (p *ListPage[T]) Load(ctx context.Context) error {
	return p.load(ctx, func(ctx context.Context) error {
		data, err := p.list(ctx, p.Params)
		if err != nil {
			return err
		}
		p.data = data
		return nil
	})
}

// Data returns the last page loaded, or nil.
func (p *ListPage[T]) Data() *apiclient.Page[T] {
	return p.data
}

func (p *ListPage[T]) Render(w io.Writer) error {
	writeHeading(w, p.title)
	if renderState(w, p.state) || p.data == nil {
		return nil
	}
	rows := make([][]string, 0, len(p.data.Items))
	for _, item := range p.data.Items {
		rows = append(rows, p.row(item))
	}
	if err := writeTable(w, p.columns, rows); err != nil {
		return err
	}
	writePagination(w, p.data.Pagination)
	return nil
}
