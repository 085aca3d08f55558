package filter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ormfilter/filter"
	"ormfilter/filter/mocks"
)

type Post struct {
	Id    int64
	Title string
}

// nopBuilder accepts everything and returns nothing.
type nopBuilder struct{}

func (nopBuilder) WhereEquals(string, any) error { return nil }
func (nopBuilder) WhereIn(string, []any) error { return nil }
func (nopBuilder) Where(string, filter.Op, any) error { return nil }
func (nopBuilder) OrderBy(string, bool) error { return nil }
func (nopBuilder) IncludeSoftDeleted() {}
func (nopBuilder) Get(context.Context, ...string) ([]*Post, error) { return nil, nil }
func (nopBuilder) Paginate(context.Context, filter.PageRequest) (*filter.Page[Post], error) {
	return nil, nil
}
func (nopBuilder) SimplePaginate(context.Context, filter.PageRequest) (*filter.SimplePage[Post], error) {
	return nil, nil
}

func TestHandlerObject(t *testing.T) {
	handleErr := errors.New("invalid title")
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) filter.Handler[Post]
		in      filter.Input
		wantErr error
	}{
		{
			name: "scalar coerced",
			mock: func(ctrl *gomock.Controller) filter.Handler[Post] {
				h := mocks.NewMockHandler[Post](ctrl)
				h.EXPECT().Handle(filter.Int(7), gomock.Any()).Return(nil)
				return h
			},
			in: filter.NewInput(filter.KV{Key: "title", Value: filter.String("7 days")}),
		},
		{
			name: "collection",
			mock: func(ctrl *gomock.Controller) filter.Handler[Post] {
				h := mocks.NewMockHandler[Post](ctrl)
				h.EXPECT().HandleCollection(filter.List(filter.String("a"), filter.String("b")), gomock.Any()).Return(nil)
				return h
			},
			in: filter.NewInput(filter.KV{Key: "title", Value: filter.List(filter.String("a"), filter.String("b"))}),
		},
		{
			name: "absent",
			mock: func(ctrl *gomock.Controller) filter.Handler[Post] {
				return mocks.NewMockHandler[Post](ctrl)
			},
			in: filter.NewInput(filter.KV{Key: "id", Value: filter.Int(1)}),
		},
		{
			name: "error",
			mock: func(ctrl *gomock.Controller) filter.Handler[Post] {
				h := mocks.NewMockHandler[Post](ctrl)
				h.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(handleErr)
				return h
			},
			in:      filter.NewInput(filter.KV{Key: "title", Value: filter.String("x")}),
			wantErr: &filter.FieldError{Field: "title", Err: handleErr},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d, err := filter.New[Post](
				func() (filter.Builder[Post], error) { return nopBuilder{}, nil },
				filter.Cast[Post]("title", filter.CastInt),
				filter.HandlerObject[Post]("title", tc.mock(ctrl)),
			)
			require.NoError(t, err)
			_, err = d.Apply(tc.in)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
