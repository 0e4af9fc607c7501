package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginatedResponse_NextPage(t *testing.T) {
	tests := []struct {
		name     string
		resp     PaginatedResponse[int]
		wantMore bool
		wantNext *Pagination
	}{
		{
			name:     "first of several pages",
			resp:     PaginatedResponse[int]{Total: 50, Offset: 0, Limit: 20},
			wantMore: true,
			wantNext: &Pagination{Offset: 20, Limit: 20},
		},
		{
			name:     "middle page",
			resp:     PaginatedResponse[int]{Total: 50, Offset: 20, Limit: 20},
			wantMore: true,
			wantNext: &Pagination{Offset: 40, Limit: 20},
		},
		{
			name:     "last partial page",
			resp:     PaginatedResponse[int]{Total: 50, Offset: 40, Limit: 20},
			wantMore: false,
		},
		{
			name:     "exact fit",
			resp:     PaginatedResponse[int]{Total: 40, Offset: 20, Limit: 20},
			wantMore: false,
		},
		{
			name:     "empty listing",
			resp:     PaginatedResponse[int]{Total: 0, Offset: 0, Limit: 20},
			wantMore: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMore, tt.resp.HasMore())
			assert.Equal(t, tt.wantNext, tt.resp.NextPage())
		})
	}
}

func TestPage(t *testing.T) {
	assert.Equal(t, Pagination{Offset: 0, Limit: 25}, Page(1, 25))
	assert.Equal(t, Pagination{Offset: 50, Limit: 25}, Page(3, 25))

	t.Run("page zero saturates to the first page", func(t *testing.T) {
		assert.Equal(t, Pagination{Offset: 0, Limit: 10}, Page(0, 10))
		assert.Equal(t, Pagination{Offset: 0, Limit: 10}, Page(-4, 10))
	})
}

func TestPagination_Values(t *testing.T) {
	t.Run("omits zero values", func(t *testing.T) {
		p := NewPagination(0, 0)
		assert.Empty(t, p.Values())
	})

	t.Run("encodes offset and limit", func(t *testing.T) {
		p := NewPagination(40, 20)
		assert.Equal(t, "limit=20&offset=40", p.Values().Encode())
	})

	t.Run("nil is safe", func(t *testing.T) {
		var p *Pagination
		assert.Empty(t, p.Values())
	})
}

func TestCursorPage_Decode(t *testing.T) {
	var page CursorPage[string]
	require.NoError(t, json.Unmarshal([]byte(`{"items":["a","b"],"nextCursor":"abc","total":7}`), &page))

	assert.Equal(t, []string{"a", "b"}, page.Items)
	assert.True(t, page.More())
	require.NotNil(t, page.Total)
	assert.Equal(t, int64(7), *page.Total)

	var last CursorPage[string]
	require.NoError(t, json.Unmarshal([]byte(`{"items":[]}`), &last))
	assert.False(t, last.More())
	assert.Nil(t, last.Total)
}

func TestListFilesOptions_Values(t *testing.T) {
	opts := &ListFilesOptions{
		CursorOptions: CursorOptions{After: "cursor-1", Limit: 10},
		Formats:       []FileFormat{FileFormatPdf, FileFormatCsv},
		Search:        "report",
	}

	v := opts.Values()
	assert.Equal(t, "cursor-1", v.Get("after"))
	assert.Equal(t, "10", v.Get("limit"))
	assert.Equal(t, []string{"pdf", "csv"}, v["formats"])
	assert.Equal(t, "report", v.Get("search"))

	var none *ListFilesOptions
	assert.Empty(t, none.Values())
}
