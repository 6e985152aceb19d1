package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("-3"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("1"))
	assert.Equal(t, 7, ParsePage("7"))
	assert.Equal(t, 1, ParsePage("2.5"))
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, DefaultPageSize, ParseLimit("", DefaultPageSize))
	assert.Equal(t, DefaultPageSize, ParseLimit("garbage", DefaultPageSize))
	assert.Equal(t, DefaultPageSize, ParseLimit("0", DefaultPageSize))
	assert.Equal(t, 25, ParseLimit("25", DefaultPageSize))
}

func TestNormalize(t *testing.T) {
	p := ListParams{Page: 0, PageSize: -1}.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)

	p = ListParams{Page: 3, PageSize: 20}.Normalize()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.PageSize)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, ListParams{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 10, ListParams{Page: 2, PageSize: 10}.Offset())
	assert.Equal(t, 40, ListParams{Page: 5, PageSize: 10}.Offset())
	assert.Equal(t, 0, ListParams{Page: 5, PageSize: 10, All: true}.Offset())
}

func TestTotalPages(t *testing.T) {
	p := ListParams{Page: 1, PageSize: 10}

	assert.Equal(t, 1, p.TotalPages(0))
	assert.Equal(t, 1, p.TotalPages(1))
	assert.Equal(t, 1, p.TotalPages(10))
	assert.Equal(t, 2, p.TotalPages(11))
	assert.Equal(t, 3, p.TotalPages(23))

	all := ListParams{All: true, PageSize: 10}
	assert.Equal(t, 1, all.TotalPages(23))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusDraft))
	assert.True(t, ValidStatus(StatusPublished))
	assert.True(t, ValidStatus(StatusArchived))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("live"))
	assert.False(t, ValidStatus("Published"))
}
