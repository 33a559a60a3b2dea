package feeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateSplitsIntoFixedSizePages(t *testing.T) {
	items := makeItems(15)

	first := Paginate(items, 10, 1)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, first.TotalPages)
	assert.Equal(t, 15, first.TotalItems)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrev)

	second := Paginate(items, 10, 2)
	assert.Len(t, second.Items, 5)
	assert.Equal(t, 2, second.Number)
	assert.False(t, second.HasNext)
	assert.True(t, second.HasPrev)
}

func TestPaginateConcatenationReproducesSequence(t *testing.T) {
	for _, total := range []int{0, 1, 9, 10, 11, 25, 100} {
		items := makeItems(total)

		page := Paginate(items, 10, 1)
		collected := append([]int{}, page.Items...)
		for page.HasNext {
			page = Paginate(items, 10, page.Number+1)
			collected = append(collected, page.Items...)
		}

		assert.Equal(t, items, collected, "total=%d", total)

		wantPages := (total + 9) / 10
		if wantPages == 0 {
			wantPages = 1
		}
		assert.Equal(t, wantPages, page.TotalPages, "total=%d", total)
	}
}

func TestPaginateClampsOutOfRangePages(t *testing.T) {
	items := makeItems(25)

	// Past the end clamps to the last page
	last := Paginate(items, 10, 99)
	assert.Equal(t, 3, last.Number)
	assert.Len(t, last.Items, 5)

	// Below the start clamps to page 1
	first := Paginate(items, 10, -3)
	assert.Equal(t, 1, first.Number)
	assert.Len(t, first.Items, 10)

	zero := Paginate(items, 10, 0)
	assert.Equal(t, 1, zero.Number)
}

func TestPaginateEmptyInput(t *testing.T) {
	page := Paginate([]int{}, 10, 1)

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.TotalItems)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrev)
}

func TestPaginateDeterministic(t *testing.T) {
	items := makeItems(42)

	a := Paginate(items, 7, 3)
	b := Paginate(items, 7, 3)

	assert.Equal(t, a, b)
}

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}
