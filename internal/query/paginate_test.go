package query

import (
	"fmt"
	"testing"

	"alcyxob/fitlog/internal/domain"

	"github.com/stretchr/testify/assert"
)

func numbered(n int) []domain.Workout {
	out := make([]domain.Workout, n)
	for i := range out {
		out[i] = domain.Workout{ID: fmt.Sprintf("w%02d", i)}
	}
	return out
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 0, 3},
		{25, -5, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.size), "count=%d size=%d", tt.count, tt.size)
	}
}

func TestPaginateTwentyFiveItems(t *testing.T) {
	list := numbered(25)

	p1 := Paginate(list, 1, 10)
	assert.Equal(t, 3, p1.TotalPages)
	assert.Equal(t, 25, p1.TotalItems)
	assert.Len(t, p1.Items, 10)
	assert.Equal(t, "w00", p1.Items[0].ID)

	p3 := Paginate(list, 3, 10)
	assert.Len(t, p3.Items, 5)
	assert.Equal(t, "w20", p3.Items[0].ID)

	p4 := Paginate(list, 4, 10)
	assert.Empty(t, p4.Items)
	assert.NotNil(t, p4.Items)
}

func TestPaginateOutOfRange(t *testing.T) {
	list := numbered(7)
	total := TotalPages(len(list), 3)

	assert.Empty(t, Paginate(list, 0, 3).Items)
	assert.Empty(t, Paginate(list, -2, 3).Items)
	assert.Empty(t, Paginate(list, total+1, 3).Items)
}

func TestPaginateEmptyList(t *testing.T) {
	p := Paginate(nil, 1, 10)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 0, p.TotalItems)
	assert.Empty(t, p.Items)
}

func TestPaginateCoversListExactly(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 30, 31} {
		for _, size := range []int{1, 3, 10} {
			list := numbered(n)
			total := TotalPages(n, size)

			var joined []string
			for p := 1; p <= total; p++ {
				joined = append(joined, ids(Paginate(list, p, size).Items)...)
			}
			if n == 0 {
				assert.Empty(t, joined)
				continue
			}
			assert.Equal(t, ids(list), joined, "n=%d size=%d", n, size)
		}
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(9, 3))
}
