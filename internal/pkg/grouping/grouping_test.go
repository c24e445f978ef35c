package grouping

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	id     int
	branch *string
	year   int
}

func str(s string) *string { return &s }

func byBranch(r rec) string { return Or(r.branch, Unknown) }
func byYear(r rec) string   { return strconv.Itoa(r.year) }

func TestNestKeepsFirstAppearanceOrder(t *testing.T) {
	items := []rec{
		{1, str("CSE"), 2},
		{2, str("ECE"), 1},
		{3, str("CSE"), 1},
		{4, nil, 3},
		{5, str(" "), 3},
		{6, str("CSE"), 2},
	}

	got := Nest(items, byBranch, byYear)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"CSE", "ECE", Unknown}, []string{got[0].Key, got[1].Key, got[2].Key})
	assert.Equal(t, 3, got[0].Count)
	assert.Nil(t, got[0].Items)

	cse := got[0].Groups
	require.Len(t, cse, 2)
	assert.Equal(t, "2", cse[0].Key)
	assert.Equal(t, []rec{items[0], items[5]}, cse[0].Items)
	assert.Equal(t, "1", cse[1].Key)

	assert.Equal(t, 2, got[2].Count)
	assert.Equal(t, len(items), Total(got))
	assert.ElementsMatch(t, items, Flatten(got))
}

func TestNestCompleteness(t *testing.T) {
	var items []rec
	for i := 0; i < 50; i++ {
		var b *string
		if i%3 != 0 {
			b = str([]string{"CSE", "ME", "CE"}[i%3])
		}
		items = append(items, rec{id: i, branch: b, year: i % 4})
	}
	for _, keys := range [][]KeyFunc[rec]{nil, {byBranch}, {byBranch, byYear}, {byYear, byBranch, byYear}} {
		assert.Equal(t, len(items), Total(Nest(items, keys...)))
		assert.Len(t, Flatten(Nest(items, keys...)), len(items))
	}
}

func TestNestEmpty(t *testing.T) {
	assert.Empty(t, Nest[rec](nil, byBranch))
}

func TestSortByKeyDesc(t *testing.T) {
	buckets := []Bucket[rec]{{Key: "Batch 2022"}, {Key: Unknown}, {Key: "Batch 2024"}, {Key: "Batch 2023"}}
	SortByKeyDesc(buckets)
	keys := make([]string, len(buckets))
	for i, b := range buckets {
		keys[i] = b.Key
	}
	assert.Equal(t, []string{"Batch 2024", "Batch 2023", "Batch 2022", Unknown}, keys)
}
