// Package grouping nests flat record lists into ordered buckets for the
// dashboard views (students by branch, events by company, alumni by year).
package grouping

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Fallback keys for records without a grouping value
const (
	Unknown        = "Unknown"
	UnknownCompany = "Unknown Company"
	UnknownBatch   = "Unknown Batch"
)

// KeyFunc extracts a grouping key from a record
type KeyFunc[T any] func(T) string

// Bucket holds the records sharing one key. Leaf buckets carry Items, inner
// buckets carry Groups. Count is the number of records underneath.
type Bucket[T any] struct {
	Key    string      `json:"key"`
	Count  int         `json:"count"`
	Items  []T         `json:"items,omitempty"`
	Groups []Bucket[T] `json:"groups,omitempty"`
}

// Nest groups items by keys, outermost first. Buckets appear in order of
// first appearance and records keep their input order inside a bucket.
func Nest[T any](items []T, keys ...KeyFunc[T]) []Bucket[T] {
	if len(keys) == 0 {
		return []Bucket[T]{{Key: "", Count: len(items), Items: items}}
	}

	index := map[string]int{}
	var buckets []Bucket[T]
	for _, item := range items {
		k := keys[0](item)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, Bucket[T]{Key: k})
		}
		buckets[i].Items = append(buckets[i].Items, item)
		buckets[i].Count++
	}

	if len(keys) > 1 {
		for i := range buckets {
			buckets[i].Groups = Nest(buckets[i].Items, keys[1:]...)
			buckets[i].Items = nil
		}
	}
	return buckets
}

// Total counts the records held by buckets
func Total[T any](buckets []Bucket[T]) int {
	n := 0
	for _, b := range buckets {
		n += b.Count
	}
	return n
}

// Flatten returns the records of buckets in display order
func Flatten[T any](buckets []Bucket[T]) []T {
	var out []T
	for _, b := range buckets {
		if len(b.Groups) > 0 {
			out = append(out, Flatten(b.Groups)...)
			continue
		}
		out = append(out, b.Items...)
	}
	return out
}

var leadingNumber = regexp.MustCompile(`\d+`)

// SortByKeyDesc orders buckets by the first number in their key, highest
// first ("Batch 2024" before "Batch 2023"). Keys without a number go last in
// their original order.
func SortByKeyDesc[T any](buckets []Bucket[T]) {
	num := func(key string) (int, bool) {
		m := leadingNumber.FindString(key)
		if m == "" {
			return 0, false
		}
		n, err := strconv.Atoi(m)
		return n, err == nil
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		a, aok := num(buckets[i].Key)
		b, bok := num(buckets[j].Key)
		if aok != bok {
			return aok
		}
		return aok && a > b
	})
}

// Or returns value, or fallback when value is missing or blank.
func Or(value *string, fallback string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return fallback
	}
	return *value
}

// OrString is Or for plain strings
func OrString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
