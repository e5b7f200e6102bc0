package histogram

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"cinelog/internal/library"
)

const barWidth = 40

// Bucket counts the movies whose rating falls into one unit-wide interval.
type Bucket struct {
	Label string
	Count int
}

// Build groups ratings into ten unit buckets, [0,1) through [9,10]. A
// rating of exactly 10 lands in the last bucket.
func Build(snapshot library.Snapshot) []Bucket {
	buckets := make([]Bucket, 10)
	for i := range buckets {
		buckets[i].Label = fmt.Sprintf("%d-%d", i, i+1)
	}
	for _, attrs := range snapshot {
		idx := int(attrs.Rating)
		if idx < 0 {
			idx = 0
		}
		if idx > 9 {
			idx = 9
		}
		buckets[idx].Count++
	}
	return buckets
}

// Render draws the buckets as horizontal bars. Colors are applied only
// when colored is set, so output piped to a file stays plain.
func Render(buckets []Bucket, colored bool) string {
	max := 0
	for _, bucket := range buckets {
		if bucket.Count > max {
			max = bucket.Count
		}
	}

	var builder strings.Builder
	builder.WriteString("Rating  Count\n")
	for _, bucket := range buckets {
		bar := ""
		if max > 0 && bucket.Count > 0 {
			length := bucket.Count * barWidth / max
			if length == 0 {
				length = 1
			}
			bar = strings.Repeat("█", length)
		}
		if colored {
			bar = text.FgCyan.Sprint(bar)
		}
		fmt.Fprintf(&builder, "%-7s %5d %s\n", bucket.Label, bucket.Count, bar)
	}
	return builder.String()
}
