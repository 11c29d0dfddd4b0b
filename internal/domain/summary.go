package domain

import (
	"cmp"
	"slices"

	m "github.com/mouse-blink/respec/internal/model"
)

// SummarizeRecords counts identical records across reports, most frequent
// first. Ties keep the order in which records were first seen.
func SummarizeRecords(reports []m.Report) []m.RecordCount {
	index := make(map[m.Record]int)

	var counts []m.RecordCount

	for _, report := range reports {
		for _, record := range report.Records {
			if i, ok := index[record]; ok {
				counts[i].Count++

				continue
			}

			index[record] = len(counts)
			counts = append(counts, m.RecordCount{Record: record, Count: 1})
		}
	}

	slices.SortStableFunc(counts, func(a, b m.RecordCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return counts
}

// ShardSources returns the sources assigned to shard index out of total.
// Sources are dealt round-robin so that every shard gets a similar share.
func ShardSources(sources []m.Source, index, total int) []m.Source {
	if total <= 1 {
		return sources
	}

	var shard []m.Source

	for i, source := range sources {
		if i%total == index {
			shard = append(shard, source)
		}
	}

	return shard
}
