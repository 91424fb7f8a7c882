package model

// Snapshot is a read-only view of everything collected for one report.
type Snapshot struct {
	Records    []ResultRecord
	Categories []Category // first-seen order
	Counts     map[Category]AggregateCounts
	Skipped    int // tests that were neither PASS nor FAIL
}

// Overall sums the counts of every category.
func (s Snapshot) Overall() AggregateCounts {
	var total AggregateCounts
	for _, category := range s.Categories {
		total.Merge(s.Counts[category])
	}

	return total
}

// RecordsFor returns the records of one category in ingestion order.
func (s Snapshot) RecordsFor(category Category) []ResultRecord {
	var records []ResultRecord

	for _, record := range s.Records {
		if record.Category == category {
			records = append(records, record)
		}
	}

	return records
}

// Durations returns the duration of every record in milliseconds.
func (s Snapshot) Durations() []float64 {
	durations := make([]float64, 0, len(s.Records))
	for _, record := range s.Records {
		durations = append(durations, float64(record.DurationMillis))
	}

	return durations
}

// Empty reports whether nothing was collected.
func (s Snapshot) Empty() bool {
	return len(s.Records) == 0
}
