package attendance

import (
	"encoding/json"
	"log/slog"
)

// AggregateAll collapses raw attendance rows into one canonical status map
// per calendar date. Rows are visited in storage order, so when historical
// duplicates exist for a date the last stored row wins. A row whose blob does
// not decode is skipped and logged; it never fails the caller.
func AggregateAll(rows []Day) map[string]StatusMap {
	out := make(map[string]StatusMap, len(rows))
	for _, row := range rows {
		statuses, err := DecodeBlob(row.Blob)
		if err != nil {
			slog.Warn("skipping undecodable attendance blob",
				"row_id", row.ID, "date", row.Date, "error", err)
			continue
		}
		out[row.Date] = statuses
	}
	return out
}

// DecodeBlob decodes a stored status map blob.
func DecodeBlob(blob string) (StatusMap, error) {
	var statuses StatusMap
	if err := json.Unmarshal([]byte(blob), &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// FilterRange retains aggregated entries with start <= date <= end. Dates are
// zero-padded ISO strings, so lexical comparison is ordering-correct. When
// excludeOn is non-empty only dates strictly after it survive; callers use
// that to drop days already covered by a payment.
func FilterRange(aggregated map[string]StatusMap, start, end, excludeOn string) map[string]StatusMap {
	out := make(map[string]StatusMap)
	for date, statuses := range aggregated {
		if date < start || date > end {
			continue
		}
		if excludeOn != "" && date <= excludeOn {
			continue
		}
		out[date] = statuses
	}
	return out
}
