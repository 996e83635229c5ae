package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mbolis/quick-docs/model"
)

// Older clients posted repeated slots as numbered flat fields
// ("workItem1Description", "workItem2Rate", ...) instead of row arrays.
// FlattenNumbered folds that shape into the array-of-rows model at the
// boundary, so the rest of the pipeline only ever sees rows.
//
// Keys match <prefix><index><Column> with a 1-based index; the flat
// keys are consumed and the resulting rows land under the section id.
// An explicit row array already present under the section id wins.
func FlattenNumbered(raw map[string]any, section model.SectionSchema, prefix string) map[string]any {
	if raw == nil {
		return nil
	}
	if _, ok := raw[section.ID]; ok {
		return raw
	}

	re := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `(\d+)([A-Z]\w*)$`)

	byIndex := map[int]model.Row{}
	for key, value := range raw {
		m := re.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		col := lowerFirst(m[2])
		if _, ok := section.Column(col); !ok {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		row := byIndex[idx]
		if row == nil {
			row = model.Row{}
			byIndex[idx] = row
		}
		row[col] = value
		delete(raw, key)
	}

	if len(byIndex) == 0 {
		return raw
	}

	indexes := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	rows := make([]model.Row, 0, len(indexes))
	for _, idx := range indexes {
		rows = append(rows, byIndex[idx])
	}
	raw[section.ID] = rows
	return raw
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
