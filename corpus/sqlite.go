package corpus

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"text2crisis.com/drc/logger"
	"text2crisis.com/drc/types"
)

const messagesTable = "message_categories"

var (
	ErrEmptyCorpus     = errors.New("corpus has no samples")
	ErrNoMessageColumn = errors.New("corpus table has no message column")
	ErrNoCategories    = errors.New("corpus table has no category columns")
)

// metadata columns of the ETL output; everything else is a binary category
// column, in table order.
var metadataColumns = map[string]bool{
	"index":    true,
	"id":       true,
	"message":  true,
	"original": true,
	"genre":    true,
}

// LoadSQLite reads the processed disaster-response corpus from a SQLite
// database. Fails fast on a missing table, missing message column, missing
// category columns, empty table or non-binary label values; no partial
// corpus is ever returned.
func LoadSQLite(dbPath string) (types.Corpus, error) {
	fdlLogger := logger.NewLogger("CorpusSource")

	var corpus types.Corpus
	if _, err := os.Stat(dbPath); err != nil {
		return corpus, errors.Wrapf(err, "corpus database not found: %s", dbPath)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return corpus, errors.Wrapf(err, "failed to open corpus database: %s", dbPath)
	}
	defer db.Close()

	rows, err := db.Query("SELECT * FROM " + messagesTable)
	if err != nil {
		return corpus, errors.Wrapf(err, "failed to read table %s", messagesTable)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return corpus, errors.Wrap(err, "failed to read column names")
	}

	messageIdx, idIdx := -1, -1
	var categoryIdx []int
	var categoryNames []string
	for i, col := range columns {
		switch {
		case col == "message":
			messageIdx = i
		case col == "id":
			idIdx = i
		case !metadataColumns[col]:
			categoryIdx = append(categoryIdx, i)
			categoryNames = append(categoryNames, col)
		}
	}
	if messageIdx < 0 {
		return corpus, ErrNoMessageColumn
	}
	if len(categoryIdx) == 0 {
		return corpus, ErrNoCategories
	}

	var samples []types.Sample
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	ordinal := 0
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return corpus, errors.Wrap(err, "failed to scan corpus row")
		}

		sample := types.Sample{
			Message: asString(values[messageIdx]),
			Labels:  make([]int, len(categoryIdx)),
		}
		if idIdx >= 0 {
			sample.ID = asString(values[idIdx])
		} else {
			sample.ID = strconv.Itoa(ordinal)
		}

		for k, ci := range categoryIdx {
			label, err := asLabel(values[ci])
			if err != nil {
				return corpus, errors.Wrapf(err, "row %d, category %q", ordinal, categoryNames[k])
			}
			sample.Labels[k] = label
		}

		samples = append(samples, sample)
		ordinal++
	}
	if err := rows.Err(); err != nil {
		return corpus, errors.Wrap(err, "failed while iterating corpus rows")
	}
	if len(samples) == 0 {
		return corpus, ErrEmptyCorpus
	}

	fdlLogger.Info().
		Int("samples", len(samples)).
		Int("categories", len(categoryNames)).
		Msg("Loaded corpus")

	corpus.Samples = samples
	corpus.Categories = types.NewCategorySet(categoryNames)
	return corpus, nil
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(t)
	}
}

func asLabel(v any) (int, error) {
	var n int64
	switch t := v.(type) {
	case int64:
		n = t
	case float64:
		n = int64(t)
		if float64(n) != t {
			return 0, fmt.Errorf("label value %v is not an integer", t)
		}
	case []byte:
		parsed, err := strconv.ParseInt(string(t), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("label value %q is not an integer", t)
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("label value %q is not an integer", t)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("label value %v has unsupported type %T", v, v)
	}
	if n != 0 && n != 1 {
		return 0, fmt.Errorf("label value %d is not binary", n)
	}
	return int(n), nil
}
