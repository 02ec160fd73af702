package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/gedembed/matrix"
)

// WriteCSV writes m with a header of train ids and a leading test-id column.
// Nil id slices default to 0..n-1. Values use the shortest exact form; NaN
// cells are written as "NaN".
func WriteCSV(w io.Writer, m *matrix.Dense, testIDs, trainIDs []int) error {
	testIDs, err := idsOrRange(testIDs, m.Rows())
	if err != nil {
		return fmt.Errorf("WriteCSV: test ids: %w", err)
	}
	trainIDs, err = idsOrRange(trainIDs, m.Cols())
	if err != nil {
		return fmt.Errorf("WriteCSV: train ids: %w", err)
	}

	cw := csv.NewWriter(w)
	rec := make([]string, m.Cols()+1)
	rec[0] = "test"
	for j, id := range trainIDs {
		rec[j+1] = strconv.Itoa(id)
	}
	if err := cw.Write(rec); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	for i, id := range testIDs {
		rec[0] = strconv.Itoa(id)
		for j, v := range m.Row(i) {
			rec[j+1] = formatCell(v)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// idsOrRange returns ids, or 0..n-1 when ids is nil.
func idsOrRange(ids []int, n int) ([]int, error) {
	if ids == nil {
		ids = make([]int, n)
		for i := range ids {
			ids[i] = i
		}
		return ids, nil
	}
	if len(ids) != n {
		return nil, fmt.Errorf("%d ids for %d entries: %w", len(ids), n, ErrShape)
	}

	return ids, nil
}
