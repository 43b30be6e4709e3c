package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// WriteCSV writes a time column followed by x0..xn per state. Values use the
// shortest representation that parses back to the same float64.
func WriteCSV(w io.Writer, states []dynamo.State, times []float64) error {
	cw := csv.NewWriter(w)

	if len(states) > 0 {
		header := []string{"time"}
		for i := range states[0] {
			header = append(header, fmt.Sprintf("x%d", i))
		}
		if err := cw.Write(header); err != nil {
			return err
		}
	}

	for i, s := range states {
		t := 0.0
		if i < len(times) {
			t = times[i]
		}
		row := []string{strconv.FormatFloat(t, 'g', -1, 64)}
		for _, v := range s {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
