package report

import (
	"encoding/csv"
	"os"
	"sync"
)

// Writer serializes tabular data to a CSV file at a fixed path. The file is
// truncated and fully rewritten on every call; a mutex serializes concurrent
// writes so two report requests cannot interleave output.
type Writer struct {
	path string
	mu   sync.Mutex
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) Path() string {
	return w.path
}

// Write replaces the file contents with a header row followed by rows.
func (w *Writer) Write(header []string, rows [][]string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	file, err := os.Create(w.path)
	if err != nil {
		return err
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	return file.Close()
}
