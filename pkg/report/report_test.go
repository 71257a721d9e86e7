package report

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterTruncatesOnRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w := NewWriter(path)

	err := w.Write([]string{"a", "b"}, [][]string{{"1", "2"}, {"3", "4"}})
	assert.NoError(t, err)

	err = w.Write([]string{"a", "b"}, [][]string{{"5", "6"}})
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "a,b\n5,6\n", string(data))
}

func TestWriterQuotesEmbeddedCommas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w := NewWriter(path)

	err := w.Write([]string{"skills"}, [][]string{{"Go,SQL"}})
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "skills\n\"Go,SQL\"\n", string(data))
}

func TestWriterSerializesConcurrentCalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w := NewWriter(path)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, w.Write([]string{"h"}, [][]string{{"row"}}))
		}()
	}
	wg.Wait()

	// Whichever write landed last, the file must be a complete document.
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "h\nrow\n", string(data))
}
