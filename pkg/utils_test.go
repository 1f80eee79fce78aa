package pkg_test

import (
	"bytes"
	"os"
	"testing"

	. "github.com/tobsdb/invdb/pkg"
	"gotest.tools/assert"
)

func TestFilter(t *testing.T) {
	res := Filter([]int{1, 2, 3, 4, 5, 6}, func(i int) bool {
		return i%2 == 0
	})

	assert.DeepEqual(t, res, []int{2, 4, 6})
}

func TestTopN(t *testing.T) {
	items := []int{3, 1, 5, 2, 4}
	desc := func(a, b int) bool { return a > b }

	t.Run("limit", func(t *testing.T) {
		assert.DeepEqual(t, TopN(items, 3, desc), []int{5, 4, 3})
		// input is not reordered
		assert.DeepEqual(t, items, []int{3, 1, 5, 2, 4})
	})

	t.Run("limit larger than input", func(t *testing.T) {
		assert.DeepEqual(t, TopN(items, 10, desc), []int{5, 4, 3, 2, 1})
	})

	t.Run("negative limit keeps everything", func(t *testing.T) {
		assert.Equal(t, len(TopN(items, -1, desc)), 5)
	})
}

func TestMap(t *testing.T) {
	m := Map[string, int]{}
	m.Set("b", 2)
	m.Set("a", 1)

	assert.Assert(t, m.Has("a"))
	assert.Equal(t, m.Get("b"), 2)
	assert.DeepEqual(t, SortedKeys(m), []string{"a", "b"})

	v := m.GetOrInit("c", func() int { return 3 })
	assert.Equal(t, v, 3)
	assert.Equal(t, m.GetOrInit("c", func() int { return 4 }), 3)

	m.Delete("a")
	assert.Assert(t, !m.Has("a"))
}

func TestLogLevel(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		level, err := ParseLogLevel("DEBUG")
		assert.NilError(t, err)
		assert.Equal(t, level, LogLevelDebug)

		_, err = ParseLogLevel("loud")
		assert.ErrorContains(t, err, "Invalid log level")
	})

	t.Run("output follows level", func(t *testing.T) {
		prev := GetLogLevel()
		defer SetLogLevel(prev)

		var out, errOut bytes.Buffer
		SetLogOutput(&out, &errOut)
		defer SetLogOutput(os.Stdout, os.Stderr)

		SetLogLevel(LogLevelErrOnly)
		InfoLog("hidden")
		ErrorLog("shown")
		assert.Equal(t, out.Len(), 0)
		assert.Assert(t, bytes.Contains(errOut.Bytes(), []byte("shown")))

		SetLogLevel(LogLevelInfo)
		InfoLog("visible")
		assert.Assert(t, bytes.Contains(out.Bytes(), []byte("visible")))
	})
}
