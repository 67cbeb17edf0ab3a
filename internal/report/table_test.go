package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("appends the column-wise mean", func(t *testing.T) {
		t.Parallel()
		table := NewTable("File Number", "Name", "Score", "Count")
		table.Append(1, "a", 0.5, 10)
		table.Append(2, "b", 1.0, 20)
		table.Append(3, "c", 0.0, 30)

		table.Summarize("")

		require.Len(t, table.Rows, 4)
		last := table.Rows[3]
		assert.Equal(t, DefaultSummaryLabel, last[0])
		assert.Equal(t, "", last[1])
		assert.InDelta(t, 0.5, last[2].(float64), 1e-12)
		assert.InDelta(t, 20.0, last[3].(float64), 1e-12)
	})

	t.Run("uses the given label", func(t *testing.T) {
		t.Parallel()
		table := NewTable("File Number", "Score")
		table.Append(1, 2.0)
		table.Summarize("Mean")
		assert.Equal(t, "Mean", table.Rows[1][0])
	})

	t.Run("empty table yields blank summary cells", func(t *testing.T) {
		t.Parallel()
		table := NewTable("File Number", "Score")
		table.Summarize("")
		require.Len(t, table.Rows, 1)
		assert.Equal(t, DefaultSummaryLabel, table.Rows[0][0])
		assert.Equal(t, "", table.Rows[0][1])
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	table := NewTable("File Number", "Jaccard Index")
	table.Append(5, 0.25)

	out := table.Render()
	assert.Contains(t, out, "File Number")
	assert.Contains(t, out, "Jaccard Index")
	assert.Contains(t, out, "0.2500")
}
