package align

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIdentifier(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want int
	}{
		{"cell_007.tif", 7},
		{"noNumberHere.png", -1},
		{"mask12_v2.tif", 2},           // last digit run wins
		{"exp3/does_not_matter_42.csv", 42},
		{"0.png", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractIdentifier(tc.name), tc.name)
	}
}

func TestAlign(t *testing.T) {
	t.Parallel()

	t.Run("intersects identifiers across all three collections", func(t *testing.T) {
		t.Parallel()
		triplets, missing, err := Align(
			[]string{"roi1.tif", "roi2.tif", "roi3.tif"},
			[]string{"gt2.png", "gt3.png", "gt4.png"},
			[]string{"tracks2.csv", "tracks3.csv"},
		)
		require.NoError(t, err)
		require.Len(t, triplets, 2)
		assert.Equal(t, Triplet{ID: 2, ROIFile: "roi2.tif", GTFile: "gt2.png", TrackFile: "tracks2.csv"}, triplets[0])
		assert.Equal(t, Triplet{ID: 3, ROIFile: "roi3.tif", GTFile: "gt3.png", TrackFile: "tracks3.csv"}, triplets[1])
		assert.Equal(t, []int{1, 4}, missing)
	})

	t.Run("orders triplets ascending by identifier", func(t *testing.T) {
		t.Parallel()
		triplets, _, err := Align(
			[]string{"roi10.tif", "roi2.tif"},
			[]string{"gt2.png", "gt10.png"},
			[]string{"t10.csv", "t2.csv"},
		)
		require.NoError(t, err)
		require.Len(t, triplets, 2)
		assert.Equal(t, 2, triplets[0].ID)
		assert.Equal(t, 10, triplets[1].ID)
	})

	t.Run("fails when nothing aligns", func(t *testing.T) {
		t.Parallel()
		_, _, err := Align(
			[]string{"roi1.tif"},
			[]string{"gt2.png"},
			[]string{"tracks3.csv"},
		)
		require.ErrorIs(t, err, ErrNoAlignedFiles)
	})

	t.Run("rejects duplicate identifiers within one collection", func(t *testing.T) {
		t.Parallel()
		_, _, err := Align(
			[]string{"roi1.tif", "other_roi_1.png"},
			[]string{"gt1.png"},
			[]string{"tracks1.csv"},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate identifier 1")
		assert.Contains(t, err.Error(), "predicted masks")
	})
}

func TestListImages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"b2.tif", "a10.png", "notes.txt", "c1.jpeg", "skip.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub3.png"), 0o755))

	names, err := ListImages(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1.jpeg", "b2.tif", "a10.png"}, names)
}

func TestListTracks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"t5.csv", "T2.CSV", "mask1.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	names, err := ListTracks(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"T2.CSV", "t5.csv"}, names)
}

func TestListImagesMissingDir(t *testing.T) {
	t.Parallel()

	_, err := ListImages(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
