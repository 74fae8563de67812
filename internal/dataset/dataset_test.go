package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hullbench/hullbench/internal/geometry"
	"github.com/hullbench/hullbench/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []geometry.Point
		wantErr  string
	}{
		{
			name:     "plain two-column data",
			input:    "0 0\n1.5 2.5\n-3 4\n",
			expected: []geometry.Point{{X: 0, Y: 0}, {X: 1.5, Y: 2.5}, {X: -3, Y: 4}},
		},
		{
			name:     "header line skipped",
			input:    "x y\n1 2\n3 4\n",
			expected: []geometry.Point{{X: 1, Y: 2}, {X: 3, Y: 4}},
		},
		{
			name:     "comments and blank lines skipped",
			input:    "# generated mesh\n\n1 1\n\n# trailing comment\n2 2\n",
			expected: []geometry.Point{{X: 1, Y: 1}, {X: 2, Y: 2}},
		},
		{
			name:     "tabs and repeated spaces",
			input:    "1\t2\n3    4\n",
			expected: []geometry.Point{{X: 1, Y: 2}, {X: 3, Y: 4}},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:    "non-numeric data after points",
			input:   "1 2\nfoo bar\n",
			wantErr: "line 2",
		},
		{
			name:    "wrong column count",
			input:   "1 2\n3 4 5\n",
			wantErr: "expected 2 columns",
		},
		{
			name:    "two non-numeric leading lines",
			input:   "x y\nalso not data\n1 2\n",
			wantErr: "line 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, err := Parse(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, pts)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.dat")
	require.NoError(t, os.WriteFile(path, []byte("x y\n0 0\n4 0\n4 4\n0 4\n2 2\n"), 0o600))

	pts, err := Load(path)
	require.NoError(t, err)
	require.Len(t, pts, 5)
	require.Equal(t, geometry.Point{X: 2, Y: 2}, pts[4])
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.dat"))
	require.Error(t, err)
}

func TestLoad_TestdataMesh(t *testing.T) {
	path := filepath.Join(testutil.GetTestDataDir(t), "points", "mesh.dat")
	require.True(t, testutil.FileExists(path), "missing fixture %s", path)

	pts, err := Load(path)
	require.NoError(t, err)
	require.NotEmpty(t, pts)
}
