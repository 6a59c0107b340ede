package guidance

import (
	"testing"

	"github.com/lintang-b-s/bestpath/pkg"
	"github.com/lintang-b-s/bestpath/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathToDirections(t *testing.T) {
	tr := datastructure.NewTransform(datastructure.NewCoordinate(10, -4), 3, 3)
	db := NewDirectionBuilder(tr)

	testCases := []struct {
		name    string
		path    []datastructure.Index
		want    []pkg.Direction
		wantErr bool
	}{
		{name: "empty path", path: nil, want: []pkg.Direction{}},
		{name: "single vertex", path: []datastructure.Index{4}, want: []pkg.Direction{}},
		{
			name: "all four directions",
			path: []datastructure.Index{4, 1, 2, 5, 4},
			want: []pkg.Direction{pkg.UP, pkg.RIGHT, pkg.DOWN, pkg.LEFT},
		},
		{name: "row wrap is not a step", path: []datastructure.Index{2, 3}, wantErr: true},
		{name: "diagonal", path: []datastructure.Index{0, 4}, wantErr: true},
		{name: "vertex outside the grid", path: []datastructure.Index{8, 9}, wantErr: true},
		{name: "standing still", path: []datastructure.Index{3, 3}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := db.PathToDirections(tc.path)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStep)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReplay(t *testing.T) {
	start := datastructure.NewCoordinate(0, 0)
	cells := Replay(start, []pkg.Direction{pkg.RIGHT, pkg.RIGHT, pkg.DOWN, pkg.LEFT, pkg.UP})

	assert.Equal(t, []datastructure.Coordinate{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1},
		{Row: 0, Col: 2},
		{Row: 1, Col: 2},
		{Row: 1, Col: 1},
		{Row: 0, Col: 1},
	}, cells)
}

func TestStepDirectionRoundTrip(t *testing.T) {
	for _, dir := range []pkg.Direction{pkg.UP, pkg.DOWN, pkg.LEFT, pkg.RIGHT} {
		t.Run(dir.String(), func(t *testing.T) {
			next := Step(datastructure.NewCoordinate(5, 5), dir)
			got, err := StepDirection(next.Row-5, next.Col-5)
			require.NoError(t, err)
			assert.Equal(t, dir, got)
		})
	}
}
