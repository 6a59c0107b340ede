package terrain

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lintang-b-s/bestpath/pkg"
	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingDiscoverer struct {
	tile  da.Tile
	calls [][]da.Coordinate
}

func (rd *recordingDiscoverer) DiscoverTiles(ctx context.Context, coords []da.Coordinate) (map[da.Coordinate]da.Tile, error) {
	rd.calls = append(rd.calls, coords)
	out := make(map[da.Coordinate]da.Tile, len(coords))
	for _, c := range coords {
		out[c] = rd.tile
	}
	return out, nil
}

func normalized(t *testing.T, known []da.KnownCell, corner da.Coordinate) (*da.Matrix, da.Transform) {
	t.Helper()
	m, tr, err := Normalize(known, []da.Coordinate{corner}, da.NewCoordinate(0, 0))
	require.NoError(t, err)
	return m, tr
}

func TestFillScanOrder(t *testing.T) {
	m, tr := normalized(t, []da.KnownCell{
		da.NewKnownCell(da.NewCoordinate(0, 0), da.NewTile(pkg.GRASS, 0)),
		da.NewKnownCell(da.NewCoordinate(2, 2), da.NewTile(pkg.MOUNTAIN, 0)),
	}, da.NewCoordinate(2, 2))
	discoverer := &recordingDiscoverer{tile: da.NewTile(pkg.SAND, 0)}

	stats, err := Fill(context.Background(), m, tr, discoverer, zap.NewNop())
	require.NoError(t, err)

	wantCalls := [][]da.Coordinate{
		{da.NewCoordinate(0, 2)},
		{da.NewCoordinate(2, 0)},
	}
	if diff := cmp.Diff(wantCalls, discoverer.calls); diff != "" {
		t.Errorf("discovery calls mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5, stats.Estimated)
	assert.Equal(t, []da.KnownCell{
		da.NewKnownCell(da.NewCoordinate(0, 2), da.NewTile(pkg.SAND, 0)),
		da.NewKnownCell(da.NewCoordinate(2, 0), da.NewTile(pkg.SAND, 0)),
	}, stats.Discovered)

	wantTypes := [][]pkg.TileType{
		{pkg.GRASS, pkg.GRASS, pkg.SAND},
		{pkg.GRASS, pkg.MOUNTAIN, pkg.MOUNTAIN},
		{pkg.SAND, pkg.MOUNTAIN, pkg.MOUNTAIN},
	}
	wantKnown := [][]bool{
		{true, false, true},
		{false, false, false},
		{true, false, true},
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, wantTypes[r][c], m.Get(r, c).Type, "type at %d,%d", r, c)
			assert.Equal(t, wantKnown[r][c], m.IsKnown(r, c), "known at %d,%d", r, c)
		}
	}
}

func TestFillEstimateTieBreak(t *testing.T) {
	testCases := []struct {
		name  string
		left  da.Tile
		right da.Tile
		want  da.Tile
	}{
		{
			name:  "equal cost keeps the first neighbour",
			left:  da.NewTile(pkg.GRASS, 0),
			right: da.NewTile(pkg.STREET, 0),
			want:  da.NewTile(pkg.GRASS, 0),
		},
		{
			name:  "more expensive neighbour wins",
			left:  da.NewTile(pkg.GRASS, 0),
			right: da.NewTile(pkg.SNOW, 3),
			want:  da.NewTile(pkg.SNOW, 3),
		},
		{
			name:  "impassable neighbour is the most expensive",
			left:  da.NewTile(pkg.WALL, 0),
			right: da.NewTile(pkg.MOUNTAIN, 0),
			want:  da.NewTile(pkg.WALL, 0),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, tr := normalized(t, []da.KnownCell{
				da.NewKnownCell(da.NewCoordinate(0, 0), tc.left),
				da.NewKnownCell(da.NewCoordinate(0, 2), tc.right),
			}, da.NewCoordinate(0, 2))
			discoverer := &recordingDiscoverer{}

			stats, err := Fill(context.Background(), m, tr, discoverer, zap.NewNop())
			require.NoError(t, err)
			assert.Empty(t, discoverer.calls)
			assert.Equal(t, 1, stats.Estimated)
			assert.Equal(t, tc.want, m.Get(0, 1))
			assert.False(t, m.IsKnown(0, 1))
		})
	}
}

func TestFillEverythingKnown(t *testing.T) {
	m, tr := normalized(t, []da.KnownCell{
		da.NewKnownCell(da.NewCoordinate(0, 0), da.NewTile(pkg.GRASS, 0)),
		da.NewKnownCell(da.NewCoordinate(0, 1), da.NewTile(pkg.SAND, 0)),
	}, da.NewCoordinate(0, 1))
	before := m.Clone()
	discoverer := &recordingDiscoverer{}

	stats, err := Fill(context.Background(), m, tr, discoverer, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, discoverer.calls)
	assert.Empty(t, stats.Discovered)
	assert.Equal(t, 0, stats.Estimated)
	assert.Equal(t, before, m)
}

func TestFillErrors(t *testing.T) {
	errBoom := errors.New("boom")

	testCases := []struct {
		name       string
		discoverer Discoverer
		wantErr    []error
	}{
		{
			name:    "no discoverer",
			wantErr: []error{ErrNoDiscoverer},
		},
		{
			name: "discoverer fails",
			discoverer: DiscovererFunc(func(ctx context.Context, coords []da.Coordinate) (map[da.Coordinate]da.Tile, error) {
				return nil, errBoom
			}),
			wantErr: []error{ErrDiscovery, errBoom},
		},
		{
			name: "requested cell missing from the answer",
			discoverer: DiscovererFunc(func(ctx context.Context, coords []da.Coordinate) (map[da.Coordinate]da.Tile, error) {
				return map[da.Coordinate]da.Tile{}, nil
			}),
			wantErr: []error{ErrDiscovery},
		},
		{
			name: "canceled context",
			discoverer: DiscovererFunc(func(ctx context.Context, coords []da.Coordinate) (map[da.Coordinate]da.Tile, error) {
				return nil, ctx.Err()
			}),
			wantErr: []error{ErrDiscovery, context.Canceled},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			m, tr, err := Normalize(nil, []da.Coordinate{da.NewCoordinate(0, 1)}, da.NewCoordinate(0, 0))
			require.NoError(t, err)

			_, err = Fill(ctx, m, tr, tc.discoverer, zap.NewNop())
			require.Error(t, err)
			for _, want := range tc.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}
