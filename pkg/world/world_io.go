package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/bestpath/pkg"
	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
)

var ErrMalformedWorld = errors.New("world: malformed world file")

// WriteWorld stores the ground truth (not the exploration state) bzip2 compressed.
func (s *Store) WriteWorld(filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return s.Write(f)
}

func (s *Store) Write(out io.Writer) error {
	bz, err := bzip2.NewWriter(out, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}

	w := bufio.NewWriter(bz)
	fmt.Fprintf(w, "%d %d\n", s.rows, s.cols)
	for _, t := range s.tiles {
		// content is quoted, so labels may hold spaces or any other text
		fmt.Fprintf(w, "%s %d %s\n", t.Type, t.Elevation, strconv.Quote(t.Content))
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return bz.Close()
}

func ReadWorld(filename string) (*Store, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

func Read(in io.Reader) (*Store, error) {
	bz, err := bzip2.NewReader(in, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	br := bufio.NewReader(bz)

	line, err := readLine(br)
	if err != nil {
		return nil, err
	}
	ff := strings.Fields(line)
	if len(ff) != 2 {
		return nil, fmt.Errorf("%w: header %q", ErrMalformedWorld, line)
	}
	rows, err := strconv.Atoi(ff[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorld, err)
	}
	cols, err := strconv.Atoi(ff[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorld, err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyWorld
	}

	grid := make([][]da.Tile, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]da.Tile, cols)
		for c := 0; c < cols; c++ {
			line, err := readLine(br)
			if err != nil {
				return nil, fmt.Errorf("%w: tile %d,%d: %v", ErrMalformedWorld, r, c, err)
			}
			tile, err := parseTileLine(line)
			if err != nil {
				return nil, fmt.Errorf("tile %d,%d: %w", r, c, err)
			}
			grid[r][c] = tile
		}
	}

	return NewStore(grid)
}

func parseTileLine(line string) (da.Tile, error) {
	ff := strings.SplitN(line, " ", 3)
	if len(ff) != 3 {
		return da.Tile{}, fmt.Errorf("%w: %q", ErrMalformedWorld, line)
	}
	tt, ok := pkg.GetTileType(ff[0])
	if !ok {
		return da.Tile{}, fmt.Errorf("%w: unknown tile type %q", ErrMalformedWorld, ff[0])
	}
	elev, err := strconv.ParseUint(ff[1], 10, 32)
	if err != nil {
		return da.Tile{}, fmt.Errorf("%w: %v", ErrMalformedWorld, err)
	}
	content, err := strconv.Unquote(ff[2])
	if err != nil {
		return da.Tile{}, fmt.Errorf("%w: content %s: %v", ErrMalformedWorld, ff[2], err)
	}
	return da.NewTileWithContent(tt, uint32(elev), content), nil
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if !(errors.Is(err, io.EOF) && len(line) > 0) {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
