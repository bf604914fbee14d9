package catalog

import (
	"fmt"
	"sort"

	"github.com/inkfarer/Tableturfer/engine"
)

// DefaultMapName is the map games start on unless the room owner picks
// another one.
const DefaultMapName = "Square"

// RandomMapName is the sentinel the server sends when the room is set to
// pick a map at random. It never resolves to a layout by itself.
const RandomMapName = "random"

// Map layouts use one character per square: 'x' is a disabled square, '.'
// an empty one and 'a'/'b' the teams' starting special squares.
var mapTemplates = map[string][]string{
	"Square": {
		".........",
		".........",
		".........",
		"....b....",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		"....a....",
		".........",
		".........",
		".........",
	},
	"MainStreet": {
		".............",
		".............",
		".............",
		".............",
		"......b......",
		".............",
		".............",
		".............",
		".............",
		"xx.........xx",
		"xx.........xx",
		"xxx.......xxx",
		"xxx.......xxx",
		"xxx.......xxx",
		"xxx.......xxx",
		"xx.........xx",
		"xx.........xx",
		".............",
		".............",
		".............",
		".............",
		"......a......",
		".............",
		".............",
		".............",
		".............",
	},
	"WDiamond": {
		"xxxxxxxx.xxxxxxxx",
		"xxxxxxx...xxxxxxx",
		"xxxxxx.....xxxxxx",
		"xxxxx.......xxxxx",
		"xxxx.........xxxx",
		"xxx.....b.....xxx",
		"xx.............xx",
		"x...............x",
		".................",
		"x...............x",
		"xx.............xx",
		"xxx...........xxx",
		"xxxx.........xxxx",
		"xxx...........xxx",
		"xx.............xx",
		"x...............x",
		".................",
		"x...............x",
		"xx.............xx",
		"xxx.....a.....xxx",
		"xxxx.........xxxx",
		"xxxxx.......xxxxx",
		"xxxxxx.....xxxxxx",
		"xxxxxxx...xxxxxxx",
		"xxxxxxxx.xxxxxxxx",
	},
}

// Maps resolves map names to their layouts. It implements
// engine.MapProvider.
type Maps struct {
	byName map[string]engine.GameMap
}

// NewMaps builds the map catalog from the embedded layouts.
func NewMaps() *Maps {
	byName := make(map[string]engine.GameMap, len(mapTemplates))
	for name, rows := range mapTemplates {
		byName[name] = engine.GameMap{Name: name, Squares: parseMapGrid(name, rows)}
	}
	return &Maps{byName: byName}
}

// Map returns the named map layout.
func (m *Maps) Map(name string) (engine.GameMap, bool) {
	layout, ok := m.byName[name]
	return layout, ok
}

// Names returns every map name in the catalog, sorted.
func (m *Maps) Names() []string {
	names := make([]string, 0, len(m.byName))
	for name := range m.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseMapGrid(name string, rows []string) [][]engine.BoardSquare {
	squares := make([][]engine.BoardSquare, len(rows))
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			panic(fmt.Sprintf("catalog: map %q has ragged rows", name))
		}
		squares[y] = make([]engine.BoardSquare, len(row))
		for x, cell := range row {
			switch cell {
			case 'x':
				squares[y][x] = engine.BoardSquareDisabled
			case '.':
				squares[y][x] = engine.BoardSquareEmpty
			case 'a':
				squares[y][x] = engine.BoardSquareInactiveSpecialAlpha
			case 'b':
				squares[y][x] = engine.BoardSquareInactiveSpecialBravo
			default:
				panic(fmt.Sprintf("catalog: map %q has unknown square %q", name, cell))
			}
		}
	}
	return squares
}
