// Package catalog holds the static card and map data the game is played
// with. Patterns are authored on the fixed 8x8 grid the source data uses
// and trimmed down to their bounding box at load time.
package catalog

import (
	"fmt"
	"sort"

	"github.com/inkfarer/Tableturfer/engine"
)

const (
	RarityCommon = "Common"
	RarityRare   = "Rare"
	RarityFresh  = "Fresh"
)

const (
	CategoryMain  = "Main"
	CategorySub   = "Sub"
	CategoryChara = "Chara"
)

// cardTemplate is one card's raw data. The grid rows are listed bottom-up,
// matching the flat square arrays the patterns were extracted from:
// '.' is empty, 'o' fill and '*' the special square.
type cardTemplate struct {
	category    string
	number      int
	rarity      string
	season      int
	specialCost int
	grid        []string
}

var cardTemplates = map[string]cardTemplate{
	"ShooterNormal00": {CategoryMain, 1, RarityCommon, 1, 3, []string{
		"........",
		"........",
		"..o*o...",
		"..ooo...",
		"...o....",
		"........",
		"........",
		"........",
	}},
	"BlasterMiddle00": {CategoryMain, 24, RarityCommon, 1, 3, []string{
		"........",
		"........",
		"..ooo...",
		"..o*....",
		"..o.....",
		"........",
		"........",
		"........",
	}},
	"RollerNormal00": {CategoryMain, 34, RarityRare, 1, 4, []string{
		"........",
		"........",
		"..ooo...",
		"..o*o...",
		"..ooo...",
		"........",
		"........",
		"........",
	}},
	"ChargerNormal00": {CategoryMain, 40, RarityCommon, 1, 3, []string{
		"........",
		"........",
		"........",
		"..*.....",
		"ooooooo.",
		"........",
		"........",
		"........",
	}},
	"ChargerLight00": {CategoryMain, 41, RarityCommon, 1, 3, []string{
		"........",
		"........",
		"........",
		".o*ooo..",
		".o...o..",
		"........",
		"........",
		"........",
	}},
	"SpinnerStandard00": {CategoryMain, 48, RarityRare, 1, 3, []string{
		"........",
		"........",
		"........",
		"..o*o...",
		"...ooo..",
		"........",
		"........",
		"........",
	}},
	"SlosherStrong00": {CategoryMain, 43, RarityCommon, 1, 3, []string{
		"........",
		"........",
		"..o.o...",
		"..o.o...",
		"..o*o...",
		"........",
		"........",
		"........",
	}},
	"ManeuverNormal00": {CategoryMain, 50, RarityCommon, 1, 3, []string{
		"........",
		"........",
		"...o....",
		"..o*o...",
		"..o.o...",
		"........",
		"........",
		"........",
	}},
	"StringerNormal00": {CategoryMain, 54, RarityRare, 1, 3, []string{
		"........",
		"........",
		"..o.....",
		"..o*....",
		"..oooo..",
		"........",
		"........",
		"........",
	}},
	"SaberLight00": {CategoryMain, 57, RarityCommon, 1, 2, []string{
		"........",
		"...o....",
		"...o....",
		"...o....",
		"...o....",
		"...*....",
		"........",
		"........",
	}},
	"BombSplash": {CategorySub, 101, RarityCommon, 1, 1, []string{
		"........",
		"........",
		"........",
		"...oo...",
		"....*...",
		"........",
		"........",
		"........",
	}},
	"BombQuick": {CategorySub, 102, RarityCommon, 1, 1, []string{
		"........",
		"........",
		"........",
		"...*....",
		"........",
		"........",
		"........",
		"........",
	}},
	"BombCurling": {CategorySub, 103, RarityCommon, 1, 1, []string{
		"........",
		"........",
		"........",
		"..ooo...",
		"...*....",
		"........",
		"........",
		"........",
	}},
	"TakoDozer": {CategoryChara, 120, RarityCommon, 1, 2, []string{
		"........",
		"........",
		"........",
		"....*...",
		"..ooooo.",
		"........",
		"........",
		"........",
	}},
	"Shake": {CategoryChara, 122, RarityCommon, 2, 3, []string{
		"........",
		"........",
		"..oo....",
		"..o*o...",
		"...oo...",
		"........",
		"........",
		"........",
	}},
	"Batoroika": {CategoryChara, 128, RarityFresh, 2, 5, []string{
		"........",
		"........",
		"..ooo...",
		"..ooo...",
		"..o*o...",
		"..ooo...",
		"........",
		"........",
	}},
	"Mother": {CategoryChara, 155, RarityFresh, 2, 5, []string{
		"........",
		"........",
		"...oo...",
		"..o*oo..",
		"..oooo..",
		"...oo...",
		"........",
		"........",
	}},
	"Denchinamazu": {CategoryChara, 159, RarityCommon, 1, 2, []string{
		"........",
		"........",
		"...o....",
		"..o*o...",
		"...o....",
		"........",
		"........",
		"........",
	}},
}

// DefaultDeckCards is the card list every player starts with.
var DefaultDeckCards = []string{
	"ShooterNormal00",
	"BlasterMiddle00",
	"RollerNormal00",
	"ChargerNormal00",
	"SpinnerStandard00",
	"SlosherStrong00",
	"ManeuverNormal00",
	"StringerNormal00",
	"SaberLight00",
	"BombSplash",
	"Denchinamazu",
	"TakoDozer",
	"Shake",
	"Batoroika",
	"Mother",
}

// Cards resolves card names to their trimmed patterns and metadata. It
// implements engine.CardProvider.
type Cards struct {
	byName map[string]*engine.Card
}

// NewCards builds the card catalog from the embedded templates.
func NewCards() *Cards {
	byName := make(map[string]*engine.Card, len(cardTemplates))
	for name, tpl := range cardTemplates {
		byName[name] = &engine.Card{
			Category:    tpl.category,
			Name:        name,
			Number:      tpl.number,
			Rarity:      tpl.rarity,
			Season:      tpl.season,
			SpecialCost: tpl.specialCost,
			Squares:     engine.NormalizeCardSquares(parseCardGrid(name, tpl.grid), engine.CardGridSize),
		}
	}
	return &Cards{byName: byName}
}

// Card returns the named card.
func (c *Cards) Card(name string) (*engine.Card, bool) {
	card, ok := c.byName[name]
	return card, ok
}

// Names returns every card name in the catalog, sorted.
func (c *Cards) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseCardGrid(name string, grid []string) []engine.CardSquare {
	if len(grid) != engine.CardGridSize {
		panic(fmt.Sprintf("catalog: card %q has %d rows", name, len(grid)))
	}
	flat := make([]engine.CardSquare, 0, engine.CardGridSize*engine.CardGridSize)
	for _, row := range grid {
		if len(row) != engine.CardGridSize {
			panic(fmt.Sprintf("catalog: card %q has a row of width %d", name, len(row)))
		}
		for _, cell := range row {
			switch cell {
			case '.':
				flat = append(flat, engine.CardSquareEmpty)
			case 'o':
				flat = append(flat, engine.CardSquareFill)
			case '*':
				flat = append(flat, engine.CardSquareSpecial)
			default:
				panic(fmt.Sprintf("catalog: card %q has unknown square %q", name, cell))
			}
		}
	}
	return flat
}
