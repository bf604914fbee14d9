package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfarer/Tableturfer/engine"
)

func TestWDiamondLayout(t *testing.T) {
	m, ok := NewMaps().Map("WDiamond")
	require.True(t, ok)

	assert.Equal(t, engine.Size{Width: 17, Height: 25}, engine.GridSize(m.Squares))
	assert.Equal(t, engine.BoardSquareInactiveSpecialBravo, m.Squares[5][8])
	assert.Equal(t, engine.BoardSquareInactiveSpecialAlpha, m.Squares[19][8])
	assert.Equal(t, engine.BoardSquareDisabled, m.Squares[0][0])
	assert.Equal(t, engine.BoardSquareEmpty, m.Squares[0][8])
	assert.Equal(t, engine.BoardSquareEmpty, m.Squares[12][8])
}

func TestSquareLayout(t *testing.T) {
	m, ok := NewMaps().Map(DefaultMapName)
	require.True(t, ok)

	assert.Equal(t, engine.Size{Width: 9, Height: 26}, engine.GridSize(m.Squares))
	assert.Equal(t, engine.BoardSquareInactiveSpecialBravo, m.Squares[3][4])
	assert.Equal(t, engine.BoardSquareInactiveSpecialAlpha, m.Squares[22][4])

	for y, row := range m.Squares {
		for x, sq := range row {
			assert.NotEqualf(t, engine.BoardSquareDisabled, sq, "square (%d, %d)", x, y)
		}
	}
}

func TestMainStreetLayout(t *testing.T) {
	m, ok := NewMaps().Map("MainStreet")
	require.True(t, ok)

	assert.Equal(t, engine.Size{Width: 13, Height: 26}, engine.GridSize(m.Squares))
	assert.Equal(t, engine.BoardSquareInactiveSpecialBravo, m.Squares[4][6])
	assert.Equal(t, engine.BoardSquareInactiveSpecialAlpha, m.Squares[21][6])
	assert.Equal(t, engine.BoardSquareDisabled, m.Squares[12][0])
	assert.Equal(t, engine.BoardSquareEmpty, m.Squares[12][6])
}

func TestMapsStartPositions(t *testing.T) {
	maps := NewMaps()
	for _, name := range maps.Names() {
		m, ok := maps.Map(name)
		require.True(t, ok)

		board := engine.NewBoard(m)
		_, ok = board.StartPosition(engine.TeamAlpha)
		assert.Truef(t, ok, "map %s has no alpha start", name)
		_, ok = board.StartPosition(engine.TeamBravo)
		assert.Truef(t, ok, "map %s has no bravo start", name)
	}
}

func TestBoardsDoNotShareSquaresWithTheCatalog(t *testing.T) {
	maps := NewMaps()
	m, ok := maps.Map(DefaultMapName)
	require.True(t, ok)

	board := engine.NewBoard(m)
	board.Squares[0][0] = engine.BoardSquareFillAlpha

	fresh, _ := maps.Map(DefaultMapName)
	assert.Equal(t, engine.BoardSquareEmpty, fresh.Squares[0][0])
}

func TestMapUnknownName(t *testing.T) {
	maps := NewMaps()

	_, ok := maps.Map("MarinersHigh")
	assert.False(t, ok)

	// The random sentinel is not a layout by itself.
	_, ok = maps.Map(RandomMapName)
	assert.False(t, ok)
}
