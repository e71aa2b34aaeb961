package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())
	assert.Equal(t, NewRect(0, 0, 80, 24), s.Bounds())

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			require.Equal(t, ' ', s.Get(x, y), "new screen should be blank at (%d, %d)", x, y)
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorGreen)
	assert.Equal(t, Cell{Rune: 'X', Color: ColorGreen}, s.GetCell(5, 5))

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')
	s.Set(10, 9, 'A')

	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
	assert.Equal(t, ' ', s.Get(9, 9), "the exclusive right edge must not wrap")
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X')

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			require.Equal(t, blankCell, s.GetCell(x, y), "after Clear at (%d, %d)", x, y)
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		assert.Equal(t, ch, s.Get(2+i, 1))
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	assert.Equal(t, 'H', s.Get(18, 0))
	assert.Equal(t, 'e', s.Get(19, 0))
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(0, 0, "●▲x", ColorGray)

	assert.Equal(t, "●▲x", strings.TrimSpace(s.Row(0)), "one cell per rune")
	assert.Equal(t, ColorGray, s.GetCell(1, 0).Color)
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	assert.Equal(t, 'H', s.Get(x, 2))
	assert.Equal(t, 'i', s.Get(x+1, 2))
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	assert.Equal(t, '┌', s.Get(1, 1))
	assert.Equal(t, '┐', s.Get(5, 1))
	assert.Equal(t, '└', s.Get(1, 4))
	assert.Equal(t, '┘', s.Get(5, 4))
	for x := 2; x < 5; x++ {
		assert.Equal(t, '─', s.Get(x, 1), "top edge at x=%d", x)
		assert.Equal(t, '─', s.Get(x, 4), "bottom edge at x=%d", x)
	}
	for y := 2; y < 4; y++ {
		assert.Equal(t, '│', s.Get(1, y), "left edge at y=%d", y)
		assert.Equal(t, '│', s.Get(5, y), "right edge at y=%d", y)
	}
	assert.Equal(t, ColorGray, s.GetCell(1, 1).Color)
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 4, s.Height())
	assert.Empty(t, strings.TrimSpace(s.Row(0)), "resize should clear content")

	// Negative sizes collapse to an empty buffer
	s.Resize(-1, -1)
	assert.Equal(t, 0, s.Width())
	assert.Equal(t, 0, s.Height())
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	assert.True(t, strings.HasPrefix(row, "Test"), "row = %q", row)
	assert.Len(t, row, 10)
	assert.Equal(t, "          ", s.Row(-1))
}
