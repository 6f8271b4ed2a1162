package tui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/tilegame/twenty48/game/engine"
)

const (
	cellWidth  = 9
	cellHeight = 3
	cellGap    = 1

	boardTitle = " 2048 "
)

// boardDimensions returns the width and height of the bordered board area
// for the given grid size.
func boardDimensions(size int) (int, int) {
	width := size*cellWidth + (size-1)*cellGap + 4
	height := size*cellHeight + 2
	return width, height
}

// Draw renders one complete frame from the snapshot: the bordered board with
// one box per cell, the score line and the status message. The snapshot
// carries everything needed, so Draw keeps no state between frames.
func Draw(s tcell.Screen, snap engine.Snapshot) {
	s.Clear()

	screenW, screenH := s.Size()
	boardW, boardH := boardDimensions(snap.BoardSize)

	// Center the board, leaving two lines below for score and message.
	originX := (screenW - boardW) / 2
	originY := (screenH - boardH - 2) / 2
	if originX < 0 {
		originX = 0
	}
	if originY < 0 {
		originY = 0
	}

	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	drawBox(s, originX, originY, boardW, boardH, borderStyle, boardTitle)

	for row := 0; row < snap.BoardSize; row++ {
		for col := 0; col < snap.BoardSize; col++ {
			x := originX + 2 + col*(cellWidth+cellGap)
			y := originY + 1 + row*cellHeight
			drawCell(s, x, y, snap.Cells[row][col], snap.Merged[row][col])
		}
	}

	score := fmt.Sprintf("Score: %d", snap.Score)
	drawText(s, originX+boardW-len(score), originY+boardH, borderStyle, score)

	if snap.Message != "" {
		drawText(s, originX, originY+boardH+1, messageStyle(snap.Status), snap.Message)
	}

	s.Show()
}

// drawCell draws a single bordered tile box with its value centered
func drawCell(s tcell.Screen, x, y, value int, merged bool) {
	style := tileStyle(value, merged)
	drawBox(s, x, y, cellWidth, cellHeight, style, "")

	if value == engine.TileEmpty {
		return
	}

	text := strconv.Itoa(value)
	drawText(s, x+(cellWidth-len(text))/2, y+cellHeight/2, style.Bold(true), text)
}

// tileStyle picks a color per tile magnitude; merged tiles are shown inverted
// for the frame in which the merge happened.
func tileStyle(value int, merged bool) tcell.Style {
	style := tcell.StyleDefault
	switch {
	case value == engine.TileEmpty:
		style = style.Foreground(tcell.ColorGray)
	case value <= 4:
		style = style.Foreground(tcell.ColorWhite)
	case value <= 16:
		style = style.Foreground(tcell.ColorYellow)
	case value <= 64:
		style = style.Foreground(tcell.ColorOrange)
	case value <= 256:
		style = style.Foreground(tcell.ColorRed)
	case value <= 1024:
		style = style.Foreground(tcell.ColorFuchsia)
	default:
		style = style.Foreground(tcell.ColorAqua)
	}
	if merged {
		style = style.Reverse(true)
	}
	return style
}

// messageStyle colors the status line by game state
func messageStyle(status engine.Status) tcell.Style {
	switch status {
	case engine.StatusWon:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case engine.StatusLost:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorGray)
}

// drawBox draws a rectangle border with an optional title on the top edge
func drawBox(s tcell.Screen, x, y, w, h int, style tcell.Style, title string) {
	for col := x + 1; col < x+w-1; col++ {
		s.SetContent(col, y, tcell.RuneHLine, nil, style)
		s.SetContent(col, y+h-1, tcell.RuneHLine, nil, style)
	}
	for row := y + 1; row < y+h-1; row++ {
		s.SetContent(x, row, tcell.RuneVLine, nil, style)
		s.SetContent(x+w-1, row, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, style)
	s.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	s.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	s.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)

	if title != "" {
		drawText(s, x+2, y, style, title)
	}
}

// drawText writes a string starting at the given coordinates
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
