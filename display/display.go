// Package display renders games and match lists as plain text. It only reads game state.
package display

import (
	"fmt"
	"strings"

	"gobblet/communication"
	"gobblet/game"
	"gobblet/meta"
)

// Glyphs per player, smallest size first.
var glyphs = map[game.PlayerID][meta.MAX_SIZE + 1]string{
	game.Player1: {"▫", "◇", "◯", "□"},
	game.Player2: {"▪", "◆", "●", "■"},
}

const emptyCell = "   "

func cell(p game.Piece, ok bool) string {
	if !ok {
		return emptyCell
	}
	return " " + glyphs[p.Owner()][p.Size()] + " "
}

// FormatPlayer renders "name: " followed by the three reserve slots.
func FormatPlayer(gs game.GameState, id game.PlayerID) string {
	slots := make([]string, meta.STACK_SLOTS)
	for i := range slots {
		slots[i] = cell(gs.StackPieceAt(id, i))
	}
	return gs.Player(id).Name + ": " + strings.Join(slots, " ")
}

// FormatBoard renders the board with row labels 3..0 and column labels 0..3.
func FormatBoard(gs game.GameState) string {
	var sb strings.Builder
	separator := " " + strings.Repeat("───┼", meta.BOARD_SIZE-1) + "───"
	for row := meta.BOARD_SIZE - 1; row >= 0; row-- {
		cells := make([]string, meta.BOARD_SIZE)
		for col := range cells {
			cells[col] = cell(gs.PieceAt(game.Coord{Col: col, Row: row}))
		}
		fmt.Fprintf(&sb, "%d%s\n", row, strings.Join(cells, "|"))
		if row > 0 {
			sb.WriteString(separator + "\n")
		}
	}
	sb.WriteString(" ")
	for col := 0; col < meta.BOARD_SIZE; col++ {
		fmt.Fprintf(&sb, " %d  ", col)
	}
	return strings.TrimRight(sb.String(), " ") + " "
}

// FormatGame renders the stack header, both players right-aligned, then the board.
func FormatGame(gs game.GameState) string {
	width := 13 + max(len([]rune(gs.Players[0].Name)), len([]rune(gs.Players[1].Name)))

	var sb strings.Builder
	fmt.Fprintf(&sb, "%*s\n", width, "0   1   2 ")
	for _, id := range []game.PlayerID{game.Player1, game.Player2} {
		fmt.Fprintf(&sb, "%*s\n", width, FormatPlayer(gs, id))
	}
	sb.WriteString("\n")
	sb.WriteString(FormatBoard(gs))
	return sb.String()
}

// FormatGames renders one numbered line per match, in the order given.
func FormatGames(games []communication.GameSummary) string {
	var sb strings.Builder
	for i, g := range games {
		fmt.Fprintf(&sb, "%-2d: %s, %s", i+1, g.Date, strings.Join(g.Players, " vs "))
		if g.Winner != nil {
			fmt.Fprintf(&sb, ", gagnant: %s", *g.Winner)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
