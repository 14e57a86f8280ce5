package board

import "github.com/copperhead-games/gomoku-engine/player"

// IsGameEnd is a cheap scan for an existing five-in-a-row, used before
// paying for a full position evaluation when the search driver needs to
// know whether a board handed to it is already terminal.
func (b *Board) IsGameEnd(p player.Player) bool {
	for _, line := range b.seq.All() {
		if isGameEndSequence(b, line, p) {
			return true
		}
	}
	return false
}

func isGameEndSequence(b *Board, line []int, p player.Player) bool {
	consecutive := 0
	for _, i := range line {
		owner, occupied := b.tiles[i].Player()
		if occupied && owner == p {
			consecutive++
			if consecutive >= 5 {
				return true
			}
		} else {
			consecutive = 0
		}
	}
	return false
}
