package model

// Player is the 1-based number of a participant
type Player int

const (
	NoPlayer  Player = 0
	PlayerOne Player = 1
	PlayerTwo Player = 2
)

// Cell returns the board cell owned by this player
func (p Player) Cell() Cell {
	switch p {
	case PlayerOne:
		return CellPlayerOne
	case PlayerTwo:
		return CellPlayerTwo
	default:
		return CellEmpty
	}
}

// Other returns the opponent
func (p Player) Other() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}
