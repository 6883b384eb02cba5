package entity

// Cell is the value held by a single board square.
type Cell uint8

const (
	Empty Cell = iota
	Cross
	Circle
)

func (that Cell) String() string {
	switch that {
	case Cross:
		return "X"
	case Circle:
		return "O"
	default:
		return ""
	}
}

// Player identifies one of the two sides of a game.
type Player uint8

const (
	First Player = iota
	Second
)

// Starter is the player active on a fresh board.
const Starter = First

// Mark returns the cell value the player places: the starter plays Cross.
func (that Player) Mark() Cell {
	if that == Starter {
		return Cross
	}
	return Circle
}

// Next returns the opponent.
func (that Player) Next() Player {
	if that == First {
		return Second
	}
	return First
}

func (that Player) String() string {
	if that == First {
		return "first"
	}
	return "second"
}

// Outcome summarizes where a game stands.
type Outcome uint8

const (
	Ongoing Outcome = iota
	Won
	Draw
)

func (that Outcome) String() string {
	switch that {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}
