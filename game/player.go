package game

import "strconv"

type Player struct {
	Index  int     `json:"index"`
	Score  uint    `json:"score"`
	Paddle *Paddle `json:"paddle"`
}

func NewPlayer(index int, paddle *Paddle) *Player {
	return &Player{
		Index:  index,
		Paddle: paddle,
	}
}

// AddPoint increments the score and returns the new value.
func (p *Player) AddPoint() uint {
	p.Score++
	return p.Score
}

func (p *Player) HasWon(threshold uint) bool {
	return p.Score >= threshold
}

func (p *Player) ScoreString() string {
	return strconv.FormatUint(uint64(p.Score), 10)
}
