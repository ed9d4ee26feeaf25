package engine

import (
	"github.com/lixenwraith/puyo/constants"
)

// ChainBonus returns the bonus for a vanish pass after chain completed passes
func ChainBonus(chain int) int {
	return lookup(constants.ChainBonus[:], chain)
}

// ConnectionBonus returns the bonus for one vanished group of the given size
func ConnectionBonus(size int) int {
	if size < constants.MinGroupSize {
		return 0
	}
	return lookup(constants.ConnectionBonus[:], size-constants.MinGroupSize)
}

// ColorBonus returns the bonus for the number of distinct colors vanished together
func ColorBonus(distinct int) int {
	if distinct < 1 {
		return 0
	}
	return lookup(constants.ColorBonus[:], distinct-1)
}

// ScoreDelta computes the points for one non-empty vanish pass
// chain is the number of passes already completed since the landing
func ScoreDelta(groupSizes []int, distinctColors, chain int) int {
	vanished := 0
	connection := 0
	for _, size := range groupSizes {
		vanished += size
		connection += ConnectionBonus(size)
	}

	bonus := ChainBonus(chain) + connection + ColorBonus(distinctColors)
	if bonus == 0 {
		bonus = 1
	}
	return vanished * bonus * constants.ScoreUnit
}

// lookup clamps i into the table range
func lookup(table []int, i int) int {
	if i < 0 {
		i = 0
	}
	if i >= len(table) {
		i = len(table) - 1
	}
	return table[i]
}
