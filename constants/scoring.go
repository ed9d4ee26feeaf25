package constants

// MinGroupSize is the smallest connected group that vanishes
const MinGroupSize = 4

// ChainBonus is indexed by the number of chains already completed since the landing
var ChainBonus = [...]int{0, 8, 16, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, 480, 512}

// ConnectionBonus is indexed by group size minus MinGroupSize; sizes past the end use the last entry
var ConnectionBonus = [...]int{0, 2, 3, 4, 5, 6, 7, 10}

// ColorBonus is indexed by the number of distinct colors vanished in one pass minus one
var ColorBonus = [...]int{0, 3, 6, 12, 24}

// ScoreUnit multiplies vanished count times bonus
const ScoreUnit = 10
