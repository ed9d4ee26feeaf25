package engine

// Score tracks points and chain progress for one session
// MaxChain survives Reset: it is the best chain seen since the Score was created
type Score struct {
	total    int
	delta    int
	chain    int
	maxChain int
	pieces   int
}

// ScoreView is a read-only copy of the score state for renderers
type ScoreView struct {
	Total    int
	Delta    int
	Chain    int
	MaxChain int
	Pieces   int
}

// Total returns the cumulative score
func (s *Score) Total() int { return s.total }

// Delta returns the points added by the most recent vanish
func (s *Score) Delta() int { return s.delta }

// ChainCount returns the chains completed since the current piece landed
func (s *Score) ChainCount() int { return s.chain }

// MaxChain returns the longest chain observed
func (s *Score) MaxChain() int { return s.maxChain }

// Pieces returns the number of pairs spawned this session
func (s *Score) Pieces() int { return s.pieces }

// Add credits points and records them as the last delta; negative values are ignored
func (s *Score) Add(points int) {
	if points < 0 {
		return
	}
	s.total += points
	s.delta = points
}

// AddChainCount increments the chain counter, raising MaxChain when exceeded
func (s *Score) AddChainCount(n int) {
	s.chain += n
	if s.chain > s.maxChain {
		s.maxChain = s.chain
	}
}

// SetChainCount overwrites the current chain counter
func (s *Score) SetChainCount(n int) {
	s.chain = n
}

// ClearDelta forgets the last delta (HUD reset after a quiet landing)
func (s *Score) ClearDelta() {
	s.delta = 0
}

// AddPiece counts a spawned pair
func (s *Score) AddPiece() {
	s.pieces++
}

// Reset zeroes everything except MaxChain
func (s *Score) Reset() {
	s.total = 0
	s.delta = 0
	s.chain = 0
	s.pieces = 0
}

// View returns a snapshot of the score
func (s *Score) View() ScoreView {
	return ScoreView{
		Total:    s.total,
		Delta:    s.delta,
		Chain:    s.chain,
		MaxChain: s.maxChain,
		Pieces:   s.pieces,
	}
}
