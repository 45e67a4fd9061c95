package telemetry

// LCG constants shared by every intra-sequence draw.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Seed sums the code points of key and adds offset.
// Sibling generators reading the same key use different offsets.
func Seed(key string, offset int) int {
	sum := offset
	for _, r := range key {
		sum += int(r)
	}
	return sum
}

// Scalar maps key to a deterministic value in [0,1).
func Scalar(key string, offset int) float64 {
	return float64(mod(Seed(key, offset), 100)) / 100
}

// LCGStep advances v by one linear-congruential step.
func LCGStep(v int) int {
	return mod(v*lcgMultiplier+lcgIncrement, lcgModulus)
}

// NoiseAt returns the single-step LCG draw for seed, in [0,1).
func NoiseAt(seed int) float64 {
	return float64(LCGStep(seed)) / lcgModulus
}

// Sequence is a deterministic stream of LCG draws.
type Sequence struct {
	state int
}

// NewSequence starts a stream at seed.
func NewSequence(seed int) *Sequence {
	return &Sequence{state: seed}
}

// Next advances the stream and returns a value in [0,1).
func (s *Sequence) Next() float64 {
	s.state = LCGStep(s.state)
	return float64(s.state) / lcgModulus
}

// Between returns a draw scaled to [lo, hi).
func (s *Sequence) Between(lo, hi float64) float64 {
	return lo + s.Next()*(hi-lo)
}

// mod keeps the result non-negative for negative offsets.
func mod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
