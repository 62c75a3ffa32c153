package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors.
var (
	// ErrNilGrid is returned for a nil grid pointer.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrGridTooSmall is returned when either dimension is below 3.
	ErrGridTooSmall = fmt.Errorf("%w: maze needs at least 3x3 cells", gridgraph.ErrPrecondition)

	// ErrGenerationFailed is returned when no attempt produced a solvable
	// maze. The grid is left as it was.
	ErrGenerationFailed = errors.New("maze: no solvable maze within the retry limit")

	// ErrBadKind is returned for a Kind outside the enumeration.
	ErrBadKind = errors.New("maze: unknown kind")

	// ErrBadGap is returned when the passage width is below 1.
	ErrBadGap = errors.New("maze: gap must be >= 1")

	// ErrBadRetries is returned when the retry limit is below 1.
	ErrBadRetries = errors.New("maze: max retries must be >= 1")
)

// Kind selects the generation algorithm.
type Kind int

// Enum values (stable ordering).
const (
	KindDivision Kind = iota // recursive division with passages of width Gap
	KindPrim                 // randomized Prim over a room lattice
	KindKruskal              // randomized Kruskal over a room lattice
)

// String returns the name accepted by ParseKind.
func (k Kind) String() string {
	switch k {
	case KindDivision:
		return "recursive-division"
	case KindPrim:
		return "prim"
	case KindKruskal:
		return "kruskal"
	default:
		return "unknown"
	}
}

// ParseKind converts a name to a Kind, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recursive-division", "division":
		return KindDivision, nil
	case "prim", "prims":
		return KindPrim, nil
	case "kruskal", "kruskals":
		return KindKruskal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadKind, s)
	}
}

func (k Kind) valid() bool { return k >= KindDivision && k <= KindKruskal }

// Options configures Generate.
type Options struct {
	// Kind is the generator. Default KindDivision.
	Kind Kind

	// Gap is the passage width left in every dividing line. Division only.
	Gap int

	// MaxRetries bounds the number of candidate mazes tried.
	MaxRetries int

	// Seed feeds the random source when Rand is nil. 0 means time-seeded.
	Seed int64

	// Rand, when set, is used as is and Seed is ignored.
	Rand *rand.Rand

	// first invalid option, surfaced by Generate
	err error
}

// Option is a functional option for Generate.
type Option func(*Options)

// DefaultOptions returns recursive division, gap 1, 10 retries, time seed.
func DefaultOptions() Options {
	return Options{
		Kind:       KindDivision,
		Gap:        1,
		MaxRetries: 10,
	}
}

// WithKind selects the generator.
func WithKind(k Kind) Option {
	return func(o *Options) {
		if !k.valid() {
			o.setErr(fmt.Errorf("%w: %d", ErrBadKind, int(k)))
			return
		}
		o.Kind = k
	}
}

// WithGap sets the passage width; n < 1 is recorded as ErrBadGap.
func WithGap(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.setErr(fmt.Errorf("%w: got %d", ErrBadGap, n))
			return
		}
		o.Gap = n
	}
}

// WithMaxRetries bounds the attempts; n < 1 is recorded as ErrBadRetries.
func WithMaxRetries(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.setErr(fmt.Errorf("%w: got %d", ErrBadRetries, n))
			return
		}
		o.MaxRetries = n
	}
}

// WithSeed fixes the random seed for reproducible mazes.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies the random source directly.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Result describes a committed maze.
type Result struct {
	Kind Kind

	// Walls lists the committed walls in placement order.
	Walls []gridgraph.Coord

	// Attempts is the number of candidates generated, the last one being accepted.
	Attempts int

	// Seed is the seed used, or 0 when the caller supplied Rand.
	Seed int64
}
