package dag

import (
	"errors"
	"fmt"

	u "github.com/araddon/gou"

	"github.com/katalvlaran/automata/acceptance"
)

// Sentinel errors for builder operations.
var (
	// ErrConflict matches every *ConflictError via errors.Is.
	ErrConflict = errors.New("dag: conflicting information")

	// ErrUnknownSymbol indicates a symbol outside the builder's alphabet.
	ErrUnknownSymbol = errors.New("dag: symbol not in alphabet")

	// ErrNilAlphabet is returned when a builder is constructed without an alphabet.
	ErrNilAlphabet = errors.New("dag: alphabet is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dag: invalid option supplied")

	// ErrInvariantViolation is returned by Verify when the structure is inconsistent.
	ErrInvariantViolation = errors.New("dag: invariant violated")
)

// StateID addresses a state in the builder's arena.
// Ids of reclaimed states are reused.
type StateID int32

// NoState marks an empty successor slot.
const NoState StateID = -1

// ConflictKind classifies a refused insertion.
type ConflictKind uint8

const (
	// ConflictAcceptance: the word is already known with the opposite value.
	ConflictAcceptance ConflictKind = iota + 1
	// ConflictSink: an accepting word passes through a rejected prefix.
	ConflictSink
)

// String returns the kind name.
func (k ConflictKind) String() string {
	switch k {
	case ConflictAcceptance:
		return "acceptance"
	case ConflictSink:
		return "sink"
	default:
		return fmt.Sprintf("ConflictKind(%d)", uint8(k))
	}
}

// ConflictError describes an insertion that contradicts stored information.
type ConflictError struct {
	Kind      ConflictKind
	Word      string
	Stored    acceptance.Acceptance
	Requested acceptance.Acceptance
}

// Error implements error.
func (e *ConflictError) Error() string {
	if e.Kind == ConflictSink {
		return fmt.Sprintf("dag: conflict on %s: a prefix is rejected, requested %s", e.Word, e.Requested)
	}

	return fmt.Sprintf("dag: conflict on %s: stored %s, requested %s", e.Word, e.Stored, e.Requested)
}

// Is makes errors.Is(err, ErrConflict) hold.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// Logger receives debug messages in printf style.
type Logger func(format string, args ...interface{})

// Option configures a builder.
type Option func(*Options)

// Options holds builder parameters.
type Options struct {
	// Logger receives debug output; never nil after option processing.
	Logger Logger

	// InitialCapacity pre-sizes the state arena.
	InitialCapacity int

	// Verify runs Verify after each mutation and panics on failure.
	Verify bool

	err error
}

// DefaultOptions logs through gou at debug level, pre-sizes 64 states and
// does not self-check.
func DefaultOptions() Options {
	return Options{
		Logger:          u.Debugf,
		InitialCapacity: 64,
	}
}

// WithLogger sets the debug logger. A nil logger silences output.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = func(string, ...interface{}) {}
		}
		o.Logger = l
	}
}

// WithInitialCapacity pre-sizes the arena. Negative values are rejected.
func WithInitialCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: InitialCapacity cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.InitialCapacity = n
	}
}

// WithVerify enables invariant checking after every mutation.
func WithVerify() Option {
	return func(o *Options) {
		o.Verify = true
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Stats summarizes the builder's structure.
type Stats struct {
	// Live counts allocated states, including the root and, for PC builders, the sink.
	Live int
	// Reachable counts states reachable from the root.
	Reachable int
	// Transitions counts stored successor slots of reachable states.
	Transitions int
	// Confluence counts reachable states with more than one incoming transition.
	Confluence int
	// Registered counts signatures in the hash-consing index.
	Registered int
}
