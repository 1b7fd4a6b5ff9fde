package term

import (
	"errors"
	"math"
	"time"

	"github.com/Sapiet1/in-keys/pkg/key"
)

// An opSpec bundles everything a read operation needs: the line-discipline
// flags to hold while it runs, whether stale buffered input is flushed on
// entry, and the decode function run once input is ready. The three read
// disciplines are thin wrappers over one opSpec each for keys, lines and
// hidden lines.
type opSpec[T any] struct {
	flags  []Flag
	flush  bool
	decode func(fr *fileReader, timeout int) (T, bool, error)
}

var (
	keySpec = opSpec[key.Key]{
		flags:  []Flag{NotCanonical, NotEcho},
		decode: readKey,
	}
	lineSpec = opSpec[string]{
		flags:  []Flag{Canonical, Echo},
		decode: readLine,
	}
	// Hidden line reads flush on entry so that keystrokes buffered before
	// the prompt cannot leak into the secret.
	hiddenLineSpec = opSpec[string]{
		flags:  []Flag{Canonical, NotEcho},
		flush:  true,
		decode: readLine,
	}
)

// runBlocking holds the operation's mode and waits for input indefinitely.
func runBlocking[T any](fr *fileReader, spec opSpec[T]) (v T, err error) {
	restore, err := setupMode(fr.file, spec.flush, spec.flags...)
	if err != nil {
		return v, err
	}
	defer func() { err = errors.Join(err, restore()) }()

	v, ok, err := spec.decode(fr, -1)
	if err == nil && !ok {
		// An infinite wait only returns on readiness.
		err = errors.New("input wait ended with nothing to read")
	}
	return v, err
}

// runTimeout holds the operation's mode and waits for input up to the given
// duration. An exhausted budget reports ok = false with a nil error. poll(2)
// caps a single wait at a millisecond count that fits in an int32, so larger
// budgets are served as a sequence of maximal waits.
func runTimeout[T any](fr *fileReader, spec opSpec[T], d time.Duration) (v T, ok bool, err error) {
	restore, err := setupMode(fr.file, spec.flush, spec.flags...)
	if err != nil {
		return v, false, err
	}
	defer func() { err = errors.Join(err, restore()) }()

	budget := d.Milliseconds()
	if budget < 0 {
		budget = 0
	}
	for budget > math.MaxInt32 {
		v, ok, err = spec.decode(fr, math.MaxInt32)
		if ok || err != nil {
			return v, ok, err
		}
		budget -= math.MaxInt32
	}
	return spec.decode(fr, int(budget))
}

// An Op is an in-flight cooperative read. Each Step performs exactly one
// zero-wait readiness probe and returns immediately, so an Op never occupies
// the calling goroutine; any caller-driven scheduler can complete it by
// re-invoking Step. The terminal mode is captured by the first Step and held
// across steps — this is the one case where the mode outlives a single call —
// and is restored exactly once, when the operation completes, fails, or is
// abandoned with Close.
type Op[T any] struct {
	fr      *fileReader
	spec    opSpec[T]
	restore func() error
	done    bool
}

// Step attempts to complete the read without blocking. done = false means no
// input was ready yet and Step should be invoked again later. Once done is
// true the operation is over; further Steps return the zero value.
func (op *Op[T]) Step() (v T, done bool, err error) {
	if op.done {
		return v, true, nil
	}
	if op.restore == nil {
		restore, err := setupMode(op.fr.file, op.spec.flush, op.spec.flags...)
		if err != nil {
			op.done = true
			return v, true, err
		}
		op.restore = restore
	}

	v, ok, err := op.spec.decode(op.fr, 0)
	if !ok && err == nil {
		return v, false, nil
	}
	op.done = true
	return v, true, errors.Join(err, op.release())
}

// Close abandons the operation, restoring the terminal mode if a Step has
// already changed it. Closing a completed Op is a no-op. An Op that is
// discarded without Close or a final Step leaves the terminal mode changed.
func (op *Op[T]) Close() error {
	if op.done {
		return nil
	}
	op.done = true
	return op.release()
}

func (op *Op[T]) release() error {
	if op.restore == nil {
		return nil
	}
	restore := op.restore
	op.restore = nil
	return restore()
}
