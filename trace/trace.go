package trace

import (
	"log/slog"
	"sync"
)

type Entry struct {
	N    int
	X    string
	Step string
}

// Recorder keeps every update in memory. It is safe for use by concurrent runs,
// although entries from different runs are then interleaved.
type Recorder struct {
	mu         sync.Mutex
	Entries    []Entry
	Iterations int
	X          string
	Converged  bool
}

func (r *Recorder) Iteration(n int, x, step string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Entries = append(r.Entries, Entry{N: n, X: x, Step: step})
}

func (r *Recorder) Done(iterations int, x string, converged bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Iterations = iterations
	r.X = x
	r.Converged = converged
}

// Logger writes updates as slog debug records and the outcome at info level,
// or at warn level when the run stopped at the iteration cap.
type Logger struct {
	Log     *slog.Logger
	Problem string
}

func NewLogger(log *slog.Logger, problem string) *Logger {
	if log == nil {
		log = slog.Default()
	}
	return &Logger{Log: log, Problem: problem}
}

func (l *Logger) Iteration(n int, x, step string) {
	l.Log.Debug("newton update",
		"problem", l.Problem,
		"n", n,
		"x", x,
		"step", step)
}

func (l *Logger) Done(iterations int, x string, converged bool) {
	if !converged {
		l.Log.Warn("iteration cap reached before convergence",
			"problem", l.Problem,
			"iterations", iterations,
			"x", x)
		return
	}
	l.Log.Info("converged",
		"problem", l.Problem,
		"iterations", iterations,
		"x", x)
}

// Multi fans every call out to each observer in order.
type Multi []interface {
	Iteration(n int, x, step string)
	Done(iterations int, x string, converged bool)
}

func (m Multi) Iteration(n int, x, step string) {
	for _, o := range m {
		o.Iteration(n, x, step)
	}
}

func (m Multi) Done(iterations int, x string, converged bool) {
	for _, o := range m {
		o.Done(iterations, x, converged)
	}
}
