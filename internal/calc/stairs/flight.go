package stairs

import (
	"errors"
	"log/slog"

	"Stairwell/internal/geom"
	"Stairwell/internal/logging"
)

// Pick is the three points collected for one run: the start, the plan end and
// a point whose height sets the vertical extent.
type Pick struct {
	Start  geom.Point3 `json:"start" yaml:"start"`
	End    geom.Point3 `json:"end" yaml:"end"`
	Height geom.Point3 `json:"height" yaml:"height"`
}

// Step is everything produced for one run added to a flight.
type Step struct {
	Index int
	Run   Run
	// Corrected is the nearest compliant run when Run breaks the slope limits.
	Corrected *Run
	// Landing joins the previous run to this one; nil for the first run or
	// when landings are switched off.
	Landing     *Landing
	Railings    []geom.Polyline
	Diagnostics []string
}

// Builder turns a sequence of picks into runs and the landings between them.
// It keeps only the previous run and the level of its last pick.
type Builder struct {
	opts   Options
	logger *slog.Logger

	prev  *Run
	level float64
	count int
}

func NewBuilder(opts Options, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Builder{opts: opts.Clamp(), logger: logger}
}

func (b *Builder) Options() Options { return b.opts }

// SetOptions applies to runs added after the call.
func (b *Builder) SetOptions(o Options) { b.opts = o.Clamp() }

// Resolve applies the pick constraints: after the first run the start sits on
// the previous level, the end sits level with the start, and the height point
// sits plumb above or below the end.
func (b *Builder) Resolve(p Pick) (start, end, height geom.Point3) {
	start = p.Start
	if b.count > 0 {
		start = start.WithZ(b.level)
	}
	end = p.End.WithZ(start.Z)
	height = geom.Pt(end.X, end.Y, p.Height.Z)
	return start, end, height
}

func (b *Builder) Add(p Pick) Step {
	start, _, height := b.Resolve(p)
	run := NewRun(start, height, b.opts)
	step := Step{Index: b.count, Run: run}

	if fixed, ok := CorrectSlope(run); ok {
		step.Corrected = &fixed
		b.logger.Debug("run outside slope limits",
			"run", step.Index,
			"slope", run.Slope(),
			"min", MinSlope,
			"max", MaxSlope,
		)
	}

	if b.prev != nil && b.opts.Landing {
		land := NewLanding(*b.prev, run)
		step.Landing = land
		rails, err := land.Railings(b.opts.LeftRail, b.opts.RightRail)
		switch {
		case errors.Is(err, ErrInvalidLanding):
			step.Diagnostics = append(step.Diagnostics, MsgAmbiguousLanding)
			b.logger.Warn(MsgAmbiguousLanding, "bottom", step.Index-1, "top", step.Index)
		case err != nil:
			step.Diagnostics = append(step.Diagnostics, MsgLandingFailed)
			b.logger.Warn(MsgLandingFailed, "bottom", step.Index-1, "top", step.Index)
			b.logger.Debug("landing intersection", "case", land.Case(), "err", err)
		default:
			step.Railings = rails
		}
	}

	b.count++
	b.level = height.Z
	b.prev = &run
	return step
}
