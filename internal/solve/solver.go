package solve

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"almanac/internal/almanac"
	"almanac/internal/remap"
)

var errAlmanacNil = errors.New("almanac is nil")

// Solver computes lowest locations for an almanac.
type Solver struct {
	logger   *zap.Logger
	validate bool
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithValidation makes the solver reject pipelines with overlapping rules.
func WithValidation(enabled bool) Option {
	return func(s *Solver) { s.validate = enabled }
}

// New returns a Solver. By default it does not log and does not validate.
func New(opts ...Option) *Solver {
	s := &Solver{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Report holds the answers requested by a Mode. Fields for modes that were not
// requested are left zero.
type Report struct {
	Mode Mode
	// PointsLowest is the lowest location over seeds read as single values.
	PointsLowest int64
	// RangesLowest is the lowest location over seeds read as (start, length) pairs.
	RangesLowest int64
	// Locations is the final location range set, coalesced and sorted.
	Locations []remap.Range
}

// Solve computes the answers selected by mode.
func (s *Solver) Solve(a *almanac.Almanac, mode Mode) (Report, error) {
	rep := Report{Mode: mode}

	if err := s.check(a); err != nil {
		return rep, err
	}

	if mode.points() {
		lowest, err := s.lowestFromPoints(a)
		if err != nil {
			return rep, err
		}

		rep.PointsLowest = lowest
	}

	if mode.ranges() {
		locations, err := s.locations(a)
		if err != nil {
			return rep, err
		}

		lowest, err := remap.Minimum(locations)
		if err != nil {
			return rep, fmt.Errorf("seed ranges: %w", err)
		}

		rep.RangesLowest = lowest
		rep.Locations = remap.Coalesce(locations)
	}

	return rep, nil
}

// LowestFromPoints maps every seed on its own and returns the lowest location.
func (s *Solver) LowestFromPoints(a *almanac.Almanac) (int64, error) {
	if err := s.check(a); err != nil {
		return 0, err
	}

	return s.lowestFromPoints(a)
}

func (s *Solver) lowestFromPoints(a *almanac.Almanac) (int64, error) {
	seeds := a.Seeds.Points()
	locations := make([]remap.Range, 0, len(seeds))

	for _, seed := range seeds {
		loc := a.Pipeline.MapValue(seed)
		s.logger.Debug("seed mapped", zap.Int64("seed", seed), zap.Int64("location", loc))

		locations = append(locations, remap.MustRange(loc, loc+1))
	}

	lowest, err := remap.Minimum(locations)
	if err != nil {
		return 0, fmt.Errorf("seed points: %w", err)
	}

	s.logger.Info("lowest location from seed points",
		zap.Int("seeds", len(seeds)), zap.Int64("lowest", lowest))

	return lowest, nil
}

// LowestFromRanges reads the seeds as (start, length) pairs, pushes them
// through the pipeline and returns the lowest location.
func (s *Solver) LowestFromRanges(a *almanac.Almanac) (int64, error) {
	locations, err := s.Locations(a)
	if err != nil {
		return 0, err
	}

	lowest, err := remap.Minimum(locations)
	if err != nil {
		return 0, fmt.Errorf("seed ranges: %w", err)
	}

	return lowest, nil
}

// Locations returns the location ranges reachable from the seed ranges,
// uncoalesced and in no particular order.
func (s *Solver) Locations(a *almanac.Almanac) ([]remap.Range, error) {
	if err := s.check(a); err != nil {
		return nil, err
	}

	return s.locations(a)
}

func (s *Solver) locations(a *almanac.Almanac) ([]remap.Range, error) {
	seeds, err := a.Seeds.Ranges()
	if err != nil {
		return nil, err
	}

	out, err := a.Pipeline.Run(seeds, s.observe)
	if err != nil {
		return nil, fmt.Errorf("failed to run pipeline: %w", err)
	}

	if lowest, err := remap.Minimum(out); err == nil {
		s.logger.Info("lowest location from seed ranges",
			zap.Int("seed_ranges", len(seeds)),
			zap.Int("fragments", len(out)),
			zap.Int64("lowest", lowest))
	}

	return out, nil
}

// Step is one hop of a traced value.
type Step struct {
	Stage remap.StageKind
	From  int64
	To    int64
}

// Trace follows a single seed through every stage.
func (s *Solver) Trace(a *almanac.Almanac, seed int64) ([]Step, error) {
	if err := s.check(a); err != nil {
		return nil, err
	}

	trail := a.Pipeline.Trace(seed)
	steps := make([]Step, 0, remap.NumStages)

	for i, kind := range remap.StageKinds() {
		steps = append(steps, Step{Stage: kind, From: trail[i], To: trail[i+1]})
	}

	return steps, nil
}

func (s *Solver) observe(kind remap.StageKind, in, out []remap.Range) {
	s.logger.Debug("stage applied",
		zap.Stringer("stage", kind),
		zap.Int("fragments_in", len(in)),
		zap.Int("fragments_out", len(out)),
		zap.Int64("values", remap.TotalLen(out)))
}

func (s *Solver) check(a *almanac.Almanac) error {
	if a == nil {
		return errAlmanacNil
	}

	if err := a.Pipeline.Complete(); err != nil {
		return err
	}

	if !s.validate {
		return nil
	}

	if err := a.Pipeline.Validate(); err != nil {
		return fmt.Errorf("invalid almanac: %w", err)
	}

	return nil
}
