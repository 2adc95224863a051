// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ik5/wakeaug/audio"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Store loads and saves audio buffers. *audiofile.Loader implements it.
type Store interface {
	Load(path string) (*audio.Buffer, error)
	Save(buf *audio.Buffer, path string) error
	Supports(path string) bool
}

// Recorder receives per-sample and per-variant outcomes. Implementations
// must be safe for concurrent use.
type Recorder interface {
	ObserveSample(elapsed time.Duration, err error)
	ObserveVariant(kind string, err error)
}

// Job describes one positive sample to augment.
type Job struct {
	Source string
	Noise  []string

	// Prefix overrides the policy prefix when set.
	Prefix string
}

// VariantError records one variant that could not be produced.
type VariantError struct {
	Source string
	Kind   Kind
	Tag    string
	Err    error
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("%s variant %s: %v", e.Source, e.Tag, e.Err)
}

func (e *VariantError) Unwrap() error { return e.Err }

// Result lists what one job produced.
type Result struct {
	Source   string
	Written  []string
	Failures []*VariantError
}

// Count returns the number of variants written.
func (r Result) Count() int { return len(r.Written) }

// Report sums the results of a run.
type Report struct {
	RunID uuid.UUID

	// Originals counts the positive samples found, Augmented the files
	// written for them, original copies included.
	Originals int
	Augmented int

	// Failed counts positive samples that could not be loaded.
	Failed  int
	Elapsed time.Duration
}

// Total is the resulting dataset size.
func (r Report) Total() int { return r.Originals + r.Augmented }

// Empty reports a run that found no positive samples.
func (r Report) Empty() bool { return r.Originals == 0 }

// Augmenter writes augmented variants of positive samples into a flat
// output directory.
type Augmenter struct {
	store   Store
	outDir  string
	policy  Policy
	log     logrus.FieldLogger
	metrics Recorder
	workers int
	seed    uint64

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures an Augmenter.
type Option func(*Augmenter)

// WithSeed fixes the random source used for noise selection and cropping.
func WithSeed(seed uint64) Option {
	return func(a *Augmenter) { a.seed = seed }
}

// WithPolicy replaces DefaultPolicy.
func WithPolicy(p Policy) Option {
	return func(a *Augmenter) { a.policy = p }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *Augmenter) {
		if l != nil {
			a.log = l
		}
	}
}

// WithWorkers sets how many samples AugmentAll processes at once.
func WithWorkers(n int) Option {
	return func(a *Augmenter) { a.workers = max(n, 1) }
}

// WithMetrics reports outcomes to r.
func WithMetrics(r Recorder) Option {
	return func(a *Augmenter) { a.metrics = r }
}

// NewAugmenter creates an Augmenter that reads and writes through store and
// places outputs in outDir. Without WithSeed the seed is time based.
func NewAugmenter(store Store, outDir string, opts ...Option) *Augmenter {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	a := &Augmenter{
		store:   store,
		outDir:  outDir,
		policy:  DefaultPolicy(),
		log:     discard,
		workers: 1,
		seed:    uint64(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.rng = rand.New(rand.NewPCG(a.seed, a.seed^0x5851f42d4c957f2d))

	return a
}

// Seed returns the seed in use, so a run can be reproduced.
func (a *Augmenter) Seed() uint64 { return a.seed }

// Policy returns the active policy.
func (a *Augmenter) Policy() Policy { return a.policy }

// jobRand derives an independent generator for one job.
func (a *Augmenter) jobRand() *rand.Rand {
	a.mu.Lock()
	defer a.mu.Unlock()

	return rand.New(rand.NewPCG(a.rng.Uint64(), a.rng.Uint64()))
}

// AugmentSample writes every variant of job.Source. The output directory
// must exist.
//
// A source that cannot be loaded yields an empty Result and the load error.
// Variant failures are logged and collected in Result.Failures without
// stopping the remaining variants. A cancelled ctx stops the job between
// variants and is returned with what was written so far.
func (a *Augmenter) AugmentSample(ctx context.Context, job Job) (Result, error) {
	return a.augmentSample(ctx, job, a.jobRand())
}

func (a *Augmenter) augmentSample(ctx context.Context, job Job, rng *rand.Rand) (Result, error) {
	res := Result{Source: job.Source}
	log := a.log.WithField("source", job.Source)
	started := time.Now()

	if err := ctx.Err(); err != nil {
		return res, err
	}

	signal, err := a.store.Load(job.Source)
	if err != nil {
		log.WithError(err).Warn("skipping unreadable sample")
		a.observeSample(started, err)
		return res, err
	}

	prefix := job.Prefix
	if prefix == "" {
		prefix = a.policy.Prefix
	}
	base := strings.TrimSuffix(filepath.Base(job.Source), filepath.Ext(job.Source))

	variant := func(kind Kind, tag string, build func() (*audio.Buffer, error)) {
		path := filepath.Join(a.outDir, OutputName(prefix, base, tag))
		vlog := log.WithFields(logrus.Fields{"variant": tag, "path": path})

		buf, err := build()
		if err == nil {
			err = a.store.Save(buf, path)
		}
		if a.metrics != nil {
			a.metrics.ObserveVariant(string(kind), err)
		}
		if err != nil {
			vlog.WithError(err).Warn("variant failed")
			res.Failures = append(res.Failures, &VariantError{Source: job.Source, Kind: kind, Tag: tag, Err: err})
			return
		}

		vlog.Debug("variant written")
		res.Written = append(res.Written, path)
	}

	var steps []func()

	if a.policy.IncludeOriginal {
		steps = append(steps, func() {
			variant(KindOriginal, OriginalTag, func() (*audio.Buffer, error) { return signal, nil })
		})
	}
	for _, f := range a.policy.VolumeFactors {
		steps = append(steps, func() {
			variant(KindVolume, VolumeTag(f), func() (*audio.Buffer, error) { return ScaleVolume(signal, f), nil })
		})
	}
	for _, r := range a.policy.SpeedRates {
		steps = append(steps, func() {
			variant(KindSpeed, SpeedTag(r), func() (*audio.Buffer, error) { return TimeStretch(signal, r) })
		})
	}
	for i, path := range a.pickNoise(job.Noise, rng) {
		steps = append(steps, func() {
			variant(KindNoise, NoiseTag(i), func() (*audio.Buffer, error) { return a.noisy(signal, path, rng) })
		})
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			a.observeSample(started, err)
			return res, err
		}
		step()
	}

	log.WithFields(logrus.Fields{"written": res.Count(), "failed": len(res.Failures)}).Info("sample augmented")
	a.observeSample(started, nil)

	return res, nil
}

// pickNoise draws up to policy.NoiseVariants distinct paths uniformly
// without replacement.
func (a *Augmenter) pickNoise(lib []string, rng *rand.Rand) []string {
	k := min(max(a.policy.NoiseVariants, 0), len(lib))
	if k == 0 {
		return nil
	}

	picked := make([]string, k)
	for i, idx := range rng.Perm(len(lib))[:k] {
		picked[i] = lib[idx]
	}

	return picked
}

// noisy loads the noise at path, brings it to the layout, rate and length
// of signal, and mixes it in at the policy SNR.
func (a *Augmenter) noisy(signal *audio.Buffer, path string, rng *rand.Rand) (*audio.Buffer, error) {
	noise, err := a.store.Load(path)
	if err != nil {
		return nil, err
	}

	noise, err = audio.ConvertChannels(noise, signal.Channels)
	if err != nil {
		return nil, fmt.Errorf("noise %s: %w", path, err)
	}

	noise, err = Resample(noise, signal.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("noise %s: %w", path, err)
	}

	noise, err = Align(noise, signal.Frames(), rng)
	if err != nil {
		return nil, fmt.Errorf("noise %s: %w", path, err)
	}

	mixed, err := Mix(signal, noise, a.policy.SNRdB)
	if err != nil {
		return nil, fmt.Errorf("noise %s: %w", path, err)
	}

	return mixed, nil
}

func (a *Augmenter) observeSample(started time.Time, err error) {
	if a.metrics != nil {
		a.metrics.ObserveSample(time.Since(started), err)
	}
}

// AugmentAll augments every supported file directly inside positiveDir,
// mixing in noise from supported files anywhere below backgroundDir.
//
// Finding no positive samples is not an error: the returned Report is
// Empty and nothing is written. Missing directories count as empty. The
// output directory is created when there is work to do. Per-sample
// failures are logged and counted in Report.Failed. Only a cancelled ctx or
// an unusable directory ends the run with an error.
func (a *Augmenter) AugmentAll(ctx context.Context, positiveDir, backgroundDir string) (Report, error) {
	started := time.Now()
	report := Report{RunID: uuid.New()}
	log := a.log.WithField("run_id", report.RunID.String())

	positives, err := a.discover(positiveDir, false)
	if err != nil {
		return report, err
	}
	if len(positives) == 0 {
		log.WithField("dir", positiveDir).Warn("no positive samples found, nothing to augment")
		report.Elapsed = time.Since(started)
		return report, nil
	}

	noise, err := a.discover(backgroundDir, true)
	if err != nil {
		return report, err
	}
	if len(noise) == 0 {
		log.WithField("dir", backgroundDir).Warn("no background noise found, skipping noise variants")
	}

	if err := os.MkdirAll(a.outDir, 0o755); err != nil {
		return report, fmt.Errorf("creating output directory: %w", err)
	}

	log.WithFields(logrus.Fields{
		"positives":  len(positives),
		"background": len(noise),
		"workers":    a.workers,
		"seed":       a.seed,
	}).Info("augmentation started")

	results := make([]Result, len(positives))
	loadErrs := make([]error, len(positives))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, path := range positives {
		if gctx.Err() != nil {
			break
		}

		// drawn here so the outcome does not depend on scheduling
		rng := a.jobRand()
		g.Go(func() error {
			res, err := a.augmentSample(gctx, Job{Source: path, Noise: noise}, rng)
			results[i] = res
			if err != nil && gctx.Err() == nil {
				loadErrs[i] = err
			}
			return nil
		})
	}
	_ = g.Wait()

	report.Originals = len(positives)
	for i, res := range results {
		report.Augmented += res.Count()
		if loadErrs[i] != nil {
			report.Failed++
		}
	}
	report.Elapsed = time.Since(started)

	fields := logrus.Fields{
		"originals": report.Originals,
		"augmented": report.Augmented,
		"total":     report.Total(),
		"failed":    report.Failed,
		"elapsed":   report.Elapsed.String(),
	}

	if err := ctx.Err(); err != nil {
		log.WithFields(fields).Warn("augmentation interrupted")
		return report, err
	}

	log.WithFields(fields).Info("augmentation finished")

	return report, nil
}

func (a *Augmenter) discover(dir string, recursive bool) ([]string, error) {
	paths, err := Discover(dir, recursive, a.store.Supports)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	return paths, err
}
