package reconciliation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"record-reconciler/core/reconcile"
	"record-reconciler/core/report"
	"record-reconciler/core/source"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrLocationNotAllowed is returned for HTTP locations outside the configured set.
var ErrLocationNotAllowed = errors.New("location not allowed")

// InlineSource labels snapshots passed as content rather than read from a location.
const InlineSource = "inline"

// Reader fetches the raw content behind a snapshot location.
type Reader interface {
	Read(ctx context.Context, side, location string) (string, error)
}

// Service runs reconciliations.
type Service struct {
	reader   Reader
	cfg      reconcile.Config
	defaults source.Config
	logger   *zap.Logger
}

// NewService creates a new reconciliation service. defaults supplies the
// locations used when a run names none.
func NewService(reader Reader, cfg reconcile.Config, defaults source.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		reader:   reader,
		cfg:      cfg,
		defaults: defaults,
		logger:   logger,
	}
}

// CheckLocation rejects a caller-supplied location that is neither configured
// nor allowlisted.
func (s *Service) CheckLocation(location string) error {
	if !s.defaults.IsAllowed(location) {
		return fmt.Errorf("%w: %q", ErrLocationNotAllowed, location)
	}
	return nil
}

// Run reads both snapshots and reconciles them. The new snapshot is read first;
// when it is empty the old one is never read and ErrEmptyNew is returned.
func (s *Service) Run(ctx context.Context, oldLocation, newLocation string) (*report.Result, error) {
	if oldLocation == "" {
		oldLocation = s.defaults.Old
	}
	if newLocation == "" {
		newLocation = s.defaults.New
	}

	started := time.Now()

	newBlob, err := s.reader.Read(ctx, source.SideNew, newLocation)
	if err != nil {
		return nil, err
	}
	if len(newBlob) == 0 {
		return nil, reconcile.ErrEmptyNew
	}

	oldBlob, err := s.reader.Read(ctx, source.SideOld, oldLocation)
	if err != nil {
		return nil, err
	}

	return s.compare(oldLocation, newLocation, oldBlob, newBlob, started)
}

// Compare reconciles two snapshots given as content.
func (s *Service) Compare(ctx context.Context, oldBlob, newBlob string) (*report.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.compare(InlineSource, InlineSource, oldBlob, newBlob, time.Now())
}

func (s *Service) compare(oldLabel, newLabel, oldBlob, newBlob string, started time.Time) (*report.Result, error) {
	runID := uuid.NewString()
	l := s.logger.With(zap.String("run_id", runID))

	newSnap, err := reconcile.ParseSnapshot(newBlob, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("new snapshot %s: %w", newLabel, err)
	}
	oldSnap, err := reconcile.ParseSnapshot(oldBlob, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("old snapshot %s: %w", oldLabel, err)
	}

	rep, err := reconcile.Reconcile(oldSnap, newSnap, s.cfg)
	if err != nil {
		return nil, err
	}

	checks := reconcile.SpotCheck(rep, oldSnap, newSnap, s.newRand())

	warnings := snapshotWarnings(source.SideOld, oldSnap)
	warnings = append(warnings, snapshotWarnings(source.SideNew, newSnap)...)
	if rep.OldBlank {
		warnings = append(warnings, report.OldBlankMessage)
	}
	for _, w := range warnings {
		l.Warn(w)
	}

	elapsed := time.Since(started)
	l.Info("Reconciliation complete",
		zap.String("old", oldLabel),
		zap.String("new", newLabel),
		zap.Int("matched", rep.Summary.Matched),
		zap.Int("missing", rep.Summary.Missing),
		zap.Int("corrupted", rep.Summary.Corrupted),
		zap.Int("newly_created", rep.Summary.NewlyCreated),
		zap.Duration("duration", elapsed),
	)

	return &report.Result{
		RunID:     runID,
		OldSource: oldLabel,
		NewSource: newLabel,
		Summary:   rep.Summary,
		Report:    rep,
		Checks:    checks,
		Warnings:  warnings,
		StartedAt: started,
		Duration:  elapsed.String(),
	}, nil
}

// newRand returns the sampling source; a zero seed samples differently each run.
func (s *Service) newRand() *rand.Rand {
	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func snapshotWarnings(side string, snap *reconcile.Snapshot) []string {
	warnings := make([]string, 0, len(snap.Duplicates)+len(snap.Ragged))
	for _, key := range snap.Duplicates {
		warnings = append(warnings, fmt.Sprintf("%s snapshot: duplicate key %q, last occurrence wins", side, key))
	}
	for _, line := range snap.Ragged {
		warnings = append(warnings, fmt.Sprintf("%s snapshot: line %d has a different column count than the first row", side, line))
	}
	return warnings
}
