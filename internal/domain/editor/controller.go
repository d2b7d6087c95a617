package editor

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// Controller runs the submit pipeline for one entity type. The order
// is fixed: validate, upload staged files, fold asset URLs into the
// draft, diff against the baseline, persist. Superseded images are
// retired only after the write is confirmed.
type Controller struct {
	schema   Schema
	gateway  Gateway
	uploader Uploader
	logger   *zap.Logger
}

// NewController wires a controller for the given schema.
func NewController(schema Schema, gateway Gateway, uploader Uploader, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		schema:   schema,
		gateway:  gateway,
		uploader: uploader,
		logger:   logger,
	}
}

// Schema returns the schema this controller edits.
func (c *Controller) Schema() Schema {
	return c.schema
}

// Result reports what a submit did.
type Result struct {
	Values    Values
	Changed   []string
	Created   bool
	NoChanges bool
}

// Submit drives one session through the pipeline. A second Submit on
// the same session while one is running returns ErrSubmitInFlight and
// performs no work at all. On any failure the session's draft and
// files are kept so the caller can correct and resubmit, and no
// existing image is ever deleted.
func (c *Controller) Submit(ctx context.Context, s *Session) (*Result, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer s.busy.Store(false)

	normalized, verr := s.Validate()
	if verr != nil {
		return nil, verr
	}

	var superseded []string
	for _, slot := range c.schema.ImageSlots {
		file, ok := s.files[slot.Name]
		if !ok {
			continue
		}
		ref, err := c.uploader.Upload(ctx, file)
		if err != nil {
			return nil, err
		}
		if s.persisted != nil {
			if old, ok := s.persisted[slot.URLField].(string); ok && old != "" && old != ref.PublicURL {
				superseded = append(superseded, old)
			}
		}
		normalized[slot.URLField] = ref.PublicURL
		if slot.IDField != "" {
			normalized[slot.IDField] = ref.ID.String()
		}
	}

	if !s.IsUpdate() {
		out, err := c.gateway.Create(ctx, normalized)
		if err != nil {
			return nil, c.persistenceError(err)
		}
		return &Result{Values: out, Changed: sortedKeys(normalized), Created: true}, nil
	}

	changed := Diff(c.schema, s.persisted, normalized)
	if len(changed) == 0 {
		return &Result{Values: s.persisted, NoChanges: true}, nil
	}

	changedFields := sortedKeys(changed)
	changed["updated_at"] = time.Now().UTC()

	out, err := c.gateway.Update(ctx, s.entityID, changed)
	if err != nil {
		return nil, c.persistenceError(err)
	}

	for _, url := range superseded {
		if rerr := c.uploader.Retire(ctx, url); rerr != nil {
			c.logger.Warn("failed to retire superseded image",
				zap.String("entity", c.schema.Entity),
				zap.String("url", url),
				zap.Error(rerr))
		}
	}

	return &Result{Values: out, Changed: changedFields}, nil
}

// persistenceError keeps already-coded domain errors intact and wraps
// everything else as a persistence failure.
func (c *Controller) persistenceError(err error) error {
	var derr *shared.DomainError
	if errors.As(err, &derr) {
		return derr
	}
	return NewPersistenceError(err)
}

func sortedKeys(v Values) []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
