package editor

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// FileSelection is an image picked for upload, captured before any
// network activity happens.
type FileSelection struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}

// Session is one editing pass over a single entity: a draft of field
// changes, selected files per image slot, and a guard against
// overlapping submits. Sessions are not reusable across entities.
type Session struct {
	schema    Schema
	entityID  uuid.UUID
	persisted Values
	draft     map[string]any
	files     map[string]FileSelection
	busy      atomic.Bool
}

// NewCreateSession starts a session for a brand new entity.
func NewCreateSession(schema Schema) *Session {
	return &Session{
		schema: schema,
		draft:  make(map[string]any),
		files:  make(map[string]FileSelection),
	}
}

// NewUpdateSession starts a session over an existing entity. persisted
// must hold the entity's current normalized values; it is the baseline
// the diff is computed against.
func NewUpdateSession(schema Schema, id uuid.UUID, persisted Values) *Session {
	return &Session{
		schema:    schema,
		entityID:  id,
		persisted: persisted.Clone(),
		draft:     make(map[string]any),
		files:     make(map[string]FileSelection),
	}
}

// IsUpdate reports whether the session edits an existing entity.
func (s *Session) IsUpdate() bool {
	return s.persisted != nil
}

// EntityID returns the edited entity's ID (zero for create sessions).
func (s *Session) EntityID() uuid.UUID {
	return s.entityID
}

// Persisted returns the baseline values loaded when the session opened.
func (s *Session) Persisted() Values {
	return s.persisted
}

// SetField stages a raw value for a declared field. Unknown fields are
// rejected so typos never silently drop data.
func (s *Session) SetField(name string, raw any) error {
	if _, ok := s.schema.Field(name); !ok {
		return fmt.Errorf("unknown field %q for %s", name, s.schema.Entity)
	}
	s.draft[name] = raw
	return nil
}

// SelectFile stages a file for an image slot, replacing any previous
// selection for that slot.
func (s *Session) SelectFile(slot string, file FileSelection) error {
	if _, ok := s.schema.Slot(slot); !ok {
		return fmt.Errorf("unknown image slot %q for %s", slot, s.schema.Entity)
	}
	s.files[slot] = file
	return nil
}

// HasDraft reports whether any field or file has been staged.
func (s *Session) HasDraft() bool {
	return len(s.draft) > 0 || len(s.files) > 0
}

// Validate normalizes the staged draft and checks every schema rule:
// required fields present after trimming, numerics parseable, URLs
// well formed. It returns the normalized draft values on success. The
// draft itself is left untouched so a failed validation can be fixed
// and resubmitted.
func (s *Session) Validate() (Values, *ValidationError) {
	fieldErrs := make(map[string]string)
	normalized := make(Values, len(s.draft))

	for name, raw := range s.draft {
		f, _ := s.schema.Field(name)
		val, msg := normalizeValue(f, raw)
		if msg != "" {
			fieldErrs[name] = msg
			continue
		}
		normalized[name] = val
	}

	for _, f := range s.schema.Fields {
		if !f.Required {
			continue
		}
		if _, bad := fieldErrs[f.Name]; bad {
			continue
		}
		if s.effectiveValue(f.Name, normalized) == nil && !s.slotCoversField(f.Name) {
			fieldErrs[f.Name] = "is required"
		}
	}

	for _, slot := range s.schema.ImageSlots {
		if !slot.Required {
			continue
		}
		if _, selected := s.files[slot.Name]; selected {
			continue
		}
		if s.effectiveValue(slot.URLField, normalized) == nil {
			fieldErrs[slot.URLField] = "is required"
		}
	}

	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}
	return normalized, nil
}

// effectiveValue is the draft value when staged, otherwise the
// persisted one.
func (s *Session) effectiveValue(name string, normalized Values) any {
	if v, ok := normalized[name]; ok {
		return v
	}
	if s.persisted != nil {
		if v, ok := s.persisted[name]; ok && v != nil {
			if str, isStr := v.(string); isStr && str == "" {
				return nil
			}
			return v
		}
	}
	return nil
}

// slotCoversField reports whether a staged file will populate the
// given URL field during submit.
func (s *Session) slotCoversField(name string) bool {
	for _, slot := range s.schema.ImageSlots {
		if slot.URLField == name {
			if _, ok := s.files[slot.Name]; ok {
				return true
			}
		}
	}
	return false
}
