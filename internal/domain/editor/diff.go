package editor

// Diff returns the draft keys whose normalized values differ from the
// persisted baseline. Keys absent from the draft are never touched.
// Both sides are normalized through the same rules before comparison,
// so a stored "10" matches a drafted 10 and neither counts as a
// change. A nil draft value against an empty persisted string is also
// not a change.
func Diff(schema Schema, persisted Values, draft Values) Values {
	changed := make(Values)
	for name, raw := range draft {
		f, ok := schema.Field(name)
		if !ok {
			continue
		}
		dv, msg := normalizeValue(f, raw)
		if msg != "" {
			// unparseable values never reach here through a validated
			// session; treat them as a change so they surface
			changed[name] = raw
			continue
		}
		pv, _ := normalizeValue(f, persisted[name])
		if valuesEqual(pv, dv) {
			continue
		}
		changed[name] = dv
	}
	return changed
}
