package editor

// FieldType describes how a field value is normalized and compared.
type FieldType int

const (
	FieldString FieldType = iota
	FieldText
	FieldInteger
	FieldDecimal
	FieldURL
	FieldBool
)

// Field declares a single editable field of an entity form.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	MaxLen   int
}

// ImageSlot binds an uploadable image to the URL field it populates.
// IDField, when set, additionally receives the stored asset's record ID.
type ImageSlot struct {
	Name     string
	URLField string
	IDField  string
	Required bool
}

// Schema declares the editable surface of one entity type. The same
// schema drives normalization, validation and diffing, so every
// editor built on it behaves identically.
type Schema struct {
	Entity     string
	Fields     []Field
	ImageSlots []ImageSlot
}

// Field looks up a field declaration by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Slot looks up an image slot by name.
func (s Schema) Slot(name string) (ImageSlot, bool) {
	for _, slot := range s.ImageSlots {
		if slot.Name == name {
			return slot, true
		}
	}
	return ImageSlot{}, false
}

// Values holds field values keyed by field name. Values produced by a
// Session are normalized per the schema's field types.
type Values map[string]any

// Clone returns a shallow copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
