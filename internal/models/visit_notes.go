package models

import (
	"encoding/json"
	"errors"
	"strings"
)

// Recognized keys of the visit-notes document. Anything else rides along in
// the Extra bag untouched.
const (
	NotesKeyDiagnosis     = "diagnostico"
	NotesKeyTreatment     = "tratamiento"
	NotesKeyPetInfo       = "informacionMascota"
	NotesKeyPreviousNotes = "notas_anteriores"
)

var errNotesNotObject = errors.New("notes are not a structured document")

// PetSnapshot captures the patient's data at visit time. It is embedded into
// the notes document wholesale; a new snapshot replaces any prior one with no
// field-level merge.
type PetSnapshot struct {
	Name      string
	Species   string
	Breed     *string
	BirthDate *string
	Gender    *string
	Age       *int
}

// document renders the snapshot with its Spanish wire keys. Name and species
// are always present; breed, birth date and gender only when non-blank; age
// only when positive.
func (s PetSnapshot) document() map[string]interface{} {
	doc := map[string]interface{}{
		"nombre":  s.Name,
		"especie": s.Species,
	}
	if s.Breed != nil && strings.TrimSpace(*s.Breed) != "" {
		doc["raza"] = *s.Breed
	}
	if s.BirthDate != nil && strings.TrimSpace(*s.BirthDate) != "" {
		doc["fechaNacimiento"] = *s.BirthDate
	}
	if s.Gender != nil && strings.TrimSpace(*s.Gender) != "" {
		doc["sexo"] = *s.Gender
	}
	if s.Age != nil && *s.Age > 0 {
		doc["edad"] = *s.Age
	}
	return doc
}

// VisitNotes is the structured document serialized into Appointment.Notes.
// The recognized fields are kept as raw JSON so legacy values of any shape
// survive a round trip; Extra preserves unrecognized keys verbatim.
type VisitNotes struct {
	Diagnosis json.RawMessage
	Treatment json.RawMessage
	PetInfo   json.RawMessage
	Extra     map[string]json.RawMessage
}

// ParseVisitNotes parses a persisted notes string. It fails when the string
// is not a JSON object; callers then preserve the raw text instead.
func ParseVisitNotes(raw string) (VisitNotes, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &doc); err != nil || doc == nil {
		return VisitNotes{}, errNotesNotObject
	}

	notes := VisitNotes{Extra: map[string]json.RawMessage{}}
	for key, value := range doc {
		switch key {
		case NotesKeyDiagnosis:
			notes.Diagnosis = value
		case NotesKeyTreatment:
			notes.Treatment = value
		case NotesKeyPetInfo:
			notes.PetInfo = value
		default:
			notes.Extra[key] = value
		}
	}
	return notes, nil
}

// NotesFromUnstructured wraps free-form prior notes so they are never
// silently discarded: the raw text is kept under "notas_anteriores".
func NotesFromUnstructured(raw string) VisitNotes {
	previous, _ := json.Marshal(raw)
	return VisitNotes{Extra: map[string]json.RawMessage{NotesKeyPreviousNotes: previous}}
}

// SetDiagnosis overwrites the diagnosis field.
func (n *VisitNotes) SetDiagnosis(diagnosis string) {
	n.Diagnosis, _ = json.Marshal(diagnosis)
}

// SetTreatment overwrites the treatment field.
func (n *VisitNotes) SetTreatment(treatment string) {
	n.Treatment, _ = json.Marshal(treatment)
}

// SetPetSnapshot replaces the pet snapshot entirely.
func (n *VisitNotes) SetPetSnapshot(snapshot PetSnapshot) {
	n.PetInfo, _ = json.Marshal(snapshot.document())
}

// IsEmpty reports whether the document has no keys at all.
func (n VisitNotes) IsEmpty() bool {
	return n.Diagnosis == nil && n.Treatment == nil && n.PetInfo == nil && len(n.Extra) == 0
}

// Serialize renders the document as the persisted string, or nil when the
// document is empty. Output is deterministic: encoding/json sorts map keys.
func (n VisitNotes) Serialize() (*string, error) {
	if n.IsEmpty() {
		return nil, nil
	}

	doc := map[string]json.RawMessage{}
	for key, value := range n.Extra {
		doc[key] = value
	}
	if n.Diagnosis != nil {
		doc[NotesKeyDiagnosis] = n.Diagnosis
	}
	if n.Treatment != nil {
		doc[NotesKeyTreatment] = n.Treatment
	}
	if n.PetInfo != nil {
		doc[NotesKeyPetInfo] = n.PetInfo
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	s := string(out)
	return &s, nil
}

// MergeVisitNotes builds the new notes document for an appointment update:
// prior structured notes carry over (non-parseable text is preserved under
// "notas_anteriores"), supplied diagnosis/treatment overwrite their fields,
// and a supplied snapshot replaces the prior one wholesale.
func MergeVisitNotes(existing *string, diagnosis, treatment *string, snapshot *PetSnapshot) (*string, error) {
	var notes VisitNotes
	if existing != nil {
		parsed, err := ParseVisitNotes(*existing)
		if err != nil {
			notes = NotesFromUnstructured(*existing)
		} else {
			notes = parsed
		}
	}

	if diagnosis != nil {
		notes.SetDiagnosis(*diagnosis)
	}
	if treatment != nil {
		notes.SetTreatment(*treatment)
	}
	if snapshot != nil {
		notes.SetPetSnapshot(*snapshot)
	}

	return notes.Serialize()
}
