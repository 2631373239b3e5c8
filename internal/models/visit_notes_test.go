package models

import (
	"encoding/json"
	"testing"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func decodeNotes(t *testing.T, notes *string) map[string]interface{} {
	t.Helper()
	if notes == nil {
		t.Fatal("expected notes, got nil")
	}
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(*notes), &doc); err != nil {
		t.Fatalf("persisted notes are not valid JSON: %v", err)
	}
	return doc
}

func TestMergePreservesUnrecognizedAndUntouchedFields(t *testing.T) {
	existing := strPtr(`{"diagnostico":"flu","foo":"bar"}`)

	merged, err := MergeVisitNotes(existing, nil, strPtr("rest"), nil)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	doc := decodeNotes(t, merged)
	if doc["foo"] != "bar" {
		t.Fatalf("unrecognized key lost: %v", doc)
	}
	if doc["diagnostico"] != "flu" {
		t.Fatalf("prior diagnosis not carried over: %v", doc)
	}
	if doc["tratamiento"] != "rest" {
		t.Fatalf("treatment not written: %v", doc)
	}
}

func TestMergeOverwritesSuppliedFields(t *testing.T) {
	existing := strPtr(`{"diagnostico":"flu","tratamiento":"rest"}`)

	merged, err := MergeVisitNotes(existing, strPtr("cold"), nil, nil)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	doc := decodeNotes(t, merged)
	if doc["diagnostico"] != "cold" {
		t.Fatalf("diagnosis not overwritten: %v", doc)
	}
	if doc["tratamiento"] != "rest" {
		t.Fatalf("untouched treatment lost: %v", doc)
	}
}

func TestMergePreservesUnparseablePriorNotes(t *testing.T) {
	existing := strPtr("saw vet")

	merged, err := MergeVisitNotes(existing, strPtr("cold"), nil, nil)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	doc := decodeNotes(t, merged)
	if doc["notas_anteriores"] != "saw vet" {
		t.Fatalf("free-form prior notes discarded: %v", doc)
	}
	if doc["diagnostico"] != "cold" {
		t.Fatalf("diagnosis not written: %v", doc)
	}
}

func TestMergeEmptyDocumentCollapsesToNil(t *testing.T) {
	merged, err := MergeVisitNotes(nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if merged != nil {
		t.Fatalf("expected nil notes, got %q", *merged)
	}
}

func TestMergeSnapshotReplacesPriorWholesale(t *testing.T) {
	existing := strPtr(`{"informacionMascota":{"nombre":"Firulais","especie":"perro","raza":"beagle"}}`)

	snapshot := &PetSnapshot{Name: "Firulais", Species: "perro"}
	merged, err := MergeVisitNotes(existing, nil, nil, snapshot)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	doc := decodeNotes(t, merged)
	info, ok := doc["informacionMascota"].(map[string]interface{})
	if !ok {
		t.Fatalf("snapshot missing: %v", doc)
	}
	if _, exists := info["raza"]; exists {
		t.Fatalf("prior snapshot fields bled into replacement: %v", info)
	}
	if info["nombre"] != "Firulais" || info["especie"] != "perro" {
		t.Fatalf("snapshot fields wrong: %v", info)
	}
}

func TestMergeCarriesPriorSnapshotWhenNoneSupplied(t *testing.T) {
	existing := strPtr(`{"informacionMascota":{"nombre":"Michi","especie":"gato"}}`)

	merged, err := MergeVisitNotes(existing, strPtr("otitis"), nil, nil)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	doc := decodeNotes(t, merged)
	if _, ok := doc["informacionMascota"]; !ok {
		t.Fatalf("prior snapshot lost: %v", doc)
	}
}

func TestPetSnapshotOptionalFieldRules(t *testing.T) {
	snapshot := PetSnapshot{
		Name:      "Michi",
		Species:   "gato",
		Breed:     strPtr("  "),       // blank, skipped
		BirthDate: strPtr("2020-05-01"),
		Gender:    strPtr("hembra"),
		Age:       intPtr(0), // non-positive, skipped
	}

	var notes VisitNotes
	notes.SetPetSnapshot(snapshot)
	serialized, err := notes.Serialize()
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}

	doc := decodeNotes(t, serialized)
	info := doc["informacionMascota"].(map[string]interface{})
	if _, ok := info["raza"]; ok {
		t.Fatalf("blank breed included: %v", info)
	}
	if _, ok := info["edad"]; ok {
		t.Fatalf("zero age included: %v", info)
	}
	if info["fechaNacimiento"] != "2020-05-01" || info["sexo"] != "hembra" {
		t.Fatalf("present fields missing: %v", info)
	}
}

func TestSerializeIsDeterministic(t *testing.T) {
	existing := strPtr(`{"zeta":"1","alfa":"2","diagnostico":"flu"}`)

	first, err := MergeVisitNotes(existing, nil, strPtr("rest"), nil)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	second, err := MergeVisitNotes(existing, nil, strPtr("rest"), nil)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if *first != *second {
		t.Fatalf("merge output unstable:\n%s\n%s", *first, *second)
	}
}

func TestParseVisitNotesRejectsNonObjects(t *testing.T) {
	for _, raw := range []string{"saw vet", `"quoted"`, `[1,2]`, `42`, ``} {
		if _, err := ParseVisitNotes(raw); err == nil {
			t.Fatalf("ParseVisitNotes(%q) should fail", raw)
		}
	}
}
