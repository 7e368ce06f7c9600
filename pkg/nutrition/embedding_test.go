package nutrition

import (
	"Dining-Menu-Backend/domain"
	"testing"
)

func TestFieldOrderFrozen(t *testing.T) {
	fields := Fields()
	if len(fields) != FieldCount {
		t.Fatalf("expected %d fields, got %d", FieldCount, len(fields))
	}
	if fields[0] != "calories" {
		t.Errorf("expected first field calories, got %s", fields[0])
	}
	if fields[FieldCount-1] != "vitamin_k" {
		t.Errorf("expected last field vitamin_k, got %s", fields[FieldCount-1])
	}
	for i, name := range fields {
		idx, ok := FieldIndex(name)
		if !ok || idx != i {
			t.Errorf("FieldIndex(%s) = %d, %v; want %d, true", name, idx, ok, i)
		}
	}
	if _, ok := FieldIndex("cholesterol"); ok {
		t.Error("unknown field should not resolve to an index")
	}
}

func TestEncodeSparseProfile(t *testing.T) {
	values := Flatten(domain.Macros{Calories: 250, Protein: 10})

	if len(values) != FieldCount {
		t.Fatalf("expected %d values, got %d", FieldCount, len(values))
	}

	caloriesIdx, _ := FieldIndex("calories")
	proteinIdx, _ := FieldIndex("protein")

	for i, v := range values {
		switch i {
		case caloriesIdx:
			if v != 250 {
				t.Errorf("calories at index %d = %f, want 250", i, v)
			}
		case proteinIdx:
			if v != 10 {
				t.Errorf("protein at index %d = %f, want 10", i, v)
			}
		default:
			if v != 0 {
				t.Errorf("index %d = %f, want exactly 0", i, v)
			}
		}
	}
}

func TestEncodeVectorDimension(t *testing.T) {
	v := Encode(domain.Macros{Calories: 120})
	if len(v.Slice()) != FieldCount {
		t.Fatalf("expected vector dimension %d, got %d", FieldCount, len(v.Slice()))
	}
}

func TestDecodeInvertsFlatten(t *testing.T) {
	original := domain.Macros{
		Calories:  512,
		Protein:   24.5,
		Fat:       8.25,
		Sodium:    150,
		VitaminB9: 0.5,
		VitaminK:  2,
	}

	decoded := Decode(Flatten(original))
	if decoded != original {
		t.Errorf("decode mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestDecodeShortVectorZeroFills(t *testing.T) {
	decoded := Decode([]float32{100, 5})
	if decoded.Calories != 100 || decoded.Protein != 5 {
		t.Errorf("positional decode mismatch: %+v", decoded)
	}
	if decoded.VitaminK != 0 || decoded.Fat != 0 {
		t.Errorf("missing positions must decode to 0: %+v", decoded)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	original := domain.Macros{Calories: 300, Carbs: 45, Iron: 1.5}
	if got := ProfileMacros(Profile(original)); got != original {
		t.Errorf("profile round trip mismatch: got %+v, want %+v", got, original)
	}
	if got := ProfileMacros(nil); got != (domain.Macros{}) {
		t.Errorf("nil profile should decode to zero macros, got %+v", got)
	}
}
