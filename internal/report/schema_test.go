package report

import (
	"errors"
	"testing"
)

func TestSchemaCoversEveryKind(t *testing.T) {
	kinds := []Kind{
		KindLOC, KindDups, KindIndent, KindHalstead, KindCyclomatic,
		KindMI, KindMIV, KindHotspots, KindKnowledge, KindCoupling,
	}

	for _, k := range kinds {
		if _, err := Schema(k); err != nil {
			t.Errorf("Schema(%q) error = %v", k, err)
		}
	}
}

func TestSchemaUnknownKind(t *testing.T) {
	_, err := Schema(Kind("bogus"))
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("Schema(bogus) error = %v, want ErrUnknownKind", err)
	}
}

func TestValidateAcceptsWellFormedDocument(t *testing.T) {
	doc := Document[LOCFile, LOCSummary]{
		Files:   []LOCFile{{Path: "a.go", Language: "go", Code: 1}},
		Summary: LOCSummary{TotalFiles: 1, TotalCode: 1, Languages: map[string]LanguageTotals{}},
	}

	if err := Validate(KindLOC, doc); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}
