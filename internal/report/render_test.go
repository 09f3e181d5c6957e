package report

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestWriteJSONEncodesDocument(t *testing.T) {
	doc := Document[LOCFile, LOCSummary]{
		Files: []LOCFile{{Path: "a.go", Language: "go", Blank: 1, Comment: 2, Code: 10}},
		Summary: LOCSummary{
			TotalFiles: 1, TotalBlank: 1, TotalComment: 2, TotalCode: 10,
			Languages: map[string]LanguageTotals{"go": {Files: 1, Blank: 1, Comment: 2, Code: 10}},
		},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, KindLOC, doc, false); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var got Document[LOCFile, LOCSummary]
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.Summary.TotalCode != 10 {
		t.Fatalf("got.Summary.TotalCode = %d, want 10", got.Summary.TotalCode)
	}
}

func TestWriteJSONValidatesWhenRequested(t *testing.T) {
	doc := Document[LOCFile, LOCSummary]{
		Files:   []LOCFile{{Path: "a.go", Language: "go", Code: 1}},
		Summary: LOCSummary{TotalFiles: 1, TotalCode: 1, Languages: map[string]LanguageTotals{}},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, KindLOC, doc, true); err != nil {
		t.Fatalf("WriteJSON() with validation error = %v", err)
	}
}
