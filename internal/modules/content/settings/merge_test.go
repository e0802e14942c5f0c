package settings

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestMergeJSONPreservesAbsentFields(t *testing.T) {
	existing := map[string]interface{}{
		"backgroundColor": "#000000",
		"headerText":      "Department of",
		"title":           "ELECTRONICS & COMPUTER ENGINEERING",
	}
	incoming := map[string]interface{}{
		"title": "COMPUTER SCIENCE",
	}

	merged, ok := mergeJSON(existing, incoming).(map[string]interface{})
	if !ok {
		t.Fatal("mergeJSON did not return a map")
	}
	if merged["title"] != "COMPUTER SCIENCE" {
		t.Errorf("title = %v, want COMPUTER SCIENCE", merged["title"])
	}
	if merged["backgroundColor"] != "#000000" {
		t.Errorf("backgroundColor = %v, want preserved", merged["backgroundColor"])
	}
	if merged["headerText"] != "Department of" {
		t.Errorf("headerText = %v, want preserved", merged["headerText"])
	}
}

func TestMergeJSONIdempotent(t *testing.T) {
	existing := map[string]interface{}{
		"backgroundColor": "#101010",
		"nested":          map[string]interface{}{"a": 1.0, "b": 2.0},
	}
	incoming := map[string]interface{}{
		"nested": map[string]interface{}{"b": 3.0},
	}

	once := mergeJSON(existing, incoming)
	twice := mergeJSON(once, incoming)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merge not idempotent: once=%v twice=%v", once, twice)
	}
}

func TestMergeJSONReplacesArraysWhole(t *testing.T) {
	existing := map[string]interface{}{"items": []interface{}{"a", "b"}}
	incoming := map[string]interface{}{"items": []interface{}{"c"}}

	merged := mergeJSON(existing, incoming).(map[string]interface{})
	if got := merged["items"].([]interface{}); len(got) != 1 || got[0] != "c" {
		t.Errorf("items = %v, want [c]", got)
	}
}

func TestMergeDocumentKeepsUnknownKeys(t *testing.T) {
	stored := []byte(`{"backgroundColor":"#000000","title":"OLD","tickerSpeed":42,"plugins":{"weather":{"city":"Kochi"}}}`)
	partial := map[string]json.RawMessage{
		"title": json.RawMessage(`"NEW"`),
	}

	mergedJSON, err := MergeDocument(stored, partial)
	if err != nil {
		t.Fatal(err)
	}
	var merged map[string]interface{}
	if err := json.Unmarshal(mergedJSON, &merged); err != nil {
		t.Fatal(err)
	}

	if merged["title"] != "NEW" {
		t.Errorf("title = %v, want NEW", merged["title"])
	}
	if merged["tickerSpeed"] != 42.0 {
		t.Errorf("tickerSpeed = %v, want preserved", merged["tickerSpeed"])
	}
	plugins, ok := merged["plugins"].(map[string]interface{})
	if !ok {
		t.Fatalf("plugins dropped: %v", merged["plugins"])
	}
	weather := plugins["weather"].(map[string]interface{})
	if weather["city"] != "Kochi" {
		t.Errorf("plugins.weather.city = %v, want Kochi", weather["city"])
	}
}

func TestMergeDocumentAddsNewKeys(t *testing.T) {
	stored := []byte(`{"title":"X"}`)
	partial := map[string]json.RawMessage{
		"footerText": json.RawMessage(`"visit sjcet.ac.in"`),
	}

	mergedJSON, err := MergeDocument(stored, partial)
	if err != nil {
		t.Fatal(err)
	}
	var merged map[string]interface{}
	if err := json.Unmarshal(mergedJSON, &merged); err != nil {
		t.Fatal(err)
	}
	if merged["footerText"] != "visit sjcet.ac.in" {
		t.Errorf("footerText = %v, want added", merged["footerText"])
	}
	if merged["title"] != "X" {
		t.Errorf("title = %v, want preserved", merged["title"])
	}
}

func TestDefaultsRoundTrip(t *testing.T) {
	d := Defaults()
	if d.BackgroundColor != "#000000" {
		t.Errorf("BackgroundColor = %q, want #000000", d.BackgroundColor)
	}
	if d.HeaderText != "Department of" {
		t.Errorf("HeaderText = %q", d.HeaderText)
	}

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	var back DisplaySettings
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip changed settings: %+v != %+v", back, d)
	}
}
