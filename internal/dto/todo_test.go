package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateOnlyUnmarshal(t *testing.T) {
	var d DateOnly
	if err := json.Unmarshal([]byte(`"2025-07-02"`), &d); err != nil {
		t.Fatal(err)
	}
	want := time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)
	if !d.Time().Equal(want) {
		t.Errorf("time = %v, want %v", d.Time(), want)
	}

	for _, raw := range []string{`"07/02/2025"`, `"2025-7-2"`, `"2025-07-02T10:00:00Z"`, `123`} {
		var bad DateOnly
		if err := json.Unmarshal([]byte(raw), &bad); err == nil {
			t.Errorf("%s: expected a parse error", raw)
		}
	}

	var absent DateOnly
	if err := json.Unmarshal([]byte(`null`), &absent); err != nil {
		t.Fatal(err)
	}
	if !absent.IsZero() {
		t.Error("null should leave the date zero")
	}
}

func TestDateOnlyMarshal(t *testing.T) {
	d := NewDateOnly(time.Date(2025, 7, 2, 15, 30, 0, 0, time.FixedZone("KST", 9*3600)))
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2025-07-02"` {
		t.Errorf("marshal = %s", b)
	}

	var zero DateOnly
	b, err = json.Marshal(zero)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `null` {
		t.Errorf("zero marshal = %s, want null", b)
	}
}
