package portfolio

import (
	"encoding/json"
	"math"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("z", 1)
		w.Append("a", "hello")
		w.Append(`quote"d`, true)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"z":1,"a":"hello","quote\"d":true}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 0) // a zero value is actually added.
		w.Optional("b", "")
		w.Optional("c", 0)
		w.Optional("d", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":0,"d":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("errors are sticky", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("nan", math.NaN()) // json cannot encode a float NaN
		w.Append("b", 2)
		if _, err := w.MarshalJSON(); err == nil {
			t.Errorf("expected an error")
		}
	})
}

func TestSnapshotRow_MarshalJSON(t *testing.T) {
	row := SnapshotRow{
		Symbol:      "AAA",
		Quantity:    Q(6),
		Price:       D(13),
		MarketValue: D(78),
		Weight:      100,
		Returns:     []Return{{"1D", 8.33}, {"1Y", Undefined}},
	}
	got, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"symbol":"AAA","quantity":6,"price":13,"marketValue":78,"weight":100,"1D":8.33,"1Y":null}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
