package report

import (
	"encoding/json"
	"math"
	"testing"
)

func TestMetricMarshalAddsDecimal(t *testing.T) {
	cases := map[Metric]string{
		0:          "0.0",
		5:          "5.0",
		3.14159265: "3.14159",
	}

	for in, want := range cases {
		got, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", in, err)
		}

		if string(got) != want {
			t.Errorf("Marshal(%v) = %s, want %s", in, got, want)
		}
	}
}

func TestMetricMarshalNormalizesNegativeZero(t *testing.T) {
	negZero := Metric(math.Copysign(0, -1))

	got, err := json.Marshal(negZero)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	if string(got) != "0.0" {
		t.Errorf("Marshal(-0.0) = %s, want 0.0", got)
	}
}

func TestMetricRoundTrip(t *testing.T) {
	want := Metric(123.456789)

	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got Metric
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if diff := float64(got) - 123.457; diff > 0.001 || diff < -0.001 {
		t.Fatalf("round trip = %v, want ~123.457", got)
	}
}
