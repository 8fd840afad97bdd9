package portfolio

import (
	"reflect"
	"testing"
)

func TestParseLookbacks(t *testing.T) {
	today := MustParse("2024-03-01") // leap year, 60 days after January 1st

	testCases := []struct {
		input   string
		want    []Lookback
		wantErr bool
	}{
		{
			input: DefaultLookbacksSpec,
			want:  []Lookback{{"1D", 1}, {"1M", 30}, {"YTD", 60}, {"1Y", 365}},
		},
		{
			input: " 5D = 5 , ytd",
			want:  []Lookback{{"5D", 5}, {"YTD", 60}},
		},
		{input: "", wantErr: true},
		{input: "1M", wantErr: true},
		{input: "1M=abc", wantErr: true},
		{input: "1M=-3", wantErr: true},
		{input: "=3", wantErr: true},
		{input: "1M=30,1M=31", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseLookbacks(tc.input, today)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLookbacks(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseLookbacks(%q) = %v want %v", tc.input, got, tc.want)
			}
		})
	}

	if got := DefaultLookbacks(today); !reflect.DeepEqual(got, []Lookback{{"1D", 1}, {"1M", 30}, {"YTD", 60}, {"1Y", 365}}) {
		t.Errorf("DefaultLookbacks(%s) = %v", today, got)
	}
	if got := YTD(MustParse("2024-01-01")); got.Days != 0 {
		t.Errorf("YTD(2024-01-01).Days = %d want 0", got.Days)
	}
}
