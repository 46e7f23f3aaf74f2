package analysis

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRecord(t *testing.T) {
	testCases := []struct {
		name      string
		text      string
		width     int
		expected  []float64
		expectErr bool
	}{
		{"five_values", "  1.750     12.5   -3.25  0 1e3 \n", 5, []float64{1.75, 12.5, -3.25, 0, 1000}, false},
		{"three_values", "1 2 3", 3, []float64{1, 2, 3}, false},
		{"single_value", "42.0\n", 1, []float64{42}, false},
		{"too_few_tokens", "1.0 2.0", 3, nil, true},
		{"too_many_tokens", "1 2 3 4", 3, nil, true},
		{"non_numeric_token", "1.0 abc 3.0", 3, nil, true},
		{"empty_input", "", 5, nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRecord(tc.text, tc.width)
			if tc.expectErr {
				if err == nil {
					t.Fatalf("ParseRecord(%q, %d) expected error, got nil", tc.text, tc.width)
				}
				var malformed *MalformedOutputError
				if !errors.As(err, &malformed) {
					t.Errorf("error = %v, want *MalformedOutputError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRecord() error: %v", err)
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("ParseRecord() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseShiftOutput(t *testing.T) {
	text := "1250\n1.5 -2.5 3.0\n4.0 5.5 6.25\n"
	got, err := ParseShiftOutput(text)
	if err != nil {
		t.Fatalf("ParseShiftOutput() error: %v", err)
	}

	want := ShiftOutput{
		Count: 1250,
		Sum:   []float64{1.5, -2.5, 3.0},
		Sum2:  []float64{4.0, 5.5, 6.25},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseShiftOutput() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseShiftOutput_Malformed(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{"missing_line", "100\n1 2 3\n"},
		{"extra_line", "100\n1 2 3\n4 5 6\n7 8 9\n"},
		{"short_sum_line", "100\n1 2\n4 5 6\n"},
		{"bad_count", "abc\n1 2 3\n4 5 6\n"},
		{"empty", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseShiftOutput(tc.text)
			if err == nil {
				t.Fatalf("ParseShiftOutput(%q) expected error, got nil", tc.text)
			}
			var malformed *MalformedOutputError
			if !errors.As(err, &malformed) {
				t.Errorf("error = %v, want *MalformedOutputError", err)
			}
		})
	}
}
