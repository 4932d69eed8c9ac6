package beam

import "testing"

func TestColorNextCycle(t *testing.T) {
	cases := []struct {
		in   Color
		want Color
	}{
		{Unassigned, A},
		{A, B},
		{B, C},
		{C, D},
		{D, A},
	}
	for _, tc := range cases {
		if got := tc.in.Next(); got != tc.want {
			t.Errorf("%v.Next() = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestColorString(t *testing.T) {
	if A.String() != "A" || D.String() != "D" || Unassigned.String() != "?" {
		t.Errorf("unexpected Color.String() rendering")
	}
}
