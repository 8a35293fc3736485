package game

import "testing"

func TestLedgerStartsAtDefaults(t *testing.T) {
	l := newLedger()
	got := l.Snapshot()
	want := Resources{Health: 10, Reason: 10, Funds: 5}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLedgerAdjustClamps(t *testing.T) {
	tests := []struct {
		name  string
		res   Resource
		delta int
		want  int
	}{
		{name: "health capped at ten", res: Health, delta: 2, want: 10},
		{name: "reason capped at ten", res: Reason, delta: 5, want: 10},
		{name: "health floor", res: Health, delta: -25, want: 0},
		{name: "reason floor", res: Reason, delta: -11, want: 0},
		{name: "funds uncapped", res: Funds, delta: 40, want: 45},
		{name: "funds floor", res: Funds, delta: -9, want: 0},
		{name: "plain decrement", res: Health, delta: -3, want: 7},
	}
	for _, tc := range tests {
		l := newLedger()
		if got := l.Adjust(tc.res, tc.delta); got != tc.want {
			t.Fatalf("%s: Adjust(%s, %d)=%d want=%d", tc.name, tc.res, tc.delta, got, tc.want)
		}
		if got := l.Snapshot().Get(tc.res); got != tc.want {
			t.Fatalf("%s: snapshot %s=%d want=%d", tc.name, tc.res, got, tc.want)
		}
	}
}
