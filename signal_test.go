package caemu_test

import (
	"testing"

	"github.com/wonsjb/caemu"
)

func TestSignalString(t *testing.T) {
	data := []struct {
		s    caemu.Signal
		want string
	}{
		{caemu.ZERO, "0"},
		{caemu.ONE, "1"},
		{caemu.HIGH, "x"},
	}
	for _, d := range data {
		if got := d.s.String(); got != d.want {
			t.Errorf("%v.String() = %q, want %q", d.s, got, d.want)
		}
	}
}
