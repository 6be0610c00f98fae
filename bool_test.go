package lumen

import "testing"

func TestBoolString(t *testing.T) {
	if MakeBool(true).String() != "#t" {
		t.Errorf("true.String() != #t")
	}
	if MakeBool(false).String() != "#f" {
		t.Errorf("false.String() != #f")
	}
}
