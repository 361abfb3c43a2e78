package types

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestPromote(t *testing.T) {
	tests := []struct {
		a, b Type
		want Type
		ok   bool
	}{
		{Int, Int, Int, true},
		{Float, Float, Float, true},
		{Int, Float, Float, true},
		{Float, Int, Float, true},
		{Int, String, Invalid, false},
		{Bool, Bool, Invalid, false},
		{String, String, Invalid, false},
	}

	for _, tt := range tests {
		got, ok := Promote(tt.a, tt.b)
		be.Equal(t, ok, tt.ok)
		be.Equal(t, got, tt.want)
	}
}

func TestAssignableTo(t *testing.T) {
	be.True(t, AssignableTo(Int, Int))
	be.True(t, AssignableTo(String, String))
	be.Equal(t, AssignableTo(Int, Float), false)
	be.Equal(t, AssignableTo(Float, Int), false)
	be.Equal(t, AssignableTo(Void, Void), false)
	be.Equal(t, AssignableTo(Invalid, Invalid), false)
}

func TestString(t *testing.T) {
	be.Equal(t, Int.String(), "int")
	be.Equal(t, Void.String(), "void")
	be.Equal(t, Type(99).String(), "unknown")
}
