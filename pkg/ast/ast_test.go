package ast

import (
	"reflect"
	"testing"
)

func TestBinaryOpString(t *testing.T) {
	tests := []struct {
		op   BinaryOp
		want string
	}{
		{OpAdd, "+"},
		{OpSub, "-"},
		{OpMul, "*"},
		{OpDiv, "/"},
		{OpMod, "%"},
		{BinaryOp(99), "?"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("BinaryOp(%d).String(): expected %q, got %q", tt.op, tt.want, got)
		}
	}
}

func TestIsAnonymous(t *testing.T) {
	anon := &Function{
		Proto: &Prototype{Name: AnonymousName},
		Body:  &NumberExpr{Value: 1},
	}
	if !anon.IsAnonymous() {
		t.Error("expected anonymous function")
	}

	named := &Function{
		Proto: &Prototype{Name: "foo"},
		Body:  &NumberExpr{Value: 1},
	}
	if named.IsAnonymous() {
		t.Error("expected named function")
	}
}

func TestStructuralEquality(t *testing.T) {
	build := func() Expr {
		return &BinaryExpr{
			Op:    OpAdd,
			Left:  &VariableExpr{Name: "a"},
			Right: &CallExpr{Callee: "f", Args: []Expr{&NumberExpr{Value: 2}}},
		}
	}

	if !reflect.DeepEqual(build(), build()) {
		t.Error("identical trees should compare equal")
	}

	other := build().(*BinaryExpr)
	other.Op = OpSub
	if reflect.DeepEqual(build(), other) {
		t.Error("different trees should not compare equal")
	}
}
