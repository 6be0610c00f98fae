package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"suse.dev/lumen"
	"suse.dev/lumen/builtins"
	"suse.dev/lumen/eval"
)

func newRootEnv() *lumen.Environment {
	env := lumen.NewEnvironment(nil)
	builtins.Register(env)
	return env
}

func TestEvalSymbolLookup(t *testing.T) {
	env := newRootEnv()
	env.Put(lumen.Intern("x"), lumen.MakeInt(7))
	got := eval.Eval(env, lumen.Intern("x"))
	assert.True(t, lumen.Equal(got, lumen.MakeInt(7)))
}

func TestEvalQExprIsInert(t *testing.T) {
	env := newRootEnv()
	q := lumen.NewQExpr(lumen.Intern("+"), lumen.MakeInt(1), lumen.MakeInt(2))
	got := eval.Eval(env, q)
	assert.True(t, lumen.Is(got, q))
}

func TestEvalArithmeticApplication(t *testing.T) {
	env := newRootEnv()
	s := lumen.NewSExpr(lumen.Intern("+"), lumen.MakeInt(1), lumen.MakeInt(2), lumen.MakeInt(3))
	got := eval.Eval(env, s)
	assert.True(t, lumen.Equal(got, lumen.MakeInt(6)))
}

func TestEvalApplicationErrorPropagatesFromHead(t *testing.T) {
	env := newRootEnv()
	s := lumen.NewSExpr(lumen.Intern("undefined-name"))
	got := eval.Eval(env, s)
	assert.True(t, lumen.IsErr(got))
}

func TestEvalApplicationOfNonProcedure(t *testing.T) {
	env := newRootEnv()
	s := lumen.NewSExpr(lumen.MakeInt(5), lumen.MakeInt(1))
	got := eval.Eval(env, s)
	e, ok := got.(*lumen.Err)
	if assert.True(t, ok) {
		assert.Equal(t, lumen.ErrApplication, e.Class)
	}
}

func TestLambdaCallCreatesFreshFrameEachTime(t *testing.T) {
	env := newRootEnv()
	lambda := eval.Eval(env, lumen.NewSExpr(
		lumen.Intern("\\"),
		lumen.NewQExpr(lumen.Intern("x")),
		lumen.NewQExpr(lumen.NewSExpr(lumen.Intern("+"), lumen.Intern("x"), lumen.MakeInt(1))),
	))
	proc, ok := lambda.(*lumen.Proc)
	if !assert.True(t, ok) {
		return
	}
	env.Put(lumen.Intern("inc"), proc)

	first := eval.Eval(env, lumen.NewSExpr(lumen.Intern("inc"), lumen.MakeInt(1)))
	second := eval.Eval(env, lumen.NewSExpr(lumen.Intern("inc"), lumen.MakeInt(41)))

	assert.True(t, lumen.Equal(first, lumen.MakeInt(2)))
	assert.True(t, lumen.Equal(second, lumen.MakeInt(42)))
	assert.True(t, lumen.IsErr(env.Get(lumen.Intern("x"))), "parameter x leaked into the captured environment")
}

func TestVariadicTailBindsRestAsQExpr(t *testing.T) {
	env := newRootEnv()
	lambda := eval.Eval(env, lumen.NewSExpr(
		lumen.Intern("\\"),
		lumen.NewQExpr(lumen.Intern("a"), lumen.Intern("&"), lumen.Intern("rest")),
		lumen.NewQExpr(lumen.Intern("rest")),
	))
	proc := lambda.(*lumen.Proc)
	env.Put(lumen.Intern("f"), proc)

	got := eval.Eval(env, lumen.NewSExpr(lumen.Intern("f"), lumen.MakeInt(1), lumen.MakeInt(2), lumen.MakeInt(3)))
	want := lumen.NewQExpr(lumen.MakeInt(2), lumen.MakeInt(3))
	assert.True(t, lumen.Equal(got, want))
}

func TestIfEvaluatesOnlyChosenBranch(t *testing.T) {
	env := newRootEnv()
	form := lumen.NewSExpr(
		lumen.Intern("if"),
		lumen.MakeBool(true),
		lumen.NewQExpr(lumen.MakeInt(1)),
		lumen.NewQExpr(lumen.NewSExpr(lumen.Intern("error"), lumen.MakeStr("should not run"))),
	)
	got := eval.Eval(env, form)
	assert.True(t, lumen.Equal(got, lumen.MakeInt(1)))
}

func TestAndShortCircuitsOnFalse(t *testing.T) {
	env := newRootEnv()
	form := lumen.NewSExpr(
		lumen.Intern("and"),
		lumen.NewQExpr(lumen.MakeBool(false)),
		lumen.NewQExpr(lumen.NewSExpr(lumen.Intern("error"), lumen.MakeStr("never evaluated"))),
	)
	got := eval.Eval(env, form)
	assert.True(t, lumen.Equal(got, lumen.MakeBool(false)))
}
