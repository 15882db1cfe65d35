package repl

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/minipylang/config"
	"github.com/akashmaji946/minipylang/eval"
	"github.com/akashmaji946/minipylang/value"
	"github.com/stretchr/testify/assert"
)

func TestEvalLinePrintsResult(t *testing.T) {
	r := New(config.Config{Prompt: "> ", ColorsOn: false})
	it := eval.New()
	out := &bytes.Buffer{}
	it.Out = out

	r.evalLine(out, it, "print 1 + 2")
	assert.Contains(t, out.String(), "3")
}

func TestEvalLineReportsParseError(t *testing.T) {
	r := New(config.Config{ColorsOn: false})
	it := eval.New()
	out := &bytes.Buffer{}
	it.Out = out

	r.evalLine(out, it, "1 =")
	assert.Contains(t, out.String(), "Parse error")
}

func TestEvalLineReportsRuntimeError(t *testing.T) {
	r := New(config.Config{ColorsOn: false})
	it := eval.New()
	out := &bytes.Buffer{}
	it.Out = out

	r.evalLine(out, it, "print undefined_name")
	assert.Contains(t, out.String(), "Runtime error")
}

func TestHandleMetaClearAndVars(t *testing.T) {
	r := New(config.Config{ColorsOn: false})
	it := eval.New()
	out := &bytes.Buffer{}
	it.Out = out

	it.Env.Set("x", &value.Integer{Val: 1})
	handled := r.handleMeta(out, it, "vars")
	assert.Equal(t, metaHandled, handled)

	handled = r.handleMeta(out, it, "clear")
	assert.Equal(t, metaHandled, handled)
	assert.Equal(t, 0, it.Env.Len())
}

func TestHandleMetaToggleTree(t *testing.T) {
	r := New(config.Config{ColorsOn: false})
	it := eval.New()
	out := &bytes.Buffer{}

	assert.Equal(t, metaHandled, r.handleMeta(out, it, "tree on"))
	assert.True(t, r.showTree)
	assert.Equal(t, metaHandled, r.handleMeta(out, it, "tree off"))
	assert.False(t, r.showTree)
}

func TestHandleMetaNotHandledForOrdinaryCode(t *testing.T) {
	r := New(config.Config{ColorsOn: false})
	it := eval.New()
	out := &bytes.Buffer{}
	assert.Equal(t, metaNotHandled, r.handleMeta(out, it, "print 1"))
}

func TestHandleMetaQuitAndExitSignalTermination(t *testing.T) {
	r := New(config.Config{ColorsOn: false})
	it := eval.New()
	out := &bytes.Buffer{}

	assert.Equal(t, metaExit, r.handleMeta(out, it, "quit"))
	assert.Contains(t, out.String(), "Goodbye!")

	out.Reset()
	assert.Equal(t, metaExit, r.handleMeta(out, it, "exit"))
	assert.Contains(t, out.String(), "Goodbye!")
}
