package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/graeme-hill/calcstuff-go/store"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	evals []store.Evaluation
	err   error
}

func (f *fakeRecorder) Record(ctx context.Context, eval store.Evaluation) (store.Evaluation, error) {
	f.evals = append(f.evals, eval)
	return eval, f.err
}

func TestRunDefaults(t *testing.T) {
	var out bytes.Buffer
	failures := run(context.Background(), defaultExpressions, &out, false, nil)
	require.Equal(t, 0, failures)
	require.Equal(t, "1+1=2\n(1+2)^2=9\n5+3!=11\n7+7*2=21\n(3+3)/3=2\n4!=24\n", out.String())
}

func TestRunFailures(t *testing.T) {
	var out bytes.Buffer
	failures := run(context.Background(), []string{"1/0", "2-5", "sqrt(4)"}, &out, false, nil)
	require.Equal(t, 2, failures)
	require.Equal(t, "1/0: Error at col 2: division by zero in '/'\n"+
		"2-5=-3\n"+
		"sqrt(4): Error at col 1: function sqrt is not supported\n", out.String())
}

func TestRunRecords(t *testing.T) {
	var out bytes.Buffer
	rec := &fakeRecorder{}
	failures := run(context.Background(), []string{"4!", "(1"}, &out, false, rec)
	require.Equal(t, 1, failures)
	require.Len(t, rec.evals, 2)
	require.Equal(t, int64(24), rec.evals[0].Result)
	require.Equal(t, "4 !", rec.evals[0].Postfix)
	require.True(t, rec.evals[1].Failed())
}

func TestRunRecordErrorIsNotFailure(t *testing.T) {
	var out bytes.Buffer
	rec := &fakeRecorder{err: errors.New("connection refused")}
	failures := run(context.Background(), []string{"1+1"}, &out, false, rec)
	require.Equal(t, 0, failures)
	require.Equal(t, "1+1=2\n", out.String())
}

func TestRunDump(t *testing.T) {
	var out bytes.Buffer
	run(context.Background(), []string{"4!"}, &out, true, nil)
	require.Contains(t, out.String(), "lib.Token")
	require.Contains(t, out.String(), "4!=24")
}
