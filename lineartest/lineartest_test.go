// Copyright (C) 2026, the tinyseq authors. All rights reserved.
// See the file LICENSE for licensing terms.

package lineartest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tinyseq/linear"
	"github.com/tinyseq/linear/lineartest"
)

func TestRecorder(t *testing.T) {
	rec := new(lineartest.Recorder)

	var s linear.Seq[int]
	s.SetNotifier(rec)

	require.True(t, s.Insert(0, 1), "Insert(0, 1)")
	require.True(t, s.Insert(1, 2), "Insert(1, 2)")
	require.False(t, s.Remove(5), "Remove(5) on 2-element Seq")
	assert.Equal(t, 2, rec.Changes, "changes recorded after 2 successful and 1 failed mutation")
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	var s linear.Seq[string]
	s.SetNotifier(lineartest.NewLogNotifier(zap.New(core), "seq changed"))

	require.True(t, s.Insert(0, "a"))
	require.True(t, s.Insert(1, "b"))
	require.True(t, s.Remove(0))
	require.False(t, s.Insert(9, "c"), "out-of-range Insert")

	entries := logs.All()
	require.Len(t, entries, 3, "one log entry per successful mutation")
	for i, e := range entries {
		assert.Equal(t, "seq changed", e.Message)
		assert.Equal(t, int64(i+1), e.ContextMap()["change"], "change ordinal")
	}
}
