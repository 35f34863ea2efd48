// Copyright (C) 2026, the tinyseq authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lineartest provides [linear.ChangeNotifier] implementations for use
// in tests.
package lineartest

import (
	"go.uber.org/zap"

	"github.com/tinyseq/linear"
)

// A Recorder is a [linear.ChangeNotifier] that counts the notifications it
// receives.
type Recorder struct {
	Changes int
}

var _ linear.ChangeNotifier = (*Recorder)(nil)

func (r *Recorder) OnChange() { r.Changes++ }

// NewLogNotifier returns a [linear.ChangeNotifier] that writes `msg` to `log`
// at INFO on every change, tagging each entry with a 1-based change ordinal
// in the "change" field.
func NewLogNotifier(log *zap.Logger, msg string) linear.ChangeNotifier {
	return &logNotifier{log: log, msg: msg}
}

type logNotifier struct {
	log *zap.Logger
	msg string
	n   int
}

func (l *logNotifier) OnChange() {
	l.n++
	l.log.Info(l.msg, zap.Int("change", l.n))
}
