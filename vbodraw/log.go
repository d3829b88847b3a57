package vbodraw

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger configures the logger used while rendering.
// By default, nothing is logged. Pass nil to restore this behavior.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
