// Package host is the embedding surface a host runtime calls into. It
// owns the boundary policy for dispatch failures: an unrecognized tag
// points at a value representation this build cannot reason about, so it
// is logged and answered with a null result instead of aborting the
// host; every other failure propagates for the host to surface.
package host

import (
	"errors"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/funvibe/dynvec/internal/config"
	"github.com/funvibe/dynvec/internal/dispatch"
	"github.com/funvibe/dynvec/internal/value"
)

// Bridge carries the logger dispatch outcomes are reported through. It
// holds no per-invocation state and is safe for concurrent use.
type Bridge struct {
	log *logrus.Logger
}

// New builds a bridge logging to stderr. DYNVEC_LOG_LEVEL overrides the
// default warn level.
func New() *Bridge {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logLevel())
	return &Bridge{log: log}
}

// NewWithLogger builds a bridge reporting through the host's own logger.
func NewWithLogger(log *logrus.Logger) *Bridge {
	return &Bridge{log: log}
}

func logLevel() logrus.Level {
	if raw := os.Getenv(config.LogLevelEnv); raw != "" {
		if lvl, err := logrus.ParseLevel(raw); err == nil {
			return lvl
		}
	}
	return logrus.WarnLevel
}

// DispatchVector runs v through the vector algorithm fns with the
// boundary policy applied.
func (b *Bridge) DispatchVector(v value.Dynamic, fns dispatch.VectorFuncs, extra ...any) (value.Dynamic, error) {
	res, err := dispatch.Vector(v, fns, extra...)
	return b.finish("vector", v, res, err)
}

// DispatchMatrix runs v through the matrix algorithm fns with the
// boundary policy applied.
func (b *Bridge) DispatchMatrix(v value.Dynamic, fns dispatch.MatrixFuncs, extra ...any) (value.Dynamic, error) {
	res, err := dispatch.Matrix(v, fns, extra...)
	return b.finish("matrix", v, res, err)
}

func (b *Bridge) finish(path string, in, res value.Dynamic, err error) (value.Dynamic, error) {
	fields := logrus.Fields{
		"invocation": uuid.NewString(),
		"path":       path,
		"tag":        in.Tag().String(),
		"len":        in.Len(),
	}
	if err != nil {
		var unrec *value.UnrecognizedTagError
		if errors.As(err, &unrec) {
			fields["tag_code"] = unrec.Code
			b.log.WithFields(fields).Warn("unrecognized tag, returning null result")
			return value.Null(), nil
		}
		b.log.WithFields(fields).WithError(err).Debug("dispatch failed")
		return value.Null(), err
	}
	b.log.WithFields(fields).Debug("dispatch ok")
	return res, nil
}
