package host

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/funvibe/dynvec/internal/algorithms"
	"github.com/funvibe/dynvec/internal/dispatch"
	"github.com/funvibe/dynvec/internal/value"
)

func testBridge() (*Bridge, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)
	return NewWithLogger(log), &buf
}

func TestDispatchVectorPassesThrough(t *testing.T) {
	b, _ := testBridge()
	res, err := b.DispatchVector(value.VectorOf([]int64{1, 2, 3, 4}), algorithms.HeadTail, 1)
	if err != nil {
		t.Fatalf("DispatchVector: %v", err)
	}
	got, err := value.AsVector[int64](res)
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Errorf("headtail = %v, want [1 4]", got)
	}
}

func TestUnrecognizedTagWarnsAndReturnsNull(t *testing.T) {
	b, buf := testBridge()
	alien := value.FromDiscriminator(99, []int64{1}, nil)
	res, err := b.DispatchVector(alien, algorithms.Length)
	if err != nil {
		t.Fatalf("boundary policy should swallow UnrecognizedTag, got %v", err)
	}
	if !res.IsNull() {
		t.Errorf("result = %s, want Null", res.Inspect())
	}
	out := buf.String()
	if !strings.Contains(out, "unrecognized tag") || !strings.Contains(out, "tag_code=99") {
		t.Errorf("warning not logged, output: %s", out)
	}
}

func TestUnsupportedTagPropagates(t *testing.T) {
	b, _ := testBridge()
	_, err := b.DispatchVector(value.VectorOf([]byte{2, 1}), algorithms.Sort)
	var ue *dispatch.UnsupportedTagError
	if !errors.As(err, &ue) {
		t.Errorf("err = %v, want UnsupportedTagError to propagate", err)
	}
}

func TestShapeMismatchPropagates(t *testing.T) {
	b, _ := testBridge()
	_, err := b.DispatchMatrix(value.VectorOf([]int64{1, 2}), algorithms.Dims)
	var sm *value.ShapeMismatchError
	if !errors.As(err, &sm) {
		t.Errorf("err = %v, want ShapeMismatchError to propagate", err)
	}
}

func TestDispatchMatrix(t *testing.T) {
	b, _ := testBridge()
	m, _ := value.MatrixOf([]int64{2, 1, 4, 3}, 2, 2)
	res, err := b.DispatchMatrix(m, algorithms.SortShape)
	if err != nil {
		t.Fatalf("DispatchMatrix: %v", err)
	}
	shape, ok := res.Shape()
	if !ok || shape.Rows != 2 || shape.Cols != 2 {
		t.Errorf("shape = %+v, %t, want 2x2", shape, ok)
	}
}
