// Package fault defines the construction failures that abort a generation run.
//
// None of them are recoverable. Match them with errors.Is:
//
//	if errors.Is(err, fault.DegenerateProfile) { ... }
package fault

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	// InvalidColumnCount is returned for layouts with a column count other than 5 or 6.
	InvalidColumnCount = errors.New("unsupported column count")
	// DegenerateProfile is returned for outlines that fail to close, self-intersect
	// or enclose no area.
	DegenerateProfile = errors.New("degenerate profile")
	// EmptyGeometrySelection is returned when a vertex or edge selection that
	// a construction step depends on comes up empty.
	EmptyGeometrySelection = errors.New("empty geometry selection")
	// BooleanOperationFailed is returned when a union or cut does not touch
	// the body it is applied to, or kernel construction of an operand fails.
	BooleanOperationFailed = errors.New("boolean operation failed")
	// CoarseMesh is returned when the mesher resolution is too coarse to
	// resolve the thinnest feature of a part.
	CoarseMesh = errors.New("mesh resolution too coarse")
)

// Error is a construction failure of a given Kind raised at operation Op.
type Error struct {
	Kind   error
	Op     string
	Detail string
	site   string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.site != "" {
		b.WriteString(" (")
		b.WriteString(e.site)
		b.WriteString(")")
	}
	return b.String()
}

// Unwrap returns the error Kind.
func (e *Error) Unwrap() error { return e.Kind }

// Site returns the function and line that raised the error.
func (e *Error) Site() string { return e.site }

// New returns an Error of kind raised at op, recording the caller's location.
func New(kind error, op string, format string, args ...interface{}) error {
	return &Error{
		Kind:   kind,
		Op:     op,
		Detail: fmt.Sprintf(format, args...),
		site:   caller(2),
	}
}

// Wrap converts a kernel error into an Error of the given kind.
// A nil err returns nil.
func Wrap(kind error, op string, err error) error {
	if err == nil {
		return nil
	}
	var fe *Error
	if errors.As(err, &fe) {
		return err
	}
	return &Error{Kind: kind, Op: op, Detail: err.Error(), site: caller(2)}
}

func caller(skip int) string {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return fmt.Sprintf("%s line %d", name, line)
}
