package testutil

import (
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var diffOpts = cmp.Options{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateEmpty(),
}

// Diff returns a got/want diff, or the empty string if the two values are
// equal. Unexported fields are compared and empty slices equate to nil.
func Diff[T any](got, want T) string {
	if diff := cmp.Diff(got, want, diffOpts); diff != "" {
		return "\n-got +want\n" + diff
	}
	return ""
}

// Callers returns the chain of test call sites leading to the assertion, so
// table-driven subtests report which case failed. Frames outside _test.go
// files are dropped.
func Callers() string {
	pc := make([]uintptr, 32)
	n := runtime.Callers(2, pc)
	frames := runtime.CallersFrames(pc[:n])
	var sites []string
	for {
		frame, more := frames.Next()
		if strings.HasSuffix(frame.File, "_test.go") {
			sites = append(sites, filepath.Base(frame.File)+":"+strconv.Itoa(frame.Line))
		}
		if !more {
			break
		}
	}
	if len(sites) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n[")
	for i := len(sites) - 1; i >= 0; i-- {
		b.WriteString(sites[i])
		if i > 0 {
			b.WriteString(" -> ")
		}
	}
	b.WriteString("]")
	return b.String()
}
