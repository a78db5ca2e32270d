package errs

import (
	"fmt"
	"io"

	"github.com/ib-77/roptypes/pkg/rop/option"
)

type kindNamer interface {
	KindName() string
}

// format prints the message for %s and %v. %+v prints "kind:message" and then
// one line per error of the source chain and the native cause.
func format(s fmt.State, verb rune, e Error, kind string, cause option.Option[error]) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, label(kind, e.Message()))
			src, hasSource := e.Source().Get()
			for hasSource {
				_, _ = io.WriteString(s, "\n  source: "+describe(src))
				src, hasSource = src.Source().Get()
			}
			if c, ok := cause.Get(); ok {
				_, _ = io.WriteString(s, "\n  cause: "+c.Error())
			}
			return
		}
		_, _ = io.WriteString(s, e.Message())
	case 's':
		_, _ = io.WriteString(s, e.Message())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Message())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%s)", verb, e.Message())
	}
}

func describe(e Error) string {
	if k, ok := e.(kindNamer); ok {
		return label(k.KindName(), e.Message())
	}
	return e.Message()
}

func label(kind, message string) string {
	if kind == "" {
		return message
	}
	return kind + ":" + message
}
