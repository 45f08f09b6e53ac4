// Package translate localises the user visible messages of sscd.
package translate

import (
	"io"
	"sync"

	"github.com/golang/glog"
	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer *message.Printer
	once    sync.Once
)

// Printer returns the message printer for the user's preferred locale.
// The locale is probed once; on failure en-US is used.
func Printer() *message.Printer {
	once.Do(func() {
		locales, err := locale.GetLocales()
		if err != nil {
			glog.Warningf("sscd: locale: %v", err)
		}

		if len(locales) == 0 {
			locales = []string{language.AmericanEnglish.String()}
		}

		printer = message.NewPrinter(message.MatchLanguage(locales...))
	})

	return printer
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return Printer().Sprintf(key, args...)
}

// Fprintf writes a translated en-US format to w.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return Printer().Fprintf(w, key, args...)
}
