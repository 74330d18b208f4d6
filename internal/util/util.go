package util

import (
	"fmt"
	"net/http"
	// The profiling server started by ApplyCliSettings serves the
	// default mux; this import hangs the pprof handlers on it.
	_ "net/http/pprof"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with digit grouping for log output, e.g.
// 3752262 -> "3,752,262".
func FormatCount(n uint64) string {
	return printer.Sprintf("%d", n)
}

func ApplyCliSettings(verbose bool, profile bool, pprofPort uint16) {
	if verbose {
		log.Warn().Msgf("Verbosity up")
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if profile {
		log.Info().Msgf("Profiling is enabled for this session. Server will listen on port %d", pprofPort)
		go func() {
			if err := http.ListenAndServe(fmt.Sprintf(":%d", pprofPort), nil); err != nil {
				log.Error().Err(err).Msgf("Error starting profiling server on port %d", pprofPort)
				return
			}
		}()
	}
}

// ToScreamingSnakeCase maps a CamelCase field name to the env var
// spelling used in configuration error messages. Space-separated
// names are converted word by word.
func ToScreamingSnakeCase(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := rune(s[i])
		if unicode.IsUpper(c) && i > 0 {
			prev := rune(s[i-1])
			nextLower := i+1 < len(s) && unicode.IsLower(rune(s[i+1]))
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToUpper(c))
	}

	return b.String()
}
