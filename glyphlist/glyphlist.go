package glyphlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
)

// aglData holds the bundled AdobeGlyphList.txt, one entry per line:
//
//	<glyphName> <hexCode>[ <hexCode> ...]
//
// Hex codes are base-16 Unicode code points without a prefix. Embedding the
// file means no runtime resource location or temp-file staging is needed.
//
//go:embed AdobeGlyphList.txt
var aglData string

// List is an immutable glyph-name to Unicode mapping. It is never mutated
// after construction, so lookups are safe from any number of goroutines
// without synchronization.
type List struct {
	mapping map[string]AGLUnicode
}

// Option configures parsing.
type Option func(*parseConfig)

type parseConfig struct {
	strict bool
}

// Strict makes Parse fail on the first malformed line instead of skipping it.
func Strict() Option {
	return func(c *parseConfig) {
		c.strict = true
	}
}

// Parse reads a glyph list from r, one mapping per line. Token 0 is the glyph
// name, the remaining tokens are base-16 code points; the first is the symbol
// code and any further tokens are diacritic codes in order. Duplicate names
// are resolved last-write-wins. Blank lines and lines starting with '#' are
// ignored.
//
// By default malformed lines (fewer than two tokens, or invalid hex) are
// skipped and logged rather than failing the whole list; pass Strict() to get
// an error instead.
func Parse(r io.Reader, opts ...Option) (*List, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	mapping := make(map[string]AGLUnicode)
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, entry, err := parseLine(line)
		if err != nil {
			if cfg.strict {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			logf("glyphlist: skipping line %d: %v", lineNum, err)
			continue
		}
		mapping[name] = entry
	}
	if err := scanner.Err(); err != nil {
		// Keep whatever parsed before the failure; the caller decides
		// whether a partial table is acceptable.
		return &List{mapping: mapping}, fmt.Errorf("reading glyph list: %w", err)
	}

	return &List{mapping: mapping}, nil
}

// parseLine parses a single well-formed mapping line.
func parseLine(line string) (string, AGLUnicode, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return "", empty, fmt.Errorf("expected at least 2 fields, got %d", len(tokens))
	}

	symbol, err := parseHexCode(tokens[1])
	if err != nil {
		return "", empty, fmt.Errorf("symbol code %q: %w", tokens[1], err)
	}

	var diacritics []rune
	if len(tokens) > 2 {
		diacritics = make([]rune, 0, len(tokens)-2)
		for _, tok := range tokens[2:] {
			code, err := parseHexCode(tok)
			if err != nil {
				return "", empty, fmt.Errorf("diacritic code %q: %w", tok, err)
			}
			diacritics = append(diacritics, code)
		}
	}

	return tokens[0], newEntry(symbol, diacritics), nil
}

// parseHexCode parses an unprefixed base-16 Unicode code point.
func parseHexCode(s string) (rune, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	if v > 0x10FFFF {
		return 0, fmt.Errorf("code point %X out of Unicode range", v)
	}
	return rune(v), nil
}

// LoadFile parses a glyph list from a plain file on disk, for deployments
// that ship the list alongside the binary instead of using the embedded copy.
// The file handle is closed on every path.
func LoadFile(path string, opts ...Option) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening glyph list %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// Get returns the entry for the given glyph name. If the name is not in the
// list, the shared empty entry is returned and a diagnostic is logged; a miss
// is an expected, common case and is never an error.
func (l *List) Get(name string) AGLUnicode {
	if entry, ok := l.mapping[name]; ok {
		return entry
	}
	logf("glyphlist: glyph %q not found", name)
	return empty
}

// Contains reports whether the list has an entry for the given glyph name.
func (l *List) Contains(name string) bool {
	_, ok := l.mapping[name]
	return ok
}

// Len returns the number of entries in the list.
func (l *List) Len() int {
	return len(l.mapping)
}

// Empty returns the shared "no mapping" entry: symbol code NoMapping and no
// diacritics.
func Empty() AGLUnicode {
	return empty
}

// defaultList is built exactly once, on first use. Concurrent first callers
// block on the once until the table is complete; every later call is a plain
// map read.
var (
	defaultOnce sync.Once
	defaultList *List
)

// Default returns the process-wide list built from the embedded Adobe Glyph
// List. A parse failure degrades to an empty or partial table rather than an
// error: lookups then report "not found".
func Default() *List {
	defaultOnce.Do(func() {
		list, err := Parse(strings.NewReader(aglData))
		if err != nil {
			logf("glyphlist: building default table: %v", err)
		}
		if list == nil {
			list = &List{mapping: map[string]AGLUnicode{}}
		}
		defaultList = list
	})
	return defaultList
}

// Get resolves a glyph name against the default table.
func Get(name string) AGLUnicode {
	return Default().Get(name)
}

// Contains reports whether the default table has the given glyph name.
func Contains(name string) bool {
	return Default().Contains(name)
}

// logger receives diagnostic messages (parse skips, lookup misses). It is nil
// by default so the library stays quiet; misses in particular are frequent
// and only interesting when debugging text extraction.
var (
	loggerMu sync.Mutex
	logger   *log.Logger
)

// SetLogger installs a diagnostic logger. Pass nil to disable logging.
func SetLogger(l *log.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func logf(format string, args ...interface{}) {
	loggerMu.Lock()
	l := logger
	loggerMu.Unlock()
	if l != nil {
		l.Printf(format, args...)
	}
}
