package regtext

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/winelayer/regsrv/internal/keytree"
	"github.com/winelayer/regsrv/internal/path"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

// Load implements the v2 loader state machine (spec.md §4.4.4). It merges r
// into the tree rooted at base: each section resolves (with create
// semantics) relative to base, and each value line attaches to the section
// currently active. A bad header aborts the whole load; every other
// malformed line is logged to diag and skipped, per spec.md §7's "load
// errors on individual lines are reported through a diagnostic sink".
func Load(base *keytree.Key, r io.Reader, currentLevel, maxComponentLen int, diag *slog.Logger) error {
	if diag == nil {
		diag = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	headerSeen := false
	lineNo := 0
	var cur *keytree.Key
	var curModif time.Time

	for scanner.Scan() {
		lineNo++
		trim := strings.TrimSpace(scanner.Text())

		if !headerSeen {
			if trim == "" {
				continue
			}
			if trim != HeaderV2 {
				return regtypes.Wrap(regtypes.ErrNotRegistryFile,
					fmt.Sprintf("line %d: expected header %q, got %q", lineNo, HeaderV2, trim), nil)
			}
			headerSeen = true
			continue
		}

		switch classifyLine(trim) {
		case lineBlank, lineComment:
			continue

		case lineSection:
			k, modif, err := parseSection(base, trim, currentLevel, maxComponentLen)
			if err != nil {
				diag.Warn("regtext: skipping malformed section", "line", lineNo, "text", trim, "error", err)
				cur = nil
				continue
			}
			cur, curModif = k, modif
			cur.Modif = curModif

		case lineValue:
			if cur == nil {
				diag.Warn("regtext: value line with no active section", "line", lineNo, "text", trim)
				continue
			}
			if err := parseValueLine(cur, trim, scanner, &lineNo, currentLevel); err != nil {
				diag.Warn("regtext: skipping malformed value", "line", lineNo, "text", trim, "error", err)
				continue
			}
			// SetValue's Touch bumped modif to now; the loader preserves the
			// timestamp recorded in the section header instead (spec.md §4.4.4).
			cur.Modif = curModif
		}
	}
	if err := scanner.Err(); err != nil {
		return regtypes.Wrap(regtypes.ErrNotRegistryFile, "scanning registry text", err)
	}
	if !headerSeen {
		return regtypes.Wrap(regtypes.ErrNotRegistryFile, "empty input: no header line", nil)
	}
	return nil
}

// parseSection parses one "[keypath] modif?" line, resolves it under base
// with create semantics, and returns the resolved key and its modif
// timestamp (spec.md §4.4.1, §4.4.4). The keypath's first component is the
// root name label; it is skipped, and only the remaining components are
// resolved under base.
func parseSection(base *keytree.Key, trim string, currentLevel, maxComponentLen int) (*keytree.Key, time.Time, error) {
	content := trim[len(KeyOpenBracket):]
	end := findRawEnd(content, ']')
	if end < 0 {
		return nil, time.Time{}, fmt.Errorf("regtext: missing closing %q", KeyCloseBracket)
	}
	keypath := content[:end]
	rest := strings.TrimSpace(content[end+1:])

	comps := splitKeypathRaw(keypath)
	if len(comps) == 0 || comps[0] == "" {
		return nil, time.Time{}, fmt.Errorf("regtext: empty key path %q", keypath)
	}

	unescaped := make([]string, 0, len(comps)-1)
	for _, c := range comps[1:] {
		s, err := UnescapeString(c)
		if err != nil {
			return nil, time.Time{}, err
		}
		unescaped = append(unescaped, s)
	}
	relPath := strings.Join(unescaped, Backslash)

	res, err := path.Create(base, relPath, path.CreateOptions{}, currentLevel, maxComponentLen)
	if err != nil {
		return nil, time.Time{}, err
	}

	modif := time.Now()
	if rest != "" {
		n, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("regtext: invalid modif %q: %w", rest, err)
		}
		modif = time.Unix(0, n)
	}
	return res.Key, modif, nil
}
