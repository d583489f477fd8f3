package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/theflywheel/dhash"
)

type opKind int

const (
	opInsert opKind = iota
	opSearch
	opDelete
	opStats
	opDump
)

type op struct {
	kind  opKind
	key   string
	value string
	line  int
}

// parseScript reads one operation per line:
//
//	insert <key> <value...>
//	search <key>
//	delete <key>
//	stats
//	dump
//
// Keys are single tokens; a Go-quoted token such as "" is unquoted. The value
// of an insert is the rest of the line. Blank lines and lines starting with #
// are skipped. Every malformed line is reported, not only the first.
func parseScript(r io.Reader) ([]op, error) {
	var (
		ops  []op
		errs *multierror.Error
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		o, err := parseLine(line)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %w", n, err))
			continue
		}
		o.line = n
		ops = append(ops, o)
	}
	if err := sc.Err(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to read script: %w", err))
	}

	return ops, errs.ErrorOrNil()
}

func parseLine(line string) (op, error) {
	verb, rest := cutToken(line)
	switch strings.ToLower(verb) {
	case "insert", "set", "put":
		key, value := cutToken(rest)
		if key == "" {
			return op{}, fmt.Errorf("insert needs a key")
		}
		k, err := unquote(key)
		if err != nil {
			return op{}, err
		}
		return op{kind: opInsert, key: k, value: value}, nil

	case "search", "get":
		return parseKeyOnly(opSearch, verb, rest)

	case "delete", "del":
		return parseKeyOnly(opDelete, verb, rest)

	case "stats":
		if rest != "" {
			return op{}, fmt.Errorf("stats takes no arguments")
		}
		return op{kind: opStats}, nil

	case "dump":
		if rest != "" {
			return op{}, fmt.Errorf("dump takes no arguments")
		}
		return op{kind: opDump}, nil
	}
	return op{}, fmt.Errorf("unknown command %q", verb)
}

func parseKeyOnly(kind opKind, verb, rest string) (op, error) {
	key, extra := cutToken(rest)
	if key == "" || extra != "" {
		return op{}, fmt.Errorf("%s needs exactly one key", verb)
	}
	k, err := unquote(key)
	if err != nil {
		return op{}, err
	}
	return op{kind: kind, key: k}, nil
}

// cutToken splits s at the first run of whitespace.
func cutToken(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func unquote(tok string) (string, error) {
	if !strings.HasPrefix(tok, `"`) {
		return tok, nil
	}
	s, err := strconv.Unquote(tok)
	if err != nil {
		return "", fmt.Errorf("invalid quoted key %s: %w", tok, err)
	}
	return s, nil
}

// execute applies ops to tbl in order and writes query results to w.
func execute(w io.Writer, tbl *dhash.Table, ops []op, log *slog.Logger) error {
	bw := bufio.NewWriter(w)

	for _, o := range ops {
		switch o.kind {
		case opInsert:
			tbl.Insert(o.key, o.value)
			log.Debug("insert", "line", o.line, "key", o.key, "count", tbl.Len())

		case opSearch:
			if v, ok := tbl.Search(o.key); ok {
				fmt.Fprintln(bw, v)
			} else {
				fmt.Fprintln(bw, "(not found)")
			}

		case opDelete:
			tbl.Delete(o.key)
			log.Debug("delete", "line", o.line, "key", o.key, "count", tbl.Len())

		case opStats:
			st := tbl.Stats()
			fmt.Fprintf(bw, "count=%d size=%d base_size=%d tombstones=%d load=%d%% grows=%d shrinks=%d\n",
				st.Count, st.Size, st.BaseSize, st.Tombstones, st.LoadPercent, st.Grows, st.Shrinks)

		case opDump:
			keys := tbl.Keys()
			sort.Strings(keys)
			for _, k := range keys {
				v, _ := tbl.Search(k)
				fmt.Fprintf(bw, "%s=%s\n", strconv.Quote(k), v)
			}
		}
	}

	return bw.Flush()
}
