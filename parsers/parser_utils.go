package parsers

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SkipBOM drops a leading UTF-8 byte order mark, as written by spreadsheet exports.
func SkipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	peeked, err := br.Peek(len(utf8BOM))
	if err == nil && bytes.Equal(peeked, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return br
}

// getColIndex maps header names to column indexes and checks required ones.
func getColIndex(header []string, required []string) (map[string]int, error) {
	colIndex := make(map[string]int)
	for i, colName := range header {
		colIndex[strings.ToLower(strings.TrimSpace(colName))] = i
	}
	for _, req := range required {
		if _, ok := colIndex[req]; !ok {
			return nil, fmt.Errorf("required header not found: %s", req)
		}
	}
	return colIndex, nil
}

func fieldGetter(colIndex map[string]int, rec []string) func(string) string {
	return func(key string) string {
		if idx, ok := colIndex[key]; ok && idx < len(rec) {
			return strings.TrimSpace(rec[idx])
		}
		return ""
	}
}
