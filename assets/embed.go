// Package assets bundles the default word lists.
//
// Each file under wordlist/ holds one dictionary key; the key is the file
// name without ".txt" and with "-" read as "/" (english-35.txt -> "english/35").
// Stored case is preserved: proper nouns keep their capitals.
package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed wordlist/*.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// WordLists returns every embedded list keyed by dictionary key.
func WordLists() (map[string][]string, error) {
	names, err := fs.Glob(FS, "wordlist/*.txt")
	if err != nil {
		return nil, err
	}
	lists := make(map[string][]string, len(names))
	for _, name := range names {
		words, err := readLines(name)
		if err != nil {
			return nil, err
		}
		lists[KeyForFile(name)] = words
	}
	return lists, nil
}

// KeyForFile maps "wordlist/english-british.txt" to "english/british".
func KeyForFile(name string) string {
	base := strings.TrimSuffix(path.Base(name), ".txt")
	return strings.ReplaceAll(base, "-", "/")
}
