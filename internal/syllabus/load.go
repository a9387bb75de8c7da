package syllabus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Parse reads a syllabus document. Every TOML table is a section and every
// string key inside it a topic; tables and keys keep their declaration
// order.
func Parse(name string, data []byte) (Source, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Source{}, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}

	src := Source{Name: name}
	index := make(map[string]int)
	for _, key := range md.Keys() {
		switch len(key) {
		case 1:
			if typ := md.Type(key...); typ != "Hash" {
				return Source{}, fmt.Errorf("%w: top-level %s %q outside a section", ErrMalformedSource, strings.ToLower(typ), key[0])
			}
			index[key[0]] = len(src.Sections)
			src.Sections = append(src.Sections, Section{Name: key[0]})
		case 2:
			table, _ := raw[key[0]].(map[string]any)
			val, ok := table[key[1]].(string)
			if !ok {
				return Source{}, fmt.Errorf("%w: %s.%s must be a string, got %s", ErrMalformedSource, key[0], key[1], md.Type(key...))
			}
			i, ok := index[key[0]]
			if !ok {
				return Source{}, fmt.Errorf("%w: %s.%s has no section", ErrMalformedSource, key[0], key[1])
			}
			src.Sections[i].Topics = append(src.Sections[i].Topics, Topic{
				Key:      key[1],
				SubItems: splitSubItems(val),
			})
		default:
			return Source{}, fmt.Errorf("%w: nested key %s", ErrMalformedSource, key.String())
		}
	}
	return src, nil
}

// LoadFile reads and parses one syllabus file. The source is named after
// the file's base name.
func LoadFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("read syllabus: %w", err)
	}
	src, err := Parse(filepath.Base(path), data)
	if err != nil {
		return Source{}, err
	}
	src.Path = path
	return src, nil
}

// LoadResult holds the sources of a directory that loaded and the ones
// that did not.
type LoadResult struct {
	Sources []Source
	Failed  []*SourceError
}

// LoadDir loads every regular file in dir whose name ends in suffix, in
// name order. A file that fails to load is recorded in Failed and does not
// stop the others. The returned error is non-nil only if dir itself cannot
// be read.
func LoadDir(dir, suffix string) (*LoadResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read syllabus dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	res := &LoadResult{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		src, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			res.Failed = append(res.Failed, &SourceError{Name: e.Name(), Err: err})
			continue
		}
		res.Sources = append(res.Sources, src)
	}
	return res, nil
}
