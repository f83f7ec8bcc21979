package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store keeps the content types and layouts parsed from schema documents. It
// is safe for concurrent readers once LoadFS returns.
type Store struct {
	contentTypes map[string]ContentType
	layouts      map[string]Layout
	sources      map[string]string
}

// NewStore builds a store from already decoded content types. Layouts are
// optional and keyed by UID.
func NewStore(contentTypes []ContentType, layouts map[string]Layout) (*Store, error) {
	store := newStore()
	for _, ct := range contentTypes {
		if err := store.add(ct, layouts[ct.UID], "memory"); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func newStore() *Store {
	return &Store{
		contentTypes: make(map[string]ContentType),
		layouts:      make(map[string]Layout),
		sources:      make(map[string]string),
	}
}

type documentFile struct {
	ContentTypes map[string]contentTypeFile `json:"contentTypes" yaml:"contentTypes"`
}

type contentTypeFile struct {
	ContentType `json:",inline" yaml:",inline"`
	Layout      Layout `json:"layout" yaml:"layout"`
}

// LoadFS walks fsys and parses every JSON/YAML schema document it finds.
// A nil fsys yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for key, raw := range doc.ContentTypes {
			uid := strings.TrimSpace(key)
			if uid == "" {
				return fmt.Errorf("schema: file %s defines an empty content type uid", path)
			}
			ct := raw.ContentType
			ct.UID = uid
			if err := store.add(ct, raw.Layout, path); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) add(ct ContentType, layout Layout, source string) error {
	if strings.TrimSpace(ct.UID) == "" {
		return fmt.Errorf("schema: content type uid is required (source %s)", source)
	}
	if prev, exists := s.sources[ct.UID]; exists {
		return fmt.Errorf("schema: duplicate content type %q (%s and %s)", ct.UID, prev, source)
	}
	for idx, name := range ct.EditDisplay.Fields {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("schema: content type %q has an empty field name at index %d", ct.UID, idx)
		}
	}
	s.contentTypes[ct.UID] = ct
	s.layouts[ct.UID] = layout
	s.sources[ct.UID] = source
	return nil
}

// ContentType returns the content type registered under uid.
func (s *Store) ContentType(uid string) (ContentType, bool) {
	if s == nil {
		return ContentType{}, false
	}
	ct, ok := s.contentTypes[uid]
	return ct, ok
}

// Layout returns the layout registered for uid. Content types without a
// layout resolve to the zero Layout.
func (s *Store) Layout(uid string) Layout {
	if s == nil {
		return Layout{}
	}
	return s.layouts[uid]
}

// UIDs returns the sorted content type identifiers.
func (s *Store) UIDs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.contentTypes))
	for uid := range s.contentTypes {
		out = append(out, uid)
	}
	sort.Strings(out)
	return out
}

// Empty reports whether the store holds no content types.
func (s *Store) Empty() bool {
	return s == nil || len(s.contentTypes) == 0
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("schema: file %s is empty", source)
	}
	jsonErr := json.Unmarshal(data, &doc)
	if jsonErr == nil {
		return doc, nil
	}
	doc = documentFile{}
	yamlErr := yaml.Unmarshal(data, &doc)
	if yamlErr == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("schema: parse %s: json: %v: %w", source, jsonErr, yamlErr)
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
