// Package resx reads and writes .resx resource string files, the host
// format whose untranslated entries feed translation sessions.
package resx

import (
	"encoding/xml"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Entry is one named resource string.
type Entry struct {
	Name    string
	Value   string
	Comment string
}

// Document is the ordered entry set of one .resx file.
type Document struct {
	Entries []Entry
}

type resxRoot struct {
	XMLName xml.Name   `xml:"root"`
	Data    []resxData `xml:"data"`
}

type resxData struct {
	Name    string `xml:"name,attr"`
	Value   string `xml:"value"`
	Comment string `xml:"comment"`
}

func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resx file: %w", err)
	}
	doc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

func Parse(raw []byte) (*Document, error) {
	var root resxRoot
	if err := xml.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("decode resx XML: %w", err)
	}

	doc := &Document{Entries: make([]Entry, 0, len(root.Data))}
	for _, data := range root.Data {
		name := strings.TrimSpace(data.Name)
		if name == "" {
			continue
		}
		doc.Entries = append(doc.Entries, Entry{
			Name:    name,
			Value:   data.Value,
			Comment: data.Comment,
		})
	}
	return doc, nil
}

// Get returns the entry with the given name.
func (d *Document) Get(name string) (Entry, bool) {
	if d == nil {
		return Entry{}, false
	}
	for _, entry := range d.Entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return Entry{}, false
}

// Set updates the named entry's value in place, appending a new entry when
// the name is not present yet.
func (d *Document) Set(name, value string) {
	if d == nil {
		return
	}
	for i := range d.Entries {
		if d.Entries[i].Name == name {
			d.Entries[i].Value = value
			return
		}
	}
	d.Entries = append(d.Entries, Entry{Name: name, Value: value})
}

// MissingIn lists the entries of d that have no non-empty value in target,
// preserving document order. These are the strings still needing
// translation.
func (d *Document) MissingIn(target *Document) []Entry {
	if d == nil {
		return nil
	}
	missing := make([]Entry, 0, len(d.Entries))
	for _, entry := range d.Entries {
		if strings.TrimSpace(entry.Value) == "" {
			continue
		}
		if target != nil {
			if existing, ok := target.Get(entry.Name); ok && strings.TrimSpace(existing.Value) != "" {
				continue
			}
		}
		missing = append(missing, entry)
	}
	return missing
}

func (d *Document) Save(path string) error {
	if d == nil {
		return fmt.Errorf("document is nil")
	}
	encoded, err := d.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("write resx file: %w", err)
	}
	return nil
}

// Encode renders the document as .resx XML. The writer is hand-rolled so the
// output carries the conventional resx header and xml:space attribute, which
// encoding/xml cannot emit portably.
func (d *Document) Encode() ([]byte, error) {
	var out strings.Builder
	out.WriteString(xml.Header)
	out.WriteString("<root>\n")
	out.WriteString("  <resheader name=\"resmimetype\">\n    <value>text/microsoft-resx</value>\n  </resheader>\n")
	out.WriteString("  <resheader name=\"version\">\n    <value>2.0</value>\n  </resheader>\n")
	for _, entry := range d.Entries {
		name, err := escapeXML(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("encode entry name %q: %w", entry.Name, err)
		}
		value, err := escapeXML(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("encode entry %q: %w", entry.Name, err)
		}
		out.WriteString("  <data name=\"" + name + "\" xml:space=\"preserve\">\n")
		out.WriteString("    <value>" + value + "</value>\n")
		if strings.TrimSpace(entry.Comment) != "" {
			comment, err := escapeXML(entry.Comment)
			if err != nil {
				return nil, fmt.Errorf("encode comment of %q: %w", entry.Name, err)
			}
			out.WriteString("    <comment>" + comment + "</comment>\n")
		}
		out.WriteString("  </data>\n")
	}
	out.WriteString("</root>\n")
	return []byte(out.String()), nil
}

// SortByName orders entries alphabetically, the layout resource editors
// conventionally produce.
func (d *Document) SortByName() {
	if d == nil {
		return
	}
	sort.SliceStable(d.Entries, func(i, j int) bool {
		return d.Entries[i].Name < d.Entries[j].Name
	})
}

func escapeXML(value string) (string, error) {
	var escaped strings.Builder
	if err := xml.EscapeText(&escaped, []byte(value)); err != nil {
		return "", err
	}
	return escaped.String(), nil
}
