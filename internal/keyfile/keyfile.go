// Package keyfile implements the sectioned key/value document that backs a
// deployment origin.
//
// Comment and blank lines are kept verbatim and written back where they were
// found, so parse then serialize reproduces the input for any well-formed
// document. Values use the keyfile escapes \s \t \n \r and \\; string lists
// use the "a;b;c;" convention and additionally escape ';' as \;.
package keyfile

import (
	"bytes"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/ini.v1"
)

const listSeparator = ';'

// Lines are scanned here, so the options only affect lookups. Section names
// never span lines, which keeps a missing key in "a.b" from resolving to "a".
var loadOptions = ini.LoadOptions{
	ChildSectionDelimiter: "\n",
}

// Document is a parsed keyfile. The zero value is not usable; use New or Parse.
//
// The ini.File holds sections and keys in file order. Section.Comment and
// Key.Comment hold the raw lines (each ending in "\n") that precede the
// header or key; trailing holds the lines after the last key.
type Document struct {
	f        *ini.File
	trailing string
}

// New returns an empty document.
func New() *Document {
	return &Document{f: ini.Empty(loadOptions)}
}

// Parse reads a document from its text form. Every non-comment line must be
// a [section] header or a key=value pair inside a section.
func Parse(data []byte) (*Document, error) {
	d := New()

	text := string(data)
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return d, nil
	}

	var (
		sec     *ini.Section
		pending strings.Builder
	)
	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "" || trimmed[0] == '#' || trimmed[0] == ';':
			pending.WriteString(line)
			pending.WriteByte('\n')

		case trimmed[0] == '[':
			if len(trimmed) < 3 || trimmed[len(trimmed)-1] != ']' {
				return nil, lineError("invalid section header", i, line)
			}
			var err error
			if sec, err = d.f.NewSection(trimmed[1 : len(trimmed)-1]); err != nil {
				return nil, lineError("invalid section header", i, line)
			}
			sec.Comment += pending.String()
			pending.Reset()

		default:
			if sec == nil {
				return nil, lineError("key outside of any section", i, line)
			}
			name, value, ok := strings.Cut(trimmed, "=")
			name = strings.TrimSpace(name)
			if !ok || name == "" {
				return nil, lineError("not a key=value pair, section or comment", i, line)
			}
			k, err := sec.NewKey(name, strings.TrimSpace(value))
			if err != nil {
				return nil, lineError("invalid key", i, line)
			}
			k.Comment += pending.String()
			pending.Reset()
		}
	}
	d.trailing = pending.String()

	return d, nil
}

func lineError(msg string, index int, line string) error {
	return zerr.With(zerr.With(zerr.Wrap(zerr.New(msg), "failed to parse keyfile"), "line", index+1), "text", line)
}

// Bytes serializes the document.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	for _, sec := range d.f.Sections() {
		if sec.Name() == ini.DefaultSection && len(sec.Keys()) == 0 {
			continue
		}
		buf.WriteString(sec.Comment)
		buf.WriteByte('[')
		buf.WriteString(sec.Name())
		buf.WriteString("]\n")
		for _, k := range sec.Keys() {
			buf.WriteString(k.Comment)
			buf.WriteString(k.Name())
			buf.WriteByte('=')
			buf.WriteString(k.Value())
			buf.WriteByte('\n')
		}
	}
	buf.WriteString(d.trailing)
	return buf.Bytes(), nil
}

// Dup returns a deep copy that shares no state with d.
func (d *Document) Dup() *Document {
	data, err := d.Bytes()
	if err != nil {
		panic(err)
	}
	dup, err := Parse(data)
	if err != nil {
		// Anything we serialized must parse back.
		panic(err)
	}
	return dup
}

// HasKey reports whether section contains key.
func (d *Document) HasKey(section, key string) bool {
	return d.key(section, key) != nil
}

// Value returns the raw, still escaped value of key.
func (d *Document) Value(section, key string) (string, bool) {
	k := d.key(section, key)
	if k == nil {
		return "", false
	}
	return k.Value(), true
}

// String returns the unescaped value of key, and whether it was present.
// Escapes other than \s \t \n \r and \\ are returned as written.
func (d *Document) String(section, key string) (string, bool) {
	raw, ok := d.Value(section, key)
	if !ok {
		return "", false
	}
	return unescape(raw, false), true
}

// SetString writes value under section/key, creating either as needed.
// An existing key keeps its position and comment.
func (d *Document) SetString(section, key, value string) {
	d.setValue(section, key, escape(value, false))
}

// Strings returns the string list stored under section/key. Empty items are
// skipped.
func (d *Document) Strings(section, key string) ([]string, bool) {
	raw, ok := d.Value(section, key)
	if !ok {
		return nil, false
	}

	var (
		vals []string
		item strings.Builder
	)
	flush := func() {
		if item.Len() > 0 {
			vals = append(vals, unescape(item.String(), true))
		}
		item.Reset()
	}
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			item.WriteByte('\\')
			if i+1 < len(raw) {
				i++
				item.WriteByte(raw[i])
			}
		case listSeparator:
			flush()
		default:
			item.WriteByte(raw[i])
		}
	}
	flush()
	return vals, true
}

// SetStrings writes vals as a list under section/key.
func (d *Document) SetStrings(section, key string, vals []string) {
	var b strings.Builder
	for _, v := range vals {
		b.WriteString(escape(v, true))
		b.WriteByte(listSeparator)
	}
	d.setValue(section, key, b.String())
}

// Bool returns the boolean stored under section/key. Missing keys and values
// that are not booleans read as false.
func (d *Document) Bool(section, key string) bool {
	k := d.key(section, key)
	if k == nil {
		return false
	}
	v, err := k.Bool()
	if err != nil {
		return false
	}
	return v
}

// SetBool writes a boolean under section/key.
func (d *Document) SetBool(section, key string, value bool) {
	d.setValue(section, key, strconv.FormatBool(value))
}

// RemoveKey deletes section/key. It is a no-op when the key does not exist.
func (d *Document) RemoveKey(section, key string) {
	sec, err := d.f.GetSection(section)
	if err != nil {
		return
	}
	sec.DeleteKey(key)
}

// RemoveSection deletes a whole section with its keys and comments.
func (d *Document) RemoveSection(section string) {
	d.f.DeleteSection(section)
}

// HasSection reports whether the document contains section.
func (d *Document) HasSection(section string) bool {
	_, err := d.f.GetSection(section)
	return err == nil
}

// Comment returns the lines attached above section/key as written in the
// file, without the final newline.
func (d *Document) Comment(section, key string) string {
	k := d.key(section, key)
	if k == nil {
		return ""
	}
	return strings.TrimSuffix(k.Comment, "\n")
}

// SetComment attaches comment to an existing key. Lines without a leading
// '#' or ';' are written as '#' comments. An empty comment removes it.
func (d *Document) SetComment(section, key, comment string) {
	k := d.key(section, key)
	if k == nil {
		return
	}
	if comment == "" {
		k.Comment = ""
		return
	}
	var b strings.Builder
	for _, line := range strings.Split(comment, "\n") {
		if !strings.HasPrefix(line, "#") && !strings.HasPrefix(line, ";") {
			b.WriteString("# ")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	k.Comment = b.String()
}

func (d *Document) setValue(section, key, raw string) {
	sec, err := d.f.GetSection(section)
	if err != nil {
		hasContent := d.hasSections()
		// NewSection only fails for an empty name.
		if sec, err = d.f.NewSection(section); err != nil {
			panic(err)
		}
		if hasContent {
			sec.Comment = "\n"
		}
	}
	if k, err := sec.GetKey(key); err == nil {
		k.SetValue(raw)
		return
	}
	// NewKey only fails for an empty key name.
	if _, err := sec.NewKey(key, raw); err != nil {
		panic(err)
	}
}

func (d *Document) hasSections() bool {
	for _, sec := range d.f.Sections() {
		if sec.Name() != ini.DefaultSection || len(sec.Keys()) > 0 {
			return true
		}
	}
	return false
}

func (d *Document) key(section, key string) *ini.Key {
	sec, err := d.f.GetSection(section)
	if err != nil {
		return nil
	}
	k, err := sec.GetKey(key)
	if err != nil {
		return nil
	}
	return k
}

// escape encodes s for storage. Leading and trailing blanks become \s or \t
// so that they survive the whitespace trimming done when parsing.
func escape(s string, list bool) string {
	start := len(s) - len(strings.TrimLeft(s, " \t"))
	end := len(strings.TrimRight(s, " \t"))
	if end < start {
		end = start
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		edge := i < start || i >= end
		switch {
		case c == ' ' && edge:
			b.WriteString(`\s`)
		case c == '\t' && edge:
			b.WriteString(`\t`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\\':
			b.WriteString(`\\`)
		case c == listSeparator && list:
			b.WriteString(`\;`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func unescape(s string, list bool) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 's':
			b.WriteByte(' ')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case listSeparator:
			if list {
				b.WriteByte(listSeparator)
			} else {
				b.WriteString(`\;`)
			}
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
