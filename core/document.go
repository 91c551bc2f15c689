package core

import (
	"fmt"
	"unicode/utf8"
)

// Document is the text being edited, its language and a version that
// increases on every mutation. The version is the only staleness signal for
// anything derived from the document.
type Document struct {
	text     string
	language string
	version  uint64
}

// NewDocument creates a document at version 0.
func NewDocument(text, language string) *Document {
	return &Document{text: text, language: language}
}

func (d *Document) Text() string {
	return d.text
}

func (d *Document) Language() string {
	return d.language
}

func (d *Document) Version() uint64 {
	return d.version
}

func (d *Document) IsEmpty() bool {
	return d.text == ""
}

// SetText replaces the whole text. It always counts as a mutation.
func (d *Document) SetText(text string) {
	d.text = text
	d.bump()
}

// SetLanguage changes the language id and reports whether it changed.
func (d *Document) SetLanguage(language string) bool {
	if language == d.language {
		return false
	}
	d.language = language
	d.bump()
	return true
}

// Replace swaps text and language as one mutation and reports whether
// anything changed. Replacing with identical content is not a mutation.
func (d *Document) Replace(text, language string) bool {
	if text == d.text && language == d.language {
		return false
	}
	d.text = text
	d.language = language
	d.bump()
	return true
}

// Insert puts s before the rune at offset. Inserting nothing is not a mutation.
func (d *Document) Insert(offset int, s string) error {
	at, err := d.byteOffset(offset)
	if err != nil {
		return fmt.Errorf("Insert: %w", err)
	}
	if s == "" {
		return nil
	}

	d.text = d.text[:at] + s + d.text[at:]
	d.bump()
	return nil
}

// Delete removes count runes starting at offset.
func (d *Document) Delete(offset, count int) error {
	if count < 0 {
		return fmt.Errorf("Delete: %w: negative count %d", ErrInvalidPosition, count)
	}
	start, err := d.byteOffset(offset)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	end, err := d.byteOffset(offset + count)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if start == end {
		return nil
	}

	d.text = d.text[:start] + d.text[end:]
	d.bump()
	return nil
}

// Clear empties the text, keeping the language.
func (d *Document) Clear() {
	d.SetText("")
}

func (d *Document) bump() {
	d.version++
}

func (d *Document) byteOffset(runes int) (int, error) {
	if runes < 0 {
		return 0, fmt.Errorf("%w: offset %d", ErrInvalidPosition, runes)
	}
	at := 0
	for i := 0; i < runes; i++ {
		if at >= len(d.text) {
			return 0, fmt.Errorf("%w: offset %d beyond %d runes", ErrInvalidPosition, runes, utf8.RuneCountInString(d.text))
		}
		_, size := utf8.DecodeRuneInString(d.text[at:])
		at += size
	}
	return at, nil
}
