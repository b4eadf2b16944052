package xml

import (
	"bufio"
	stdxml "encoding/xml"
	"fmt"
	"io"
)

// Writer streams namespaced XML elements. Every element is written with the
// configured prefix, and any element opened at depth zero also declares the
// prefix binding, so single entities and whole extension fragments are both
// self-describing.
//
// Like Parser, the first error sticks: later calls become no-ops and Flush
// reports it.
type Writer struct {
	w      *bufio.Writer
	prefix string
	ns     string

	stack []string
	open  bool
	err   error
}

func NewWriter(w io.Writer, prefix, namespace string) *Writer {
	return &Writer{w: bufio.NewWriter(w), prefix: prefix, ns: namespace}
}

func (self *Writer) Err() error { return self.err }

// Start opens an element with the given local name under the writer's
// namespace prefix. Attributes may be added until the next Start, Text or
// End call.
func (self *Writer) Start(local string) {
	if self.err != nil {
		return
	}
	self.closeStart()

	name := self.prefix + ":" + local
	self.w.WriteByte('<')
	self.w.WriteString(name)
	if len(self.stack) == 0 {
		self.w.WriteString(" xmlns:")
		self.w.WriteString(self.prefix)
		self.w.WriteString(`="`)
		self.escape(self.ns)
		self.w.WriteByte('"')
	}

	self.stack = append(self.stack, name)
	self.open = true
}

// Attr writes an attribute on the element opened by the preceding Start.
// Calling it anywhere else is a programming error.
func (self *Writer) Attr(name, value string) {
	if self.err != nil {
		return
	} else if !self.open {
		self.err = fmt.Errorf(
			"mediarss/internal/xml: attribute %q outside of a start tag", name)
		return
	}

	self.w.WriteByte(' ')
	self.w.WriteString(name)
	self.w.WriteString(`="`)
	self.escape(value)
	self.w.WriteByte('"')
}

// Text writes escaped character data inside the current element.
func (self *Writer) Text(s string) {
	if self.err != nil {
		return
	}
	self.closeStart()
	self.escape(s)
}

// End closes the current element, self-closing it when nothing was written
// inside.
func (self *Writer) End() {
	if self.err != nil {
		return
	} else if len(self.stack) == 0 {
		self.err = fmt.Errorf("mediarss/internal/xml: end tag without start")
		return
	}

	name := self.stack[len(self.stack)-1]
	self.stack = self.stack[:len(self.stack)-1]

	if self.open {
		self.open = false
		self.w.WriteString("/>")
		return
	}

	self.w.WriteString("</")
	self.w.WriteString(name)
	self.w.WriteByte('>')
}

// Flush writes out buffered output and returns the first error encountered
// by any preceding call.
func (self *Writer) Flush() error {
	if self.err != nil {
		return self.err
	} else if len(self.stack) != 0 {
		return fmt.Errorf("mediarss/internal/xml: unclosed element %q",
			self.stack[len(self.stack)-1])
	}

	if err := self.w.Flush(); err != nil {
		return fmt.Errorf("mediarss/internal/xml: flush: %w", err)
	}
	return nil
}

func (self *Writer) closeStart() {
	if self.open {
		self.open = false
		self.w.WriteByte('>')
	}
}

func (self *Writer) escape(s string) {
	if err := stdxml.EscapeText(self.w, []byte(s)); err != nil {
		self.err = fmt.Errorf("mediarss/internal/xml: escape text: %w", err)
	}
}
