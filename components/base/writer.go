package base

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Attr is one element attribute. A Flag attribute renders without a value.
type Attr struct {
	Key   string
	Value string
	Flag  bool
}

func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

func Flag(key string) Attr {
	return Attr{Key: key, Flag: true}
}

// Writer accumulates the first write error so markup can be emitted without
// checking every call.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Str writes s verbatim.
func (w *Writer) Str(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Text writes s HTML-escaped.
func (w *Writer) Text(s string) {
	w.Str(templ.EscapeString(s))
}

// Open writes a start tag. Attribute values are escaped.
func (w *Writer) Open(tag string, attrs ...Attr) {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		if a.Flag {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	w.Str(b.String())
}

// Close writes end tags in the given order.
func (w *Writer) Close(tags ...string) {
	for _, tag := range tags {
		w.Str("</" + tag + ">")
	}
}

// Element writes a start tag, escaped text and the matching end tag.
func (w *Writer) Element(tag, text string, attrs ...Attr) {
	w.Open(tag, attrs...)
	w.Text(text)
	w.Close(tag)
}

func (w *Writer) Render(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

func (w *Writer) Err() error {
	return w.err
}
