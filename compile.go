package wbb

import (
	"bytes"
	"io"
)

// Compile reads .wbb document and writes HTML for it. Nothing is written to w unless the
// whole document is parsed successfully.
func Compile(r io.ByteScanner, w io.Writer) error {
	page, err := Parse(r)
	if err != nil {
		return err
	}

	buffer := bytes.NewBuffer(nil)
	if err := Render(buffer, page); err != nil {
		return err
	}

	_, err = buffer.WriteTo(w)
	return err
}
