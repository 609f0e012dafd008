// Package charset decodes raw legal-document bytes into UTF-8 text using
// golang.org/x/net/html/charset.
package charset

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/lawtree"
	"golang.org/x/net/html/charset"
)

// Decode converts raw document bytes into UTF-8 text. The encoding is taken
// from contentType when it names one, otherwise from a byte order mark or a
// meta tag, otherwise windows-1252 detection rules apply.
//
// Returns EUNSUPPORTED for binary documents and EINVALID if the decoded text
// is not valid UTF-8.
func Decode(raw []byte, contentType string) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	if IsBinary(raw) {
		return "", lawtree.Errorf(lawtree.EUNSUPPORTED, "no structured content")
	}

	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return "", lawtree.Errorf(lawtree.EINVALID, "unknown character encoding: %v", err)
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return "", lawtree.Errorf(lawtree.EINVALID, "failed to decode content: %v", err)
	}
	if !utf8.Valid(text) {
		return "", lawtree.Errorf(lawtree.EINVALID, "content is not valid text")
	}
	return string(text), nil
}

// IsBinary reports whether raw sniffs as a non-text format such as PDF,
// a word-processor container or an image.
func IsBinary(raw []byte) bool {
	return !strings.HasPrefix(http.DetectContentType(raw), "text/")
}
