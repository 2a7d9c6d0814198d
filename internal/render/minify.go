package render

import (
	"bytes"
	"fmt"

	"github.com/tdewolff/minify"
	"github.com/tdewolff/minify/css"
	"github.com/tdewolff/minify/html"
	"github.com/tdewolff/minify/svg"
)

var minifier = func() (m *minify.M) {
	m = minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)
	return
}()

func minifyHTML(src []byte) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(len(src))
	if err := minifier.Minify("text/html", &out, bytes.NewReader(src)); err != nil {
		return nil, fmt.Errorf("failed to minify html: %w", err)
	}
	return out.Bytes(), nil
}
