// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bufio"
	"bytes"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
)

// Formats are the supported image file formats, by extension.
var Formats = map[string]chart.RendererProvider{
	"png": chart.PNG,
	"svg": chart.SVG,
}

// RendererFor returns the renderer provider for the given
// format or file extension, such as "png" or ".svg".
func RendererFor(format string) (chart.RendererProvider, error) {
	f := strings.ToLower(strings.TrimPrefix(format, "."))
	rp, ok := Formats[f]
	if !ok {
		return nil, fmt.Errorf("plot: unsupported image format %q", format)
	}
	return rp, nil
}

// Render draws the plot into a new renderer for the given format
// ("png" or "svg") and writes the encoded image to w.
func (pt *Plot) Render(w io.Writer, format string) error {
	rp, err := RendererFor(format)
	if err != nil {
		return err
	}
	pc, err := rp(pt.Size.X, pt.Size.Y)
	if err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimPrefix(format, "."), "svg") {
		pc = svgRenderer{pc}
	}
	if err := pt.Draw(pc); err != nil {
		return err
	}
	return pc.Save(w)
}

// svgRenderer escapes text for the SVG renderer, which writes
// text content into the document verbatim.
type svgRenderer struct {
	chart.Renderer
}

func (sr svgRenderer) Text(body string, x, y int) {
	sr.Renderer.Text(html.EscapeString(body), x, y)
}

// Save renders the plot in the format given by the file extension
// and saves it to the file. The image is fully rendered before the file
// is created, and a partially written file is removed.
func (pt *Plot) Save(filename string) error {
	var b bytes.Buffer
	if err := pt.Render(&b, filepath.Ext(filename)); err != nil {
		return err
	}
	return writeFile(filename, b.Bytes())
}

func writeFile(filename string, data []byte) (err error) {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(filename)
		}
	}()
	bw := bufio.NewWriter(fp)
	if _, err = bw.Write(data); err != nil {
		return err
	}
	return bw.Flush()
}
