package diagfmt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"dgrok/internal/codebase"
	"dgrok/internal/diag"
)

const tabWidth = 4

type palette struct {
	path, severity, code, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:     color.New(color.Bold),
		severity: color.New(color.FgRed, color.Bold),
		code:     color.New(color.FgCyan),
		gutter:   color.New(color.FgBlue),
		caret:    color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.path, p.severity, p.code, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует ошибку файла в человекочитаемый вид:
//
//	<path>:<line>:<col>: ERROR <CODE>: <Message>
//
// затем, если включён Context, строку исходника и каретку под колонкой.
// Ошибки без позиции печатаются с именем файла fileName.
func Pretty(w io.Writer, fileName string, err error, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	var de *diag.Error
	if !errors.As(err, &de) || !de.Loc.IsValid() {
		_, werr := fmt.Fprintf(w, "%s: %s: %s\n",
			pal.path.Sprint(formatPath(fileName, opts.PathMode, opts.BaseDir)),
			pal.severity.Sprint("ERROR"),
			err.Error())
		return werr
	}

	lc := de.Loc.LineCol()
	if _, werr := fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.path.Sprintf("%s:%d:%d", formatPath(de.Loc.FileName(), opts.PathMode, opts.BaseDir), lc.Line, lc.Col),
		pal.severity.Sprint("ERROR"),
		pal.code.Sprint(de.Code.ID()),
		de.Msg); werr != nil {
		return werr
	}
	if !opts.Context {
		return nil
	}

	line := de.Loc.File.Line(lc.Line)
	num := fmt.Sprintf("%d", lc.Line)
	pad := strings.Repeat(" ", len(num))
	prefix := line
	if int(lc.Col-1) <= len(line) {
		prefix = line[:lc.Col-1]
	}
	caretCol := runewidth.StringWidth(expandTabs(prefix))
	_, werr := fmt.Fprintf(w, "%s %s\n%s %s%s\n",
		pal.gutter.Sprintf("%s |", num), expandTabs(line),
		pal.gutter.Sprintf("%s |", pad), strings.Repeat(" ", caretCol), pal.caret.Sprint("^"))
	return werr
}

// PrettyAll prints every cataloged error, in catalog order.
func PrettyAll(w io.Writer, errs []codebase.NamedContent[error], opts PrettyOpts) error {
	for _, e := range errs {
		if err := Pretty(w, e.FileName, e.Content, opts); err != nil {
			return err
		}
	}
	return nil
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
