package diagfmt

import (
	"encoding/json"
	"errors"
	"io"

	"dgrok/internal/codebase"
	"dgrok/internal/diag"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File   string `json:"file"`
	Offset uint32 `json:"offset"`
	Line   uint32 `json:"line,omitempty"`
	Col    uint32 `json:"col,omitempty"`
}

// ErrorJSON представляет ошибку файла в JSON формате
type ErrorJSON struct {
	File     string        `json:"file"`
	Code     string        `json:"code"`
	Category string        `json:"category"`
	Message  string        `json:"message"`
	Location *LocationJSON `json:"location,omitempty"`
}

// ErrorsOutput представляет корневую структуру JSON вывода
type ErrorsOutput struct {
	Errors []ErrorJSON `json:"errors"`
	Count  int         `json:"count"`
}

// BuildErrorsOutput формирует структуру JSON-вывода без сериализации.
// Count всегда равен полному числу ошибок, даже при обрезке по Max.
func BuildErrorsOutput(errs []codebase.NamedContent[error], opts JSONOpts) ErrorsOutput {
	n := len(errs)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}
	out := ErrorsOutput{Errors: make([]ErrorJSON, 0, n), Count: len(errs)}
	for _, e := range errs[:n] {
		item := ErrorJSON{
			File:     formatPath(e.FileName, opts.PathMode, opts.BaseDir),
			Message:  e.Content.Error(),
			Code:     diag.UnknownCode.ID(),
			Category: diag.CategoryUnknown.String(),
		}
		var de *diag.Error
		if errors.As(e.Content, &de) {
			item.Code = de.Code.ID()
			item.Category = de.Code.Category().String()
			item.Message = de.Msg
			if de.Loc.IsValid() {
				loc := &LocationJSON{
					File:   formatPath(de.Loc.FileName(), opts.PathMode, opts.BaseDir),
					Offset: de.Loc.Offset,
				}
				if opts.IncludePositions {
					lc := de.Loc.LineCol()
					loc.Line, loc.Col = lc.Line, lc.Col
				}
				item.Location = loc
			}
		}
		out.Errors = append(out.Errors, item)
	}
	return out
}

// JSON пишет ошибки в JSON формате.
func JSON(w io.Writer, errs []codebase.NamedContent[error], opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildErrorsOutput(errs, opts))
}
