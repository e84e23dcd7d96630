package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexUnrecognizedChar      Code = 1001
	LexUnterminatedString    Code = 1002
	LexUnterminatedComment   Code = 1003
	LexUnterminatedDirective Code = 1004

	// Парсерные
	SynExpected Code = 2001

	// Директивы условной компиляции
	DirUnbalanced       Code = 3001
	DirUnknownCondition Code = 3002
	DirIncludeDepth     Code = 3003
	DirMalformed        Code = 3004

	// Ввод-вывод
	IOLoadFile Code = 4001

	// CodeBase
	CatDuplicateFileName Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown error",
	LexUnrecognizedChar:      "Unrecognized character",
	LexUnterminatedString:    "Unterminated string literal",
	LexUnterminatedComment:   "Unterminated comment",
	LexUnterminatedDirective: "Unterminated compiler directive",
	SynExpected:              "Unexpected token",
	DirUnbalanced:            "Unbalanced conditional directive",
	DirUnknownCondition:      "Cannot evaluate conditional directive",
	DirIncludeDepth:          "Include files nested too deeply",
	DirMalformed:             "Malformed compiler directive",
	IOLoadFile:               "Cannot read file",
	CatDuplicateFileName:     "Duplicate unit or project name",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("DIR%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CAT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
