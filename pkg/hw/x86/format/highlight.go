// Package format renders register metadata for disassembly output: syntax highlighting
// of register tokens, register tables and catalog exports.
package format

import (
	"regexp"
	"strings"

	"github.com/Manu343726/x86regs/pkg/hw/x86/registers"
	"github.com/fatih/color"
)

type TokenKind uint

const (
	TokenKind_Mnemonic TokenKind = iota
	TokenKind_Register
	TokenKind_Number
	TokenKind_Punctuation
	TokenKind_Comment
)

func (k TokenKind) String() string {
	switch k {
	case TokenKind_Mnemonic:
		return "Mnemonic"
	case TokenKind_Register:
		return "Register"
	case TokenKind_Number:
		return "Number"
	case TokenKind_Punctuation:
		return "Punctuation"
	case TokenKind_Comment:
		return "Comment"
	}

	panic("unreachable")
}

// A highlighted piece of an assembly line. Text outside tokens is left as is
type Token struct {
	Text  string
	Kind  TokenKind
	Start int
	End   int

	// Set for TokenKind_Register tokens
	Register registers.Register
}

var (
	mnemonicColor    = color.New(color.FgYellow, color.Bold)
	numberColor      = color.New(color.FgCyan)
	punctuationColor = color.New(color.FgWhite)
	commentColor     = color.New(color.FgHiBlack)

	// Registers are colored by class family
	gprColor     = color.New(color.FgGreen)
	vectorColor  = color.New(color.FgMagenta)
	systemColor  = color.New(color.FgRed)
	specialColor = color.New(color.FgBlue)
)

var (
	commentPattern     = regexp.MustCompile(`[;#].*$`)
	identifierPattern  = regexp.MustCompile(`\b[a-zA-Z_][a-zA-Z0-9_]*\b`)
	numberPattern      = regexp.MustCompile(`\b(?:0[xX][0-9a-fA-F]+|[0-9][0-9a-fA-F]*[hH]|[0-9]+)\b`)
	punctuationPattern = regexp.MustCompile(`[\[\]\(\),:+\-*]`)
)

// Returns the color used to print a register
func RegisterColor(reg registers.Register) *color.Color {
	switch {
	case registers.IsGPR(reg):
		return gprColor
	case registers.IsVector(reg):
		return vectorColor
	case registers.SystemMetaClass.Contains(reg):
		return systemColor
	}

	return specialColor
}

// Splits an assembly line (Intel syntax) into highlightable tokens, ordered by position.
// The first identifier of the line is the mnemonic, any other identifier naming a
// register is a register token
func Tokenize(line string) []Token {
	var tokens []Token

	for _, match := range commentPattern.FindAllStringIndex(line, -1) {
		tokens = append(tokens, Token{Text: line[match[0]:match[1]], Kind: TokenKind_Comment, Start: match[0], End: match[1]})
	}

	mnemonicFound := false

	for _, match := range identifierPattern.FindAllStringIndex(line, -1) {
		if overlapsAny(match[0], match[1], tokens) {
			continue
		}

		text := line[match[0]:match[1]]

		if !mnemonicFound {
			mnemonicFound = true
			tokens = append(tokens, Token{Text: text, Kind: TokenKind_Mnemonic, Start: match[0], End: match[1]})
		} else if reg, err := registers.RegisterByName(text); err == nil {
			tokens = append(tokens, Token{Text: text, Kind: TokenKind_Register, Start: match[0], End: match[1], Register: reg})
		}
	}

	for _, match := range numberPattern.FindAllStringIndex(line, -1) {
		if !overlapsAny(match[0], match[1], tokens) {
			tokens = append(tokens, Token{Text: line[match[0]:match[1]], Kind: TokenKind_Number, Start: match[0], End: match[1]})
		}
	}

	for _, match := range punctuationPattern.FindAllStringIndex(line, -1) {
		if !overlapsAny(match[0], match[1], tokens) {
			tokens = append(tokens, Token{Text: line[match[0]:match[1]], Kind: TokenKind_Punctuation, Start: match[0], End: match[1]})
		}
	}

	sortTokens(tokens)
	return tokens
}

// Applies syntax highlighting to an assembly line and returns the colored string
func HighlightAssembly(line string) string {
	tokens := Tokenize(line)

	if len(tokens) == 0 {
		return line
	}

	var result strings.Builder
	pos := 0

	for _, t := range tokens {
		if t.Start > pos {
			result.WriteString(line[pos:t.Start])
		}

		result.WriteString(tokenColor(t).Sprint(t.Text))
		pos = t.End
	}

	if pos < len(line) {
		result.WriteString(line[pos:])
	}

	return result.String()
}

func tokenColor(t Token) *color.Color {
	switch t.Kind {
	case TokenKind_Mnemonic:
		return mnemonicColor
	case TokenKind_Register:
		return RegisterColor(t.Register)
	case TokenKind_Number:
		return numberColor
	case TokenKind_Comment:
		return commentColor
	}

	return punctuationColor
}

func overlapsAny(start, end int, tokens []Token) bool {
	for _, t := range tokens {
		if start < t.End && end > t.Start {
			return true
		}
	}
	return false
}

// Insertion sort by start position, lines have a handful of tokens
func sortTokens(tokens []Token) {
	for i := 1; i < len(tokens); i++ {
		key := tokens[i]
		j := i - 1
		for j >= 0 && tokens[j].Start > key.Start {
			tokens[j+1] = tokens[j]
			j--
		}
		tokens[j+1] = key
	}
}
