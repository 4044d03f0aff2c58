// Package input decodes raw terminal bytes into key events and provides the
// line editor used by the rename/create prompts. Both operate on the tty in
// raw mode; reads block until the user types.
package input

import (
	"bufio"
	"unicode/utf8"
)

// KeyKind distinguishes the decoded key classes the engine reacts to.
type KeyKind uint8

const (
	KeyRune KeyKind = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyCtrlC
	KeyCtrlP
	KeyCtrlN
	KeyUnknown
)

// Key is one decoded key event; Rune is meaningful only for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

// KeyReader decodes key events from a buffered raw-mode stream.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps a buffered reader over the tty.
func NewKeyReader(r *bufio.Reader) *KeyReader {
	return &KeyReader{r: r}
}

// ReadKey blocks for the next key event. An io error (including end of
// input) is terminal for the caller.
func (k *KeyReader) ReadKey() (Key, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch b {
	case 0x1b:
		return k.parseEscapeSequence()
	case '\r', '\n':
		return Key{Kind: KeyEnter}, nil
	case 0x7f, 0x08:
		return Key{Kind: KeyBackspace}, nil
	case 0x03:
		return Key{Kind: KeyCtrlC}, nil
	case 0x10:
		return Key{Kind: KeyCtrlP}, nil
	case 0x0e:
		return Key{Kind: KeyCtrlN}, nil
	}

	if b >= 0x20 && b < utf8.RuneSelf {
		return Key{Kind: KeyRune, Rune: rune(b)}, nil
	}
	if b < 0x20 {
		return Key{Kind: KeyUnknown}, nil
	}

	// Multibyte rune: collect continuation bytes until it decodes.
	buf := []byte{b}
	for !utf8.FullRune(buf) && len(buf) < utf8.UTFMax {
		next, err := k.r.ReadByte()
		if err != nil {
			return Key{Kind: KeyUnknown}, nil
		}
		buf = append(buf, next)
	}
	r, _ := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return Key{Kind: KeyUnknown}, nil
	}
	return Key{Kind: KeyRune, Rune: r}, nil
}

// parseEscapeSequence handles ESC, ESC [ ... and ESC O ... forms. A lone
// escape byte (nothing buffered behind it) is the Escape key itself.
func (k *KeyReader) parseEscapeSequence() (Key, error) {
	if k.r.Buffered() == 0 {
		return Key{Kind: KeyEscape}, nil
	}
	next, err := k.r.ReadByte()
	if err != nil {
		return Key{Kind: KeyEscape}, nil
	}

	switch next {
	case '[':
		return k.parseCSI()
	case 'O':
		final, err := k.r.ReadByte()
		if err != nil {
			return Key{Kind: KeyEscape}, nil
		}
		switch final {
		case 'A':
			return Key{Kind: KeyUp}, nil
		case 'B':
			return Key{Kind: KeyDown}, nil
		case 'C':
			return Key{Kind: KeyRight}, nil
		case 'D':
			return Key{Kind: KeyLeft}, nil
		case 'H':
			return Key{Kind: KeyHome}, nil
		case 'F':
			return Key{Kind: KeyEnd}, nil
		}
		return Key{Kind: KeyUnknown}, nil
	}
	return Key{Kind: KeyEscape}, nil
}

// parseCSI consumes parameter bytes up to the final byte of a CSI sequence.
func (k *KeyReader) parseCSI() (Key, error) {
	var params []byte
	for {
		b, err := k.r.ReadByte()
		if err != nil {
			return Key{Kind: KeyUnknown}, nil
		}
		if b >= '0' && b <= '9' || b == ';' {
			params = append(params, b)
			continue
		}

		switch b {
		case 'A':
			return Key{Kind: KeyUp}, nil
		case 'B':
			return Key{Kind: KeyDown}, nil
		case 'C':
			return Key{Kind: KeyRight}, nil
		case 'D':
			return Key{Kind: KeyLeft}, nil
		case 'H':
			return Key{Kind: KeyHome}, nil
		case 'F':
			return Key{Kind: KeyEnd}, nil
		case '~':
			switch string(params) {
			case "1", "7":
				return Key{Kind: KeyHome}, nil
			case "4", "8":
				return Key{Kind: KeyEnd}, nil
			}
			return Key{Kind: KeyUnknown}, nil
		default:
			return Key{Kind: KeyUnknown}, nil
		}
	}
}
