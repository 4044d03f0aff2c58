package input

import (
	"bufio"

	"golang.org/x/text/unicode/norm"
)

// ReadLine collects one line of text in raw mode, echoing as it goes.
// Backspace edits, Enter accepts, Escape or Ctrl-C cancels to the empty
// string. The result is NFC-normalized so typed names compare equal to
// listed ones.
func ReadLine(keys *KeyReader, out *bufio.Writer, prompt string) (string, error) {
	out.WriteString(prompt)
	out.Flush()

	var buf []rune
	for {
		key, err := keys.ReadKey()
		if err != nil {
			return "", err
		}

		switch key.Kind {
		case KeyEnter:
			out.WriteString("\r\n")
			out.Flush()
			return norm.NFC.String(string(buf)), nil
		case KeyEscape, KeyCtrlC:
			out.WriteString("\r\n")
			out.Flush()
			return "", nil
		case KeyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				out.WriteString("\b \b")
				out.Flush()
			}
		case KeyRune:
			if key.Rune >= 0x20 {
				buf = append(buf, key.Rune)
				out.WriteRune(key.Rune)
				out.Flush()
			}
		}
	}
}
