package vaultfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/spf13/afero"
)

var (
	ErrVaultNotFound      = errors.New("vault name not found in file")
	ErrMalformedVaultLine = errors.New("malformed vault line")
)

const vaultHeaderPrefix = "$ANSIBLE_VAULT;"

var inlineVaultMarker = regexp.MustCompile(`!vault\s*[|>][-+]?$`)

type Entry struct {
	Name string
	// 1-based line number of the matched line
	Line    int
	Text    string
	Payload string
	VaultID string
}

func Locate(fs afero.Fs, path string, name string) (*Entry, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening vault file: %w", err)
	}
	defer f.Close()

	entry, err := Find(f, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entry, nil
}

// Find returns the first line of r that contains name. The vault id is the
// text after the last ; on that line. A line without any ; is accepted only
// when it opens an inline `!vault |` block, in which case the id comes from
// the block's $ANSIBLE_VAULT header. An empty vault id, from a trailing ;, is
// rejected with ErrMalformedVaultLine rather than looked up.
func Find(r io.Reader, name string) (*Entry, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("error reading vault file: %w", err)
	}

	for i, line := range lines {
		if !strings.Contains(line, name) {
			continue
		}

		text := strings.TrimRightFunc(line, unicode.IsSpace)
		if idx := strings.LastIndex(text, ";"); idx >= 0 {
			id := text[idx+1:]
			if id == "" {
				return nil, fmt.Errorf("%w: line %d has an empty vault id", ErrMalformedVaultLine, i+1)
			}
			return &Entry{
				Name:    name,
				Line:    i + 1,
				Text:    line,
				Payload: line,
				VaultID: id,
			}, nil
		}

		if inlineVaultMarker.MatchString(text) {
			return inlineEntry(name, lines, i)
		}

		return nil, fmt.Errorf("%w: line %d has no vault id", ErrMalformedVaultLine, i+1)
	}

	return nil, ErrVaultNotFound
}

func inlineEntry(name string, lines []string, start int) (*Entry, error) {
	parentIndent := indentOf(lines[start])

	block := []string{}
	for _, line := range lines[start+1:] {
		if strings.TrimSpace(line) == "" {
			block = append(block, "")
			continue
		}
		if indentOf(line) <= parentIndent {
			break
		}
		block = append(block, line)
	}
	for len(block) > 0 && block[len(block)-1] == "" {
		block = block[:len(block)-1]
	}
	if len(block) == 0 {
		return nil, fmt.Errorf("%w: line %d opens an empty vault block", ErrMalformedVaultLine, start+1)
	}

	block = dedent(block)

	header := strings.TrimRightFunc(block[0], unicode.IsSpace)
	if !strings.HasPrefix(header, vaultHeaderPrefix) {
		return nil, fmt.Errorf("%w: line %d is not an $ANSIBLE_VAULT header", ErrMalformedVaultLine, start+2)
	}
	id := header[strings.LastIndex(header, ";")+1:]
	if id == "" {
		return nil, fmt.Errorf("%w: line %d has an empty vault id", ErrMalformedVaultLine, start+2)
	}

	return &Entry{
		Name:    name,
		Line:    start + 1,
		Text:    lines[start],
		Payload: strings.Join(block, "\n") + "\n",
		VaultID: id,
	}, nil
}

func readLines(r io.Reader) ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

func dedent(block []string) []string {
	shortest := -1
	for _, line := range block {
		if line == "" {
			continue
		}
		if n := indentOf(line); shortest == -1 || n < shortest {
			shortest = n
		}
	}

	out := make([]string, len(block))
	for i, line := range block {
		if line != "" {
			out[i] = line[shortest:]
		}
	}
	return out
}
