package corpus

import (
	"bufio"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSuffix is the file extension of symtypes declaration files.
const DefaultSuffix = ".symtypes"

// Load builds a corpus from every declaration file under root,
// recursing into subdirectories. Only files whose name ends in suffix
// are loaded. Any I/O failure aborts the load; no partial corpus is
// returned.
func Load(root, suffix string, logger *slog.Logger) (*Corpus, error) {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Corpus{
		Types:   NewTable(),
		Exports: make(map[string]int),
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &LoadError{Path: path, Err: err}
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		return c.loadFile(path, logger)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// loadFile parses one symtypes file into the corpus. Each non-empty
// line is one declaration: the first word is the declared name, the
// remaining words its token sequence. A line holding only a name is a
// zero-token declaration. Names without the '#' marker in second
// position are exports and recorded in the export index.
func (c *Corpus) loadFile(path string, logger *slog.Logger) error {
	logger.Debug("loading symtypes file", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	records := make(map[string]int)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}
		name := words[0]

		tokens := make(Tokens, 0, len(words)-1)
		for _, word := range words[1:] {
			tokens = append(tokens, Classify(word))
		}

		records[name] = c.Types.Merge(name, tokens)
		if !IsRefName(name) {
			c.Exports[name] = len(c.Files)
		}
	}
	if err := scanner.Err(); err != nil {
		return &LoadError{Path: path, Err: err}
	}

	c.Files = append(c.Files, &File{Path: path, Records: records})
	return nil
}
