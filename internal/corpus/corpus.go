package corpus

// File holds the declarations of one loaded symtypes file: for every
// name declared in the file, the index of the variant this file
// selected in the type table.
type File struct {
	Path    string
	Records map[string]int
}

// Corpus is the complete declaration set of one build tree. It is
// write-once: fully built by Load, read-only afterwards.
//
// Exports maps each exported symbol to the index of its owning file.
// When the same export is declared in several files the last loaded
// file wins, silently; symtypes trees produced by a single build do
// not declare an export twice.
type Corpus struct {
	Types   *Table
	Exports map[string]int
	Files   []*File
}

// TypeTokens resolves the token sequence file selected for name. Both
// lookups must succeed on a well-formed corpus; a miss is a
// ConsistencyError.
func (c *Corpus) TypeTokens(file *File, name string) (Tokens, error) {
	idx, ok := file.Records[name]
	if !ok {
		return nil, &ConsistencyError{Name: name, File: file.Path}
	}
	variants := c.Types.Variants(name)
	if idx >= len(variants) {
		return nil, &ConsistencyError{Name: name}
	}
	return variants[idx], nil
}

// ExpandType renders name and everything it transitively references as
// it appears in file, depth-first with referenced types printed before
// their referrer. Each name is rendered at most once per call.
func (c *Corpus) ExpandType(file *File, name string) ([]string, error) {
	seen := make(map[string]bool)
	var lines []string
	if err := c.expandType(file, name, seen, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (c *Corpus) expandType(file *File, name string, seen map[string]bool, lines *[]string) error {
	if seen[name] {
		return nil
	}
	seen[name] = true

	tokens, err := c.TypeTokens(file, name)
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		if tok.Ref {
			if err := c.expandType(file, tok.Text, seen, lines); err != nil {
				return err
			}
		}
	}

	line := name
	for _, tok := range tokens {
		line += " " + tok.Text
	}
	*lines = append(*lines, line)
	return nil
}

// FilesWithType returns every loaded file that declares name, in load
// order.
func (c *Corpus) FilesWithType(name string) []*File {
	var files []*File
	for _, f := range c.Files {
		if _, ok := f.Records[name]; ok {
			files = append(files, f)
		}
	}
	return files
}
