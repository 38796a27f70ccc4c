package output

// CompareOutput is the JSON shape of a comparison report.
type CompareOutput struct {
	OnlyInA []string       `json:"only_in_a"`
	OnlyInB []string       `json:"only_in_b"`
	Changes []ChangeOutput `json:"changes"`
}

// ChangeOutput is one structural change in JSON output.
type ChangeOutput struct {
	Name string   `json:"name"`
	A    []string `json:"a"`
	B    []string `json:"b"`
	Diff []string `json:"diff"`
}

// FileOutput is one loaded file in list JSON output.
type FileOutput struct {
	Path         string `json:"path"`
	Declarations int    `json:"declarations"`
	Exports      int    `json:"exports"`
}

// ListOutput is the JSON shape of the list command.
type ListOutput struct {
	Files      []FileOutput `json:"files"`
	TotalTypes int          `json:"total_types"`
}
