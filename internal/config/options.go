package config

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their
// meanings. This is the single source of truth for default values.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "scope", Default: "tree", Comment: "Anchor label uniqueness scope: tree (whole documentation tree) or file"},
		{Key: "index.path", Default: "", Comment: "Optional sqlite index for the anchor table; empty disables persistence"},
		{Key: "verbose", Default: false, Comment: "Print per-file detail while processing"},

		{Key: "output.color", Default: "auto", Comment: "Summary coloring: auto, always or never"},

		{Key: "titles.suffix", Default: "-interface.md", Comment: "File name suffix selecting files for the titles command"},
		{Key: "titles.template", Default: "# The %s interface", Comment: "Heading template for the titles command; %s receives the file base name"},

		{Key: "show.style", Default: "dracula", Comment: "Glamour style for the show command (or auto)"},
		{Key: "show.width", Default: 80, Comment: "Word-wrap width for the show command"},
	}
}
