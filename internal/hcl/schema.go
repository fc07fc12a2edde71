package hcl

import "github.com/hashicorp/hcl/v2"

// puzzleBlock mirrors a `puzzle "<name>" { ... }` block. The list-valued
// attributes stay as raw expressions so translation can accept both string
// and tuple forms via cty.
type puzzleBlock struct {
	Name           string         `hcl:"name,label"`
	Rows           int            `hcl:"rows"`
	Cols           int            `hcl:"cols"`
	Letters        hcl.Expression `hcl:"letters"`
	Words          hcl.Expression `hcl:"words,optional"`
	Banned         hcl.Expression `hcl:"banned,optional"`
	Count          *int           `hcl:"count,optional"`
	Output         string         `hcl:"output,optional"`
	Theme          string         `hcl:"theme,optional"`
	ThemeWordCount *int           `hcl:"theme_word_count,optional"`
}

// fileRoot decodes the top level of any configuration file.
type fileRoot struct {
	Puzzles []*puzzleBlock `hcl:"puzzle,block"`
	Remain  hcl.Body       `hcl:",remain"`
}
