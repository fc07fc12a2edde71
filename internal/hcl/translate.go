package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/wordsearchgo/internal/config"
)

const defaultThemeWordCount = 15

// translateBatch converts a decoded puzzle block into the agnostic model,
// applying defaults and validating every field.
func (l *Loader) translateBatch(block *puzzleBlock) (*config.Batch, error) {
	if block.Rows < 1 || block.Cols < 1 {
		return nil, fmt.Errorf("rows and cols must be positive, got %dx%d", block.Rows, block.Cols)
	}

	letters, err := evalLetters(block.Letters)
	if err != nil {
		return nil, err
	}
	if len(letters) == 0 {
		return nil, fmt.Errorf("letters must not be empty")
	}

	words, err := evalStringList(block.Words, "words")
	if err != nil {
		return nil, err
	}
	banned, err := evalStringList(block.Banned, "banned")
	if err != nil {
		return nil, err
	}

	count := 1
	if block.Count != nil {
		count = *block.Count
	}
	if count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	themeWords := defaultThemeWordCount
	if block.ThemeWordCount != nil {
		themeWords = *block.ThemeWordCount
	}
	if themeWords < 1 {
		return nil, fmt.Errorf("theme_word_count must be positive, got %d", themeWords)
	}
	if block.Theme == "" && block.ThemeWordCount != nil {
		return nil, fmt.Errorf("theme_word_count requires theme to be set")
	}
	if block.Theme == "" && len(words) == 0 {
		return nil, fmt.Errorf("puzzle needs either words or a theme")
	}

	return &config.Batch{
		Name:           block.Name,
		Rows:           block.Rows,
		Cols:           block.Cols,
		Letters:        letters,
		Words:          words,
		Banned:         banned,
		Count:          count,
		Output:         block.Output,
		Theme:          block.Theme,
		ThemeWordCount: themeWords,
	}, nil
}

// evalLetters accepts either a plain string ("ABCD") or a tuple of
// single-character strings (["A", "B"]) and returns the alphabet bytes.
func evalLetters(expr hcl.Expression) ([]byte, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("letters: %w", diags)
	}
	if val.IsNull() {
		return nil, fmt.Errorf("letters must not be null")
	}

	if val.Type() == cty.String {
		return lettersFromString(val.AsString())
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("letters must be a string or a list of strings, got %s", val.Type().FriendlyName())
	}

	var letters []byte
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.Type() != cty.String {
			return nil, fmt.Errorf("letters elements must be strings, got %s", elem.Type().FriendlyName())
		}
		chars, err := lettersFromString(elem.AsString())
		if err != nil {
			return nil, err
		}
		letters = append(letters, chars...)
	}
	return letters, nil
}

func lettersFromString(s string) ([]byte, error) {
	letters := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == ' ' {
			continue
		}
		if ch < '!' || ch > '~' {
			return nil, fmt.Errorf("letters must be printable ASCII characters, got %q", s)
		}
		letters = append(letters, ch)
	}
	return letters, nil
}

// evalStringList evaluates an optional attribute into a list of non-empty
// strings. An absent attribute yields nil.
func evalStringList(expr hcl.Expression, attr string) ([]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: %w", attr, diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("%s must be a list of strings, got %s", attr, val.Type().FriendlyName())
	}

	var out []string
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.Type() != cty.String {
			return nil, fmt.Errorf("%s elements must be strings, got %s", attr, elem.Type().FriendlyName())
		}
		s := elem.AsString()
		if s == "" {
			return nil, fmt.Errorf("%s must not contain empty strings", attr)
		}
		out = append(out, s)
	}
	return out, nil
}
