package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var sourceExts = map[string]bool{".js": true, ".jsx": true, ".ts": true, ".tsx": true}

func addSourceSeeds(f *testing.F) {
	root := filepath.Join("..", "scanner", "testdata")
	// проходим по testdata сканера, добавляем все исходники
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || !sourceExts[filepath.Ext(path)] {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	f.Add([]byte{})
	f.Add([]byte(`intl.formatMessage({id: 'a', defaultMessage: 'Hello {name}'})`))
	f.Add([]byte(`<FormattedMessage id="x" defaultMessage={"Hi " + 'there'} values={{b: (c) => <b>{c}</b>}} />`))
	f.Add([]byte("const re = /[/]{/g; const t = `a${b}c`; if (a < b) { defineMessage({defaultMessage: `x`}) }"))
	f.Add([]byte(`<div>{/* comment */}<Trans>{` + "`" + `unterminated`))
}

var icuSeeds = []string{
	"",
	"Hello {name}",
	"{count, plural, offset:1 =0 {none} one {# item} other {# items}}",
	"{gender, select, male {He} female {She} other {They}} said {n, number, ::currency/EUR}",
	"{d, date, short} at {t, time, ::hhmm}",
	"<b>bold <i>{x}</i></b> and <br/>",
	"It''s '{escaped}' and '<tag>'",
	"{n, selectordinal, one {#st} two {#nd} few {#rd} other {#th}}",
	"{unclosed",
	"{a, plural, one {x}}",
	"</b>",
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return src
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
