package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"intlc/internal/config"
)

// readInFile читает список файлов: пути разделены пробелами или переводами строк.
func readInFile(path string) ([]string, error) {
	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read --in-file: %w", err)
	}
	base := filepath.Dir(path)
	var files []string
	for _, f := range strings.Fields(string(data)) {
		if !filepath.IsAbs(f) && base != "." {
			if _, err := os.Stat(f); err != nil {
				// относительные пути списка берутся от его каталога, если от cwd файла нет
				f = filepath.Join(base, f)
			}
		}
		files = append(files, f)
	}
	return files, nil
}

// collectFiles объединяет аргументы и --in-file, убирает повторы и игнорируемые файлы.
// origin называет источник шаблонов ignore для диагностики.
func collectFiles(args []string, inFile, origin string, ignore []string) ([]string, error) {
	files := append([]string(nil), args...)
	if inFile != "" {
		listed, err := readInFile(inFile)
		if err != nil {
			return nil, err
		}
		files = append(files, listed...)
	}
	seen := make(map[string]struct{}, len(files))
	out := files[:0]
	for _, f := range files {
		key := filepath.Clean(f)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
	}
	return config.Filter(origin, out, ignore)
}

// ignoreSource: шаблоны из флага или из файла конфигурации.
func ignoreSource(cmd *cobra.Command, g *globals) string {
	if cmd.Flags().Changed("ignore") || g.config.Path == "" {
		return config.FlagSource
	}
	return g.config.Path
}

// writeOutput пишет в файл (создавая каталоги) или в w, если путь пуст.
func writeOutput(w io.Writer, path string, data []byte) error {
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output folder: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
