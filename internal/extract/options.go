package extract

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"intlc/internal/formatter"
	"intlc/internal/ident"
	"intlc/internal/pipeline"
	"intlc/internal/scanner"
)

// Options configure an extraction run. The zero value extracts with the
// default names, the default id pattern and lenient error handling.
type Options struct {
	IDInterpolationPattern   string
	ExtractSourceLocation    bool
	AdditionalComponentNames []string
	AdditionalFunctionNames  []string
	// Throws makes the first source, descriptor or message error fatal.
	// Otherwise the offending file is skipped and the error kept as a warning.
	Throws             bool
	Pragma             string
	PreserveWhitespace bool
	Flatten            bool
	// Format names the formatter applied by Result.Format.
	Format string

	// Jobs bounds the worker pool (0 = GOMAXPROCS).
	Jobs int
	// CacheDir enables the per-file result cache.
	CacheDir       string
	MaxDiagnostics int
	Progress       pipeline.ProgressSink
}

type resolved struct {
	Options
	scanner   scanner.Config
	assigner  *ident.Assigner
	formatter formatter.Formatter
}

func (o Options) resolve() (resolved, error) {
	a, err := ident.NewAssigner(o.IDInterpolationPattern)
	if err != nil {
		return resolved{}, err
	}
	f, err := formatter.Lookup(o.Format)
	if err != nil {
		return resolved{}, err
	}
	cfg := scanner.DefaultConfig().WithAdditional(o.AdditionalComponentNames, o.AdditionalFunctionNames)
	cfg.PreserveWhitespace = o.PreserveWhitespace
	cfg.Pragma = o.Pragma
	return resolved{Options: o, scanner: cfg, assigner: a, formatter: f}, nil
}

// fingerprint identifies everything besides file content that changes the
// per-file result.
func (r resolved) fingerprint() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(cacheSchemaVersion))
	sb.WriteString("\x00" + r.assigner.Pattern().String())
	sb.WriteString("\x00" + strings.Join(r.scanner.ComponentNames, ","))
	sb.WriteString("\x00" + strings.Join(r.scanner.FunctionNames, ","))
	sb.WriteString("\x00" + r.scanner.Pragma)
	sb.WriteString("\x00" + strconv.FormatBool(r.PreserveWhitespace))
	sb.WriteString("\x00" + strconv.FormatBool(r.Flatten))
	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:8])
}
