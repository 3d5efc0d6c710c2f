// Package extract turns a directory of statute pages into a numbered
// stream of page records, one file at a time or across a worker pool.
package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/orsextract"
)

// DefaultBaseURL is the prefix of every record URL.
const DefaultBaseURL = "https://oregon.public.law/"

// Pipeline performs the per-file transformation: read, decode, flatten,
// resolve metadata. It holds no per-run state and is safe for concurrent use.
type Pipeline struct {
	Decoder   orsextract.Decoder
	Extractor orsextract.TextExtractor

	// BaseURL is prepended to each source path to form the record URL.
	BaseURL string

	// WorkDir is the directory source paths are made relative to.
	// Empty means the process working directory.
	WorkDir string

	// Lenient substitutes empty content when decoding or flattening fails
	// instead of failing the file.
	Lenient bool

	// ReadFile reads a source. Defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

// Outcome is the result of processing one source. Exactly one of Page and
// Err is set.
type Outcome struct {
	Source orsextract.Source
	Page   *orsextract.Page
	Err    error

	// ContentErr records a decode or flatten fault that was replaced by
	// empty content. Only set in lenient mode.
	ContentErr error
}

// Process runs the pipeline for src. The returned page has no identifier
// yet; the batch driver assigns one when the page is written.
func (p *Pipeline) Process(ctx context.Context, src orsextract.Source) Outcome {
	out := Outcome{Source: src}

	if err := ctx.Err(); err != nil {
		out.Err = err
		return out
	}

	url, err := SourceURL(p.BaseURL, p.WorkDir, src.Path)
	if err != nil {
		out.Err = err
		return out
	}

	readFile := p.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	raw, err := readFile(src.Path)
	if err != nil {
		out.Err = err
		return out
	}

	content, err := p.text(raw)
	if err != nil {
		if !p.Lenient {
			out.Err = err
			return out
		}
		out.ContentErr = err
		content = ""
	}

	out.Page = &orsextract.Page{
		URL:      url,
		Content:  content,
		Metadata: orsextract.ResolveMetadata(src.Name, content),
	}
	return out
}

// safeProcess is Process with panics converted into a failed outcome.
func (p *Pipeline) safeProcess(ctx context.Context, src orsextract.Source) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{
				Source: src,
				Err:    orsextract.Errorf(orsextract.EINTERNAL, "panic: %v", r),
			}
		}
	}()
	return p.Process(ctx, src)
}

func (p *Pipeline) text(raw []byte) (string, error) {
	html, err := p.Decoder.Decode(raw)
	if err != nil {
		return "", err
	}
	return p.Extractor.ExtractText(html)
}

// SourceURL joins baseURL with path made relative to workDir, using
// forward slashes regardless of platform.
func SourceURL(baseURL, workDir, path string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("working directory: %w", err)
		}
		workDir = wd
	}

	root, err := filepath.Abs(workDir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}
	return baseURL + filepath.ToSlash(rel), nil
}
