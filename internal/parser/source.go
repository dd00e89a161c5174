package parser

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Sources expands a path into the list of sources to read. A URL is kept as
// is, a glob is expanded and directories are walked for regular files. A
// pattern that matches nothing is returned literally so that opening it
// reports a useful error.
func Sources(path string) ([]string, error) {
	if isURL(path) {
		return []string{path}, nil
	}

	matches, err := filepath.Glob(path)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", path, err)
	}

	if len(matches) == 0 {
		return []string{path}, nil
	}

	seen := make(map[string]bool)
	res := make([]string, 0, len(matches))

	for _, match := range matches {
		files, err := regularFiles(match)
		if err != nil {
			return nil, fmt.Errorf("list %q: %w", match, err)
		}

		for _, f := range files {
			if !seen[f] {
				seen[f] = true
				res = append(res, f)
			}
		}
	}

	sort.Strings(res)

	return res, nil
}

func regularFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.Type().IsRegular() {
			files = append(files, p)
		}

		return nil
	})

	return files, err
}

func open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !isURL(source) {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}

		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", source, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()

		return nil, fmt.Errorf("get %q: unexpected status %s", source, resp.Status)
	}

	return resp.Body, nil
}
