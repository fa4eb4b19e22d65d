// Package data imports archived price history into a local data
// directory, where market.LoadDir picks it up.
package data

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/xyproto/unzip"
)

// Import unpacks one price-data archive into dir and returns the names
// of the files it produced.
//
// Supported inputs:
//   - .zip   bundle of daily CSV files
//   - .xz    single xz-compressed CSV (AMD.csv.xz -> AMD.csv)
//   - .csv   copied as-is
func Import(archive, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	switch {
	case strings.EqualFold(filepath.Ext(archive), ".zip"):
		return importZip(archive, dir)
	case strings.EqualFold(filepath.Ext(archive), ".xz"):
		name, err := importXZ(archive, dir)
		if err != nil {
			return nil, err
		}
		return []string{name}, nil
	case strings.EqualFold(filepath.Ext(archive), ".csv"):
		name, err := copyFile(archive, dir)
		if err != nil {
			return nil, err
		}
		return []string{name}, nil
	default:
		return nil, fmt.Errorf("unsupported archive type %q", filepath.Ext(archive))
	}
}

func importZip(archive, dir string) ([]string, error) {
	before, err := listCSVs(dir)
	if err != nil {
		return nil, err
	}

	if err := unzip.Extract(archive, dir); err != nil {
		return nil, fmt.Errorf("extract %s: %w", archive, err)
	}

	after, err := listCSVs(dir)
	if err != nil {
		return nil, err
	}

	var added []string
	for name := range after {
		if !before[name] {
			added = append(added, name)
		}
	}
	if len(added) == 0 {
		return nil, fmt.Errorf("%s contained no new CSV files", archive)
	}
	return added, nil
}

func importXZ(archive, dir string) (string, error) {
	in, err := os.Open(archive)
	if err != nil {
		return "", err
	}
	defer in.Close()

	r, err := xz.NewReader(in)
	if err != nil {
		return "", fmt.Errorf("open xz %s: %w", archive, err)
	}

	name := strings.TrimSuffix(filepath.Base(archive), filepath.Ext(archive))
	if !strings.EqualFold(filepath.Ext(name), ".csv") {
		name += ".csv"
	}

	out, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("decompress %s: %w", archive, err)
	}
	return name, nil
}

func copyFile(src, dir string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	name := filepath.Base(src)
	out, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return "", err
	}
	return name, nil
}

func listCSVs(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool)
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			out[e.Name()] = true
		}
	}
	return out, nil
}
