package main

import (
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
	uuid "github.com/satori/go.uuid"
)

// unpackArchive decompresses a .zip/.gz/.lz4 source into a temp file and
// returns its path. Returns "" for paths that are not archives. The original
// file is left in place, the caller removes the temp copy after parsing.
func unpackArchive(filePath string) (string, error) {
	ext := filepath.Ext(filePath)
	if ext == ".zip" {
		return unpackZipArchive(filePath)
	} else if ext == ".gz" {
		return unpackGzipArchive(filePath)
	} else if ext == ".lz4" {
		return unpackLZ4Archive(filePath)
	}
	return "", nil
}

func tempExtractPath() string {
	uid := uuid.NewV4()
	return filepath.Join(os.TempDir(), "csv_dashboard_"+uid.String()+".csv")
}

func unpackZipArchive(filePath string) (string, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	// Find largest file in archive
	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		return "", nil
	}

	rc, err := largestFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	return copyToTemp(rc)
}

func unpackGzipArchive(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	gr, err := gzip.NewReader(file)
	if err != nil {
		return "", err
	}
	defer gr.Close()

	return copyToTemp(gr)
}

func unpackLZ4Archive(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	return copyToTemp(lz4.NewReader(file))
}

func copyToTemp(r io.Reader) (string, error) {
	destPath := tempExtractPath()
	outFile, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer outFile.Close()

	if _, err = io.Copy(outFile, r); err != nil {
		os.Remove(destPath)
		return "", err
	}
	return destPath, nil
}

// isArchivePath reports whether the loader should decompress first.
func isArchivePath(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	return ext == ".zip" || ext == ".gz" || ext == ".lz4"
}
