package filecleaner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/google/vectorio"
)

// reportIOVMax bounds the iovec count per writev call. Conservative
// fallback value for IOV_MAX per golang/go#58623.
const reportIOVMax = 1024

// RenderReport renders duplicate groups in the given output format:
// "human", "json" or "fdupes".
func RenderReport(groups []DuplicateGroup, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "human":
		return renderHuman(groups), nil
	case "json":
		data, err := json.MarshalIndent(groups, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to render json report: %w", err)
		}
		return append(data, '\n'), nil
	case "fdupes":
		return renderFdupes(groups), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: human, json, fdupes)", format)
	}
}

func renderHuman(groups []DuplicateGroup) []byte {
	var b bytes.Buffer
	if len(groups) == 0 {
		b.WriteString("no duplicates found\n")
		return b.Bytes()
	}
	for _, group := range groups {
		fmt.Fprintf(&b, "key %#016x: %d files\n", group.Key, group.Count)
		for i, file := range group.Files {
			if i == 0 {
				fmt.Fprintf(&b, "  %s (kept)\n", file)
			} else {
				fmt.Fprintf(&b, "  %s\n", file)
			}
		}
	}
	return b.Bytes()
}

// renderFdupes emits groups of paths separated by blank lines, matching
// fdupes' default output so existing scripts can consume it.
func renderFdupes(groups []DuplicateGroup) []byte {
	var b bytes.Buffer
	for i, group := range groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, file := range group.Files {
			b.WriteString(file)
			b.WriteByte('\n')
		}
	}
	return b.Bytes()
}

// WriteReport renders groups and writes the report to path using vectored
// I/O, one iovec per line, chunked to respect the IOV_MAX limit.
func WriteReport(path string, groups []DuplicateGroup, format string) error {
	rendered, err := RenderReport(groups, format)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", path, err)
	}
	defer file.Close()

	lines := splitLines(rendered)
	iovecs := make([]syscall.Iovec, 0, len(lines))
	totalSize := 0
	for _, line := range lines {
		iovecs = append(iovecs, syscall.Iovec{
			Base: &line[0],
			Len:  uint64(len(line)),
		})
		totalSize += len(line)
	}

	totalWritten := 0
	for offset := 0; offset < len(iovecs); offset += reportIOVMax {
		end := offset + reportIOVMax
		if end > len(iovecs) {
			end = len(iovecs)
		}

		// Slice without copying to avoid allocation.
		chunk := iovecs[offset:end]

		nw, err := vectorio.WritevRaw(uintptr(file.Fd()), chunk)
		if err != nil {
			return fmt.Errorf("failed to write report chunk with vectorio: %w", err)
		}
		totalWritten += nw
	}

	if totalWritten != totalSize {
		return fmt.Errorf("report write incomplete: wrote %d bytes, expected %d", totalWritten, totalSize)
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync report file: %w", err)
	}

	return nil
}

// splitLines splits rendered output into per-line byte slices, each keeping
// its trailing newline, without copying. The slices alias data's backing
// array so they stay valid for iovec construction.
func splitLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, c := range data {
		if c == '\n' {
			lines = append(lines, data[start:i+1])
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, data[start:])
	}
	return lines
}
