package blueprint

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"gopkg.in/yaml.v3"

	"github.com/rigforge/cli/internal/rig"
)

// DiffResult classifies the module changes between two blueprints.
type DiffResult struct {
	// HasChanges indicates any difference, including reordering.
	HasChanges bool

	// Added modules (in the new document, not in the old).
	Added []string

	// Removed modules (in the old document, not in the new).
	Removed []string

	// Modified modules (present in both with different attributes).
	Modified []ModifiedEntry

	// Reordered is set when shared modules appear in a different order.
	// Module order is build order, so reordering is a real change.
	Reordered bool
}

// ModifiedEntry is one module whose attributes changed.
type ModifiedEntry struct {
	// Name is the module identifier (type/name).
	Name string

	// Diff is the rendered attribute diff.
	Diff string
}

// IsEmpty returns true if the two blueprints match.
func (r *DiffResult) IsEmpty() bool {
	return !r.HasChanges
}

// entryKey identifies an entry across documents. A type change under the
// same instance name reads as remove plus add.
func entryKey(e Entry) string {
	return fmt.Sprintf("%s/%s", e.Type, e.Name())
}

// Diff compares two blueprint documents module by module.
func Diff(old, updated *Document, useColor bool) (*DiffResult, error) {
	result := &DiffResult{
		Added:    make([]string, 0),
		Removed:  make([]string, 0),
		Modified: make([]ModifiedEntry, 0),
	}

	oldByKey := make(map[string]Entry, len(old.Modules))
	for _, entry := range old.Modules {
		oldByKey[entryKey(entry)] = entry
	}
	updatedByKey := make(map[string]Entry, len(updated.Modules))
	for _, entry := range updated.Modules {
		updatedByKey[entryKey(entry)] = entry
	}

	for _, entry := range old.Modules {
		key := entryKey(entry)
		after, ok := updatedByKey[key]
		if !ok {
			result.Removed = append(result.Removed, key)
			result.HasChanges = true
			continue
		}

		diff, err := diffAttributes(entry.Attributes, after.Attributes, useColor)
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", key, err)
		}
		if diff != "" {
			result.Modified = append(result.Modified, ModifiedEntry{Name: key, Diff: diff})
			result.HasChanges = true
		}
	}

	for _, entry := range updated.Modules {
		key := entryKey(entry)
		if _, ok := oldByKey[key]; !ok {
			result.Added = append(result.Added, key)
			result.HasChanges = true
		}
	}

	if sharedOrderChanged(old.Modules, updated.Modules, oldByKey, updatedByKey) {
		result.Reordered = true
		result.HasChanges = true
	}

	return result, nil
}

// sharedOrderChanged reports whether the modules present in both documents
// appear in a different relative order.
func sharedOrderChanged(old, updated []Entry, oldByKey, updatedByKey map[string]Entry) bool {
	oldOrder := make([]string, 0, len(old))
	for _, entry := range old {
		key := entryKey(entry)
		if _, ok := updatedByKey[key]; ok {
			oldOrder = append(oldOrder, key)
		}
	}

	updatedOrder := make([]string, 0, len(updated))
	for _, entry := range updated {
		key := entryKey(entry)
		if _, ok := oldByKey[key]; ok {
			updatedOrder = append(updatedOrder, key)
		}
	}

	if len(oldOrder) != len(updatedOrder) {
		return true
	}
	for i := range oldOrder {
		if oldOrder[i] != updatedOrder[i] {
			return true
		}
	}
	return false
}

// diffAttributes computes a YAML-aware diff between two attribute maps using
// dyff. Returns empty string when they match.
func diffAttributes(old, updated rig.Attributes, useColor bool) (string, error) {
	oldYAML, err := yaml.Marshal(old)
	if err != nil {
		return "", fmt.Errorf("serializing old attributes: %w", err)
	}
	updatedYAML, err := yaml.Marshal(updated)
	if err != nil {
		return "", fmt.Errorf("serializing new attributes: %w", err)
	}

	oldInput, err := yamlInput("old", oldYAML)
	if err != nil {
		return "", fmt.Errorf("parsing old attributes: %w", err)
	}
	updatedInput, err := yamlInput("new", updatedYAML)
	if err != nil {
		return "", fmt.Errorf("parsing new attributes: %w", err)
	}

	report, err := dyff.CompareInputFiles(oldInput, updatedInput)
	if err != nil {
		return "", fmt.Errorf("comparing attributes: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

// yamlInput wraps YAML bytes as a dyff input file.
func yamlInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name, Documents: nil}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}

// renderDyffReport renders a dyff report to a trimmed string.
func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
