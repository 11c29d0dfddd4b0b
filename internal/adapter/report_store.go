package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/respec/internal/model"
)

const (
	indexFileName    = "_index.yaml"
	reportFileSuffix = ".yaml"
	reportHashLen    = 16
)

// ReportStore persists and retrieves conversion reports.
type ReportStore interface {
	// SaveReports writes one YAML file per report into path.
	SaveReports(path m.Path, reports []m.Report) error
	// LoadReports reads every report stored under path.
	LoadReports(path m.Path) ([]m.Report, error)
	// RegenerateIndex rewrites the `_index.yaml` summary of path.
	RegenerateIndex(path m.Path) error
	// CleanReports deletes the reports of sources, or all reports when
	// sources is nil, and regenerates the index.
	CleanReports(path m.Path, sources []m.Source) error
}

// LocalReportStore stores reports as YAML files on the local disk.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type sourceYAML struct {
	Origin string `yaml:"origin"`
	Hash   string `yaml:"hash"`
}

type recordYAML struct {
	Original  string `yaml:"original_syntax"`
	Converted string `yaml:"converted_syntax"`
}

type reportYAML struct {
	Source  sourceYAML   `yaml:"source"`
	Changed bool         `yaml:"changed"`
	Records []recordYAML `yaml:"records,omitempty"`
	Diff    string       `yaml:"diff,omitempty"`
	Err     string       `yaml:"err,omitempty"`
}

type indexEntry struct {
	Files       int           `yaml:"files"`
	Changed     int           `yaml:"changed_files"`
	Failed      int           `yaml:"failed_files"`
	Conversions int           `yaml:"conversions"`
	Result      []resultEntry `yaml:"result"`
}

type resultEntry struct {
	Origin  string `yaml:"origin"`
	Report  string `yaml:"report"`
	Records int    `yaml:"records"`
	Failed  bool   `yaml:"failed,omitempty"`
}

// SaveReports writes reports into path, creating the directory when needed.
func (rs *LocalReportStore) SaveReports(path m.Path, reports []m.Report) error {
	if path == "" {
		return errors.New("reports path is empty")
	}

	if err := os.MkdirAll(string(path), 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	for _, report := range reports {
		data, err := yaml.Marshal(toReportYAML(report))
		if err != nil {
			return fmt.Errorf("marshal report for %s: %w", report.Source.Origin, err)
		}

		file := filepath.Join(string(path), rs.reportFileName(report.Source.Origin))
		if err := os.WriteFile(file, data, 0o644); err != nil {
			return fmt.Errorf("write report %s: %w", file, err)
		}
	}

	return nil
}

// LoadReports reads all reports from path, ordered by source path. A missing
// directory holds no reports.
func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	files, err := rs.reportFiles(path)
	if err != nil {
		return nil, err
	}

	reports := make([]m.Report, 0, len(files))

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", file, err)
		}

		var decoded reportYAML
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", file, err)
		}

		reports = append(reports, fromReportYAML(decoded))
	}

	slices.SortFunc(reports, func(a, b m.Report) int {
		return strings.Compare(string(a.Source.Origin), string(b.Source.Origin))
	})

	return reports, nil
}

// RegenerateIndex summarizes the stored reports into `_index.yaml`. The
// index is removed when no reports remain.
func (rs *LocalReportStore) RegenerateIndex(path m.Path) error {
	reports, err := rs.LoadReports(path)
	if err != nil {
		return err
	}

	indexPath := filepath.Join(string(path), indexFileName)

	if len(reports) == 0 {
		if err := os.Remove(indexPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove index: %w", err)
		}

		return nil
	}

	idx := indexEntry{Files: len(reports)}

	for _, report := range reports {
		entry := resultEntry{
			Origin:  string(report.Source.Origin),
			Report:  rs.reportFileName(report.Source.Origin),
			Records: len(report.Records),
			Failed:  report.Err != nil,
		}

		idx.Conversions += len(report.Records)

		if report.Changed {
			idx.Changed++
		}

		if report.Err != nil {
			idx.Failed++
		}

		idx.Result = append(idx.Result, entry)
	}

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	if err := os.WriteFile(indexPath, data, 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	return nil
}

// CleanReports removes stored reports and regenerates the index.
func (rs *LocalReportStore) CleanReports(path m.Path, sources []m.Source) error {
	if path == "" {
		return errors.New("reports path is empty")
	}

	info, err := os.Stat(string(path))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("stat reports dir: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("reports path %s is not a directory", path)
	}

	var files []string

	if sources == nil {
		files, err = rs.reportFiles(path)
		if err != nil {
			return err
		}
	} else {
		for _, source := range sources {
			files = append(files, filepath.Join(string(path), rs.reportFileName(source.Origin)))
		}
	}

	for _, file := range files {
		if err := os.Remove(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove report %s: %w", file, err)
		}
	}

	return rs.RegenerateIndex(path)
}

// reportFileName derives a stable file name from the source path so that a
// new run overwrites the previous report of the same file.
func (rs *LocalReportStore) reportFileName(origin m.Path) string {
	sum := sha256.Sum256([]byte(origin))

	return hex.EncodeToString(sum[:])[:reportHashLen] + reportFileSuffix
}

func (rs *LocalReportStore) reportFiles(path m.Path) ([]string, error) {
	if path == "" {
		return nil, errors.New("reports path is empty")
	}

	entries, err := os.ReadDir(string(path))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	var files []string

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == indexFileName || !strings.HasSuffix(name, reportFileSuffix) {
			continue
		}

		files = append(files, filepath.Join(string(path), name))
	}

	return files, nil
}

func toReportYAML(report m.Report) reportYAML {
	out := reportYAML{
		Source:  sourceYAML{Origin: string(report.Source.Origin), Hash: report.Source.Hash},
		Changed: report.Changed,
		Diff:    report.Diff,
	}

	for _, r := range report.Records {
		out.Records = append(out.Records, recordYAML{Original: r.OriginalSyntax, Converted: r.ConvertedSyntax})
	}

	if report.Err != nil {
		out.Err = report.Err.Error()
	}

	return out
}

func fromReportYAML(in reportYAML) m.Report {
	report := m.Report{
		Source:  m.Source{Origin: m.Path(in.Source.Origin), Hash: in.Source.Hash},
		Changed: in.Changed,
		Diff:    in.Diff,
	}

	for _, r := range in.Records {
		report.Records = append(report.Records, m.Record{OriginalSyntax: r.Original, ConvertedSyntax: r.Converted})
	}

	if in.Err != "" {
		report.Err = errors.New(in.Err)
	}

	return report
}
