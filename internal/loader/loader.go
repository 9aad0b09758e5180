package loader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"cpu-scheduler/internal/core"

	"gopkg.in/yaml.v3"
)

var ErrNoProcesses = errors.New("no processes found")

// LineError reports a record that could not be turned into a process.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// LoadFile picks the decoder from the file extension: .yaml/.yml are YAML,
// anything else is comma-delimited.
func LoadFile(path string) ([]core.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open process file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return LoadCSV(f)
	}
}

// LoadCSV reads "pid,arrival,burst" records. Blank lines and lines that do
// not start with a digit (headings, comments) are skipped before parsing, so
// their content never has to be valid CSV.
func LoadCSV(r io.Reader) ([]core.Process, error) {
	data, err := dataLines(r)
	if err != nil {
		return nil, err
	}
	reader := csv.NewReader(data)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var processes []core.Process
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if len(record) < 3 {
			return nil, &LineError{Line: line, Err: fmt.Errorf("expected pid,arrival,burst, got %d fields", len(record))}
		}

		var fields [3]int
		for i, name := range []string{"pid", "arrival", "burst"} {
			v, err := strconv.Atoi(strings.TrimSpace(record[i]))
			if err != nil {
				return nil, &LineError{Line: line, Err: fmt.Errorf("%s: %w", name, err)}
			}
			fields[i] = v
		}

		p := core.NewProcess(fields[0], fields[1], fields[2])
		if _, err := p.Validate(); err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
		processes = append(processes, p)
	}

	if len(processes) == 0 {
		return nil, ErrNoProcesses
	}
	return processes, nil
}

// dataLines blanks out every line whose first non-space character is not a
// digit. Line numbers are unchanged.
func dataLines(r io.Reader) (io.Reader, error) {
	var b strings.Builder
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if first := strings.TrimLeftFunc(line, unicode.IsSpace); first != "" && unicode.IsDigit(rune(first[0])) {
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return strings.NewReader(b.String()), nil
}

type yamlFile struct {
	Processes []core.Process `yaml:"processes"`
}

// LoadYAML reads a document of the form
//
//	processes:
//	  - {process_id: 1, arrival_time: 0, burst_time: 5}
func LoadYAML(r io.Reader) ([]core.Process, error) {
	var doc yamlFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrNoProcesses
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(doc.Processes) == 0 {
		return nil, ErrNoProcesses
	}

	processes := make([]core.Process, 0, len(doc.Processes))
	for i, p := range doc.Processes {
		p = core.NewProcess(p.ProcessId, p.ArrivalTime, p.BurstTime)
		if _, err := p.Validate(); err != nil {
			return nil, fmt.Errorf("process %d (entry %d): %w", p.ProcessId, i+1, err)
		}
		processes = append(processes, p)
	}
	return processes, nil
}
