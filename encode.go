package tracker

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// This file persists a snapshot in a folder, in a way that is still
// human-readable and git-friendly: one JSON object per line, investments in
// their own file, records sorted by date.

const (
	investmentsFilename = "investments.jsonl"
	recordsFilename     = "records.jsonl"
)

// JSONLStore stores a snapshot as two JSONL files in Dir.
type JSONLStore struct {
	Dir string
	Log zerolog.Logger
}

// Load reads the snapshot. A missing folder or file reads as empty.
func (s *JSONLStore) Load() (Snapshot, error) {
	var snap Snapshot
	investmentsFile := filepath.Join(s.Dir, investmentsFilename)
	if _, err := os.Stat(investmentsFile); err == nil {
		// an empty file means every investment was dropped.
		snap.Investments = []Investment{}
	}
	err := decodeFile(investmentsFile, func(l fileLine) error {
		var inv Investment
		if err := json.Unmarshal([]byte(l.txt), &inv); err != nil {
			return fmt.Errorf("parse error %s:%v: not a correct json: %w", l.filename, l.i, err)
		}
		if inv.Name == "" {
			return fmt.Errorf("parse error %s:%v: missing the property %q", l.filename, l.i, "name")
		}
		if IndexInvestment(snap.Investments, inv.Name) >= 0 {
			return fmt.Errorf("parse error %s:%v: %w %q", l.filename, l.i, ErrDuplicateInvestment, inv.Name)
		}
		snap.Investments = append(snap.Investments, inv)
		return nil
	})
	if err != nil {
		return Snapshot{}, err
	}

	recordsFile := filepath.Join(s.Dir, recordsFilename)
	err = decodeFile(recordsFile, func(l fileLine) error {
		var r Record
		if err := json.Unmarshal([]byte(l.txt), &r); err != nil {
			return fmt.Errorf("parse error %s:%v: not a correct json: %w", l.filename, l.i, err)
		}
		snap.Records = append(snap.Records, r)
		return nil
	})
	if err != nil {
		return Snapshot{}, err
	}
	s.Log.Debug().Str("dir", s.Dir).Int("investments", len(snap.Investments)).Int("records", len(snap.Records)).Msg("snapshot loaded")
	return snap, nil
}

// Save writes the snapshot, records in chronological order.
// Each file is written to a temporary file and then renamed over the previous one.
func (s *JSONLStore) Save(snap Snapshot) error {
	sorted, err := sortRecords(snap.Records, false)
	if err != nil {
		return fmt.Errorf("persist error: %w", err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("persist error: cannot create folder %q: %w", s.Dir, err)
	}

	err = encodeFile(filepath.Join(s.Dir, investmentsFilename), func(w io.Writer) error {
		for _, inv := range snap.Investments {
			if err := encodeLine(w, inv); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	err = encodeFile(filepath.Join(s.Dir, recordsFilename), func(w io.Writer) error {
		for _, r := range sorted {
			if err := encodeLine(w, r.Record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.Log.Debug().Str("dir", s.Dir).Int("investments", len(snap.Investments)).Int("records", len(sorted)).Msg("snapshot saved")
	return nil
}

// Close does nothing, files are not kept open.
func (s *JSONLStore) Close() error { return nil }

// fileLine structures a line from a file as the persistence layer represent them.
type fileLine struct {
	filename string
	i        int
	txt      string
}

// decodeFile calls decode for every non blank line of filename.
// A missing file is not an error.
func decodeFile(filename string, decode func(fileLine) error) error {
	r, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load error: cannot open %q for reading: %w", filename, err)
	}
	defer r.Close()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1024*1024)
	i := 0
	for scanner.Scan() {
		i++
		txt := scanner.Text()
		// Start simply ignoring empty lines.
		if strings.TrimSpace(txt) == "" {
			continue
		}
		if err := decode(fileLine{filename, i, txt}); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("load error: cannot read %q: %w", filename, err)
	}
	return nil
}

// encodeFile writes filename through a temporary file in the same folder.
func encodeFile(filename string, encode func(io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return fmt.Errorf("persist error: cannot create file for %q: %w", filename, err)
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op once renamed

	w := bufio.NewWriter(f)
	if err := encode(w); err != nil {
		f.Close()
		return fmt.Errorf("persist error: cannot write %q: %w", filename, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("persist error: cannot write %q: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("persist error: cannot write %q: %w", filename, err)
	}
	if err := os.Rename(tmp, filename); err != nil {
		return fmt.Errorf("persist error: cannot replace %q: %w", filename, err)
	}
	return nil
}

// encodeLine writes v as a single json line.
// Maps are marshalled with sorted keys so files are stable.
func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// names returns the sorted investment names observed in records.
func names(records []Record) []string {
	var list []string
	for _, r := range records {
		for name := range r.Observations {
			if !slices.Contains(list, name) {
				list = append(list, name)
			}
		}
	}
	slices.Sort(list)
	return list
}
