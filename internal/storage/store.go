// Package storage persists droplet shape reports as JSON metadata plus a
// CSV profile of the sampled interface.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// ReportMetadata summarizes one computed droplet geometry.
type ReportMetadata struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Dim         int       `json:"dim"`
	Timestamp   time.Time `json:"timestamp"`
	Radius      float64   `json:"radius"`
	Volume      float64   `json:"volume"`
	SurfaceArea float64   `json:"surface_area"`
}

// Profile holds the interface sampled along one angular sweep.
type Profile struct {
	Angles     []float64
	Distances  []float64
	Curvatures []float64
}

// Save writes the report under a fresh directory named after the droplet
// kind and returns the report ID. A nil profile writes metadata only.
func (s *Store) Save(meta ReportMetadata, profile *Profile) (string, error) {
	reportID := fmt.Sprintf("%s_%d", meta.Kind, time.Now().Unix())
	reportDir := filepath.Join(s.baseDir, reportID)

	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return "", err
	}

	meta.ID = reportID
	meta.Timestamp = time.Now()

	metaPath := filepath.Join(reportDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if profile == nil || len(profile.Angles) == 0 {
		return reportID, nil
	}

	csvPath := filepath.Join(reportDir, "profile.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"angle", "distance", "curvature"}); err != nil {
		return "", err
	}

	for i := range profile.Angles {
		row := []string{
			strconv.FormatFloat(profile.Angles[i], 'f', 6, 64),
			strconv.FormatFloat(profile.Distances[i], 'f', 6, 64),
			strconv.FormatFloat(profile.Curvatures[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return reportID, nil
}

func (s *Store) List() ([]ReportMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ReportMetadata{}, nil
		}
		return nil, err
	}

	reports := make([]ReportMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta ReportMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		reports = append(reports, meta)
	}

	return reports, nil
}

func (s *Store) Load(reportID string) (*ReportMetadata, error) {
	metaPath := filepath.Join(s.baseDir, reportID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta ReportMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadProfile reads back the sampled interface profile of a report.
func (s *Store) LoadProfile(reportID string) (*Profile, error) {
	csvPath := filepath.Join(s.baseDir, reportID, "profile.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	profile := &Profile{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 3 {
			continue
		}
		angle, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, err
		}
		dist, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, err
		}
		curv, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, err
		}
		profile.Angles = append(profile.Angles, angle)
		profile.Distances = append(profile.Distances, dist)
		profile.Curvatures = append(profile.Curvatures, curv)
	}

	return profile, nil
}
