package store

import (
	"encoding/json"
	"io"
	"os"
)

// ExportData is the flattened JSON form of a saved run.
type ExportData struct {
	Meta      RunMetadata  `json:"meta"`
	Times     []float64    `json:"times"`
	Positions [][3]float64 `json:"positions"`
	Attitudes [][4]float64 `json:"attitudes"`
	Speeds    []float64    `json:"speeds"`
}

func (s *Store) buildExport(runID string) (*ExportData, error) {
	meta, err := s.LoadMeta(runID)
	if err != nil {
		return nil, err
	}
	states, err := s.LoadStates(runID)
	if err != nil {
		return nil, err
	}

	data := &ExportData{
		Meta:      *meta,
		Times:     make([]float64, len(states)),
		Positions: make([][3]float64, len(states)),
		Attitudes: make([][4]float64, len(states)),
		Speeds:    make([]float64, len(states)),
	}
	for i, st := range states {
		data.Times[i] = st.T
		data.Positions[i] = [3]float64{st.Pos.X, st.Pos.Y, st.Pos.Z}
		data.Attitudes[i] = [4]float64{st.Att.W, st.Att.X, st.Att.Y, st.Att.Z}
		data.Speeds[i] = st.Vel.Norm()
	}
	return data, nil
}

// ExportJSON writes a run to w as indented JSON.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	data, err := s.buildExport(runID)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONFile writes a run to the given path.
func (s *Store) ExportJSONFile(runID, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.ExportJSON(runID, f)
}
