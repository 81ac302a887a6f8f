//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/strikelab/midipad/cmd"
	"github.com/strikelab/midipad/config"
	"github.com/strikelab/midipad/session"
)

type strike struct {
	deltaTicks uint32
	key        uint8
	velocity   uint8
}

// writeSession writes a one-track SMF at 120 bpm with 960 ticks per
// quarter, so 960 delta ticks are exactly half a second.
func writeSession(t *testing.T, path string, strikes []strike) {
	t.Helper()

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(960)
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	for _, st := range strikes {
		tr.Add(st.deltaTicks, midi.NoteOn(9, st.key, st.velocity))
		tr.Add(0, midi.NoteOff(9, st.key))
	}
	tr.Close(0)
	if err := s.Add(tr); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteFile(path); err != nil {
		t.Fatal(err)
	}
}

func writeFixtureDir(t *testing.T) string {
	dir := t.TempDir()
	writeSession(t, filepath.Join(dir, "p1s1.mid"), []strike{
		{0, 38, 80},    // UE at 0.0s
		{960, 44, 60},  // LF at 0.5s
		{960, 36, 100}, // RF at 1.0s
	})
	writeSession(t, filepath.Join(dir, "p2s1.mid"), []strike{
		{0, 36, 90},
		{1920, 36, 70},
	})
	return dir
}

func TestWholeSessionPipeline(t *testing.T) {
	dir := writeFixtureDir(t)

	table, err := session.New(nil).Run(dir, config.Default())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(table.Rows, 2)

	first := table.Rows[0]
	assert.Equal("Patient 1 session 1", first.Label)
	assert.Equal(3.0, first.Total.Count)
	assert.Equal(1.0, first.UE.Count)
	assert.Equal(1.0, first.LF.Count)
	assert.Equal(1.0, first.RF.Count)
	assert.Equal(80.0, first.UE.VelocityMean)

	second := table.Rows[1]
	assert.Equal(2.0, second.RF.Count)
	assert.InDelta(80.0, second.RF.VelocityMean, 1e-9)
}

func TestDecodeFailureAbortsPipeline(t *testing.T) {
	dir := writeFixtureDir(t)
	if err := os.WriteFile(filepath.Join(dir, "zz-junk.mid"), []byte("not midi"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := session.New(nil).Run(dir, config.Default())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "zz-junk.mid")
}

func TestAnalyzeEndpoint(t *testing.T) {
	dir := writeFixtureDir(t)

	body, err := json.Marshal(map[string]any{
		"dir":     dir,
		"metrics": []string{"Name", "Total_Counts", "RF_Counts"},
	})
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	cmd.HandleAnalyze(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var out cmd.AnalyzeResponse
	assert.NoError(json.Unmarshal(respBody, &out))
	assert.NotEmpty(out.RequestID)
	assert.Equal([]string{"Name", "Total_Counts", "RF_Counts"}, out.Columns)
	assert.Equal([][]string{
		{"Patient 1 session 1", "3", "1"},
		{"Patient 2 session 1", "2", "2"},
	}, out.Rows)
}
