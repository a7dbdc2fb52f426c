package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Diseases(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "v1.0.0", s.Version())
	assert.Equal(t, 4, s.Len())

	var ids []string
	for _, d := range s.Diseases() {
		ids = append(ids, d.ID)
		assert.Len(t, d.Foods, 8, "disease %s", d.ID)
	}
	assert.Equal(t, []string{"diabetes", "hypertension", "thyroid", "obesity"}, ids)
}

func TestDefault_DiabetesOrderPreserved(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	d, err := s.Disease("diabetes")
	require.NoError(t, err)

	want := []Verdict{
		VerdictSafe, VerdictSafe, VerdictSafe, VerdictSafe,
		VerdictAvoid, VerdictAvoid, VerdictModerate, VerdictModerate,
	}
	var got []Verdict
	for _, f := range d.Foods {
		got = append(got, f.Verdict)
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "db1", d.Foods[0].ID)
	assert.Equal(t, "Broccoli", d.Foods[0].Name)

	counts := d.VerdictCounts()
	assert.Equal(t, 4, counts[VerdictSafe])
	assert.Equal(t, 2, counts[VerdictAvoid])
	assert.Equal(t, 2, counts[VerdictModerate])
}

func TestDisease_Unknown(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	_, err = s.Disease("flu")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDiseaseID))
	assert.False(t, s.Has("flu"))
	assert.True(t, s.Has("thyroid"))
}

func TestDisease_ReturnsCopy(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	d, err := s.Disease("obesity")
	require.NoError(t, err)
	d.Foods[0].Name = "mutated"

	again, err := s.Disease("obesity")
	require.NoError(t, err)
	assert.Equal(t, "Leafy Greens", again.Foods[0].Name)
}

func TestFood(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	f, err := s.Food("hypertension", "hp8")
	require.NoError(t, err)
	assert.Equal(t, "Coffee", f.Name)
	assert.Equal(t, VerdictModerate, f.Verdict)

	_, err = s.Food("hypertension", "db1")
	assert.ErrorIs(t, err, ErrUnknownFood)

	_, err = s.Food("nope", "db1")
	assert.ErrorIs(t, err, ErrInvalidDiseaseID)
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	doc := `{
		"version": "v1.2.0",
		"diseases": [
			{"id": "a", "name": "A", "icon": "", "color": "#000000", "description": "", "foods": [
				{"id": "f1", "name": "F", "emoji": "", "verdict": "safe", "reason": "", "nutritionalInfo": ""},
				{"id": "f1", "name": "G", "emoji": "", "verdict": "avoid", "reason": "", "nutritionalInfo": ""}
			]},
			{"id": "a", "name": "A2", "icon": "", "color": "#000000", "description": "", "foods": [
				{"id": "f1", "name": "F", "emoji": "", "verdict": "safe", "reason": "", "nutritionalInfo": ""}
			]}
		]
	}`

	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataset)
	assert.Contains(t, err.Error(), `duplicate disease ID: "a"`)
	assert.Contains(t, err.Error(), `duplicate food ID "f1"`)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{"not json", `{`, nil},
		{"missing diseases", `{"version": "v1.0.0"}`, nil},
		{"bad verdict", `{"version": "v1.0.0", "diseases": [{"id": "a", "name": "A", "icon": "", "color": "#000000", "description": "", "foods": [
			{"id": "f", "name": "F", "emoji": "", "verdict": "great", "reason": "", "nutritionalInfo": ""}]}]}`, nil},
		{"bad color", `{"version": "v1.0.0", "diseases": [{"id": "a", "name": "A", "icon": "", "color": "blue", "description": "", "foods": [
			{"id": "f", "name": "F", "emoji": "", "verdict": "safe", "reason": "", "nutritionalInfo": ""}]}]}`, nil},
		{"empty foods", `{"version": "v1.0.0", "diseases": [{"id": "a", "name": "A", "icon": "", "color": "#000000", "description": "", "foods": []}]}`, nil},
		{"schema, version and duplicates together", `{"version": "2.0", "diseases": [
			{"id": "a", "name": "A", "icon": "", "color": "#000000", "description": "", "foods": [
				{"id": "f", "name": "F", "emoji": "", "verdict": "safe", "reason": "", "nutritionalInfo": ""}]},
			{"id": "a", "name": "B", "icon": "", "color": "red", "description": "", "foods": [
				{"id": "f", "name": "F", "emoji": "", "verdict": "safe", "reason": "", "nutritionalInfo": ""}]}]}`,
			[]string{"/diseases/1/color", `version "2.0" is not a semantic version`, `duplicate disease ID: "a"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDataset)
			for _, w := range tt.want {
				assert.Contains(t, err.Error(), w)
			}
		})
	}
}

func TestParse_Version(t *testing.T) {
	base := `{"version": %q, "diseases": [{"id": "a", "name": "A", "icon": "", "color": "#000000", "description": "", "foods": [
		{"id": "f", "name": "F", "emoji": "", "verdict": "safe", "reason": "", "nutritionalInfo": ""}]}]}`

	tests := []struct {
		version string
		wantErr bool
	}{
		{"v1.0.0", false},
		{"v1.4.2", false},
		{"v2.0.0", true},
		{"1.0.0", true},
		{"latest", true},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			doc := strings.Replace(base, "%q", `"`+tt.version+`"`, 1)
			s, err := Parse([]byte(doc))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDataset)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.version, s.Version())
		})
	}
}

func TestOpen(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())

	path := filepath.Join(t.TempDir(), "foods.json")
	require.NoError(t, os.WriteFile(path, DefaultDocument(), 0o644))

	fromFile, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, s.Diseases(), fromFile.Diseases())

	_, err = Open(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		in   string
		want Verdict
		ok   bool
	}{
		{"safe", VerdictSafe, true},
		{"Moderate", VerdictModerate, true},
		{" AVOID ", VerdictAvoid, true},
		{"maybe", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseVerdict(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	assert.Equal(t, "Moderate", VerdictModerate.Label())
	assert.Equal(t, "Best to Avoid", VerdictAvoid.Headline())
}
