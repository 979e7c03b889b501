package styles

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseRole(t *testing.T) {
	for _, name := range []string{"title", "subheader", "header", "data", "favorable", "neutral", "unfavorable"} {
		r, err := ParseRole(name)
		require.NoError(t, err)
		assert.Equal(t, Role(name), r)
	}

	_, err := ParseRole("")
	assert.Error(t, err)
	_, err = ParseRole("warning")
	assert.ErrorContains(t, err, `unknown style role "warning"`)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		numFmt  string
		wantErr bool
	}{
		{"", FormatNone, "", false},
		{"currency", FormatCurrency, "$#,##0.00", false},
		{"percent", FormatPercent, "0.0%", false},
		{"integer", FormatInteger, "#,##0", false},
		{"date", "", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.numFmt, got.NumFmt())
	}
}

func TestFor(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  Preset
	}{
		{"float keeps format", 2.5, Preset{RoleData, FormatCurrency}},
		{"int keeps format", 100, Preset{RoleData, FormatCurrency}},
		{"text drops format", "$15 - $45", Preset{RoleData, FormatNone}},
		{"nil drops format", nil, Preset{RoleData, FormatNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, For(RoleData, FormatCurrency, tt.value))
		})
	}
}

func TestPresetStyle(t *testing.T) {
	s := Preset{Role: RoleHeader}.Style()
	assert.True(t, s.Font.Bold)
	assert.Equal(t, "#FFFFFF", s.Font.Color)
	assert.Equal(t, []string{"#1976D2"}, s.Fill.Color)
	assert.Nil(t, s.CustomNumFmt)

	s = Preset{Role: RoleData, Format: FormatPercent}.Style()
	require.NotNil(t, s.CustomNumFmt)
	assert.Equal(t, "0.0%", *s.CustomNumFmt)
	assert.Equal(t, "center", s.Alignment.Horizontal)

	s = Preset{Role: RoleData, Format: FormatCurrency}.Style()
	assert.Equal(t, "right", s.Alignment.Horizontal)

	fav := Preset{Role: RoleFavorable}.Style()
	unfav := Preset{Role: RoleUnfavorable}.Style()
	assert.NotEqual(t, fav.Fill.Color, unfav.Fill.Color)
	assert.NotEqual(t, fav.Font.Color, unfav.Font.Color)
}

func TestRegistry(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	r := NewRegistry(f, zerolog.Nop())

	fav := Preset{Role: RoleFavorable}
	id1, err := r.ID(fav)
	require.NoError(t, err)
	id2, err := r.ID(fav)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	cur, err := r.ID(Preset{Role: RoleData, Format: FormatCurrency})
	require.NoError(t, err)
	assert.NotEqual(t, id1, cur)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []Preset{fav, {Role: RoleData, Format: FormatCurrency}}, r.Presets())

	got, ok := r.Lookup(fav)
	assert.True(t, ok)
	assert.Equal(t, id1, got)
	_, ok = r.Lookup(Preset{Role: RoleTitle})
	assert.False(t, ok)
}
