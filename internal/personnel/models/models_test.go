package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "personnel/pkg/domain-errors"
	"personnel/pkg/optional"
)

func TestParseDate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		d, err := ParseDate("1990-05-17")
		require.NoError(t, err)
		assert.True(t, d.Equal(NewDate(1990, time.May, 17)))
	})

	t.Run("rfc3339 timestamp compares equal to the same day", func(t *testing.T) {
		d, err := ParseDate("1990-05-17T00:00:00Z")
		require.NoError(t, err)
		assert.True(t, d.Equal(NewDate(1990, time.May, 17)))
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := ParseDate("17/05/1990")
		assert.Error(t, err)
	})
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		On Date `json:"on"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"on":"2023-01-01"}`), &payload))
	assert.Equal(t, "2023-01-01", payload.On.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"on":"2023-01-01"}`, string(out))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2023-12-31", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestNewPage(t *testing.T) {
	t.Run("offset and limit", func(t *testing.T) {
		p, err := NewPage(2, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, p.Offset())
		assert.Equal(t, 2, p.Limit())
	})

	t.Run("defaults describe the first page of ten", func(t *testing.T) {
		p, err := NewPage(DefaultPage, DefaultPageSize)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Offset())
		assert.Equal(t, 10, p.Limit())
	})

	t.Run("offset never wraps negative", func(t *testing.T) {
		for _, tc := range []struct {
			number, size, offset int
		}{
			{math.MaxInt/10 + 1, 10, math.MaxInt / 10 * 10},
			{math.MaxInt/10 + 2, 10, math.MaxInt},
			{math.MaxInt, MaxPageSize, math.MaxInt},
			{math.MaxInt/10 + 1, 1, math.MaxInt / 10},
		} {
			p, err := NewPage(tc.number, tc.size)
			require.NoError(t, err)
			assert.Equal(t, tc.offset, p.Offset(), "page %d size %d", tc.number, tc.size)
		}
	})

	for _, tc := range []struct {
		name         string
		number, size int
	}{
		{"page zero", 0, 10},
		{"negative page", -1, 10},
		{"size zero", 1, 0},
		{"size over max", 1, 101},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPage(tc.number, tc.size)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidRequest))
		})
	}
}

func TestPersonInputValidate(t *testing.T) {
	valid := PersonInput{
		Name:       "Ana Souza",
		BirthDate:  NewDate(1990, time.May, 17),
		Sex:        SexFemale,
		MotherName: "Maria",
		FatherName: "Jose",
	}
	require.NoError(t, valid.Validate())

	badSex := valid
	badSex.Sex = "OTHER"
	assert.True(t, dErrors.HasCode(badSex.Validate(), dErrors.CodeInvalidRequest))

	noBirth := valid
	noBirth.BirthDate = Date{}
	assert.True(t, dErrors.HasCode(noBirth.Validate(), dErrors.CodeInvalidRequest))
}

func TestPersonChangesApplyKeepsOmittedFields(t *testing.T) {
	p := &Person{Name: "Ana", Sex: SexFemale, MotherName: "Maria", FatherName: "Jose"}
	changes := PersonChanges{Name: optional.Of(" Ana Lima ")}
	require.NoError(t, changes.Validate())
	changes.Apply(p)

	assert.Equal(t, "Ana Lima", p.Name)
	assert.Equal(t, "Maria", p.MotherName)
	assert.Equal(t, SexFemale, p.Sex)
}

func TestPersonChangesRejectsExplicitEmpty(t *testing.T) {
	changes := PersonChanges{MotherName: optional.Of("")}
	assert.False(t, changes.IsEmpty())
	assert.True(t, dErrors.HasCode(changes.Validate(), dErrors.CodeInvalidRequest))
}

func TestUnitAndCityValidation(t *testing.T) {
	unit := UnitInput{Name: "  Secretaria de Saude ", Acronym: " SES "}
	unit.Normalize()
	require.NoError(t, unit.Validate())
	assert.Equal(t, "SES", unit.Acronym)

	long := UnitInput{Name: "x", Acronym: "ABCDEFGHIJKLMNOPQRSTU"}
	assert.Error(t, long.Validate())

	city := CityInput{Name: "Cuiaba", StateCode: "mt"}
	city.Normalize()
	require.NoError(t, city.Validate())
	assert.Equal(t, "MT", city.StateCode)

	badState := CityInput{Name: "Cuiaba", StateCode: "MTX"}
	assert.Error(t, badState.Validate())
}

func TestUnitChangesEmpty(t *testing.T) {
	assert.True(t, UnitChanges{}.IsEmpty())
	assert.False(t, UnitChanges{Acronym: optional.Of("X")}.IsEmpty())
}
