package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(2030, time.January, 5)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2030-01-05"`, string(b))

	var got Date
	require.NoError(t, json.Unmarshal([]byte(`"2030-01-05"`), &got))
	assert.Equal(t, d, got)

	assert.Error(t, json.Unmarshal([]byte(`"05/01/2030"`), &got))
	assert.Error(t, json.Unmarshal([]byte(`20300105`), &got))

	require.NoError(t, json.Unmarshal([]byte(`null`), &got))
	assert.True(t, got.IsZero())
}

func TestDate_Scan(t *testing.T) {
	want := NewDate(2030, time.March, 9)

	tests := []struct {
		name string
		src  any
	}{
		{"time", time.Date(2030, time.March, 9, 0, 0, 0, 0, time.UTC)},
		{"string", "2030-03-09"},
		{"datetime string", "2030-03-09 00:00:00+00:00"},
		{"bytes", []byte("2030-03-09")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, want, d)
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("garbage"))
}

func TestDate_ValueAndCompare(t *testing.T) {
	d := NewDate(2030, time.March, 9)
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2030-03-09", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	assert.True(t, NewDate(2030, time.March, 10).After(d))
	assert.False(t, d.After(d))
	assert.Equal(t, d, DateOf(time.Date(2030, time.March, 9, 23, 59, 0, 0, time.Local)))
}

func TestPriority_Valid(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		assert.True(t, p.Valid())
	}
	for _, p := range []Priority{"", "LOW", "urgent", "baja"} {
		assert.False(t, p.Valid())
	}
}
