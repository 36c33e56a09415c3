package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", d.String())

	for _, invalid := range []string{"", "03/09/2024", "2024-3-9", "2024-13-01", "yesterday"} {
		_, err := ParseDate(invalid)
		assert.Error(t, err, "input %q", invalid)
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.March, 9)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-09"`, string(out))

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-09"`), &decoded))
	assert.Equal(t, d, decoded)

	// null and empty string both decode to the zero date.
	require.NoError(t, json.Unmarshal([]byte(`null`), &decoded))
	assert.True(t, decoded.IsZero())
	require.NoError(t, json.Unmarshal([]byte(`""`), &decoded))
	assert.True(t, decoded.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &decoded))
}

func TestDate_Helpers(t *testing.T) {
	d := NewDate(2024, time.February, 28)
	assert.Equal(t, "2024-03-06", d.AddDays(7).String())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.False(t, d.AddDays(1).Before(d))
	assert.True(t, Date{}.IsZero())
	assert.Equal(t, "", Date{}.String())
}
