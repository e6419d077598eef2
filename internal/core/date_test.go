// AngelaMos | 2026
// date_test.go

package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var payload struct {
		Launch Date `json:"data_lancamento"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"data_lancamento":"2024-02-29"}`), &payload))
	assert.Equal(t, NewDate(2024, time.February, 29), payload.Launch)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data_lancamento":"2024-02-29"}`, string(out))
}

func TestDateJSONRejectsBadInput(t *testing.T) {
	var d Date

	require.ErrorIs(t, json.Unmarshal([]byte(`"2023-02-29"`), &d), ErrInvalidInput)
	require.Error(t, json.Unmarshal([]byte(`20230101`), &d))
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2023, 5, 1, 13, 45, 0, 0, time.FixedZone("X", 3600))))
	assert.Equal(t, "2023-05-01", d.String())

	require.NoError(t, d.Scan("2022-12-31"))
	assert.Equal(t, "2022-12-31", d.String())

	require.NoError(t, d.Scan([]byte("2021-01-02")))
	assert.Equal(t, "2021-01-02", d.String())

	require.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2020, time.March, 3).Value()
	require.NoError(t, err)
	assert.Equal(t, "2020-03-03", v)
}
