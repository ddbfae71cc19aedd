package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationJSONShape(t *testing.T) {
	loc := Location{Lng: -97.74, Lat: 30.27, City: "Austin", State: "TX"}

	data, err := json.Marshal(loc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[-97.74,30.27],"city":"Austin","state":"TX"}`, string(data))

	var back Location
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, loc, back)
}

func TestUserJSONHidesPassword(t *testing.T) {
	u := UserModel{
		Base:      Base{ID: "u1"},
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret-hash",
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret-hash")
	assert.Contains(t, string(data), `"_id":"u1"`)
	assert.Contains(t, string(data), `"firstName":"Ada"`)
}

func TestUsername(t *testing.T) {
	u := UserModel{FirstName: "Grace", LastName: "Hopper"}
	assert.Equal(t, "Grace Hopper", u.Username())
}
