package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKWithData(t *testing.T) {
	body, err := json.Marshal(OKWithData(map[string]string{"id": "1"}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":true,"data":{"id":"1"}}`, string(body))
}

func TestOKWithEmptyList(t *testing.T) {
	body, err := json.Marshal(OKWithData([]string{}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":true,"data":[]}`, string(body))
}

func TestError(t *testing.T) {
	body, err := json.Marshal(Error("Resource not found"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":false,"error":"Resource not found"}`, string(body))
}
