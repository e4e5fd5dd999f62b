package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFriendAndList(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/api/friends", map[string]string{"nombre": "Laura"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	assert.Equal(t, "Laura", created["nombre"])
	assert.NotZero(t, created["id"])

	w = env.do(t, "POST", "/api/friends", map[string]string{"nombre": "Andres"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, "GET", "/api/friends", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, data, 2)
	// ordenados por nombre
	assert.Equal(t, "Andres", data[0].(map[string]interface{})["nombre"])
	assert.Equal(t, "Laura", data[1].(map[string]interface{})["nombre"])
}

func TestCreateFriendValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/api/friends", map[string]string{"nombre": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, "POST", "/api/friends", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, "GET", "/api/friends", nil)
	assert.Len(t, decodeBody(t, w)["data"], 0)
}

func TestUpdateFriendName(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/api/friends", map[string]string{"nombre": "Laura"})
	id := int(decodeBody(t, w)["id"].(float64))

	w = env.do(t, "PUT", fmt.Sprintf("/api/friends/%d", id), map[string]string{"nombre": "Laura G"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, "GET", "/api/friends", nil)
	data := decodeBody(t, w)["data"].([]interface{})
	assert.Equal(t, "Laura G", data[0].(map[string]interface{})["nombre"])

	w = env.do(t, "PUT", "/api/friends/999", map[string]string{"nombre": "Nadie"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteFriend(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/api/friends", map[string]string{"nombre": "Laura"})
	id := int(decodeBody(t, w)["id"].(float64))

	w = env.do(t, "DELETE", fmt.Sprintf("/api/friends/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, "GET", "/api/friends", nil)
	assert.Len(t, decodeBody(t, w)["data"], 0)

	w = env.do(t, "DELETE", fmt.Sprintf("/api/friends/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
