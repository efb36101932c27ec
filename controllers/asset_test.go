package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docspot/docspot-api/utils"
)

type fakeDeleter struct {
	ok       bool
	err      error
	publicID string
}

func (f *fakeDeleter) Delete(ctx context.Context, publicID string) (bool, error) {
	f.publicID = publicID
	return f.ok, f.err
}

func newAssetApp(deleter utils.AssetDeleter) *fiber.App {
	Deleter = deleter

	app := fiber.New()
	app.Post("/assets/delete", DeleteAsset)
	app.Options("/assets/delete", AssetPreflight)
	return app
}

func doAssetRequest(t *testing.T, app *fiber.App, method, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/assets/delete", reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &payload)
	}
	return resp, payload
}

func TestDeleteAssetSuccess(t *testing.T) {
	deleter := &fakeDeleter{ok: true}
	app := newAssetApp(deleter)

	resp, payload := doAssetRequest(t, app, http.MethodPost, `{"publicId":"abc"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "abc", deleter.publicID)
}

func TestDeleteAssetMissingPublicID(t *testing.T) {
	app := newAssetApp(&fakeDeleter{ok: true})

	resp, payload := doAssetRequest(t, app, http.MethodPost, `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, payload["success"])
}

func TestDeleteAssetUpstreamNotOK(t *testing.T) {
	app := newAssetApp(&fakeDeleter{ok: false})

	resp, payload := doAssetRequest(t, app, http.MethodPost, `{"publicId":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, payload["success"])
}

func TestDeleteAssetUpstreamError(t *testing.T) {
	app := newAssetApp(&fakeDeleter{err: errors.New("upstream unreachable")})

	resp, payload := doAssetRequest(t, app, http.MethodPost, `{"publicId":"abc"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, payload["success"])
}

func TestDeleteAssetMethodNotAllowed(t *testing.T) {
	app := newAssetApp(&fakeDeleter{ok: true})

	resp, _ := doAssetRequest(t, app, http.MethodGet, "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestDeleteAssetPreflight(t *testing.T) {
	app := newAssetApp(&fakeDeleter{ok: true})

	req := httptest.NewRequest(http.MethodOptions, "/assets/delete", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, raw)
}
