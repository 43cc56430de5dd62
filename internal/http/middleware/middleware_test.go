package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"magicvilla/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(RequestIDFrom(c))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, ridHeader, string(body))
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, existingID, string(body))
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()

	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, time.UTC))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var logData map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logData))

	assert.Equal(t, "http_request", logData["msg"])
	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/test", logData["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.NotNil(t, logData["latency"])
	assert.NotEmpty(t, logData["ts"])
}

func TestLogger_ErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(LoggerWithWriter(&buf, time.UTC))
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/boom", nil))
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	var logData map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logData))
	assert.Equal(t, float64(fiber.StatusTeapot), logData["status"])
}

func TestTracking(t *testing.T) {
	app := fiber.New()
	app.Use(Tracking())

	var scopes []*repository.Tracker
	app.Get("/test", func(c *fiber.Ctx) error {
		tr := repository.TrackerFrom(c.UserContext())
		scopes = append(scopes, tr)
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, _ := app.Test(httptest.NewRequest("GET", "/test", nil))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	require.Len(t, scopes, 2)
	assert.NotNil(t, scopes[0])
	assert.NotNil(t, scopes[1])
	assert.NotSame(t, scopes[0], scopes[1], "each request gets its own scope")
}

func TestBearerAuth(t *testing.T) {
	app := fiber.New()
	app.Use(BearerAuth("s3cret"))
	app.Get("/villas", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Post("/villas", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })

	t.Run("reads are open", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest("GET", "/villas", nil))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("write without token", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest("POST", "/villas", nil))
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, false, body["isSuccess"])
		assert.Equal(t, float64(fiber.StatusUnauthorized), body["statusCode"])
		assert.Nil(t, body["result"])
	})

	t.Run("write with wrong token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/villas", nil)
		req.Header.Set("Authorization", "Bearer nope")
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("write with token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/villas", nil)
		req.Header.Set("Authorization", "Bearer s3cret")
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("empty token disables check", func(t *testing.T) {
		open := fiber.New()
		open.Use(BearerAuth(""))
		open.Post("/villas", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })

		resp, _ := open.Test(httptest.NewRequest("POST", "/villas", nil))
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})
}
