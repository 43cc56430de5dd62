package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"magicvilla/internal/apiclient"
	"magicvilla/internal/envelope"
	"magicvilla/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAPI records the calls the web tier makes and answers with canned envelopes.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string
	auth  []string
	body  []string
	reply map[string]envelope.Response
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	b, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.auth = append(f.auth, r.Header.Get("Authorization"))
	f.body = append(f.body, string(b))
	env, ok := f.reply[key]
	f.mu.Unlock()

	if !ok {
		env = envelope.Fail(http.StatusNotFound)
	}
	// Like the API tier, a 204 outcome travels in the envelope over HTTP 200.
	status := env.StatusCode
	if status == http.StatusNoContent {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func setup(t *testing.T, reply map[string]envelope.Response) (*fiber.App, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{reply: reply}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client := apiclient.New()
	app := fiber.New()
	RegisterRoutes(app,
		NewVillaService(client, srv.URL+"/", "tok"),
		NewVillaNumberService(client, srv.URL, "tok"),
		zap.NewNop())
	return app, api
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func form(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestVillaService_BuildsRequests(t *testing.T) {
	api := &fakeAPI{reply: map[string]envelope.Response{
		"PUT /api/VillaApi/4": envelope.Empty(http.StatusNoContent),
	}}
	srv := httptest.NewServer(api)
	defer srv.Close()

	svc := NewVillaService(apiclient.New(), srv.URL, "tok")
	env, err := svc.Update(context.Background(), model.VillaUpdateDTO{ID: 4, Name: "Royal"})
	require.NoError(t, err)
	assert.True(t, env.IsSuccess)
	assert.Equal(t, http.StatusNoContent, env.StatusCode)

	require.Len(t, api.calls, 1)
	assert.Equal(t, "PUT /api/VillaApi/4", api.calls[0])
	assert.Equal(t, "Bearer tok", api.auth[0])
	assert.Contains(t, api.body[0], `"name":"Royal"`)
}

func TestVillaService_NonPositiveIDKeepsPathSegment(t *testing.T) {
	api := &fakeAPI{}
	srv := httptest.NewServer(api)
	defer srv.Close()

	villas := NewVillaService(apiclient.New(), srv.URL, "tok")
	numbers := NewVillaNumberService(apiclient.New(), srv.URL, "tok")
	ctx := context.Background()

	_, err := villas.Get(ctx, 0)
	require.NoError(t, err)
	_, err = villas.Delete(ctx, -3)
	require.NoError(t, err)
	_, err = numbers.Get(ctx, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"GET /api/VillaApi/0",
		"DELETE /api/VillaApi/-3",
		"GET /api/VillaNumberApi/0",
	}, api.calls)
}

func TestVillaDetail_ZeroIDRendersAPIRejection(t *testing.T) {
	app, api := setup(t, map[string]envelope.Response{
		"GET /api/VillaApi/0": envelope.Fail(http.StatusBadRequest, "id must be greater than zero"),
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/villas/0", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "id must be greater than zero")
	assert.Equal(t, []string{"GET /api/VillaApi/0"}, api.calls)
}

func TestIndex(t *testing.T) {
	app, _ := setup(t, map[string]envelope.Response{
		"GET /api/VillaApi": envelope.List(http.StatusOK, []model.VillaDTO{
			{ID: 1, Name: "Royal Villa", Rate: 200},
			{ID: 2, Name: "<Pool Villa>", Rate: 300},
		}),
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, `href="/villas/1"`)
	assert.Contains(t, body, "Royal Villa")
	assert.Contains(t, body, "&lt;Pool Villa&gt;")
	assert.Contains(t, body, "200.00")
}

func TestVillaDetail_UnsuccessfulEnvelope(t *testing.T) {
	app, _ := setup(t, map[string]envelope.Response{
		"GET /api/VillaApi/9": envelope.Fail(http.StatusNotFound, "villa 9 not found"),
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/villas/9", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "villa 9 not found")
}

func TestVillaDetail(t *testing.T) {
	app, _ := setup(t, map[string]envelope.Response{
		"GET /api/VillaApi/1": envelope.OK(http.StatusOK, model.VillaDTO{ID: 1, Name: "Royal Villa", Details: "sea view"}),
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/villas/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "sea view")
	assert.Contains(t, body, `action="/villas/1"`)
}

func TestCreateVilla(t *testing.T) {
	t.Run("redirects on success", func(t *testing.T) {
		app, api := setup(t, map[string]envelope.Response{
			"POST /api/VillaApi": envelope.OK(http.StatusCreated, model.VillaDTO{ID: 3, Name: "Beach"}),
		})

		resp, err := app.Test(form(http.MethodPost, "/villas", url.Values{
			"name": {"Beach"}, "rate": {"150.5"}, "sqft": {"400"}, "occupancy": {"3"},
		}), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))

		var sent model.VillaCreateDTO
		require.NoError(t, json.Unmarshal([]byte(api.body[0]), &sent))
		assert.Equal(t, model.VillaCreateDTO{Name: "Beach", Rate: 150.5, Sqft: 400, Occupancy: 3}, sent)
	})

	t.Run("renders api error messages", func(t *testing.T) {
		app, _ := setup(t, map[string]envelope.Response{
			"POST /api/VillaApi": envelope.Fail(http.StatusBadRequest, "Villa already exists!"),
		})

		resp, err := app.Test(form(http.MethodPost, "/villas", url.Values{"name": {"Beach"}}), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "Villa already exists!")
	})
}

func TestUpdateAndDeleteVilla(t *testing.T) {
	app, api := setup(t, map[string]envelope.Response{
		"PUT /api/VillaApi/2":    envelope.Empty(http.StatusNoContent),
		"DELETE /api/VillaApi/2": envelope.Empty(http.StatusNoContent),
	})

	resp, err := app.Test(form(http.MethodPost, "/villas/2", url.Values{"name": {"Renamed"}}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/villas/2", resp.Header.Get("Location"))

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/villas/2/delete", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	assert.Equal(t, []string{"PUT /api/VillaApi/2", "DELETE /api/VillaApi/2"}, api.calls)
	assert.Contains(t, api.body[0], `"id":2`)
}

func TestVillaNumbersPage(t *testing.T) {
	royal := &model.VillaDTO{ID: 1, Name: "Royal Villa"}
	app, _ := setup(t, map[string]envelope.Response{
		"GET /api/VillaNumberApi": envelope.List(http.StatusOK, []model.VillaNumberDTO{{VillaNo: 101, VillaID: 1, Villa: royal}}),
		"GET /api/VillaApi":       envelope.List(http.StatusOK, []model.VillaDTO{*royal}),
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/villa-numbers", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "101")
	assert.Contains(t, body, `<option value="1">Royal Villa</option>`)
}

func TestVillaNumberForms(t *testing.T) {
	app, api := setup(t, map[string]envelope.Response{
		"POST /api/VillaNumberApi":       envelope.Fail(http.StatusBadRequest, "Villa ID is invalid!"),
		"PUT /api/VillaNumberApi/101":    envelope.Empty(http.StatusNoContent),
		"DELETE /api/VillaNumberApi/101": envelope.Empty(http.StatusNoContent),
	})

	resp, err := app.Test(form(http.MethodPost, "/villa-numbers", url.Values{"villaNo": {"102"}, "villaID": {"99"}}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Villa ID is invalid!")

	resp, err = app.Test(form(http.MethodPost, "/villa-numbers/101", url.Values{"villaID": {"1"}}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/villa-numbers/101/delete", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/villa-numbers", resp.Header.Get("Location"))

	assert.Contains(t, api.body[1], `"villaNo":101`)
}

func TestUnreachableAPIRenders502(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	app := fiber.New()
	client := apiclient.New()
	RegisterRoutes(app, NewVillaService(client, base, ""), NewVillaNumberService(client, base, ""), zap.NewNop())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Villa API unavailable")
}

func TestNonEnvelopeBodyRenders502(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, "<html>gateway timeout</html>")
	}))
	defer srv.Close()

	app := fiber.New()
	client := apiclient.New()
	RegisterRoutes(app, NewVillaService(client, srv.URL, ""), NewVillaNumberService(client, srv.URL, ""), zap.NewNop())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/villas/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
