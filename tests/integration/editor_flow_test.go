package integration

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
	Meta *struct {
		Total int64 `json:"total"`
	} `json:"meta"`
}

func decode(t *testing.T, body []byte) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestProductLifecycle(t *testing.T) {
	ts := NewTestServer(t)
	token := ts.SignIn()

	// create via JSON
	w := ts.Request(http.MethodPost, "/api/v1/catalog/products", map[string]any{
		"name":          "Canvas Tote",
		"category":      "bags",
		"current_price": "149.99",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Product struct {
			ID string `json:"id"`
		} `json:"product"`
		Created bool `json:"created"`
	}
	env := decode(t, w.Body.Bytes())
	require.True(t, env.Success)
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.True(t, created.Created)
	require.NotEmpty(t, created.Product.ID)

	// resubmitting the same values must not touch the row
	w = ts.Request(http.MethodPut, "/api/v1/catalog/products/"+created.Product.ID, map[string]any{
		"name":          "Canvas Tote",
		"category":      "bags",
		"current_price": "149.99",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"no_changes":true`)

	// a changed field goes through the diff path
	w = ts.Request(http.MethodPut, "/api/v1/catalog/products/"+created.Product.ID, map[string]any{
		"name":          "Canvas Tote",
		"category":      "bags",
		"current_price": "129.99",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"current_price"`)
	assert.NotContains(t, w.Body.String(), `"no_changes":true`)

	w = ts.Request(http.MethodGet, "/api/v1/catalog/products", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	env = decode(t, w.Body.Bytes())
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(1), env.Meta.Total)

	w = ts.Request(http.MethodDelete, "/api/v1/catalog/products/"+created.Product.ID, nil, token)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = ts.Request(http.MethodGet, "/api/v1/catalog/products/"+created.Product.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCampaignProductLifecycle(t *testing.T) {
	ts := NewTestServer(t)
	token := ts.SignIn()

	w := ts.Request(http.MethodPost, "/api/v1/catalog/campaign-products", map[string]any{
		"name":          "Holiday Bundle",
		"price":         "199.00",
		"purchase_link": "https://shop.example.com/holiday-bundle",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Product struct {
			ID string `json:"id"`
		} `json:"product"`
		Created bool `json:"created"`
	}
	env := decode(t, w.Body.Bytes())
	require.True(t, env.Success)
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.True(t, created.Created)
	require.NotEmpty(t, created.Product.ID)

	// not recommended yet, so the recommended listing stays empty
	w = ts.Request(http.MethodGet, "/api/v1/catalog/campaign-products/recommended", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	env = decode(t, w.Body.Bytes())
	assert.Equal(t, "[]", strings.TrimSpace(string(env.Data)))

	w = ts.Request(http.MethodPut, "/api/v1/catalog/campaign-products/"+created.Product.ID, map[string]any{
		"is_recommended": true,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_recommended"`)

	w = ts.Request(http.MethodGet, "/api/v1/catalog/campaign-products/recommended", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Holiday Bundle")

	w = ts.Request(http.MethodGet, "/api/v1/catalog/campaign-products", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	env = decode(t, w.Body.Bytes())
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(1), env.Meta.Total)

	w = ts.Request(http.MethodDelete, "/api/v1/catalog/campaign-products/"+created.Product.ID, nil, token)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = ts.Request(http.MethodGet, "/api/v1/catalog/campaign-products/"+created.Product.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductCategoriesEndpoint(t *testing.T) {
	ts := NewTestServer(t)
	token := ts.SignIn()

	for _, p := range []map[string]any{
		{"name": "Canvas Tote", "category": "bags", "current_price": "149.99"},
		{"name": "Leather Tote", "category": "bags", "current_price": "249.99"},
		{"name": "Desk Lamp", "category": "lighting", "current_price": "89.00"},
	} {
		w := ts.Request(http.MethodPost, "/api/v1/catalog/products", p, token)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := ts.Request(http.MethodGet, "/api/v1/catalog/products/categories", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	env := decode(t, w.Body.Bytes())
	var categories []string
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.Equal(t, []string{"bags", "lighting"}, categories)

	// category filter narrows the listing through the same query param
	w = ts.Request(http.MethodGet, "/api/v1/catalog/products?category=bags", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	env = decode(t, w.Body.Bytes())
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(2), env.Meta.Total)
	assert.NotContains(t, string(env.Data), "Desk Lamp")
}

func TestProductImageUploadThroughForm(t *testing.T) {
	ts := NewTestServer(t)
	token := ts.SignIn()

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	require.NoError(t, form.WriteField("name", "Desk Lamp"))
	require.NoError(t, form.WriteField("category", "lighting"))
	require.NoError(t, form.WriteField("current_price", "89.00"))

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="lamp.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	part, err := form.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'})
	require.NoError(t, err)
	require.NoError(t, form.Close())

	w := ts.RawRequest(http.MethodPost, "/api/v1/catalog/products", body, form.FormDataContentType(), token)
	require.Equal(t, http.StatusCreated, w.Code)

	env := decode(t, w.Body.Bytes())
	var created struct {
		Product struct {
			ImageURL string `json:"image_url"`
		} `json:"product"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Contains(t, created.Product.ImageURL, "https://cdn.test.local/shop-images/images/")
	assert.Equal(t, 1, ts.Store.Len())
}

func TestProductValidationError(t *testing.T) {
	ts := NewTestServer(t)
	token := ts.SignIn()

	w := ts.Request(http.MethodPost, "/api/v1/catalog/products", map[string]any{
		"name": "No Category",
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decode(t, w.Body.Bytes())
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Fields, "category")
}

func TestTrafficProductCSVImport(t *testing.T) {
	ts := NewTestServer(t)
	token := ts.SignIn()

	csv := strings.Join([]string{
		"name,category,current_price,original_price,image_url,qc_image_url,purchase_link",
		"Running Shoe,footwear,59.99,79.99,https://img.example.com/shoe.jpg,https://img.example.com/shoe-qc.jpg,https://shop.example.com/shoe",
		",footwear,10.00,,https://img.example.com/x.jpg,https://img.example.com/x-qc.jpg,https://shop.example.com/x",
		"Rain Jacket,outdoor,120.00,150.00,https://img.example.com/jacket.jpg,https://img.example.com/jacket-qc.jpg,https://shop.example.com/jacket",
	}, "\n")

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	part, err := form.CreateFormFile("file", "products.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	w := ts.RawRequest(http.MethodPost, "/api/v1/imports/traffic-products", body, form.FormDataContentType(), token)
	require.Equal(t, http.StatusOK, w.Code)

	env := decode(t, w.Body.Bytes())
	var result struct {
		Total    int `json:"total"`
		Imported int `json:"imported"`
		Failed   int `json:"failed"`
		Errors   []struct {
			Row    int    `json:"row"`
			Column string `json:"column"`
			Code   string `json:"code"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "name", result.Errors[0].Column)

	w = ts.Request(http.MethodGet, "/api/v1/catalog/traffic-products", nil, token)
	env = decode(t, w.Body.Bytes())
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(2), env.Meta.Total)
}

func TestSiteContentRoundTrip(t *testing.T) {
	ts := NewTestServer(t)
	token := ts.SignIn()

	w := ts.Request(http.MethodPut, "/api/v1/site/app-download", map[string]string{
		"ios_app_store":       "https://apps.apple.com/app/id123",
		"android_google_play": "https://play.google.com/store/apps/details?id=shop",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.Request(http.MethodGet, "/api/v1/site/app-download", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://apps.apple.com/app/id123")

	w = ts.Request(http.MethodPut, "/api/v1/site/tracking", map[string]string{
		"google_analytics": "G-TEST12345",
		"facebook_pixel":   "1234567890",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.Request(http.MethodGet, "/api/v1/site/tracking", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "G-TEST12345")
}

func TestAuthGuardsCatalogRoutes(t *testing.T) {
	ts := NewTestServer(t)

	w := ts.Request(http.MethodGet, "/api/v1/catalog/products", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.Request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
