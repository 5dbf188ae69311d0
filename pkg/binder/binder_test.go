package binder

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bookriapp/bookri/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Name   string `json:"name"   query:"name"   validate:"required"`
	Period string `json:"period" query:"period" default:"day" validate:"oneof=day week month year"`
	Date   string `json:"date"   query:"date"   validate:"omitempty,date"`
	Pages  int    `json:"pages"  query:"pages"  validate:"omitempty,gte=1"`
}

func bindRequest(t *testing.T, method, target, body string, i interface{}) error {
	t.Helper()

	b, err := New()
	require.NoError(t, err)

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	return b.Bind(i, c)
}

func TestBindJSON(t *testing.T) {
	t.Parallel()

	p := testPayload{}
	err := bindRequest(t, http.MethodPost, "/", `{"name":"Dune","pages":12}`, &p)
	require.NoError(t, err)
	assert.Equal(t, "Dune", p.Name)
	assert.Equal(t, 12, p.Pages)
	// defaults fill unset fields
	assert.Equal(t, "day", p.Period)
}

func TestBindQueryParams(t *testing.T) {
	t.Parallel()

	p := testPayload{}
	err := bindRequest(t, http.MethodGet, "/?name=Dune&period=week", "", &p)
	require.NoError(t, err)
	assert.Equal(t, "Dune", p.Name)
	assert.Equal(t, "week", p.Period)
}

func TestBindValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"missing required", `{"period":"day"}`, `"name" is required`},
		{"bad oneof", `{"name":"Dune","period":"decade"}`, `"period" must be one of the following: "day", "week", "month", "year"`},
		{"bad date", `{"name":"Dune","date":"Jan 2"}`, `"date" should be in the format of YYYY-MM-DD`},
		{"bad gte", `{"name":"Dune","pages":-1}`, `"pages" must be greater than or equal to 1`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := testPayload{}
			err := bindRequest(t, http.MethodPost, "/", tt.body, &p)
			require.Error(t, err)
			cerr := &errcodes.Error{}
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, http.StatusUnprocessableEntity, cerr.HTTPCode)
			assert.Equal(t, tt.msg, cerr.Message)
		})
	}
}

func TestBindUnknownParameter(t *testing.T) {
	t.Parallel()

	p := testPayload{}
	err := bindRequest(t, http.MethodPost, "/", `{"name":"Dune","nope":true}`, &p)
	require.Error(t, err)
	cerr := &errcodes.Error{}
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "unknown_parameter", cerr.Code)
}

func TestBindEmptyBody(t *testing.T) {
	t.Parallel()

	p := testPayload{}
	err := bindRequest(t, http.MethodPost, "/", "", &p)
	require.Error(t, err)
	cerr := &errcodes.Error{}
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "empty_request_body", cerr.Code)
}
