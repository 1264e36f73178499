package create_client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/internal/directory/fixtures"
	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/clients"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/clients/models"
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
)

func post(h *Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/clients", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	dir := fixtures.NewDemoDirectory()
	h := NewHandler(clients.NewService(nil, dir, logger.NewNop()), logger.NewNop())

	body := `{
		"firstName": "Lucía",
		"lastName": "Hernández",
		"email": "Lucia@Example.com",
		"phone": "555 111 2222",
		"countryCode": "+52"
	}`

	w := post(h, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.ClientResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Lucía Hernández", resp.FullName)
	assert.Equal(t, "lucia@example.com", resp.Email)

	_, ok := dir.LookupClient(domain.ClientID(resp.ID))
	assert.True(t, ok, "created client must be visible to the calendar")

	w = post(h, body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), msgEmailTaken)

	w = post(h, `{"firstName": "", "lastName": "X", "email": "x@example.com", "phone": "1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgInvalidData)

	w = post(h, `{"firstName": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgInvalidRequestBody)
}
