package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/service"
	"github.com/stretchr/testify/assert"
)

// Region and city are optional at signup; a payload without them must make
// it past binding and into the service.
func TestRegisterAcceptsMissingRegionAndCity(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewAuthHandler(service.NewAuthService(db, nil, "secret", 12, 168))

	// Force the first uniqueness check to trip so the request stops at a
	// service error, not a binding error.
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	body := `{
		"full_name": "Rafeef Alsuhaibani",
		"email": "rafeef@example.com",
		"phone": "0512345678",
		"password": "s3cret-pass",
		"national_id": "1234567890",
		"gender": "female",
		"age": 25
	}`
	c, w := ownerContext(t, 0, nil, body)
	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "40005")
	assert.NotContains(t, w.Body.String(), "invalid request")
}
