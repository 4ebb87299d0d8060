package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishimulani16/QR-Code/internal/models"
)

func TestGenerateHandler(t *testing.T) {
	type want struct {
		statusCode int
		checkBody  bool
		isURL      bool
	}

	tests := []struct {
		name        string
		body        string
		contentType string
		want        want
	}{
		{
			name:        "positive: url payload",
			body:        `{"text":"https://example.com"}`,
			contentType: "application/json",
			want: want{
				statusCode: http.StatusCreated,
				checkBody:  true,
				isURL:      true,
			},
		},
		{
			name:        "positive: plain text payload",
			body:        `{"text":"hello world"}`,
			contentType: "application/json",
			want: want{
				statusCode: http.StatusCreated,
				checkBody:  true,
				isURL:      false,
			},
		},
		{
			name:        "positive: http scheme counts as url",
			body:        `{"text":"http://example.com"}`,
			contentType: "application/json",
			want: want{
				statusCode: http.StatusCreated,
				checkBody:  true,
				isURL:      true,
			},
		},
		{
			name:        "negative: empty text",
			body:        `{"text":""}`,
			contentType: "application/json",
			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name:        "negative: whitespace-only text",
			body:        `{"text":"   "}`,
			contentType: "application/json",
			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name:        "negative: invalid JSON",
			body:        `{"text":}`,
			contentType: "application/json",
			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name:        "negative: wrong content type",
			body:        `{"text":"hello"}`,
			contentType: "text/plain",
			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			req := httptest.NewRequest(http.MethodPost, "/api/qrcodes", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			req.AddCookie(env.authCookie(t, "test-user"))

			w := httptest.NewRecorder()
			env.router.ServeHTTP(w, req)

			result := w.Result()
			defer result.Body.Close()

			assert.Equal(t, tt.want.statusCode, result.StatusCode)

			if !tt.want.checkBody {
				return
			}

			var resp models.GenerateResponse
			require.NoError(t, json.NewDecoder(result.Body).Decode(&resp))

			assert.Equal(t, "QR Code generated successfully", resp.Message)
			assert.NotEmpty(t, resp.QRCode.ID)
			assert.Equal(t, tt.want.isURL, resp.QRCode.IsURL)
			assert.False(t, resp.QRCode.GeneratedAt.IsZero())
			assert.True(t, strings.HasPrefix(resp.QRCode.ImageURL, "data:image/png;base64,"))
		})
	}
}

func TestGenerateHandlerKeepsNothingOnValidationFailure(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.authCookie(t, "test-user")

	req := httptest.NewRequest(http.MethodPost, "/api/qrcodes", strings.NewReader(`{"text":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	listReq := httptest.NewRequest(http.MethodGet, "/api/qrcodes", nil)
	listReq.AddCookie(cookie)

	listW := httptest.NewRecorder()
	env.router.ServeHTTP(listW, listReq)
	require.Equal(t, http.StatusOK, listW.Code)

	var resp models.ListResponse
	require.NoError(t, json.NewDecoder(listW.Body).Decode(&resp))
	assert.Empty(t, resp.QRCodes)
	assert.Equal(t, 0, resp.TotalPages)
}
