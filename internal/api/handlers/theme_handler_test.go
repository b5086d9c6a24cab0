package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/folioforge/engine/internal/api/middleware"
	"github.com/folioforge/engine/internal/models"
	appErr "github.com/folioforge/engine/pkg/errors"
)

func TestThemePreview(t *testing.T) {
	h := NewThemeHandler(new(mockThemeService))
	userID := uuid.New()

	t.Run("returns a stylesheet without persisting", func(t *testing.T) {
		body := `{"layout":"grid","primary_color":"#ff0066","background_color":"#ffffff","text_color":"#111827","font_family":"Inter","custom_css":"@import url(x); h1 { color: red; }"}`
		rec := doAuthed(t, http.HandlerFunc(h.Preview), userID, http.MethodPost, "/api/v1/theme/preview", body)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Header().Get("Content-Type"), "text/css")
		css := rec.Body.String()
		require.Contains(t, css, "--primary: #ff0066;")
		require.Contains(t, css, "h1 { color: red; }")
		require.NotContains(t, css, "@import")
	})

	t.Run("bad color is 400", func(t *testing.T) {
		body := `{"layout":"grid","primary_color":"red","background_color":"#ffffff","text_color":"#111827","font_family":"Inter"}`
		rec := doAuthed(t, http.HandlerFunc(h.Preview), userID, http.MethodPost, "/api/v1/theme/preview", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown layout is 400", func(t *testing.T) {
		body := `{"layout":"sidebar","primary_color":"#ff0066","background_color":"#ffffff","text_color":"#111827","font_family":"Inter"}`
		rec := doAuthed(t, http.HandlerFunc(h.Preview), userID, http.MethodPost, "/api/v1/theme/preview", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestThemeSet(t *testing.T) {
	userID := uuid.New()

	t.Run("valid input is saved", func(t *testing.T) {
		svc := new(mockThemeService)
		h := NewThemeHandler(svc)
		saved := &models.PortfolioTheme{PortfolioID: uuid.New(), Layout: models.LayoutCards, PrimaryColor: "#ff0066"}
		svc.On("Set", mock.Anything, userID, mock.Anything).Return(saved, nil)

		body := `{"layout":"cards","primary_color":"#ff0066","background_color":"#fff","text_color":"#111","font_family":"Georgia"}`
		rec := doAuthed(t, http.HandlerFunc(h.Set), userID, http.MethodPut, "/api/v1/theme", body)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("service rejection surfaces as 400", func(t *testing.T) {
		svc := new(mockThemeService)
		h := NewThemeHandler(svc)
		svc.On("Set", mock.Anything, userID, mock.Anything).
			Return(nil, appErr.New(appErr.CodeInvalid, "colors must be 3- or 6-digit hex values"))

		body := `{"layout":"cards","primary_color":"#ff0066","background_color":"#fff","text_color":"#111","font_family":"Georgia"}`
		rec := doAuthed(t, http.HandlerFunc(h.Set), userID, http.MethodPut, "/api/v1/theme", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestThemeUploadBackground(t *testing.T) {
	userID := uuid.New()

	multipartBody := func(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
		hdr.Set("Content-Type", contentType)
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
		require.NoError(t, mw.Close())
		return &buf, mw.FormDataContentType()
	}

	t.Run("stores the file and returns its URL", func(t *testing.T) {
		svc := new(mockThemeService)
		h := NewThemeHandler(svc)
		svc.On("SetBackground", mock.Anything, userID, "bg.jpg", "image/jpeg", mock.Anything).
			Return("https://cdn.example.com/bg.jpg", nil)

		buf, ct := multipartBody(t, "background", "bg.jpg", "image/jpeg", []byte("not a real jpeg"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/theme/background", buf)
		req.Header.Set("Content-Type", ct)
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, userID))
		rec := httptest.NewRecorder()
		h.UploadBackground(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "https://cdn.example.com/bg.jpg")
	})

	t.Run("missing file field is 400", func(t *testing.T) {
		svc := new(mockThemeService)
		h := NewThemeHandler(svc)

		buf, ct := multipartBody(t, "wrong_field", "bg.jpg", "image/jpeg", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/theme/background", buf)
		req.Header.Set("Content-Type", ct)
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, userID))
		rec := httptest.NewRecorder()
		h.UploadBackground(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "SetBackground", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
