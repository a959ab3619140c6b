package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/middleware"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/repository"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/service"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/storage"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type handlerEnv struct {
	db       *gorm.DB
	engine   *gin.Engine
	services *service.Services
}

func setupHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutils.SetupDB(t)
	blobs := storage.NewDiskStore(t.TempDir(), "/storage/")
	services := service.NewServices(repository.NewRepositories(gdb), blobs)
	h := New(services, blobs)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/logout", middleware.JWTAuth(), h.Logout)

	authed := api.Group("")
	authed.Use(middleware.JWTAuth())
	authed.GET("/photos", h.ListPhotos)
	authed.POST("/photos", h.UploadPhotos)
	authed.DELETE("/photos/:id", h.DeletePhoto)
	authed.GET("/trash", h.ListTrash)
	authed.POST("/trash/:id/restore", h.RestorePhoto)
	authed.DELETE("/trash/:id", h.PurgePhoto)
	authed.GET("/albums", h.ListAlbums)
	authed.POST("/albums", h.CreateAlbum)
	authed.GET("/albums/:id", h.GetAlbum)
	authed.GET("/user/profile", h.GetProfile)
	authed.PUT("/user/profile", h.UpdateProfile)
	authed.PATCH("/user/password", h.UpdatePassword)
	authed.PATCH("/user/avatar", h.UpdateAvatar)
	authed.DELETE("/user/avatar", h.RemoveAvatar)
	authed.DELETE("/user/account", h.DeleteAccount)

	return &handlerEnv{db: gdb, engine: r, services: services}
}

func (e *handlerEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an account through the API and returns a bearer
// token for it.
func registerAndLogin(t *testing.T, env *handlerEnv, username string) string {
	t.Helper()

	reg := httptest.NewRequest(http.MethodPost, "/api/register",
		bytes.NewReader(jsonBody(t, gin.H{
			"username": username,
			"email":    username + "@example.com",
			"password": "longpassword1",
		})))
	reg.Header.Set("Content-Type", "application/json")
	if w := env.do(t, reg); w.Code != http.StatusCreated {
		t.Fatalf("register %q: status %d body=%s", username, w.Code, w.Body.String())
	}

	login := httptest.NewRequest(http.MethodPost, "/api/login",
		bytes.NewReader(jsonBody(t, gin.H{
			"account":  username,
			"password": "longpassword1",
		})))
	login.Header.Set("Content-Type", "application/json")
	w := env.do(t, login)
	if w.Code != http.StatusOK {
		t.Fatalf("login %q: status %d body=%s", username, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("login returned empty token")
	}
	return resp.Token
}

func jsonBody(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return b
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// photosForm builds a multipart body with one "photos" part per payload,
// each declared as image/jpeg.
func photosForm(t *testing.T, names []string, payloads [][]byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for i, name := range names {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="photos"; filename="`+name+`"`)
		hdr.Set("Content-Type", "image/jpeg")
		part, err := w.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(payloads[i]); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}
