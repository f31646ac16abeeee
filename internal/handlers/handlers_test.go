package handlers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	dbpkg "github.com/voltatec/field-asset-api/internal/db"
	"github.com/voltatec/field-asset-api/internal/models"
	"github.com/voltatec/field-asset-api/internal/routes"
	"github.com/voltatec/field-asset-api/internal/session"
)

// newTestDB abre um SQLite em memória exclusivo do teste (o nome do DSN
// isola bancos entre testes do mesmo processo) e aplica as migrações.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

// newTestServer monta o router completo sobre um banco semeado, igual ao
// boot de produção mas com sessões em memória.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	require.NoError(t, dbpkg.Seed(db))

	sessions := session.NewMemoryStore(time.Hour)

	r := gin.New()
	routes.RegisterRoutes(r, db, sessions, time.Hour)
	return r, db
}

func doJSON(r *gin.Engine, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, username, password string) *http.Cookie {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	w := doJSON(r, http.MethodPost, "/auth/login", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, ck := range w.Result().Cookies() {
		if ck.Name == session.CookieName && ck.Value != "" {
			return ck
		}
	}
	t.Fatal("session cookie not set on login")
	return nil
}

func loginAdmin(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	return login(t, r, "admin", "admin123")
}

// createColaborador insere direto no banco uma conta sem privilégio de
// admin para os testes de autorização.
func createColaborador(t *testing.T, db *gorm.DB, username, password string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Permissao:    models.PermissaoColaborador,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decodeBody(t, w, &body)
	return body["error"]
}
