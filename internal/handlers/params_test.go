package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Id não numérico na rota é tratado como recurso inexistente, nunca como
// erro interno.
func TestIDNaoNumericoDevolve404(t *testing.T) {
	r, _ := newTestServer(t)
	admin := loginAdmin(t, r)

	casos := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/eletricistas/abc", ""},
		{http.MethodPut, "/eletricistas/abc", `{"nome":"x"}`},
		{http.MethodDelete, "/eletricistas/abc", ""},
		{http.MethodGet, "/ferramentas-epis/abc", ""},
		{http.MethodGet, "/veiculos/abc", ""},
		{http.MethodPut, "/veiculos/abc", `{"identificacao":"x"}`},
		{http.MethodGet, "/users/abc", ""},
		{http.MethodGet, "/atribuicoes/abc", ""},
		{http.MethodPut, "/atribuicoes/abc/devolver", ""},
		{http.MethodGet, "/servicos-externos/abc", ""},
		{http.MethodDelete, "/servicos-externos/abc", ""},
	}

	for _, caso := range casos {
		w := doJSON(r, caso.method, caso.path, caso.body, admin)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", caso.method, caso.path)
	}
}
