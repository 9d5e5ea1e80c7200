package pypi_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/benmoss/pixi-outdated/internal/adapters/pypi"
	"github.com/benmoss/pixi-outdated/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pypiIdentity(name string) domain.Identity {
	return domain.Identity{Name: name, Ecosystem: domain.EcosystemPypi}
}

func TestOracle_LatestVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pypi/requests/json", r.URL.Path)
		_, _ = io.WriteString(w, `{"info": {"name": "requests", "version": "2.32.3"}}`)
	}))
	t.Cleanup(server.Close)

	oracle := pypi.NewOracleWithIndex(server.URL)
	version, err := oracle.LatestVersion(context.Background(), pypiIdentity("requests"))

	require.NoError(t, err)
	assert.Equal(t, "2.32.3", version)
}

func TestOracle_LatestVersion_NormalizesName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pypi/ruamel-yaml/json", r.URL.Path)
		_, _ = io.WriteString(w, `{"info": {"version": "0.18.6"}}`)
	}))
	t.Cleanup(server.Close)

	oracle := pypi.NewOracleWithIndex(server.URL)
	_, err := oracle.LatestVersion(context.Background(), pypiIdentity("ruamel.YAML"))

	require.NoError(t, err)
}

func TestOracle_LatestVersion_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	oracle := pypi.NewOracleWithIndex(server.URL)
	_, err := oracle.LatestVersion(context.Background(), pypiIdentity("no-such-project"))

	assert.Error(t, err)
}

func TestOracle_LatestVersion_EmptyVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"info": {}}`)
	}))
	t.Cleanup(server.Close)

	oracle := pypi.NewOracleWithIndex(server.URL)
	_, err := oracle.LatestVersion(context.Background(), pypiIdentity("weird"))

	assert.Error(t, err)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"requests", "requests"},
		{"ruamel.yaml", "ruamel-yaml"},
		{"typing_extensions", "typing-extensions"},
		{"Flask-SQLAlchemy", "flask-sqlalchemy"},
		{"a.-_b", "a-b"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pypi.NormalizeName(tt.in))
	}
}
