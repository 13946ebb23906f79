package dumptool

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dbs3/internal/domain"
)

func TestDetectEngine(t *testing.T) {
	tests := []struct {
		image  string
		engine domain.DBEngine
		ok     bool
	}{
		{"postgres:17.4-alpine", domain.DBEnginePostgres, true},
		{"postgis/postgis:16-3.4", domain.DBEnginePostgres, true},
		{"mysql:8.0", domain.DBEngineMySQL, true},
		{"docker.io/library/mariadb:11", domain.DBEngineMySQL, true},
		{"registry:5000/redis:7", "", false},
		{"myregistry.local:5000/app:mysql", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.image, func(t *testing.T) {
			engine, ok := DetectEngine(tt.image)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.engine, engine)
		})
	}
}

func TestVersionFromImage(t *testing.T) {
	assert.Equal(t, "18", VersionFromImage("postgres:18"))
	assert.Equal(t, "17.4", VersionFromImage("postgres:17.4-alpine"))
	assert.Equal(t, "8.0.36", VersionFromImage("mysql:8.0.36"))
	assert.Equal(t, "", VersionFromImage("postgres:latest"))
	assert.Equal(t, "", VersionFromImage("postgres:alpine"))
	assert.Equal(t, "", VersionFromImage("postgres"))
	assert.Equal(t, "", VersionFromImage("registry:5000/postgres"))
}
