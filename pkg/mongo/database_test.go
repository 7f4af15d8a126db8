package mongo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/backend/pkg/mongo"
)

func TestDatabaseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      mongo.Config
		expected string
	}{
		{name: "explicit name wins", cfg: mongo.Config{URI: "mongodb://mongo:27017/other", DBName: "shop"}, expected: "shop"},
		{name: "from uri path", cfg: mongo.Config{URI: "mongodb://mongo:27017/orders"}, expected: "orders"},
		{name: "from uri with query", cfg: mongo.Config{URI: "mongodb://u:p@mongo:27017/orders?authSource=admin"}, expected: "orders"},
		{name: "escaped path", cfg: mongo.Config{URI: "mongodb://mongo:27017/my%20db"}, expected: "my db"},
		{name: "srv without path", cfg: mongo.Config{URI: "mongodb+srv://cluster0.example.net"}, expected: "test"},
		{name: "empty path", cfg: mongo.Config{URI: "mongodb://mongo:27017/?directConnection=true"}, expected: "test"},
		{name: "not a uri", cfg: mongo.Config{URI: "garbage"}, expected: "test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, mongo.DatabaseName(tt.cfg))
		})
	}
}
