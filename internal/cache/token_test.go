package cache

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestTokenKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"default prefix", "", "erp:storage:token"},
		{"custom prefix", "tenant-a:", "tenant-a:token"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewWithClient(redis.NewClient(&redis.Options{Addr: "localhost:0"}))
			defer c.Close()

			if got := c.TokenStore(tt.prefix, 0).Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenStore_SessionKeys(t *testing.T) {
	t.Parallel()

	c := NewWithClient(redis.NewClient(&redis.Options{Addr: "localhost:0"}))
	defer c.Close()

	base := c.TokenStore("", time.Hour)
	one := base.For("7f3c").(*TokenStore)
	two := base.For("9a01").(*TokenStore)

	if one.Key() != "erp:storage:token:7f3c" {
		t.Errorf("Key() = %q", one.Key())
	}
	if one.Key() == two.Key() || one.Key() == base.Key() {
		t.Error("sessions must not share a key")
	}
	if one.ttl != time.Hour {
		t.Errorf("ttl = %v, want 1h", one.ttl)
	}
}
