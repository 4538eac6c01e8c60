package mq

import (
	"testing"

	"github.com/yeisme/reportvault/pkg/configs"
)

func TestBuildURL(t *testing.T) {
	cfg := &configs.MQConfig{}
	cfg.Common.URL = "localhost:4222"

	if got := buildURL(cfg); got != "localhost:4222" {
		t.Errorf("url = %q, want common url", got)
	}

	cfg.NATS.ClusterURLs = []string{"nats://a:4222", "nats://b:4222"}
	if got := buildURL(cfg); got != "nats://a:4222,nats://b:4222" {
		t.Errorf("url = %q, want joined cluster urls", got)
	}
}

func TestBuildNatsOptions(t *testing.T) {
	cfg := &configs.MQConfig{}
	cfg.Common.ClientID = "reportvault-app"
	cfg.Common.MaxReconnects = 5
	cfg.Common.ReconnectWait = 5
	cfg.Common.PingInterval = 20
	cfg.Common.BufferSize = 32768

	if opts := buildNatsOptions(cfg); len(opts) == 0 {
		t.Fatal("no options built")
	}

	// JWT 优先于用户名密码
	cfg.NATS.JWT = "jwt-token"
	cfg.Common.User = "user"

	base := len(buildNatsOptions(&configs.MQConfig{
		Common: cfg.Common, NATS: configs.MQNATSConfig{},
	}))

	withAuth := len(buildNatsOptions(cfg))
	if withAuth != base {
		t.Errorf("auth options = %d, want %d (one auth option either way)", withAuth, base)
	}
}
