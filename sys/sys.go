package sys

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/noteme-app/noteme/platform/deploy"
	"github.com/noteme-app/noteme/platform/jsonbin"
	"go.uber.org/zap"
)

// Configs contains all the configs gathered from env vars
var Configs struct {
	Http struct {
		Port            string
		ShutdownTimeout time.Duration
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
	}
	Swagger struct {
		Protocol string
		Host     string
	}
	Store struct {
		BaseURL          string
		BinID            string
		AccessKey        string
		OperationTimeout time.Duration
	}
	Cache struct {
		ConnectionURL    string
		User             string
		Pass             string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
		RateLimit        int
		RateWindow       time.Duration
	}
	Deploy struct {
		HookURL string
		Timeout time.Duration
	}
	Site struct {
		DataFile  string
		PublicDir string
		OutputDir string
	}
	Messaging struct {
		TopicName       string
		MaxWorkers      int
		WaitTime        time.Duration
		ShutdownTimeout time.Duration
	}
	NewRelic struct {
		AppName           string
		Licence           string
		Enabled           bool
		ConnectionTimeout time.Duration
		ShutdownTimeout   time.Duration
	}
}

// R holds static resources across the project
var R struct {
	Log    *zap.SugaredLogger
	Store  *jsonbin.Client
	Cache  *redis.Client
	Deploy deploy.Notifier
}
