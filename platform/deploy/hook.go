package deploy

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Notifier triggers a rebuild of the static site after a successful mutation.
// Failures are best-effort: they are logged and never reported to the caller.
type Notifier interface {
	Trigger(ctx context.Context)
}

// Webhook fires a POST to a deploy hook URL
type Webhook struct {
	url     string
	timeout time.Duration
	log     *zap.SugaredLogger
	httpc   *http.Client
}

// NewWebhook creates a fire-and-forget deploy hook notifier
func NewWebhook(url string, timeout time.Duration, log *zap.SugaredLogger) *Webhook {
	return &Webhook{url: url, timeout: timeout, log: log, httpc: http.DefaultClient}
}

func (w *Webhook) Trigger(ctx context.Context) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, nil)
	if err != nil {
		w.log.Errorf("deploy hook request: %s", err)
		return
	}
	res, err := w.httpc.Do(req)
	if err != nil {
		w.log.Errorf("deploy hook trigger: %s", err)
		return
	}
	_ = res.Body.Close()
	w.log.Infof("deploy hook triggered: status %d", res.StatusCode)
}

// Nop is used when no deploy hook is configured
type Nop struct{}

func (Nop) Trigger(context.Context) {}
