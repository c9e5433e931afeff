// Package loki is a small batching client for pushing log lines to a
// Grafana Loki instance.
package loki

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Logger receives errors that happen during background pushes; the hook
// using this package must not log them back through itself.
type Logger interface {
	Error(msg string, args ...any)
}

type Config struct {
	// Url of the loki push endpoint, e.g. https://loki.example.com/loki/api/v1/push
	Url string `validate:"required"`

	// Labels added to every stream.
	Labels map[string]string

	// BatchMaxSize is the number of lines that triggers a push.
	BatchMaxSize int `validate:"gte=1"`

	// BatchMaxWait is the longest a batch may sit before being pushed.
	BatchMaxWait time.Duration `validate:"gte=1"`

	// Optional basic-auth credentials.
	Username string
	Password string
}

func (cfg *Config) setDefaults() {
	if cfg.BatchMaxSize == 0 {
		cfg.BatchMaxSize = 1000
	}
	if cfg.BatchMaxWait == 0 {
		cfg.BatchMaxWait = 5 * time.Second
	}
}

type LogEntry struct {
	Level   string
	Message string
	Caller  string
}

type Pusher struct {
	cfg    Config
	client *http.Client
	logger Logger

	mu      sync.Mutex
	pending [][2]string
	flushCh chan struct{}
}

func New(ctx context.Context, cfg Config, logger Logger) (*Pusher, error) {
	cfg.setDefaults()
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid loki config: %w", err)
	}

	p := &Pusher{
		cfg:     cfg,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
		flushCh: make(chan struct{}, 1),
	}
	go p.run(ctx)
	return p, nil
}

func (p *Pusher) Push(entry LogEntry) error {
	line, err := json.Marshal(map[string]string{
		"level":   entry.Level,
		"message": entry.Message,
		"caller":  entry.Caller,
	})
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.pending = append(p.pending, [2]string{
		strconv.FormatInt(time.Now().UnixNano(), 10),
		string(line),
	})
	full := len(p.pending) >= p.cfg.BatchMaxSize
	p.mu.Unlock()

	if full {
		select {
		case p.flushCh <- struct{}{}:
		default:
		}
	}
	return nil
}

func (p *Pusher) run(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.BatchMaxWait)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.flush()
			return
		case <-ticker.C:
			p.flush()
		case <-p.flushCh:
			p.flush()
		}
	}
}

func (p *Pusher) flush() {
	p.mu.Lock()
	batch := p.pending
	p.pending = nil
	p.mu.Unlock()

	if len(batch) == 0 {
		return
	}
	if err := p.send(batch); err != nil {
		p.logger.Error("failed to push logs to loki", "error", err)
	}
}

func (p *Pusher) send(batch [][2]string) error {
	payload := map[string]any{
		"streams": []map[string]any{
			{
				"stream": p.cfg.Labels,
				"values": batch,
			},
		},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err = gz.Write(raw); err != nil {
		return err
	}
	if err = gz.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, p.cfg.Url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	if p.cfg.Username != "" {
		req.SetBasicAuth(p.cfg.Username, p.cfg.Password)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("loki responded with status %d", resp.StatusCode)
	}
	return nil
}
