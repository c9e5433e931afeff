package logger

import (
	"context"
	"path/filepath"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vieclamviet/job-search/internal/config"
	"github.com/vieclamviet/job-search/pkg/loki"
)

type logrusAdapter struct{}

func (l *logrusAdapter) Error(msg string, args ...any) {
	log.WithFields(log.Fields{"args": args, "source": "loki"}).Error(msg)
}

type lokiHook struct {
	pusher *loki.Pusher
}

func (h *lokiHook) Fire(entry *log.Entry) error {
	// Push failures are logged with source=loki; forwarding them again
	// would loop.
	if entry.Data["source"] == "loki" {
		return nil
	}

	caller := ""
	if entry.Caller != nil {
		caller = filepath.Base(entry.Caller.Function) + ":" + strconv.Itoa(entry.Caller.Line)
	}

	return h.pusher.Push(loki.LogEntry{
		Level:   entry.Level.String(),
		Message: entry.Message,
		Caller:  caller,
	})
}

func (h *lokiHook) Levels() []log.Level {
	return []log.Level{
		log.ErrorLevel,
		log.FatalLevel,
		log.PanicLevel,
		log.WarnLevel,
		log.InfoLevel,
	}
}

func addLokiHook(ctx context.Context, cfg config.LoggerConfig) error {
	pusher, err := loki.New(ctx, loki.Config{
		Url:          cfg.LokiURL,
		Username:     cfg.LokiUser,
		Password:     cfg.LokiPassword,
		Labels:       map[string]string{"app": cfg.AppName},
		BatchMaxWait: 5 * time.Second,
	}, &logrusAdapter{})
	if err != nil {
		return err
	}
	log.AddHook(&lokiHook{pusher: pusher})
	return nil
}
