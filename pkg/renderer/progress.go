package renderer

import (
	"time"
)

// Progress is polled by the pipeline after every finished tile. Returning
// false stops the render.
type Progress interface {
	Progress(done, total int) bool
	SetTitle(title string)
}

// LogProgress reports progress through the package logger in 10% steps
type LogProgress struct {
	title   string
	decile  int
	started time.Time
}

// NewLogProgress creates a logging progress reporter
func NewLogProgress() *LogProgress {
	return &LogProgress{decile: -1, started: time.Now()}
}

// SetTitle implements Progress
func (lp *LogProgress) SetTitle(title string) {
	lp.title = title
	lp.decile = -1
	lp.started = time.Now()
	logger.Info(title)
}

// Progress implements Progress. It never stops the render.
func (lp *LogProgress) Progress(done, total int) bool {
	if total <= 0 {
		return true
	}
	if d := done * 10 / total; d > lp.decile {
		lp.decile = d
		logger.Infof("%s: %3d%% (%d/%d tiles, %v)", lp.title, done*100/total, done, total, time.Since(lp.started).Round(time.Millisecond))
	}
	return true
}
