package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// dailyLog is an io.Writer over storage/logs/app-YYYY-MM-DD.log that moves
// to a new file when the date changes and prunes files past retention.
type dailyLog struct {
	dir           string
	retentionDays int
	now           func() time.Time

	mu   sync.Mutex
	date string
	file *os.File
}

func newDailyLog(dir string, retentionDays int) (*dailyLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	l := &dailyLog{dir: dir, retentionDays: retentionDays, now: time.Now}
	date := l.now().Format("2006-01-02")
	file, err := openLogFile(dir, date)
	if err != nil {
		return nil, err
	}
	l.date, l.file = date, file
	cleanupOldLogs(dir, retentionDays, l.now())
	return l, nil
}

func (l *dailyLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return 0, os.ErrClosed
	}
	if date := l.now().Format("2006-01-02"); date != l.date {
		if file, err := openLogFile(l.dir, date); err == nil {
			_ = l.file.Close()
			l.date, l.file = date, file
			cleanupOldLogs(l.dir, l.retentionDays, l.now())
		}
	}
	return l.file.Write(p)
}

func (l *dailyLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func openLogFile(logDir, date string) (*os.File, error) {
	filename := filepath.Join(logDir, fmt.Sprintf("app-%s.log", date))
	return os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

func cleanupOldLogs(logDir string, retentionDays int, now time.Time) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}
	cutoff := now.AddDate(0, 0, -(retentionDays - 1))
	cutoff = time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, time.UTC)
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.HasPrefix(name, "app-") || !strings.HasSuffix(name, ".log") {
			continue
		}
		datePart := strings.TrimSuffix(strings.TrimPrefix(name, "app-"), ".log")
		logDate, err := time.Parse("2006-01-02", datePart)
		if err != nil {
			continue
		}
		if logDate.Before(cutoff) {
			_ = os.Remove(filepath.Join(logDir, name))
		}
	}
}
