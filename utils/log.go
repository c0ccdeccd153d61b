package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

// Formatter prints one compact line per entry: time, level, call site,
// message.
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	fileName, funcName, line := "?", "?", 0
	if entry.Caller != nil {
		parts := strings.Split(entry.Caller.File, "/")
		fileName = parts[len(parts)-1]
		fn := strings.Split(entry.Caller.Function, ".")
		funcName = fn[len(fn)-1]
		line = entry.Caller.Line
	}

	logMessage := fmt.Sprintf("%s [%s] %s:%d %s %s\n", timestamp, level, fileName, line, funcName, entry.Message)
	return []byte(logMessage), nil
}

// NewLogrus builds the analyzer's logrus logger writing to a rotating
// file under dir. Pass an empty dir to log to stderr only.
func NewLogrus(level logrus.Level, dir string) *logrus.Logger {
	l := logrus.New()
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	if dir == "" {
		return l
	}
	if writer, err := newWriter(dir); err != nil {
		logrus.Fatalf("Failed to create log writer: %v", err)
	} else {
		l.SetOutput(writer)
	}
	return l
}

// Logger wraps NewLogrus behind the pitaya logger interface so a
// pitaya-based host can adopt it directly.
func Logger(level logrus.Level, dir string) interfaces.Logger {
	return logruswrapper.NewWithFieldLogger(NewLogrus(level, dir))
}

func newWriter(logPath string) (*SafeRotateLogs, error) {
	programName := filepath.Base(os.Args[0])
	logFile := filepath.Join(logPath, fmt.Sprintf("%s-%%Y%%m%%d.log", programName))
	if err := os.MkdirAll(logPath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	writer, err := rotatelogs.New(
		logFile,
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}
	return &SafeRotateLogs{
		RotateLogs: writer,
		logPattern: logFile,
		maxAge:     7 * 24 * time.Hour,
		rotation:   24 * time.Hour,
	}, nil
}

// SafeRotateLogs recreates the underlying file when it disappears between
// writes (log shippers tend to move files away).
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
	maxAge     time.Duration
	rotation   time.Duration
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	currentLogFile := s.RotateLogs.CurrentFileName()
	if _, err := os.Stat(currentLogFile); os.IsNotExist(err) {
		writer, err := rotatelogs.New(
			s.logPattern,
			rotatelogs.WithMaxAge(s.maxAge),
			rotatelogs.WithRotationTime(s.rotation),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to recreate log writer: %v", err)
		}
		s.RotateLogs = writer
	}
	return s.RotateLogs.Write(p)
}
