package audit

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileSink appends "[timestamp] event" lines to a rotating log file.
type FileSink struct {
	out *lumberjack.Logger
}

// NewFileSink writes to path, rotating after maxSizeMB and keeping at most
// maxBackups rotated files for maxAgeDays. Parent directories are created
// by lumberjack on first write.
func NewFileSink(path string, maxSizeMB, maxBackups, maxAgeDays int) *FileSink {
	return &FileSink{
		out: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		},
	}
}

func (s *FileSink) Record(_ context.Context, event string) error {
	line := fmt.Sprintf("[%s] %s\n", time.Now().UTC().Format(time.RFC3339), event)
	_, err := s.out.Write([]byte(line))
	return err
}

func (s *FileSink) Close() error {
	return s.out.Close()
}
