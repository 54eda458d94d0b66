package cmd

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"novelarr/internal/download"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// chapterProgress renders one bar per download run.
type chapterProgress struct {
	p      *mpb.Progress
	bar    *mpb.Bar
	failed atomic.Int64
}

func newChapterProgress(name string, total int) *chapterProgress {
	cp := &chapterProgress{
		p: mpb.New(
			mpb.WithWidth(52),
			mpb.WithOutput(os.Stdout),
			mpb.WithRefreshRate(120*time.Millisecond),
		),
	}

	cp.bar = cp.p.New(
		int64(total),
		mpb.BarStyle().Rbound("]"),
		mpb.PrependDecorators(
			decor.Name(name+"  "),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncWidth),
			decor.CountersNoUnit(" | %d/%d chapters", decor.WCSyncWidth),
			decor.Any(func(_ decor.Statistics) string {
				if n := cp.failed.Load(); n > 0 {
					return fmt.Sprintf(" | %d failed", n)
				}
				return ""
			}),
		),
	)

	return cp
}

// Observe is passed to download.Chapters and may be called concurrently.
func (cp *chapterProgress) Observe(e download.Event) {
	if e.Err != nil {
		cp.failed.Add(1)
	}
	cp.bar.Increment()
}

// Close waits for the bar to finish rendering. An unfinished bar is aborted.
func (cp *chapterProgress) Close() {
	if !cp.bar.Completed() {
		cp.bar.Abort(false)
	}
	cp.p.Wait()
}
