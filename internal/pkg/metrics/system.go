package metrics

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

const DefaultCollectInterval = 5 * time.Second

var (
	SystemCPUUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_cpu_usage_percent",
		Help: "Host CPU usage percentage",
	})

	SystemMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_memory_usage_bytes",
		Help: "Host memory in use",
	})

	ProcessResidentMemory = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_process_rss_bytes",
		Help: "Resident set size of the service process",
	})

	ApplicationHeapAlloc = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_heap_alloc_bytes",
		Help: "Go heap allocation",
	})

	ApplicationGoroutines = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_goroutines",
		Help: "Number of goroutines, grows with open tracking websockets",
	})
)

// StartSystemMetricsCollector снимает первый замер сразу и дальше раз в interval до отмены ctx.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration) {
	self, err := process.NewProcessWithContext(ctx, int32(os.Getpid())) //nolint:gosec // pid помещается в int32
	if err != nil {
		self = nil
	}

	go func() {
		Collect(ctx, self)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				Collect(ctx, self)
			}
		}
	}()
}

// Collect один замер. Ошибки gopsutil пропускаются: метрика остаётся с прошлым значением.
func Collect(ctx context.Context, self *process.Process) {
	if cpuPercent, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	if vmStat, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	if self != nil {
		if memInfo, err := self.MemoryInfoWithContext(ctx); err == nil {
			ProcessResidentMemory.Set(float64(memInfo.RSS))
		}
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationHeapAlloc.Set(float64(m.HeapAlloc))
	ApplicationGoroutines.Set(float64(runtime.NumGoroutine()))
}
