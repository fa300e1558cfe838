package system_healthcheck

import (
	"context"
	"fmt"
	"time"

	"orilla/internal/cache"
	"orilla/internal/storage"

	"github.com/shirou/gopsutil/v4/mem"
)

// memoryPressureThreshold is the used-memory percentage above which the
// instance reports itself unhealthy so the load balancer drains it.
const memoryPressureThreshold = 95.0

type HealthcheckService struct{}

type HealthStatus struct {
	Healthy           bool    `json:"healthy"`
	DatabaseOK        bool    `json:"databaseOk"`
	CacheOK           bool    `json:"cacheOk"`
	MemoryUsedPercent float64 `json:"memoryUsedPercent"`
}

func (s *HealthcheckService) CheckHealth() (*HealthStatus, error) {
	status := &HealthStatus{}

	sqlDb, err := storage.GetDb().DB()
	if err == nil {
		status.DatabaseOK = sqlDb.Ping() == nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client := cache.GetCache()
	status.CacheOK = client.Do(ctx, client.B().Ping().Build()).Error() == nil

	memory, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to read memory stats: %w", err)
	}
	status.MemoryUsedPercent = memory.UsedPercent

	status.Healthy = status.DatabaseOK &&
		status.CacheOK &&
		memory.UsedPercent < memoryPressureThreshold

	return status, nil
}
