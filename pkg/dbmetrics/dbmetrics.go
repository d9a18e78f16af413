package dbmetrics

import (
	"database/sql"
	"time"

	"github.com/sifat-99/driverly/pkg/metrics"
)

const collectInterval = 15 * time.Second

// Collect периодически снимает статистику connection pool в Prometheus-гейджи
// Останавливается при закрытии stopCh
func Collect(db *sql.DB, m *metrics.Metrics, dbName string, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(collectInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				m.DBConnectionsOpen.WithLabelValues(dbName).Set(float64(stats.OpenConnections))
				m.DBConnectionsIdle.WithLabelValues(dbName).Set(float64(stats.Idle))
				m.DBConnectionsInUse.WithLabelValues(dbName).Set(float64(stats.InUse))
			case <-stopCh:
				return
			}
		}
	}()
}
